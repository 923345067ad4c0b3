package interfaces

// Repository defines the interface for session memory persistence
type Repository interface {
	Bookmark() BookmarkRepository
	Recent() RecentRepository
	Favorite() FavoriteRepository

	Close() error
}
