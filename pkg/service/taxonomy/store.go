// Package taxonomy holds the immutable guideline section index. The store is
// built once at startup from the dataset and never mutated afterwards, so all
// read paths are safe for concurrent use without locking.
package taxonomy

import (
	"strings"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned when an entry ID does not exist in the store
var ErrNotFound = goerr.New("entry not found")

// Store is an immutable, in-memory collection of guideline entries. Iteration
// order is the dataset order, which the match engine relies on for
// first-match-wins determinism.
type Store struct {
	documentID types.DocumentID
	title      string
	version    string
	sourceURL  string
	entries    []*model.Entry
	byID       map[types.EntryID]*model.Entry
}

// Option configures a Store at construction time
type Option func(*Store)

// WithDocumentMeta sets the display title, version and source URL of the
// guideline document the entries belong to.
func WithDocumentMeta(title, version, sourceURL string) Option {
	return func(s *Store) {
		s.title = title
		s.version = version
		s.sourceURL = sourceURL
	}
}

// New builds a store from the dataset entries. Entries are validated and
// keyword casing is normalized to lowercase so the match engine never has to
// lower keywords per query.
func New(documentID types.DocumentID, entries []*model.Entry, opts ...Option) (*Store, error) {
	if err := documentID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid document ID")
	}

	s := &Store{
		documentID: documentID,
		entries:    make([]*model.Entry, 0, len(entries)),
		byID:       make(map[types.EntryID]*model.Entry, len(entries)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid entry")
		}
		if _, exists := s.byID[e.ID]; exists {
			return nil, goerr.New("duplicate entry ID", goerr.V("id", e.ID))
		}

		copied := &model.Entry{
			ID:       e.ID,
			Title:    e.Title,
			Category: e.Category,
			Page:     e.Page,
			Keywords: make([]string, len(e.Keywords)),
		}
		for i, k := range e.Keywords {
			copied.Keywords[i] = strings.ToLower(strings.TrimSpace(k))
		}

		s.entries = append(s.entries, copied)
		s.byID[copied.ID] = copied
	}

	return s, nil
}

// DocumentID returns the ID of the guideline document
func (s *Store) DocumentID() types.DocumentID {
	return s.documentID
}

// Title returns the display title of the guideline document
func (s *Store) Title() string {
	return s.title
}

// Version returns the guideline document version
func (s *Store) Version() string {
	return s.version
}

// SourceURL returns the URL of the official guideline document
func (s *Store) SourceURL() string {
	return s.sourceURL
}

// Len returns the number of entries in the store
func (s *Store) Len() int {
	return len(s.entries)
}

// Get retrieves an entry by ID. Returns ErrNotFound for unknown IDs.
func (s *Store) Get(id types.EntryID) (*model.Entry, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "no entry for ID", goerr.V("id", id))
	}
	return e, nil
}

// All returns every entry in dataset order. The returned slice is shared and
// must not be modified by callers.
func (s *Store) All() []*model.Entry {
	return s.entries
}

// ByCategory returns the entries of one category in dataset order. The
// category comparison is case-insensitive.
func (s *Store) ByCategory(category string) []*model.Entry {
	want := strings.ToLower(strings.TrimSpace(category))
	if want == "" {
		return nil
	}

	var out []*model.Entry
	for _, e := range s.entries {
		if strings.ToLower(e.Category) == want {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns every distinct category with its entry count, in
// first-seen dataset order.
func (s *Store) Categories() []model.CategoryCount {
	var out []model.CategoryCount
	index := make(map[string]int)

	for _, e := range s.entries {
		if i, ok := index[e.Category]; ok {
			out[i].Count++
			continue
		}
		index[e.Category] = len(out)
		out = append(out, model.CategoryCount{Name: e.Category, Count: 1})
	}
	return out
}
