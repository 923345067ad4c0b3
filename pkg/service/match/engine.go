// Package match implements the query-to-section resolver over the taxonomy
// store. Matching is deliberately simple: lowercase, trim, and bidirectional
// substring containment against a curated keyword vocabulary. The dataset is
// controlled, so containment beats fuzzy matching for predictability.
package match

import (
	"strings"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
)

// DisplayLimit is the number of search results callers show in a preview.
// Search itself returns the full match set so callers can report "N found".
const DisplayLimit = 5

// Engine evaluates free-text queries against the taxonomy store snapshot.
// All operations are pure functions of (query, filter) and the store order.
type Engine struct {
	store *taxonomy.Store
}

// New creates a match engine bound to the given store
func New(store *taxonomy.Store) *Engine {
	return &Engine{store: store}
}

// Normalize lowercases and trims a raw query. No stemming and no punctuation
// stripping: numeric section codes like "1.6" must survive normalization.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// keywordMatch reports whether any keyword of the entry satisfies
// bidirectional containment with the normalized query: the keyword contains
// the query ("1.6" in "1.6"), or the query contains the keyword ("i think
// this is cardiac arrest" contains "cardiac arrest").
func keywordMatch(entry *model.Entry, query string) bool {
	for _, k := range entry.Keywords {
		if strings.Contains(query, k) || strings.Contains(k, query) {
			return true
		}
	}
	return false
}

// Resolve returns the single entry the query most likely means, or nil when
// nothing qualifies. The first candidate in store order wins; the dataset is
// curated so keyword overlaps across entries are rare.
//
// An empty or whitespace-only query returns nil: the empty string is a
// substring of every keyword, and without this guard it would match the
// entire taxonomy.
func (e *Engine) Resolve(query string) *model.Entry {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	for _, entry := range e.store.All() {
		if keywordMatch(entry, q) {
			return entry
		}
	}
	return nil
}

// Search returns every entry matching the query, in store order. An entry
// matches when its title contains the query (case-insensitive) or any keyword
// satisfies bidirectional containment. When category is non-empty, the
// entry's category must additionally equal it (case-insensitive).
//
// An empty result is a valid outcome, not an error. Callers that present a
// bounded preview truncate to DisplayLimit themselves.
func (e *Engine) Search(query, category string) []*model.Entry {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	wantCategory := Normalize(category)

	var out []*model.Entry
	for _, entry := range e.store.All() {
		if wantCategory != "" && strings.ToLower(entry.Category) != wantCategory {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Title), q) || keywordMatch(entry, q) {
			out = append(out, entry)
		}
	}
	return out
}

// Categories returns every distinct category with entry counts, in first-seen
// store order.
func (e *Engine) Categories() []model.CategoryCount {
	return e.store.Categories()
}
