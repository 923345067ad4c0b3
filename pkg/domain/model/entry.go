package model

import (
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Entry is one addressable section of the guideline taxonomy. Entries are
// defined once by the dataset at startup and are immutable for the lifetime
// of the process.
type Entry struct {
	ID       types.EntryID
	Title    string
	Category string
	Page     int // page locator into the guideline document, display only
	Keywords []string
}

// Validate checks dataset-level constraints on a single entry. Keywords are
// required because they are the only match surface besides the title.
func (e *Entry) Validate() error {
	if err := e.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid entry ID")
	}
	if e.Title == "" {
		return goerr.New("entry title is required", goerr.V("id", e.ID))
	}
	if e.Category == "" {
		return goerr.New("entry category is required", goerr.V("id", e.ID))
	}
	if e.Page <= 0 {
		return goerr.New("entry page must be positive", goerr.V("id", e.ID), goerr.V("page", e.Page))
	}
	if len(e.Keywords) == 0 {
		return goerr.New("entry requires at least one keyword", goerr.V("id", e.ID))
	}
	for _, k := range e.Keywords {
		if k == "" {
			return goerr.New("entry keyword cannot be empty", goerr.V("id", e.ID))
		}
	}
	return nil
}

// EntryRef is the flat reference returned across the API boundary.
type EntryRef struct {
	ID       types.EntryID `json:"id"`
	Title    string        `json:"title"`
	Category string        `json:"category"`
	Page     int           `json:"page"`
}

// Ref returns the boundary representation of the entry.
func (e *Entry) Ref() EntryRef {
	return EntryRef{
		ID:       e.ID,
		Title:    e.Title,
		Category: e.Category,
		Page:     e.Page,
	}
}

// CategoryCount is one distinct category with the number of entries in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
