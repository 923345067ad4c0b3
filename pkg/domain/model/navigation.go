package model

import (
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// NavigationTarget tells the caller which document/view to open and what to
// highlight. It is a pure translation of a resolved entry; recording the
// access in session memory is the caller's job.
type NavigationTarget struct {
	DocumentID   types.DocumentID `json:"document_id"`
	SectionID    types.EntryID    `json:"section_id"`
	SectionTitle string           `json:"section_title"`
	Page         int              `json:"page"`
}

// NewNavigationTarget builds a navigation target for the given entry.
// A nil entry is a programmer error, not a user-facing outcome.
func NewNavigationTarget(documentID types.DocumentID, entry *Entry) (*NavigationTarget, error) {
	if entry == nil {
		return nil, goerr.New("cannot build navigation target for nil entry")
	}
	if err := documentID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid document ID for navigation target")
	}

	return &NavigationTarget{
		DocumentID:   documentID,
		SectionID:    entry.ID,
		SectionTitle: entry.Title,
		Page:         entry.Page,
	}, nil
}
