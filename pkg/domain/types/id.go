package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// EntryID represents a stable unique identifier for a guideline section
// (e.g. "cpg-2.1"). IDs are defined once by the dataset and never reused.
type EntryID string

var entryIDPattern = regexp.MustCompile(`^[a-z0-9]+([.-][a-z0-9]+)*$`)

// Validate checks if the EntryID is valid
func (e EntryID) Validate() error {
	if e == "" {
		return goerr.New("entry ID cannot be empty")
	}
	if !entryIDPattern.MatchString(string(e)) {
		return goerr.New("entry ID must be lowercase alphanumeric with dots and hyphens", goerr.V("id", e))
	}
	return nil
}

// String returns the string representation of EntryID
func (e EntryID) String() string {
	return string(e)
}

// DocumentID identifies the guideline document an entry belongs to
// (e.g. "hmcas-cpg-2.4")
type DocumentID string

var documentIDPattern = regexp.MustCompile(`^[a-z0-9]+([.-][a-z0-9]+)*$`)

// Validate checks if the DocumentID is valid
func (d DocumentID) Validate() error {
	if d == "" {
		return goerr.New("document ID cannot be empty")
	}
	if !documentIDPattern.MatchString(string(d)) {
		return goerr.New("document ID must be lowercase alphanumeric with dots and hyphens", goerr.V("id", d))
	}
	return nil
}

// String returns the string representation of DocumentID
func (d DocumentID) String() string {
	return string(d)
}
