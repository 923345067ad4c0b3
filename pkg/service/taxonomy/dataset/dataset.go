// Package dataset loads guideline section datasets from TOML and builds the
// taxonomy store. The HMCAS CPG v2.4 dataset ships embedded as the default;
// deployments can point at their own file instead.
package dataset

import (
	_ "embed"
	"os"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed hmcas_cpg.toml
var defaultDataset []byte

// Document is the TOML representation of one guideline dataset
type Document struct {
	ID        string    `toml:"id"`
	Title     string    `toml:"title"`
	Version   string    `toml:"version"`
	SourceURL string    `toml:"source_url"`
	Sections  []Section `toml:"sections"`
}

// Section is the TOML representation of one guideline section
type Section struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Category string   `toml:"category"`
	Page     int      `toml:"page"`
	Keywords []string `toml:"keywords"`
}

// Parse builds a taxonomy store from TOML dataset content. Section order in
// the file becomes the store order, which drives first-match-wins resolution.
func Parse(data []byte) (*taxonomy.Store, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset")
	}
	if len(doc.Sections) == 0 {
		return nil, goerr.New("dataset has no sections", goerr.V("id", doc.ID))
	}

	entries := make([]*model.Entry, len(doc.Sections))
	for i, s := range doc.Sections {
		entries[i] = &model.Entry{
			ID:       types.EntryID(s.ID),
			Title:    s.Title,
			Category: s.Category,
			Page:     s.Page,
			Keywords: s.Keywords,
		}
	}

	return taxonomy.New(types.DocumentID(doc.ID), entries,
		taxonomy.WithDocumentMeta(doc.Title, doc.Version, doc.SourceURL),
	)
}

// Load reads a dataset file and builds the store from it
func Load(path string) (*taxonomy.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset file", goerr.V("path", path))
	}
	return Parse(data)
}

// Default builds the store from the embedded HMCAS CPG dataset
func Default() (*taxonomy.Store, error) {
	return Parse(defaultDataset)
}
