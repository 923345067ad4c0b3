package config

import (
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy/dataset"
	"github.com/ems-lab/cpgnav/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Guideline holds CLI flags for the guideline dataset
type Guideline struct {
	path string
}

// Flags returns CLI flags for guideline dataset configuration
func (g *Guideline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "guideline",
			Usage:       "Path to a guideline dataset TOML file (uses the embedded HMCAS CPG dataset when empty)",
			Sources:     cli.EnvVars("CPGNAV_GUIDELINE"),
			Destination: &g.path,
		},
	}
}

// Path returns the configured dataset path, empty for the embedded default
func (g *Guideline) Path() string {
	return g.path
}

// Configure loads the dataset and builds the taxonomy store
func (g *Guideline) Configure() (*taxonomy.Store, error) {
	var store *taxonomy.Store
	var err error

	if g.path != "" {
		store, err = dataset.Load(g.path)
	} else {
		store, err = dataset.Default()
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load guideline dataset")
	}

	logging.Default().Info("Loaded guideline dataset",
		"document_id", store.DocumentID(),
		"title", store.Title(),
		"version", store.Version(),
		"sections", store.Len(),
		"path", g.path,
	)
	return store, nil
}
