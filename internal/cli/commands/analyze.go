package commands

import (
	"github.com/cladeworks/phylopaint/internal/cli/config"
	"github.com/cladeworks/phylopaint/internal/newick"
	"github.com/cladeworks/phylopaint/internal/paint"
	"github.com/cladeworks/phylopaint/internal/tree"
)

// loadAndPaint runs the shared pipeline: parse the tree file, midpoint
// root unless disabled, and compute the coloring.
func loadAndPaint(path string, cfg *config.Config) (*newick.Node, *paint.Result, error) {
	root, err := newick.ParseFile(path, newick.Options{
		QuotedNames:      cfg.QuotedNames,
		BracketedSupport: cfg.BracketedSupport,
	})
	if err != nil {
		return nil, nil, err
	}

	if !cfg.NoMidpoint {
		root = tree.MidpointRoot(root)
	}

	res, err := paint.Paint(root, paint.Config{Cutoff: cfg.Cutoff, Palette: cfg.Palette})
	if err != nil {
		return nil, nil, err
	}
	return root, res, nil
}
