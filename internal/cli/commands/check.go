package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cladeworks/phylopaint/internal/cli/output"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <tree-file>",
		Short: "Validate a tree file without rendering",
		Long: `Parse and analyze a tree file, reporting leaf, fragment, and group
counts. Exits non-zero if the file cannot be parsed.`,
		Example: `  # Validate a tree
  phylopaint check tree.nwk

  # Machine-readable report
  phylopaint check tree.nwk --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
	addTreeFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, treePath string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Config
	applyTreeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	root, res, err := loadAndPaint(treePath, cfg)
	if err != nil {
		return err
	}

	report := output.CheckOutput{
		Path:      treePath,
		Leaves:    len(root.Leaves()),
		Fragments: len(res.Fragments),
		Groups:    len(res.Groups),
		OK:        true,
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	styles := r.Styles()
	r.Println(styles.Success.Render("OK") + " " + treePath)
	r.Printf("  leaves:    %d\n", report.Leaves)
	r.Printf("  fragments: %d\n", report.Fragments)
	r.Printf("  groups:    %d\n", report.Groups)
	return nil
}
