package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cladeworks/phylopaint/internal/newick"
)

// ReformatOptions holds the options for the reformat command.
type ReformatOptions struct {
	Out string
}

// NewReformatCommand creates the reformat command.
func NewReformatCommand() *cobra.Command {
	opts := &ReformatOptions{}

	cmd := &cobra.Command{
		Use:   "reformat <tree-file>",
		Short: "Rewrite a tree with bracketed supports as standard Newick",
		Long: `Convert a tree that stores support values in brackets after branch
lengths (the ":<length>[<support>]" form) into standard Newick where
supports appear as internal node labels, then write it back out.

Without --out the converted tree is printed to stdout.`,
		Example: `  # Print the converted tree
  phylopaint reformat raxml.nwk

  # Write it to a file
  phylopaint reformat raxml.nwk --out raxml.converted.nwk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReformat(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().Bool("quoted-names", false, "allow quoted leaf names")

	return cmd
}

func runReformat(cmd *cobra.Command, treePath string, opts *ReformatOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Config
	if cmd.Flags().Changed("quoted-names") {
		cfg.QuotedNames, _ = cmd.Flags().GetBool("quoted-names")
	}

	parseOpts := newick.Options{
		QuotedNames:      cfg.QuotedNames,
		BracketedSupport: true,
	}
	root, err := newick.ParseFile(treePath, parseOpts)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", treePath, err)
	}

	text := newick.Write(root)
	if opts.Out == "" {
		cmdCtx.Renderer.Println(text)
		return nil
	}

	if err := os.WriteFile(opts.Out, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Out, err)
	}
	if cfg.Verbose {
		cmdCtx.Renderer.Statusf("wrote %s\n", opts.Out)
	}
	return nil
}
