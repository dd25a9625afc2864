package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cladeworks/phylopaint/internal/cli/config"
	"github.com/cladeworks/phylopaint/internal/paint"
	"github.com/cladeworks/phylopaint/internal/render"
)

// DrawOptions holds options for the draw command.
type DrawOptions struct {
	Out   string
	Watch bool
}

// NewDrawCommand creates the draw command.
func NewDrawCommand() *cobra.Command {
	opts := &DrawOptions{}
	cmd := &cobra.Command{
		Use:   "draw <tree-file>",
		Short: "Draw a tree and color multidomain groups",
		Long: `Draw a Newick tree to an SVG or PNG image.

Leaves named <id>_1, <id>_2 and so on are treated as fragments of the
same multidomain sequence. Fragment groups that form a recognizable
clade structure are highlighted in a shared color; bare sister pairs
and leaves outside the convention render in a neutral gray.`,
		Example: `  # Draw a tree to tree.svg
  phylopaint draw tree.nwk

  # PNG output with a wider canvas
  phylopaint draw tree.nwk -o tree.png --width 1600

  # Input with bracketed support values and quoted names
  phylopaint draw tree.nwk --bracketed-support --quoted-names

  # Re-render whenever the tree file changes
  phylopaint draw tree.nwk --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output image path (default: tree file with .svg extension)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-render when the tree file changes")
	addTreeFlags(cmd)
	addImageFlags(cmd)
	return cmd
}

// addTreeFlags registers the flags shared by every tree-reading command.
func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("bracketed-support", false, "Assume support values are bracketed")
	cmd.Flags().Bool("quoted-names", false, "Assume leaf names are quoted")
	cmd.Flags().Bool("no-midpoint", false, "Skip midpoint rooting")
	cmd.Flags().Float64("cutoff", config.DefaultCutoff, "Clade match quality cutoff (0, 1]")
}

func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Image format: svg or png (default: by output extension)")
	cmd.Flags().Int("width", config.DefaultWidth, "Image width in pixels")
	cmd.Flags().Int("row-height", config.DefaultRowHeight, "Vertical spacing per leaf in pixels")
	cmd.Flags().Float64("font-size", config.DefaultFontSize, "Leaf label font size")
	cmd.Flags().Bool("show-support", false, "Draw branch support values")
}

// applyTreeFlags folds changed command flags into the loaded config.
func applyTreeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("bracketed-support") {
		cfg.BracketedSupport, _ = cmd.Flags().GetBool("bracketed-support")
	}
	if cmd.Flags().Changed("quoted-names") {
		cfg.QuotedNames, _ = cmd.Flags().GetBool("quoted-names")
	}
	if cmd.Flags().Changed("no-midpoint") {
		cfg.NoMidpoint, _ = cmd.Flags().GetBool("no-midpoint")
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff, _ = cmd.Flags().GetFloat64("cutoff")
	}
}

func applyImageFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.ImageFormat, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("width") {
		cfg.Width, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("row-height") {
		cfg.RowHeight, _ = cmd.Flags().GetInt("row-height")
	}
	if cmd.Flags().Changed("font-size") {
		cfg.FontSize, _ = cmd.Flags().GetFloat64("font-size")
	}
	if cmd.Flags().Changed("show-support") {
		cfg.ShowSupport, _ = cmd.Flags().GetBool("show-support")
	}
}

func runDraw(cmd *cobra.Command, treePath string, opts *DrawOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Config
	applyTreeFlags(cmd, cfg)
	applyImageFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	outPath := opts.Out
	if outPath == "" {
		ext := "." + cfg.ImageFormat
		outPath = strings.TrimSuffix(treePath, filepath.Ext(treePath)) + ext
	}

	// An explicit image format wins; otherwise the extension decides.
	format := render.Format(cfg.ImageFormat)
	if !cmd.Flags().Changed("format") {
		format = render.FormatFromPath(outPath)
	}

	renderOnce := func() error {
		root, res, err := loadAndPaint(treePath, cfg)
		if err != nil {
			return err
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		renderOpts := render.Options{
			Width:       cfg.Width,
			RowHeight:   cfg.RowHeight,
			FontSize:    cfg.FontSize,
			ShowSupport: cfg.ShowSupport,
			Format:      format,
		}
		if err := render.Render(root, res, renderOpts, f); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if cfg.Verbose {
			highlighted := 0
			for _, g := range res.Groups {
				if g.Status == paint.StatusHighlighted {
					highlighted++
				}
			}
			cmdCtx.Renderer.Statusf("rendered %s: %d leaves, %d highlighted groups, %d clade matches\n",
				outPath, len(root.Leaves()), highlighted, len(res.Clades))
		}
		return nil
	}

	if err := renderOnce(); err != nil {
		return err
	}
	cmdCtx.Renderer.Statusf("wrote %s\n", outPath)

	if !opts.Watch {
		return nil
	}
	return watchAndRender(cmd, treePath, cmdCtx, renderOnce)
}

// watchAndRender re-renders on every write to the tree file until the
// command context is canceled.
func watchAndRender(cmd *cobra.Command, treePath string, cmdCtx *CommandContext, renderOnce func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files instead of writing in
	// place, which drops the watch on the file itself.
	dir := filepath.Dir(treePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target, _ := filepath.Abs(treePath)
	cmdCtx.Renderer.Statusf("watching %s\n", treePath)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := renderOnce(); err != nil {
				cmdCtx.Renderer.Statusf("render failed: %v\n", err)
				continue
			}
			cmdCtx.Renderer.Statusf("re-rendered after change to %s\n", treePath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Renderer.Statusf("watch error: %v\n", err)
		}
	}
}
