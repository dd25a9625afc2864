package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cladeworks/phylopaint/internal/cli/output"
	"github.com/cladeworks/phylopaint/internal/paint"
)

// NewGroupsCommand creates the groups command.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups <tree-file>",
		Short: "List sequence groups and their colors",
		Long: `Analyze a tree and list every sequence group with its status
and assigned color, without rendering an image.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown
  - JSON: machine-readable (--output json)`,
		Example: `  # List groups
  phylopaint groups tree.nwk

  # Machine-readable listing
  phylopaint groups tree.nwk --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(cmd, args[0])
		},
	}
	addTreeFlags(cmd)
	return cmd
}

func runGroups(cmd *cobra.Command, treePath string) error {
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

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return groupsJSON(r, len(root.Leaves()), res)
	case output.ModeMarkdown:
		return groupsMarkdown(r, res)
	default:
		return groupsText(r, res)
	}
}

func groupsText(r *output.Renderer, res *paint.Result) error {
	styles := r.Styles()
	r.Header(1, "Sequence Groups")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Sequence", "Status", "Color", "Leaves"})
	for _, g := range res.Groups {
		t.AppendRow(table.Row{
			styles.Swatch(g.Color),
			styles.SeqID.Render(g.SeqID),
			string(g.Status),
			g.Color,
			len(g.Leaves),
		})
	}
	t.Render()

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d groups, %d clade matches", len(res.Groups), len(res.Clades))))
	return nil
}

func groupsMarkdown(r *output.Renderer, res *paint.Result) error {
	r.Println(output.FormatHeader(1, "Sequence Groups"))
	r.Println("")
	for _, g := range res.Groups {
		r.Printf("- %s (%s, %s, %d leaves)\n", g.SeqID, g.Status, g.Color, len(g.Leaves))
	}
	r.Println("")
	r.Println(output.FormatKeyValue("Total Groups", fmt.Sprintf("%d", len(res.Groups))))
	r.Println(output.FormatKeyValue("Clade Matches", fmt.Sprintf("%d", len(res.Clades))))
	return nil
}

func groupsJSON(r *output.Renderer, leafCount int, res *paint.Result) error {
	out := output.GroupsOutput{
		Groups:      make([]output.GroupInfo, 0, len(res.Groups)),
		TotalLeaves: leafCount,
		CladeGroups: len(res.Clades),
	}
	for _, g := range res.Groups {
		names := make([]string, 0, len(g.Leaves))
		for _, leaf := range g.Leaves {
			names = append(names, leaf.Name)
		}
		out.Groups = append(out.Groups, output.GroupInfo{
			SeqID:  g.SeqID,
			Status: string(g.Status),
			Color:  g.Color,
			Leaves: names,
		})
		if g.Status == paint.StatusHighlighted {
			out.Highlighted++
		}
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
