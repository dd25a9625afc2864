// Package render draws a colored phylogenetic tree to an SVG or PNG
// image using the go-chart drawing backends.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cladeworks/phylopaint/internal/newick"
	"github.com/cladeworks/phylopaint/internal/paint"
)

// Format selects the image backend.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatFromPath picks the image format from a file extension,
// defaulting to SVG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatSVG
}

// Options controls the rendered image.
type Options struct {
	// Width is the image width in pixels.
	Width int
	// RowHeight is the vertical spacing per leaf in pixels.
	RowHeight int
	// FontSize is the leaf label size in points.
	FontSize float64
	// ShowSupport draws branch support values at internal nodes.
	ShowSupport bool
	// Format selects SVG or PNG output.
	Format Format
}

// DefaultOptions returns rendering defaults suited to mid-sized trees.
func DefaultOptions() Options {
	return Options{
		Width:     1024,
		RowHeight: 18,
		FontSize:  12,
		Format:    FormatSVG,
	}
}

const (
	marginX       = 12
	marginY       = 12
	labelPad      = 6
	leafMarkerR   = 4.5
	cladeMarkerR  = 6.5
	branchWidth   = 1.5
	supportOffset = 4
)

// Render draws the tree with the computed coloring and writes the image
// to w.
func Render(root *newick.Node, res *paint.Result, opts Options, w io.Writer) error {
	if opts.Width <= 0 || opts.RowHeight <= 0 {
		return fmt.Errorf("image dimensions must be positive, got width %d row height %d", opts.Width, opts.RowHeight)
	}

	l := layoutTree(root)
	height := l.rows*opts.RowHeight + 2*marginY

	var r chart.Renderer
	var err error
	switch opts.Format {
	case FormatPNG:
		r, err = chart.PNG(opts.Width, height)
	case FormatSVG, "":
		r, err = chart.SVG(opts.Width, height)
	default:
		return fmt.Errorf("unsupported image format %q", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s renderer: %w", opts.Format, err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	r.SetFont(font)
	r.SetFontSize(opts.FontSize)

	// White canvas.
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(opts.Width, 0)
	r.LineTo(opts.Width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	// Horizontal room for the longest leaf label.
	maxLabel := 0
	for _, leaf := range root.Leaves() {
		if box := r.MeasureText(leaf.Name); box.Width() > maxLabel {
			maxLabel = box.Width()
		}
	}
	drawable := opts.Width - 2*marginX - maxLabel - labelPad
	if drawable < 1 {
		return fmt.Errorf("image width %d leaves no room for the tree", opts.Width)
	}
	xScale := float64(drawable)
	if l.maxX > 0 {
		xScale = float64(drawable) / l.maxX
	}

	toPx := func(p point) (int, int) {
		x := marginX + int(p.x*xScale+0.5)
		y := marginY + int((p.y+0.5)*float64(opts.RowHeight)+0.5)
		return x, y
	}

	d := &drawer{r: r, l: l, toPx: toPx, opts: opts}
	d.branches(root)
	d.leafMarkers(root, res)
	d.cladeMarkers(res)
	d.labels(root, res)
	if opts.ShowSupport {
		d.supports(root)
	}

	if err := r.Save(w); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

type drawer struct {
	r    chart.Renderer
	l    *layout
	toPx func(point) (int, int)
	opts Options
}

// branches draws the elbow connectors: one vertical spine per internal
// node plus a horizontal run to each child.
func (d *drawer) branches(root *newick.Node) {
	d.r.SetStrokeColor(hexColor(paint.DefaultLeafColor))
	d.r.SetStrokeWidth(branchWidth)

	var walk func(n *newick.Node)
	walk = func(n *newick.Node) {
		if n.IsLeaf() {
			return
		}
		nx, _ := d.toPx(d.l.pos[n])
		_, firstY := d.toPx(d.l.pos[n.Children[0]])
		_, lastY := d.toPx(d.l.pos[n.Children[len(n.Children)-1]])
		d.r.MoveTo(nx, firstY)
		d.r.LineTo(nx, lastY)
		d.r.Stroke()

		for _, c := range n.Children {
			cx, cy := d.toPx(d.l.pos[c])
			d.r.MoveTo(nx, cy)
			d.r.LineTo(cx, cy)
			d.r.Stroke()
			walk(c)
		}
	}
	walk(root)
}

// leafMarkers puts a filled circle on every fragment leaf, in the leaf's
// assigned color.
func (d *drawer) leafMarkers(root *newick.Node, res *paint.Result) {
	for _, leaf := range root.Leaves() {
		if !res.Fragments[leaf] {
			continue
		}
		x, y := d.toPx(d.l.pos[leaf])
		d.r.SetFillColor(hexColor(res.LeafColors[leaf]))
		d.r.Circle(leafMarkerR, x, y)
		d.r.Fill()
	}
}

// cladeMarkers puts a larger circle on every internal node recognized as
// part of a multidomain expansion match.
func (d *drawer) cladeMarkers(res *paint.Result) {
	for _, clade := range res.Clades {
		d.r.SetFillColor(hexColor(clade.Color))
		for _, n := range clade.Nodes {
			x, y := d.toPx(d.l.pos[n])
			d.r.Circle(cladeMarkerR, x, y)
			d.r.Fill()
		}
	}
}

func (d *drawer) labels(root *newick.Node, res *paint.Result) {
	for _, leaf := range root.Leaves() {
		x, y := d.toPx(d.l.pos[leaf])
		d.r.SetFontColor(hexColor(res.LeafColors[leaf]))
		d.r.Text(leaf.Name, x+labelPad, y+int(d.opts.FontSize/2))
	}
}

func (d *drawer) supports(root *newick.Node) {
	d.r.SetFontColor(hexColor(paint.SentinelColor))
	d.r.SetFontSize(d.opts.FontSize * 0.8)
	var walk func(n *newick.Node)
	walk = func(n *newick.Node) {
		if n.IsLeaf() {
			return
		}
		if n.HasSupport {
			x, y := d.toPx(d.l.pos[n])
			d.r.Text(formatSupport(n.Support), x+supportOffset, y-supportOffset)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	d.r.SetFontSize(d.opts.FontSize)
}

func formatSupport(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
