package paint

// Rendering colors. Leaves of a highlighted sequence group share one
// palette color; fragments that could not be resolved into a group render
// in the neutral sentinel gray; everything else stays in the default ink.
const (
	DefaultLeafColor = "#000000"
	SentinelColor    = "#404040"
)

// DefaultPalette is the tab20 qualitative palette. Adjacent entries are
// light/dark pairs of the same hue, so cycling through it keeps
// neighboring groups distinguishable.
var DefaultPalette = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// palette hands out colors in order, cycling when exhausted.
type palette struct {
	colors []string
	next   int
}

func newPalette(colors []string) *palette {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	return &palette{colors: colors}
}

func (p *palette) pick() string {
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}
