package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default plot area of one Terminal panel, in character cells.
const (
	DefaultWidth  = 48
	DefaultHeight = 20
)

// cellAspect is the height of a character cell over its width.
const cellAspect = 2.0

// glyphs mark index quartiles so order stays readable without color.
var glyphs = []rune{'.', '+', 'o', '#'}

// Terminal renders panels as side-by-side character scatter plots.
// Zero Width or Height selects the defaults.
type Terminal struct {
	Width  int
	Height int

	// EqualAxes keeps one data unit equally long on both axes, compensating
	// for the cell aspect ratio.
	EqualAxes bool
}

// Render implements Renderer.
func (t Terminal) Render(w io.Writer, panels ...Panel) error {
	if err := validatePanels(panels); err != nil {
		return err
	}
	width, height := t.Width, t.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	r := lipgloss.NewRenderer(w)
	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	title := r.NewStyle().Bold(true)
	muted := r.NewStyle().Foreground(lipgloss.Color("8"))

	boxes := make([]string, len(panels))
	for i, pn := range panels {
		plot := t.plot(r, pn, width, height)
		body := title.Render(pn.Title) + "\n" + plot + "\n" + muted.Render(axisLegend(pn))
		boxes[i] = box.Render(body)
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}

// bounds is the data window mapped onto the grid.
type bounds struct {
	minX, maxX, minY, maxY float64
}

func panelBounds(pn Panel) bounds {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	n := pn.Coords.Rows()
	for i := 0; i < n; i++ {
		x, y := pn.xy(i)
		b.minX, b.maxX = math.Min(b.minX, x), math.Max(b.maxX, x)
		b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
	}

	return b
}

// equalize widens the narrower axis so both share one scale.
func (b bounds) equalize(width, height int) bounds {
	sx := (b.maxX - b.minX) / float64(width-1)
	sy := (b.maxY - b.minY) / (float64(height-1) * cellAspect)
	if sx > sy {
		pad := (sx*float64(height-1)*cellAspect - (b.maxY - b.minY)) / 2
		b.minY, b.maxY = b.minY-pad, b.maxY+pad
	} else {
		pad := (sy*float64(width-1) - (b.maxX - b.minX)) / 2
		b.minX, b.maxX = b.minX-pad, b.maxX+pad
	}

	return b
}

// cell maps a value in [lo, hi] onto [0, size-1]; a degenerate range maps
// to the middle.
func cell(v, lo, hi float64, size int) int {
	if hi <= lo || size < 2 {
		return size / 2
	}
	c := int(math.Round((v - lo) / (hi - lo) * float64(size-1)))
	if c < 0 {
		return 0
	}
	if c >= size {
		return size - 1
	}

	return c
}

// plot rasterizes pn; later indices overwrite earlier ones in a shared cell.
func (t Terminal) plot(r *lipgloss.Renderer, pn Panel, width, height int) string {
	b := panelBounds(pn)
	if t.EqualAxes && width > 1 && height > 1 {
		b = b.equalize(width, height)
	}
	palette := pn.Palette
	if palette == nil {
		palette = Viridis
	}

	n := pn.Coords.Rows()
	grid := make([][]int, height)
	for row := range grid {
		grid[row] = make([]int, width)
		for col := range grid[row] {
			grid[row][col] = -1
		}
	}
	var i, row, col int
	for i = 0; i < n; i++ {
		x, y := pn.xy(i)
		col = cell(x, b.minX, b.maxX, width)
		row = height - 1 - cell(y, b.minY, b.maxY, height)
		grid[row][col] = i
	}

	var sb strings.Builder
	for row = 0; row < height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col = 0; col < width; col++ {
			i = grid[row][col]
			if i < 0 {
				sb.WriteByte(' ')
				continue
			}
			g := string(glyphs[i*len(glyphs)/n])
			sb.WriteString(r.NewStyle().Foreground(lipgloss.Color(palette.at(i, n))).Render(g))
		}
	}

	return sb.String()
}

func axisLegend(pn Panel) string {
	b := panelBounds(pn)
	xl, yl := pn.XLabel, pn.YLabel
	if xl == "" {
		xl = "x"
	}
	if yl == "" {
		yl = "y"
	}

	return fmt.Sprintf("%s: [%.3g, %.3g]  %s: [%.3g, %.3g]  n=%d",
		xl, b.minX, b.maxX, yl, b.minY, b.maxY, pn.Coords.Rows())
}
