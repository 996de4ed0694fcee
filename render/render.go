package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/matrix"
)

var (
	// ErrNoPanels is returned when Render is called without panels.
	ErrNoPanels = fmt.Errorf("render: no panels: %w", core.ErrEmptyInput)

	// ErrBadPanel is returned for a panel with nil or empty coordinates.
	ErrBadPanel = fmt.Errorf("render: panel has no coordinates: %w", core.ErrInvalidParameter)

	errWrite = errors.New("render: write failed")
)

// Renderer writes a set of panels to w.
type Renderer interface {
	Render(w io.Writer, panels ...Panel) error
}

// Panel is one titled scatter plot.
type Panel struct {
	Title  string
	XLabel string
	YLabel string

	// Coords is N×d with d ≥ 1; row i is drawn in the color of index i.
	Coords *matrix.Dense

	// Palette overrides the index color ramp; nil means Viridis.
	Palette Palette
}

// Palette is an ordered ramp of lipgloss color strings (ANSI 256 codes or
// hex); index 0 colors the first point, the last entry the last point.
type Palette []string

// Two ramps approximating matplotlib's colormaps in the ANSI 256 cube.
var (
	Viridis = Palette{"53", "54", "61", "67", "31", "37", "36", "35", "71", "113", "149", "184", "226"}
	Plasma  = Palette{"18", "54", "91", "127", "163", "168", "204", "209", "215", "221", "227", "229"}
)

// at returns the ramp entry for point i of n.
func (p Palette) at(i, n int) string {
	if len(p) == 0 {
		return ""
	}
	if n <= 1 {
		return p[0]
	}

	return p[i*(len(p)-1)/(n-1)]
}

// xy returns the plotted coordinates of row i: the first two columns, or
// (c0, 0) for a single-column panel.
func (pn Panel) xy(i int) (x, y float64) {
	x, _ = pn.Coords.At(i, 0)
	if pn.Coords.Cols() > 1 {
		y, _ = pn.Coords.At(i, 1)
	}

	return x, y
}

func (pn Panel) validate() error {
	if pn.Coords == nil || pn.Coords.Rows() == 0 || pn.Coords.Cols() == 0 {
		return fmt.Errorf("%w: %q", ErrBadPanel, pn.Title)
	}

	return nil
}

func validatePanels(panels []Panel) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}
	for _, pn := range panels {
		if err := pn.validate(); err != nil {
			return err
		}
	}

	return nil
}
