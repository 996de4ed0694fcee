package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV writes every panel as plain records:
//
//	panel,index,c1,...,cd
//
// preceded by one header row when Header is set. All coordinate columns of a
// panel are written, not only the plotted two; panels of different widths
// leave their trailing fields empty.
type CSV struct {
	Header bool
}

// Render implements Renderer.
func (c CSV) Render(w io.Writer, panels ...Panel) error {
	if err := validatePanels(panels); err != nil {
		return err
	}
	width := 0
	for _, pn := range panels {
		width = max(width, pn.Coords.Cols())
	}

	cw := csv.NewWriter(w)
	rec := make([]string, 2+width)
	if c.Header {
		rec[0], rec[1] = "panel", "index"
		for j := 0; j < width; j++ {
			rec[2+j] = "c" + strconv.Itoa(j+1)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: %w", errWrite, err)
		}
	}

	var i, j int
	for _, pn := range panels {
		rows, cols := pn.Coords.Shape()
		for i = 0; i < rows; i++ {
			rec[0] = pn.Title
			rec[1] = strconv.Itoa(i)
			for j = 0; j < width; j++ {
				rec[2+j] = ""
				if j < cols {
					v, _ := pn.Coords.At(i, j)
					rec[2+j] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("%w: %w", errWrite, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}
