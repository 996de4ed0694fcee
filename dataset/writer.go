package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/isomap/core"
)

// WriteCSV writes points as comma-separated records, preceded by header
// when it is non-empty. CSVLoader reads the output back unchanged.
func WriteCSV(w io.Writer, points core.PointSet, header ...string) error {
	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("dataset: WriteCSV: %w", err)
		}
	}
	for _, p := range points {
		rec := make([]string, len(p))
		for j, v := range p {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteJSON writes points as a JSON array of arrays.
func WriteJSON(w io.Writer, points core.PointSet) error {
	rows := [][]float64(points)
	if rows == nil {
		rows = [][]float64{}
	}
	enc := json.NewEncoder(w)

	return enc.Encode(rows)
}

// SaveFile writes points to path in the format its extension names
// (".csv"/".txt" or ".json"). CSV output gets a c1..cD header.
func SaveFile(path string, points core.PointSet) (err error) {
	if _, err = LoaderFor(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return WriteJSON(f, points)
	}
	header := make([]string, points.Dim())
	for j := range header {
		header[j] = "c" + strconv.Itoa(j+1)
	}

	return WriteCSV(f, points, header...)
}
