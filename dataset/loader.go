package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/isomap/core"
)

// Loader decodes a point set from a stream. Rows of the result are samples
// as they appear in the stream; orientation is applied by LoadFile.
type Loader interface {
	Load(r io.Reader) (core.PointSet, error)
}

// CSVLoader reads delimiter-separated numbers, one sample per record.
//
// A zero Comma sniffs the delimiter from the first line: ';' when it holds
// more semicolons than commas, ',' otherwise. A first record whose fields
// are all non-numeric is treated as a header and skipped. Blank lines are
// ignored.
type CSVLoader struct {
	Comma rune
}

// Load implements Loader.
func (l CSVLoader) Load(r io.Reader) (core.PointSet, error) {
	const op = "dataset: CSVLoader.Load"

	br := bufio.NewReader(r)
	comma := l.Comma
	if comma == 0 {
		head, err := br.Peek(sniffBytes)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comma = sniffComma(head)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		points core.PointSet
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrMalformedRecord, err)
		}
		line++
		row, perr := parseRow(rec)
		if perr != nil {
			if line == 1 && isHeader(rec) {
				continue
			}
			return nil, fmt.Errorf("%s: record %d: %w", op, line, perr)
		}
		if len(points) > 0 && len(row) != len(points[0]) {
			return nil, fmt.Errorf("%s: record %d has %d fields, want %d: %w",
				op, line, len(row), len(points[0]), ErrMalformedRecord)
		}
		points = append(points, row)
	}
	if len(points) == 0 {
		return nil, noData(op)
	}
	if err := points.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return points, nil
}

// sniffBytes bounds how much of the stream sniffComma inspects.
const sniffBytes = 4096

func sniffComma(head []byte) rune {
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		return ';'
	}

	return ','
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for i, f := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d %q: %w", i, f, ErrMalformedRecord)
		}
		row[i] = v
	}

	return row, nil
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return false
		}
	}

	return true
}

// JSONLoader reads a JSON array of numeric arrays: [[x0, y0], [x1, y1], ...].
type JSONLoader struct{}

// Load implements Loader.
func (JSONLoader) Load(r io.Reader) (core.PointSet, error) {
	const op = "dataset: JSONLoader.Load"

	var rows [][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, noData(op)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrMalformedRecord, err)
	}
	if len(rows) == 0 {
		return nil, noData(op)
	}
	points := core.PointSet(rows)
	if err := points.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return points, nil
}

// LoadOption adjusts how LoadFile orients the decoded matrix.
type LoadOption func(*loadConfig)

type loadConfig struct {
	samplesAsColumns bool
	autoOrient       bool
}

// WithSamplesAsColumns declares that each column of the file is a sample;
// the matrix is transposed after decoding.
func WithSamplesAsColumns() LoadOption {
	return func(c *loadConfig) { c.samplesAsColumns = true }
}

// WithAutoOrient applies AutoOrient after decoding.
func WithAutoOrient() LoadOption {
	return func(c *loadConfig) { c.autoOrient = true }
}

// LoaderFor returns the Loader matching the extension of path: CSVLoader
// for ".csv" and ".txt", JSONLoader for ".json". MATLAB ".mat" files are
// not supported.
func LoaderFor(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSVLoader{}, nil
	case ".json":
		return JSONLoader{}, nil
	default:
		return nil, fmt.Errorf("dataset: %q: %w", path, ErrUnsupportedFormat)
	}
}

// LoadFile opens path, decodes it with the loader matching its extension
// and applies the orientation options.
func LoadFile(path string, opts ...LoadOption) (core.PointSet, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: LoadFile: %w", err)
	}
	defer f.Close()

	points, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: LoadFile %q: %w", path, err)
	}
	switch {
	case cfg.samplesAsColumns:
		points = Transpose(points)
	case cfg.autoOrient:
		points = AutoOrient(points)
	}

	return points, nil
}
