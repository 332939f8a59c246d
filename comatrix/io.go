package comatrix

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/scimetric/matrix"
)

// ParseDocuments splits comma-separated tag strings ("a, b,c") into
// tag-sets. Blanks around tags are trimmed and empty tags dropped; a blank
// line yields an empty document.
func ParseDocuments(lines []string) [][]string {
	docs := make([][]string, len(lines))
	for i, line := range lines {
		parts := strings.Split(line, ",")
		doc := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				doc = append(doc, p)
			}
		}
		docs[i] = doc
	}

	return docs
}

// WriteCSV writes l as a labelled grid: a header "index,<labels...>" followed
// by one "label,<values...>" row per category.
func WriteCSV(w io.Writer, l *Labeled) error {
	if err := writeGrid(w, l, ',', "index"); err != nil {
		return comatrixErrorf(opWriteCSV, err)
	}

	return nil
}

// WriteTSV writes the same grid tab-separated, with "*" as the header's
// corner cell.
func WriteTSV(w io.Writer, l *Labeled) error {
	if err := writeGrid(w, l, '\t', "*"); err != nil {
		return comatrixErrorf(opWriteTSV, err)
	}

	return nil
}

func writeGrid(w io.Writer, l *Labeled, comma rune, corner string) error {
	if l == nil {
		return ErrNilMatrix
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma

	record := make([]string, 0, len(l.labels)+1)
	record = append(record, corner)
	record = append(record, l.labels...)
	if err := cw.Write(record); err != nil {
		return err
	}
	for i, label := range l.labels {
		record = append(record[:0], label)
		for j := range l.labels {
			v, err := l.m.At(i, j)
			if err != nil {
				return err
			}
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadGrid parses a grid written by WriteCSV or WriteTSV back into a
// Labeled. The delimiter is taken from the header line; the corner cell is
// ignored. Rows may come in any order but must cover exactly the header
// labels, and the values must be symmetric.
func ReadGrid(r io.Reader) (*Labeled, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, comatrixErrorf(opReadGrid, err)
	}
	if nl := bytes.IndexByte(head, '\n'); nl >= 0 {
		head = head[:nl]
	}
	cr := csv.NewReader(br)
	if bytes.IndexByte(head, '\t') >= 0 {
		cr.Comma = '\t'
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, comatrixErrorf(opReadGrid, fmt.Errorf("%w: %w", ErrBadGrid, err))
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, comatrixErrorf(opReadGrid, fmt.Errorf("no data rows: %w", ErrBadGrid))
	}

	labels := records[0][1:]
	k := len(labels)
	index := make(map[string]int, k)
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, comatrixErrorf(opReadGrid, fmt.Errorf("column %q repeated: %w", l, ErrBadGrid))
		}
		index[l] = i
	}
	if len(records)-1 != k {
		return nil, comatrixErrorf(opReadGrid, fmt.Errorf("%d rows for %d columns: %w", len(records)-1, k, ErrBadGrid))
	}

	m, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, comatrixErrorf(opReadGrid, err)
	}
	seen := make([]bool, k)
	for _, rec := range records[1:] {
		i, ok := index[rec[0]]
		if !ok || seen[i] {
			return nil, comatrixErrorf(opReadGrid, fmt.Errorf("row %q: %w", rec[0], ErrBadGrid))
		}
		seen[i] = true
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, comatrixErrorf(opReadGrid, fmt.Errorf("cell (%s,%s): %w: %w", rec[0], labels[j], ErrBadGrid, err))
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, comatrixErrorf(opReadGrid, fmt.Errorf("cell (%s,%s): %w", rec[0], labels[j], err))
			}
		}
	}

	if err = matrix.ValidateSymmetric(m, matrix.DefaultEpsilon); err != nil {
		return nil, comatrixErrorf(opReadGrid, fmt.Errorf("%w: %w", ErrBadGrid, err))
	}

	return newLabeled(append([]string(nil), labels...), index, m), nil
}

type labeledJSON struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// MarshalJSON encodes l as {"labels": [...], "values": [[...], ...]}.
func (l *Labeled) MarshalJSON() ([]byte, error) {
	out := labeledJSON{Labels: l.labels}
	if d, ok := l.m.(*matrix.Dense); ok {
		out.Values = d.ToRows()

		return json.Marshal(out)
	}
	out.Values = make([][]float64, len(l.labels))
	for i := range l.labels {
		row := make([]float64, len(l.labels))
		for j := range row {
			row[j], _ = l.m.At(i, j)
		}
		out.Values[i] = row
	}

	return json.Marshal(out)
}
