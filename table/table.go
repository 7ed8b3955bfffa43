// Package table reads and writes the flat spreadsheet tables passed between
// the motif tools. The format follows the file extension: .xlsx goes through
// excelize, .csv and .tsv through encoding/csv.
package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns is returned when a table lacks a required column.
var ErrMissingColumns = errors.New("missing required columns")

// ErrUnknownFormat is returned for an extension that is neither xlsx, csv nor tsv.
var ErrUnknownFormat = errors.New("unsupported table format")

const sheetName = "Sheet1"

// Table is a header row plus data rows, all as text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Columns resolves column names to indexes. Every missing name is reported
// in a single ErrMissingColumns.
func (t *Table) Columns(names ...string) ([]int, error) {
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		if _, dup := pos[strings.TrimSpace(h)]; !dup {
			pos[strings.TrimSpace(h)] = i
		}
	}
	idx := make([]int, len(names))
	var missing []string
	for i, name := range names {
		j, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumns, "%s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// HasColumn reports whether name is in the header.
func (t *Table) HasColumn(name string) bool {
	_, err := t.Columns(name)
	return err == nil
}

// Cell returns row[col], or "" when the row is shorter than col.
// Spreadsheet readers drop trailing empty cells.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Format returns "xlsx", "csv" or "tsv" for path.
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return "xlsx", nil
	case ".csv":
		return "csv", nil
	case ".tsv", ".txt":
		return "tsv", nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}
}

// Read loads the first sheet (or the whole delimited file) of path.
// The first row is the header.
func Read(path string) (*Table, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "not found: %s", path)
	}

	var rows [][]string
	switch format {
	case "xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readDelimited(path, format == "tsv")
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows of %s", path)
	}
	return rows, nil
}

func readDelimited(path string, tabs bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if tabs {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return rows, nil
}

// Write stores header and rows at path, replacing any existing file.
func Write(path string, header []string, rows [][]string) error {
	format, err := Format(path)
	if err != nil {
		return err
	}
	switch format {
	case "xlsx":
		return writeXLSX(path, header, rows)
	default:
		return writeDelimited(path, header, rows, format == "tsv")
	}
}

func writeXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet writer")
	}
	write := func(line int, cells []string) error {
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = cellValue(c)
		}
		axis, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		return sw.SetRow(axis, values)
	}

	if err := write(1, header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for i, row := range rows {
		if err := write(i+2, row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}
	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush sheet")
	}
	return errors.Wrapf(f.SaveAs(path), "failed to save %s", path)
}

// cellValue stores integer cells as numbers so spreadsheets sort them properly.
func cellValue(s string) interface{} {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

func writeDelimited(path string, header []string, rows [][]string, tabs bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if tabs {
		writer.Comma = '\t'
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}
