package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	HasHeader bool     // Whether CSV has a header row of feature names (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
	Columns   []string // Feature names to keep (default: all, requires header)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads an observation-by-feature matrix from a CSV file.
// Each row is one observation, each column one feature.
func LoadCSV(filename string, opts *CSVOptions) (*Matrix, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads an observation-by-feature matrix from an io.Reader.
// Missing values ("", "NA", "NaN", "null") are loaded as NaN.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Matrix, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var names []string
	var keep []int

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i := range header {
			header[i] = strings.TrimSpace(strings.Trim(header[i], "\""))
		}

		if len(opts.Columns) > 0 {
			for _, want := range opts.Columns {
				idx := -1
				for i, h := range header {
					if h == want {
						idx = i
						break
					}
				}
				if idx == -1 {
					return nil, fmt.Errorf("feature column %q not found in CSV header", want)
				}
				keep = append(keep, idx)
				names = append(names, want)
			}
		} else {
			names = header
		}
	} else if len(opts.Columns) > 0 {
		return nil, errors.New("column selection requires a header row")
	}

	var values [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		fields := record
		if keep != nil {
			fields = make([]string, len(keep))
			for i, idx := range keep {
				if idx >= len(record) {
					return nil, errors.New("CSV row has fewer fields than the header")
				}
				fields[i] = record[idx]
			}
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			f = strings.TrimSpace(strings.Trim(f, "\""))
			if f == "" || f == "NA" || f == "NaN" || f == "null" {
				row[i] = math.NaN()
				continue
			}
			val, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid numeric value %q in CSV", f)
			}
			row[i] = val
		}
		values = append(values, row)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	m, err := New(values)
	if err != nil {
		return nil, err
	}
	m.Names = names
	return m, nil
}

// SaveCSV saves an observation-by-feature matrix to a CSV file.
func SaveCSV(m *Matrix, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if len(m.Names) == m.Cols() && m.Cols() > 0 {
		writer.WriteString(strings.Join(m.Names, ",") + "\n")
	}

	for _, row := range m.Values {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		writer.WriteString(strings.Join(fields, ",") + "\n")
	}

	return nil
}
