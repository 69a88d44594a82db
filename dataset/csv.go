package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// LoadCSV reads a Dataset from a CSV file, taking the predictor from column
// xCol and the response from column yCol (zero-based). A first row that does
// not parse as numbers is treated as a header and skipped.
func LoadCSV(path string, xCol, yCol int) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	return ReadCSV(file, xCol, yCol)
}

// ReadCSV reads a Dataset from CSV data, taking the predictor from column
// xCol and the response from column yCol (zero-based). A first row that does
// not parse as numbers is treated as a header and skipped.
func ReadCSV(r io.Reader, xCol, yCol int) (*Dataset, error) {
	if xCol < 0 || yCol < 0 {
		return nil, errors.NewValidationError("column", "column indices must be non-negative",
			[]int{xCol, yCol})
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var x, y []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV row %d", row)
		}

		if xCol >= len(record) || yCol >= len(record) {
			return nil, errors.NewValueError("dataset.ReadCSV",
				errors.Newf("row %d has %d columns, need columns %d and %d",
					row, len(record), xCol, yCol).Error())
		}

		xv, xErr := strconv.ParseFloat(record[xCol], 64)
		yv, yErr := strconv.ParseFloat(record[yCol], 64)
		if xErr != nil || yErr != nil {
			// First unparsable row is assumed to be the header.
			if row == 0 {
				row++
				continue
			}
			return nil, errors.NewValueError("dataset.ReadCSV",
				errors.Newf("row %d contains non-numeric values (%q, %q)",
					row, record[xCol], record[yCol]).Error())
		}

		x = append(x, xv)
		y = append(y, yv)
		row++
	}

	if len(x) == 0 {
		return nil, errors.NewModelError("dataset.ReadCSV", "empty data", errors.ErrEmptyData)
	}

	return New(x, y)
}
