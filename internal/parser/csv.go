package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/meds-gateway/models"
)

const utf8BOM = "\ufeff"

// DecodeCSV parses text into records keyed by the header row.
//
// Rules:
//   - empty or whitespace-only text fails with reason "empty";
//   - a leading UTF-8 BOM is ignored;
//   - when a header name repeats, the last column wins and the name is
//     listed once, at its first position;
//   - short rows are padded with empty strings, surplus fields are dropped;
//   - more than rowLimit data rows fail with "row limit exceeded" and no
//     partial result (a non-positive rowLimit disables the check);
//   - a header-only document yields an empty, non-nil slice.
//
// Every failure matches [ErrMalformedInput].
func DecodeCSV(text string, rowLimit int) ([]models.MedicationRecord, error) {
	text = strings.TrimPrefix(text, utf8BOM)
	if strings.TrimSpace(text) == "" {
		return nil, &MalformedInputError{Reason: ReasonEmpty}
	}

	reader := csv.NewReader(strings.NewReader(text))
	// ragged rows are normalised below instead of rejected
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, malformed(err)
	}
	keys, columns := indexHeader(header)

	records := make([]models.MedicationRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		if rowLimit > 0 && len(records) >= rowLimit {
			return nil, &MalformedInputError{Reason: ReasonRowLimitExceeded}
		}

		records = append(records, buildRecord(keys, columns, row))
	}

	return records, nil
}

// indexHeader returns the distinct header names in first-seen order and, for
// each name, the index of the column that supplies its value (the last one).
func indexHeader(header []string) ([]string, map[string]int) {
	keys := make([]string, 0, len(header))
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := columns[name]; !seen {
			keys = append(keys, name)
		}
		columns[name] = i
	}
	return keys, columns
}

func buildRecord(keys []string, columns map[string]int, row []string) models.MedicationRecord {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		if i := columns[k]; i < len(row) {
			values[k] = row[i]
		} else {
			values[k] = ""
		}
	}
	return models.NewMedicationRecord(keys, values)
}

// malformed converts a reader error into a [MalformedInputError] that keeps
// only the line number; the offending text is not echoed back.
func malformed(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedInputError{Reason: fmt.Sprintf(reasonSyntaxErrorFormat, parseErr.Line)}
	}
	return &MalformedInputError{Reason: "unreadable input"}
}
