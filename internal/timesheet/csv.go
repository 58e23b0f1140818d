// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package timesheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Warning is a non-fatal problem found while reading a CSV. Row is the
// 1-based file row, header included.
type Warning struct {
	Row     int
	Message string
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode sniffs the encoding of raw CSV bytes and returns UTF-8. BOMs
// win; valid UTF-8 passes through; anything else is read as
// Windows-1252, the usual encoding of legacy billing exports.
func decode(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data[2:])
	case bytes.HasPrefix(data, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data[2:])
	case utf8.Valid(data):
		return data, nil
	default:
		return charmap.Windows1252.NewDecoder().Bytes(data)
	}
}

// ReadCSV parses a timesheet export. Real-world exports are messy, so
// quoting is lazy, rows are padded or truncated to the header width with
// a warning, and unparseable rows are skipped with a warning rather than
// failing the whole file. A file with no header is an error.
func ReadCSV(r io.Reader) (*Sheet, []Warning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}
	decoded, err := decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	var warnings []Warning
	width := len(headers)
	rowNum := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			warnings = append(warnings, Warning{Row: rowNum, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}
		if len(row) < width {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), width),
			})
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		} else if len(row) > width {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), width),
			})
			row = row[:width]
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, warnings, nil
}

// WriteCSV writes the sheet back out, header first.
func WriteCSV(w io.Writer, sheet *Sheet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(sheet.Headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range sheet.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
