package sjcsv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/japanese"
)

// Record is a single CSV row keyed by header column name.
type Record map[string]string

// ReadFile reads a Shift_JIS encoded CSV file with a header row and
// returns one Record per data row. Lines that fail to decode and rows
// that fail to parse are skipped with a warning; only opening the file
// can fail.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines := decodeLines(f, filepath.Base(path))
	return parseRecords(lines, filepath.Base(path)), nil
}

// decodeLines decodes the input line by line. The Shift_JIS decoder
// substitutes U+FFFD for byte sequences it cannot map, which cannot
// occur in valid vendor exports, so its presence marks a broken line.
func decodeLines(r io.Reader, name string) []string {
	decoder := japanese.ShiftJIS.NewDecoder()

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		decoded, err := decoder.String(scanner.Text())
		if err != nil || strings.ContainsRune(decoded, utf8.RuneError) {
			log.Warn().
				Str("file", name).
				Int("line", lineNum).
				Msg("skipping line that is not valid Shift_JIS")
			continue
		}
		lines = append(lines, decoded)
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Str("file", name).Err(err).Msg("stopped reading input early")
	}
	return lines
}

// parseRecords parses decoded lines as header-plus-rows CSV. Rows
// shorter than the header get empty strings for the missing columns.
func parseRecords(lines []string, name string) []Record {
	if len(lines) == 0 {
		return nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		log.Warn().Str("file", name).Err(err).Msg("failed to parse header row")
		return nil
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipping malformed csv row")
			continue
		}
		record := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			} else {
				record[col] = ""
			}
		}
		records = append(records, record)
	}
	return records
}
