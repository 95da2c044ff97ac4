// Package scanner extracts stacking-order declarations from source files.
//
// Matching is textual and line-based. Each line is tested against one
// alternation covering the four recognised shapes:
//
//	z-[123]        utility class, bracketed value
//	z-45           utility class, bare value
//	zIndex: 10     style object property
//	z-index: 10    CSS property
//
// Only the first match on a line is recorded.
package scanner

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/harrison/zindex-tree/internal/models"
)

// zIndexPattern alternatives are tried leftmost-first; each has one digit group.
var zIndexPattern = regexp.MustCompile(`z-\[(\d+)\]|z-(\d+)|zIndex:\s*(\d+)|z-index:\s*(\d+)`)

// ScanFile reads path fully and returns the records found in it, in line order.
// A file that cannot be read or is not valid UTF-8 yields a *models.FileScanError.
func ScanFile(path string) ([]models.StackingOrderRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.FileScanError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &models.FileScanError{Path: path, Err: models.ErrNotText}
	}
	return ScanLines(path, string(data)), nil
}

// ScanLines scans already-loaded content. path is only copied into the records.
func ScanLines(path, content string) []models.StackingOrderRecord {
	var records []models.StackingOrderRecord
	for i, line := range splitLines(content) {
		m := zIndexPattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		records = append(records, models.StackingOrderRecord{
			FilePath:   path,
			RawValue:   firstGroup(line, m),
			LineNumber: i + 1,
		})
	}
	return records
}

// firstGroup returns the text of the first participating capture group.
func firstGroup(line string, m []int) string {
	for g := 2; g+1 < len(m); g += 2 {
		if m[g] >= 0 {
			return line[m[g]:m[g+1]]
		}
	}
	return models.UnknownValue
}

// splitLines splits on "\n", strips one trailing "\r" per line, and does not
// count the empty remainder after a final newline as a line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
