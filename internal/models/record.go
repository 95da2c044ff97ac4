package models

import "strconv"

// StackingOrderRecord is a single stacking-order declaration found in a source file.
// Records are created by the scanner and passed by value; nothing mutates them afterwards.
type StackingOrderRecord struct {
	// FilePath is the path of the file as produced by the walker
	FilePath string `yaml:"file_path" json:"file_path"`

	// RawValue is the matched digit string, or "unknown" when no group captured
	RawValue string `yaml:"z_index" json:"z_index"`

	// LineNumber is the 1-based line the declaration was found on
	LineNumber int `yaml:"line_number" json:"line_number"`
}

// UnknownValue is recorded when a line matched but no capture group participated.
const UnknownValue = "unknown"

// SortKey returns RawValue parsed as a signed 32-bit integer.
// Values that do not parse (including overflow) sort as 0.
func (r StackingOrderRecord) SortKey() int32 {
	v, err := strconv.ParseInt(r.RawValue, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
