package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/zindex-tree/internal/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by NewRenderer
const (
	FormatTree = "tree"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTree, FormatYAML, FormatJSON}

// Renderer writes already-sorted records to w.
type Renderer interface {
	Render(w io.Writer, records []models.StackingOrderRecord) error
}

// NewRenderer returns the renderer for format. colorOutput only affects the tree format.
func NewRenderer(format string, colorOutput bool) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTree, "":
		return &TreeRenderer{colorOutput: colorOutput, scheme: newColorScheme()}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
}

// colorScheme holds the colors used by the tree report.
type colorScheme struct {
	banner *color.Color
	value  *color.Color
	label  *color.Color
	branch *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		banner: color.New(color.Bold),
		value:  color.New(color.FgYellow, color.Bold),
		label:  color.New(color.FgCyan),
		branch: color.New(color.FgHiBlack),
	}
}

// TreeRenderer prints a banner followed by one three-line block per record:
//
//	z-<value>
//	  ├─ File: <path>
//	  └─ Line: <n>
type TreeRenderer struct {
	colorOutput bool
	scheme      *colorScheme
}

// Render implements Renderer.
func (r *TreeRenderer) Render(w io.Writer, records []models.StackingOrderRecord) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.paint(r.scheme.banner, "Z-Index Tree:"))
	b.WriteString("\n=============\n")

	for _, rec := range records {
		b.WriteString(r.paint(r.scheme.value, "z-"+rec.RawValue))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s %s\n", r.paint(r.scheme.branch, "├─"), r.paint(r.scheme.label, "File:"), rec.FilePath)
		fmt.Fprintf(&b, "  %s %s %d\n", r.paint(r.scheme.branch, "└─"), r.paint(r.scheme.label, "Line:"), rec.LineNumber)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TreeRenderer) paint(c *color.Color, s string) string {
	if !r.colorOutput {
		return s
	}
	return c.Sprint(s)
}

// YAMLRenderer prints the records as a YAML sequence.
type YAMLRenderer struct{}

// Render implements Renderer.
func (YAMLRenderer) Render(w io.Writer, records []models.StackingOrderRecord) error {
	if records == nil {
		records = []models.StackingOrderRecord{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return encoder.Close()
}

// JSONRenderer prints the records as an indented JSON array.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, records []models.StackingOrderRecord) error {
	if records == nil {
		records = []models.StackingOrderRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
