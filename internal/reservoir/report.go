package reservoir

import (
	"fmt"
	"io"
	"strings"
)

// ReportFormat selects a summary generator.
type ReportFormat string

const (
	ReportText   ReportFormat = "text"
	ReportBinary ReportFormat = "binary"
)

// Report writes the summary for format to w.
func (c *Collection) Report(format ReportFormat, w io.Writer, l Labels) error {
	switch format {
	case ReportText:
		return c.ExportText(w, l)
	case ReportBinary:
		return c.ExportBinary(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// ExportText writes a delimited text summary: a count line, then for each
// record a 1-based label line and its raw fields joined by spaces.
func (c *Collection) ExportText(w io.Writer, l Labels) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d\n", l.ReportCount, len(c.records))
	for i, r := range c.records {
		fmt.Fprintf(&sb, l.ReportItem, i+1)
		sb.WriteString("\n")
		sb.WriteString(strings.Join([]string{
			r.Name,
			r.Kind,
			FormatNumber(r.Width),
			FormatNumber(r.Length),
			FormatNumber(r.MaxDepth),
		}, " "))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// ExportBinary writes the record count and 0-based record identifiers. It is
// a summary of what a binary export would contain, not a byte layout.
func (c *Collection) ExportBinary(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Count: %d\n", len(c.records))
	for i, r := range c.records {
		fmt.Fprintf(&sb, "Record %d: %s\n", i, r.Name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
