package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reservoirs/internal/reservoir"
)

// Comparison columns, in header order.
const (
	colPosition = iota
	colName
	colKind
	colArea
	comparisonColumns
)

// ComparisonView renders two compared reservoirs as a table under title.
// headers names the position, name, type and surface area columns. The area
// column is left out when the reservoirs are not comparable, and the row
// with the larger surface area is highlighted.
func ComparisonView(title string, headers []string, cmp reservoir.Comparison, styles Styles) string {
	cols := min(len(headers), comparisonColumns)
	if cmp.Result == reservoir.NotComparable {
		cols = min(cols, colArea)
	}
	if cols == 0 {
		return ""
	}

	rows := [2][]string{
		{strconv.Itoa(cmp.FirstPosition + 1), cmp.First.Name, cmp.First.Kind, reservoir.FormatNumber(cmp.FirstArea)},
		{strconv.Itoa(cmp.SecondPosition + 1), cmp.Second.Name, cmp.Second.Kind, reservoir.FormatNumber(cmp.SecondArea)},
	}

	widths := make([]int, cols)
	for i := range cols {
		widths[i] = lipgloss.Width(headers[i])
		for _, row := range rows {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	sep := styles.Muted.Render(" | ")
	line := func(cells []string, base lipgloss.Style) string {
		parts := make([]string, cols)
		for i := range cols {
			parts[i] = base.Width(widths[i]).Align(columnAlign(i)).Render(cells[i])
		}
		return strings.Join(parts, sep)
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n")
	}
	sb.WriteString(line(headers, styles.Bold))
	sb.WriteString("\n")

	total := 3 * (cols - 1)
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	larger := LargerRow(cmp)
	for i, row := range rows {
		base := styles.Body
		if i == larger {
			base = styles.Success
		}
		sb.WriteString(line(row, base))
		sb.WriteString("\n")
	}
	return sb.String()
}

// LargerRow returns the index (0 or 1) of the reservoir with the larger
// surface area, or -1 for equal or not comparable reservoirs.
func LargerRow(cmp reservoir.Comparison) int {
	switch cmp.Result {
	case reservoir.Greater:
		return 0
	case reservoir.Less:
		return 1
	default:
		return -1
	}
}

// Numbers are right-aligned.
func columnAlign(col int) lipgloss.Position {
	if col == colPosition || col == colArea {
		return lipgloss.Right
	}
	return lipgloss.Left
}
