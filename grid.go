package streamfmt

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteGrid writes rows as a column-aligned grid: every column padded to
// its widest cell by display width, cells right-aligned in the numeric
// convention, single space between columns, rows separated by newlines
// with no trailing newline. It is the building block for [Streamer]
// implementations on matrix-like types:
//
//	func (m Mat2) StreamTo(w io.Writer) error {
//		return streamfmt.WriteGrid(w, [][]string{
//			{fmtCell(m[0][0]), fmtCell(m[0][1])},
//			{fmtCell(m[1][0]), fmtCell(m[1][1])},
//		})
//	}
//
// Ragged rows are padded with empty cells. Empty input writes nothing.
func WriteGrid(w io.Writer, rows [][]string) error {
	s := GridString(rows)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

// GridString renders rows as WriteGrid would and returns the text.
func GridString(rows [][]string) string {
	widths := gridWidths(rows)
	if len(widths) == 0 {
		return ""
	}
	var sb strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			sb.WriteString("\n")
		}
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = padCell(cell, width)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, " "), " "))
	}
	return sb.String()
}

func gridWidths(rows [][]string) []int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
