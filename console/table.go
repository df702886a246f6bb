package console

import (
	"strings"
)

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type BorderStyle int

const (
	BorderNone         BorderStyle = iota // No borders at all
	BorderColumns                         // Only vertical lines between columns (│)
	BorderOuter                           // Only a round box around the table
	BorderOuterColumns                    // Outer box + column separators
)

// drawHorizontalBorder creates a horizontal border line with the specified corner/junction characters.
func drawHorizontalBorder(colWidths []int, columnSpacing int, left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for j, w := range colWidths {
		sb.WriteString(strings.Repeat(Horizontal, w+2*columnSpacing))
		if j < len(colWidths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// calculateColumnWidths computes the maximum width needed for each column
// and returns both the column widths and all individual cell widths.
func calculateColumnWidths(table [][]string, ncols int) ([]int, [][]int) {
	colWidths := make([]int, ncols)
	allWidths := make([][]int, 0, len(table))
	for _, row := range table {
		if len(row) != ncols {
			panic("inconsistent number of columns in table")
		}
		allWidthsRow := make([]int, 0, ncols)
		for j, cell := range row {
			w := ScreenWidth(cell)
			allWidthsRow = append(allWidthsRow, w)
			colWidths[j] = max(colWidths[j], w)
		}
		allWidths = append(allWidths, allWidthsRow)
	}
	return colWidths, allWidths
}

// calculateTableWidth computes the total width of the table including borders and spacing.
func calculateTableWidth(colWidths []int, columnSpacing int, hasColumnBorders, hasOuterBorder bool) int {
	maxw := 0
	for _, w := range colWidths {
		maxw += w
		if hasColumnBorders {
			maxw += 2 * columnSpacing
		}
	}
	if ncols := len(colWidths); ncols > 1 {
		if hasColumnBorders {
			maxw += ncols - 1 // vertical separators between columns
		} else {
			maxw += columnSpacing * (ncols - 1)
		}
	}
	if hasOuterBorder {
		maxw += 2
	}
	return maxw
}

// formatCell formats a single cell with the specified alignment and padding.
func formatCell(sb *strings.Builder, cell string, cellWidth, columnWidth, columnSpacing int,
	align Alignment, hasColumnBorders bool,
) {
	delta := columnWidth - cellWidth
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
	switch align {
	case Left:
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta))
	case Center:
		sb.WriteString(strings.Repeat(" ", delta/2))
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta/2+delta%2))
	case Right:
		sb.WriteString(strings.Repeat(" ", delta))
		sb.WriteString(cell)
	}
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
}

// CreateTableLines lays out table (rows of cells, one alignment per column)
// and returns the lines and their common screen width.
func CreateTableLines(alignment []Alignment, columnSpacing int, table [][]string, borderStyle BorderStyle) ([]string, int) {
	ncols := len(alignment)
	colWidths, allWidths := calculateColumnWidths(table, ncols)

	hasColumnBorders := borderStyle == BorderColumns || borderStyle == BorderOuterColumns
	hasOuterBorder := borderStyle == BorderOuterColumns

	maxw := calculateTableWidth(colWidths, columnSpacing, hasColumnBorders, hasOuterBorder)

	lines := make([]string, 0, 2*len(table)+1)
	var sb strings.Builder
	if hasOuterBorder {
		lines = append(lines, drawHorizontalBorder(colWidths, columnSpacing, SquareTopLeft, TopT, SquareTopRight))
	}
	for i, row := range table {
		if hasOuterBorder {
			sb.WriteString(Vertical)
		}
		for j, cell := range row {
			formatCell(&sb, cell, allWidths[i][j], colWidths[j], columnSpacing, alignment[j], hasColumnBorders)
			if j < ncols-1 {
				separator := strings.Repeat(" ", columnSpacing)
				if hasColumnBorders {
					separator = Vertical
				}
				sb.WriteString(separator)
			}
		}
		if hasOuterBorder {
			sb.WriteString(Vertical)
		}
		lines = append(lines, sb.String())
		sb.Reset()
	}
	if hasOuterBorder {
		lines = append(lines, drawHorizontalBorder(colWidths, columnSpacing, SquareBottomLeft, BottomT, SquareBottomRight))
	}
	if borderStyle == BorderOuter {
		return Box(lines, maxw), maxw + 2
	}
	return lines, maxw
}

// Box surrounds lines, all of the given width, with a rounded box.
func Box(lines []string, width int) []string {
	res := make([]string, 0, len(lines)+2)
	res = append(res, RoundTopLeft+strings.Repeat(Horizontal, width)+RoundTopRight)
	for _, l := range lines {
		res = append(res, Vertical+l+strings.Repeat(" ", max(0, width-ScreenWidth(l)))+Vertical)
	}
	res = append(res, RoundBottomLeft+strings.Repeat(Horizontal, width)+RoundBottomRight)
	return res
}
