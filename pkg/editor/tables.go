package editor

import (
	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
)

// tableRows returns every tr of the table in document order,
// traversing thead and tbody sections.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for section := table.FirstChild; section != nil; section = section.NextSibling {
		if dom.IsElement(section, "tr") {
			rows = append(rows, section)
			continue
		}
		if dom.IsAnyElement(section, "thead", "tbody", "tfoot") {
			for tr := section.FirstChild; tr != nil; tr = tr.NextSibling {
				if dom.IsElement(tr, "tr") {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}

// rowCells returns the td/th children of a row.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if dom.IsAnyElement(c, "td", "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

func newCell(tag string) *html.Node {
	cell := dom.NewElement(tag)
	cell.AppendChild(dom.NewText(dom.Zwsp))
	return cell
}

// cellPosition locates the cursor's cell: the cell element, its row,
// the containing table, and the cell's column index.
func (s *Surface) cellPosition() (cell, row, table *html.Node, col int) {
	cell = dom.ClosestCell(s.caret.Node, s.root)
	if cell == nil {
		return nil, nil, nil, 0
	}
	row = dom.ClosestAncestorTag(cell, s.root, "tr")
	table = dom.ClosestTable(cell, s.root)
	if row == nil || table == nil {
		return nil, nil, nil, 0
	}
	for i, c := range rowCells(row) {
		if c == cell {
			col = i
			break
		}
	}
	return cell, row, table, col
}

// CreateTable builds a rows-by-cols table with a header row and
// inserts it after the nearest enclosing paragraph, div, or heading
// (or appends it to the root). The cursor lands in the first header
// cell.
func (s *Surface) CreateTable(rows, cols int) bool {
	if rows < 1 || cols < 1 {
		return false
	}

	table := dom.NewElement("table")
	thead := dom.NewElement("thead")
	headerRow := dom.NewElement("tr")
	for i := 0; i < cols; i++ {
		headerRow.AppendChild(newCell("th"))
	}
	thead.AppendChild(headerRow)
	table.AppendChild(thead)

	if rows > 1 {
		tbody := dom.NewElement("tbody")
		for r := 1; r < rows; r++ {
			tr := dom.NewElement("tr")
			for i := 0; i < cols; i++ {
				tr.AppendChild(newCell("td"))
			}
			tbody.AppendChild(tr)
		}
		table.AppendChild(tbody)
	}

	anchor := (*html.Node)(nil)
	if s.caret.IsValid() {
		for p := s.caret.Node; p != nil && p != s.root; p = p.Parent {
			if dom.IsConvertibleBlock(p) {
				anchor = p
				break
			}
		}
	}
	if anchor != nil {
		dom.InsertAfter(table, anchor)
	} else {
		s.root.AppendChild(table)
	}

	s.caret = dom.PositionCursorAtStart(rowCells(headerRow)[0])
	s.notifyChange()
	return true
}

// InsertTableRow inserts a row above or below the cursor's row with
// the same cell count, preserving the equal-cell-count invariant.
func (s *Surface) InsertTableRow(below bool) bool {
	_, row, _, col := s.cellPosition()
	if row == nil {
		return false
	}

	cellTag := "td"
	if dom.IsElement(row.Parent, "thead") {
		cellTag = "th"
	}
	tr := dom.NewElement("tr")
	for range rowCells(row) {
		tr.AppendChild(newCell(cellTag))
	}

	if below {
		dom.InsertAfter(tr, row)
	} else {
		row.Parent.InsertBefore(tr, row)
	}

	s.caret = dom.PositionCursorAtStart(rowCells(tr)[min(col, len(rowCells(tr))-1)])
	s.notifyChange()
	return true
}

// InsertTableColumn inserts a column left or right of the cursor's
// column in every row of the table.
func (s *Surface) InsertTableColumn(right bool) bool {
	cell, _, table, col := s.cellPosition()
	if cell == nil {
		return false
	}

	for _, tr := range tableRows(table) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			continue
		}
		ref := cells[min(col, len(cells)-1)]
		fresh := newCell(ref.Data)
		if right {
			dom.InsertAfter(fresh, ref)
		} else {
			tr.InsertBefore(fresh, ref)
		}
	}

	s.notifyChange()
	return true
}

// DeleteTableRow removes the cursor's row. Deleting the only row
// removes the whole table.
func (s *Surface) DeleteTableRow() bool {
	_, row, table, col := s.cellPosition()
	if row == nil {
		return false
	}

	rows := tableRows(table)
	if len(rows) <= 1 {
		s.removeTable(table)
		return true
	}

	// Pick the row that will hold the cursor afterwards.
	var target *html.Node
	for i, r := range rows {
		if r != row {
			continue
		}
		if i+1 < len(rows) {
			target = rows[i+1]
		} else {
			target = rows[i-1]
		}
		break
	}

	section := row.Parent
	dom.Detach(row)
	if dom.IsAnyElement(section, "thead", "tbody", "tfoot") && section.FirstChild == nil {
		dom.Detach(section)
	}

	cells := rowCells(target)
	s.caret = dom.PositionCursorAtStart(cells[min(col, len(cells)-1)])
	s.notifyChange()
	return true
}

// DeleteTableColumn removes the cursor's column from every row.
// Deleting the only column removes the whole table.
func (s *Surface) DeleteTableColumn() bool {
	_, row, table, col := s.cellPosition()
	if row == nil {
		return false
	}

	if len(rowCells(row)) <= 1 {
		s.removeTable(table)
		return true
	}

	for _, tr := range tableRows(table) {
		cells := rowCells(tr)
		if col < len(cells) {
			dom.Detach(cells[col])
		}
	}

	cells := rowCells(row)
	s.caret = dom.PositionCursorAtStart(cells[min(col, len(cells)-1)])
	s.notifyChange()
	return true
}

// removeTable detaches the table and parks the cursor in the previous
// block, or at the root's content end.
func (s *Surface) removeTable(table *html.Node) {
	prev := dom.PrevElement(table)
	dom.Detach(table)
	if prev != nil {
		s.caret = dom.PositionCursorAtEnd(prev)
	} else {
		s.caret = dom.PositionCursorAtEnd(s.root)
	}
	s.notifyChange()
}

// NextTableCell moves the cursor to the next cell, wrapping to the
// next row. Returns false at the last cell.
func (s *Surface) NextTableCell() bool {
	return s.stepTableCell(1)
}

// PrevTableCell moves the cursor to the previous cell, wrapping to the
// previous row. Returns false at the first cell.
func (s *Surface) PrevTableCell() bool {
	return s.stepTableCell(-1)
}

func (s *Surface) stepTableCell(step int) bool {
	cell, _, table, _ := s.cellPosition()
	if cell == nil {
		return false
	}

	var flat []*html.Node
	for _, tr := range tableRows(table) {
		flat = append(flat, rowCells(tr)...)
	}
	for i, c := range flat {
		if c != cell {
			continue
		}
		j := i + step
		if j < 0 || j >= len(flat) {
			return false
		}
		if step > 0 {
			s.caret = dom.PositionCursorAtStart(flat[j])
		} else {
			s.caret = dom.PositionCursorAtEnd(flat[j])
		}
		return true
	}
	return false
}

// TableCellBelow moves the cursor to the same column in the next row.
func (s *Surface) TableCellBelow() bool {
	return s.stepTableRow(1)
}

// TableCellAbove moves the cursor to the same column in the previous
// row.
func (s *Surface) TableCellAbove() bool {
	return s.stepTableRow(-1)
}

func (s *Surface) stepTableRow(step int) bool {
	_, row, table, col := s.cellPosition()
	if row == nil {
		return false
	}

	rows := tableRows(table)
	for i, r := range rows {
		if r != row {
			continue
		}
		j := i + step
		if j < 0 || j >= len(rows) {
			return false
		}
		cells := rowCells(rows[j])
		if col >= len(cells) {
			return false
		}
		s.caret = dom.PositionCursorAtStart(cells[col])
		return true
	}
	return false
}
