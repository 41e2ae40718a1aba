package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"levelmap/internal/deviation"
)

var columnTitles = map[deviation.SortKey]string{
	deviation.SortID:        "ID",
	deviation.SortX:         "X",
	deviation.SortY:         "Y",
	deviation.SortZ:         "Z (m)",
	deviation.SortDeviation: "Dev.",
	deviation.SortStatus:    "Status",
}

var columnWidths = map[deviation.SortKey]int{
	deviation.SortID:        8,
	deviation.SortX:         11,
	deviation.SortY:         11,
	deviation.SortZ:         7,
	deviation.SortDeviation: 5,
	deviation.SortStatus:    6,
}

// tableColumns marks the active sort column with an arrow.
func tableColumns(s deviation.SortState) []table.Column {
	cols := make([]table.Column, 0, len(deviation.SortKeys))
	for _, k := range deviation.SortKeys {
		title := columnTitles[k]
		if k == s.Key {
			if s.Descending {
				title += "↓"
			} else {
				title += "↑"
			}
		}
		cols = append(cols, table.Column{Title: title, Width: columnWidths[k]})
	}
	return cols
}

// refreshTable rebuilds rows from the session's filtered, sorted view and keeps
// the cursor on the selected point when it is visible.
func (m *Model) refreshTable() {
	rows := m.sess.Rows()
	trows := make([]table.Row, 0, len(rows))
	m.rowIDs = m.rowIDs[:0]
	for _, p := range rows {
		trows = append(trows, table.Row{
			p.ID,
			fmt.Sprintf("%.3f", p.X),
			fmt.Sprintf("%.3f", p.Y),
			fmt.Sprintf("%.3f", p.Z),
			fmt.Sprintf("%d", p.Deviation),
			p.Status.Label(),
		})
		m.rowIDs = append(m.rowIDs, p.ID)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tableColumns(m.sess.Sort()))
	m.tbl.SetRows(trows)
	if id, ok := m.sess.Selection(); ok {
		for i, rid := range m.rowIDs {
			if rid == id {
				m.tbl.SetCursor(i)
				return
			}
		}
	}
	if m.tbl.Cursor() >= len(trows) {
		m.tbl.SetCursor(max(0, len(trows)-1))
	}
}

// cursorID is the point id under the table cursor.
func (m Model) cursorID() (string, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.rowIDs) {
		return "", false
	}
	return m.rowIDs[i], true
}

// nextSortKey cycles through the columns.
func nextSortKey(k deviation.SortKey) deviation.SortKey {
	for i, key := range deviation.SortKeys {
		if key == k {
			return deviation.SortKeys[(i+1)%len(deviation.SortKeys)]
		}
	}
	return deviation.SortKeys[0]
}

func (m Model) renderTable(w, h int) string {
	m.tbl.SetWidth(w - 4)
	m.tbl.SetHeight(max(3, h-3))
	title := titleStyle.Render(fmt.Sprintf("results %d/%d", len(m.rowIDs), m.sess.Counts().Total))
	return boxStyle.Width(w - 2).Render(title + "\n" + m.tbl.View())
}
