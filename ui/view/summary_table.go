package view

import (
	"strconv"

	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var tableColumns = []string{"Filename", "Intact", "Broken", "Status"}

// SummaryTable is a fixed number of label rows showing a window of the listing.
// Clicking a row reports its list position.
type SummaryTable struct {
	cells [][]*LabelWidget
	start int
	shown int
}

// NewSummaryTable builds a heading and rows label rows in parent starting at grid row.
func NewSummaryTable(parent *FrameWidget, row, rows int, onJump func(int)) *SummaryTable {
	pal := theme.CurrentPalette()
	t := &SummaryTable{}
	for c, name := range tableColumns {
		h := Label(Txt(name), Background(pal.Accent), Foreground(pal.Text), Width(colWidth(c)), Relief("flat"))
		Grid(h, In(parent), Row(row), Column(c), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	for r := 0; r < rows; r++ {
		line := make([]*LabelWidget, len(tableColumns))
		for c := range tableColumns {
			l := Label(Txt(""), Background(pal.Panel), Foreground(pal.Text), Width(colWidth(c)), Anchor(colAnchor(c)))
			Grid(l, In(parent), Row(row+1+r), Column(c), Sticky("we"), Padx("0.2m"))
			offset := r
			Bind(l, "<Button-1>", Command(func() {
				if onJump != nil && offset < t.shown {
					onJump(t.start + offset)
				}
			}))
			line[c] = l
		}
		t.cells = append(t.cells, line)
	}
	return t
}

func colWidth(c int) int {
	if c == 0 {
		return 22
	}
	if c == 3 {
		return 16
	}
	return 7
}

func colAnchor(c int) string {
	if c == 0 {
		return "w"
	}
	return "center"
}

// SetRows fills the table with rows beginning at list position start and highlights
// the selected position. Unused rows are blanked.
func (t *SummaryTable) SetRows(rows []catalog.Row, start, selected int) {
	if t == nil {
		return
	}
	pal := theme.CurrentPalette()
	t.start = start
	t.shown = len(rows)
	for r, line := range t.cells {
		texts := []string{"", "", "", ""}
		bg := pal.Panel
		if r < len(rows) {
			row := rows[r]
			texts = []string{row.Filename, strconv.Itoa(row.Intact), strconv.Itoa(row.Broken), row.Status}
			if start+r == selected {
				bg = pal.Selected
			}
		}
		for c, l := range line {
			l.Configure(Txt(texts[c]), Background(bg))
		}
	}
}
