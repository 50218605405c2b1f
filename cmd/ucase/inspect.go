package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/bdwalton/uncase/casepage"
)

// inspectModel renders the 256-entry page containing a looked-up code
// point, one cell per entry, with the looked-up entry highlighted. Built
// the same way the hejops-gone teacher-pack's cpu.Debug TUI renders a page of
// memory around the program counter.
type inspectModel struct {
	table string
	cp    rune
	page  int32

	strPage *casepage.StringPage
	cpPage  *casepage.CodepointPage
	clsPage *casepage.ClassPage
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m inspectModel) hasEntry(low uint8) bool {
	switch m.table {
	case "upper", "lower":
		if m.strPage == nil {
			return false
		}
		_, ok := m.strPage.Lookup(low)
		return ok
	case "canon":
		if m.cpPage == nil {
			return false
		}
		_, ok := m.cpPage.Lookup(low)
		return ok
	case "equiv":
		if m.clsPage == nil {
			return false
		}
		return m.clsPage.Lookup(low) != nil
	}
	return false
}

// renderGrid draws the page as 16 rows of 16 cells, marking present
// entries and bracketing the looked-up code point.
func (m inspectModel) renderGrid() string {
	header := "     "
	for col := 0; col < 16; col++ {
		header += fmt.Sprintf(" %x ", col)
	}
	lines := []string{header}
	lowCP := uint8(m.cp & 0xFF)
	for row := 0; row < 16; row++ {
		line := fmt.Sprintf("%03x| ", row<<4)
		for col := 0; col < 16; col++ {
			low := uint8(row<<4 | col)
			cell := "."
			if m.hasEntry(low) {
				cell = "#"
			}
			if low == lowCP {
				line += fmt.Sprintf("[%s]", cell)
			} else {
				line += fmt.Sprintf(" %s ", cell)
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m inspectModel) status() string {
	present := m.hasEntry(uint8(m.cp & 0xFF))
	return fmt.Sprintf(`
table:  %s
page:   %#x
cp:     U+%04X
entry:  %v
`, m.table, m.page, m.cp, present)
}

func (m inspectModel) entryDump() string {
	low := uint8(m.cp & 0xFF)
	switch m.table {
	case "upper", "lower":
		if m.strPage == nil {
			return "page absent"
		}
		s, ok := m.strPage.Lookup(low)
		if !ok {
			return "no mapping"
		}
		return spew.Sdump(s)
	case "canon":
		if m.cpPage == nil {
			return "page absent"
		}
		r, ok := m.cpPage.Lookup(low)
		if !ok {
			return "no mapping"
		}
		return spew.Sdump(r)
	case "equiv":
		if m.clsPage == nil {
			return "page absent"
		}
		cls := m.clsPage.Lookup(low)
		if cls == nil {
			return "singleton (no class)"
		}
		return spew.Sdump(cls)
	}
	return ""
}

func (m inspectModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderGrid(),
			m.status(),
		),
		"",
		m.entryDump(),
		"",
		"press q to quit",
	)
}

// runInspector builds the page covering cp for the named table and starts
// the interactive viewer. table is one of: upper, lower, canon, equiv.
func runInspector(table string, cp rune) error {
	pageIdx := int32(cp) >> 8
	m := inspectModel{table: table, cp: cp, page: pageIdx}

	switch table {
	case "upper":
		m.strPage = casepage.BuildStringPage(true, pageIdx)
	case "lower":
		m.strPage = casepage.BuildStringPage(false, pageIdx)
	case "canon":
		m.cpPage = casepage.BuildCanonicalPage(pageIdx)
	case "equiv":
		m.clsPage = casepage.BuildClassPage(pageIdx)
	default:
		return fmt.Errorf("unknown table %q (want upper, lower, canon, or equiv)", table)
	}

	_, err := tea.NewProgram(m).Run()
	return err
}
