package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/spdxgraph/pkg/pipeline"
	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PackageListModel - Interactive package browser
// =============================================================================

// PackageEntry is one row of the package browser.
type PackageEntry struct {
	Package spdx.Package
	Label   string
	Peers   []string // other packages merged into the same node
}

// newPackageEntries builds browser rows for doc in document order, one per
// distinct identifier.
func newPackageEntries(doc *spdx.Document, res *pipeline.Result) []PackageEntry {
	seen := make(map[string]struct{}, len(doc.Packages))
	entries := make([]PackageEntry, 0, len(doc.Packages))
	for _, p := range doc.Packages {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}

		e := PackageEntry{Package: p, Label: res.Labels.Labels.Get(p.ID)}
		if c, ok := res.Compaction.ClassOf(p.ID); ok && c.Merged() {
			for _, m := range c.Members {
				if m != p.ID {
					e.Peers = append(e.Peers, m)
				}
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// PackageListModel is the bubbletea model for browsing package labels.
type PackageListModel struct {
	Title   string
	Entries []PackageEntry
	Cursor  int
	Height  int
	Offset  int
}

// NewPackageListModel creates a new package list model.
func NewPackageListModel(title string, entries []PackageEntry) PackageListModel {
	return PackageListModel{Title: title, Entries: entries, Height: 15}
}

func (m PackageListModel) Init() tea.Cmd {
	return nil
}

func (m PackageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Entries); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help line and detail panel.
		m.Height = max(msg.Height-14, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m PackageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("  no packages"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Entries))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		merged := ""
		if len(e.Peers) > 0 {
			merged = fmt.Sprintf("+%d", len(e.Peers))
		}
		rows = append(rows, []string{cursor, e.Label, e.Package.ID, merged})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Label", "SPDX ID", "Merged").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detail(m.Entries[m.Cursor]))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// detail renders the fields of the selected package.
func (m PackageListModel) detail(e PackageEntry) string {
	var b strings.Builder
	p := e.Package
	field := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(styleKey.Render(key) + " " + StyleValue.Render(value) + "\n")
	}
	field("name", p.Name)
	if p.HasVersion() {
		field("version", p.Version)
	}
	if p.HasFileName() {
		field("file name", p.FileName)
	}
	for _, u := range p.Purls() {
		field("purl", u)
	}
	if len(e.Peers) > 0 {
		field("merged with", strings.Join(e.Peers, ", "))
	}
	return b.String()
}
