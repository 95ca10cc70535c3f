// # cmd/gfxlens/ui.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gfxlens/internal/analysis"
	"gfxlens/internal/util"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	orphanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list         list.Model
	result       *analysis.Result
	definedCount int
	lastUpdate   time.Time
}

type updateMsg struct {
	result       *analysis.Result
	definedCount int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.result = msg.result
		m.definedCount = msg.definedCount
		m.lastUpdate = time.Now()

		items := []list.Item{}
		for _, name := range util.SortedSet(msg.result.Orphaned) {
			items = append(items, item{
				title: "Orphaned Asset",
				desc:  name,
			})
		}
		for _, name := range util.SortedSet(msg.result.Missing) {
			items = append(items, item{
				title: "Missing Definition",
				desc:  name,
			})
		}
		for _, name := range util.SortedStringKeys(msg.result.Duplicates) {
			items = append(items, item{
				title: "Duplicate Definition",
				desc:  fmt.Sprintf("%s: %s", name, strings.Join(msg.result.Duplicates[name], ", ")),
			})
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var filesScanned, orphaned, missing int
	if m.result != nil {
		filesScanned = m.result.FilesScanned
		orphaned = len(m.result.Orphaned)
		missing = len(m.result.Missing)
	}

	status := statusStyle.Render(fmt.Sprintf("Last update: %v | %d defined | %d files scanned",
		m.lastUpdate.Format("15:04:05"), m.definedCount, filesScanned))

	var summary string
	if orphaned == 0 && missing == 0 {
		summary = successStyle.Render("✅ All assets accounted for")
	} else {
		summary = fmt.Sprintf("⚠️  %s | %s",
			orphanStyle.Render(fmt.Sprintf("%d Orphaned", orphaned)),
			missingStyle.Render(fmt.Sprintf("%d Missing", missing)))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Asset Usage Monitor"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Findings"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}
