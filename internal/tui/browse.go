package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shotwiz/internal/inspect"
	"shotwiz/pkg/models"
)

// InspectFunc loads the info card data for a path.
type InspectFunc func(path string) models.ImageInfo

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type browseModel struct {
	files   []models.ScreenshotFile
	table   table.Model
	inspect InspectFunc
	detail  string
}

func newBrowseModel(files []models.ScreenshotFile, inspectFn InspectFunc, height int) browseModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 44},
		{Title: "Size (KB)", Width: 10},
		{Title: "Modified", Width: 19},
		{Title: "Where", Width: 11},
	}
	rows := make([]table.Row, 0, len(files))
	for i, f := range files {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			displayName(f),
			fmt.Sprintf("%.1f", f.SizeKB()),
			f.ModTime.Format(inspect.ModifiedLayout),
			string(f.Root),
		})
	}
	if height <= 0 || height > len(rows) {
		height = len(rows)
	}

	// The table height includes its header line, measured with the default
	// styles applied at construction.
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return browseModel{files: files, table: t, inspect: inspectFn}
}

func displayName(f models.ScreenshotFile) string {
	if f.Root == models.RootDestination {
		return filepath.Join(filepath.Base(filepath.Dir(f.Path)), f.Name)
	}
	return f.Name
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.detail = ""
			return m, nil
		case "enter":
			if m.detail != "" {
				m.detail = ""
				return m, nil
			}
			if i := m.table.Cursor(); i >= 0 && i < len(m.files) {
				m.detail = InfoCard(m.inspect(m.files[i].Path), true, time.Now())
			}
			return m, nil
		}
	}
	if m.detail != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	if m.detail != "" {
		return m.detail + "\n" + helpStyle.Render("esc/enter: back • q: quit") + "\n"
	}
	return baseStyle.Render(m.table.View()) + "\n" +
		helpStyle.Render("↑/↓: move • enter: details • q: quit") + "\n"
}

// Browse runs the interactive browser until the user quits.
func Browse(files []models.ScreenshotFile, inspectFn InspectFunc, height int) error {
	if inspectFn == nil {
		inspectFn = inspect.Inspect
	}
	_, err := tea.NewProgram(newBrowseModel(files, inspectFn, height)).Run()
	return err
}
