package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/models"
	"github.com/tgienger/taskdesk/internal/store"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
)

// ReportsView shows how many tasks sit in each status
type ReportsView struct {
	mgr    *manager.Manager
	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model

	width  int
	height int
}

// NewReportsView creates the reports page
func NewReportsView(mgr *manager.Manager) *ReportsView {
	return &ReportsView{
		mgr:    mgr,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		help:   help.New(),
	}
}

func (v *ReportsView) Init() tea.Cmd {
	return nil
}

func (v *ReportsView) Capturing() bool {
	return false
}

func (v *ReportsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = styles.ContentWidth(v.width)
	case ThemeChanged:
		v.styles = styles.NewStyles()
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Back) {
			return v, func() tea.Msg { return BackToTasks{} }
		}
	}
	return v, nil
}

func (v *ReportsView) View() string {
	s := v.styles
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Task Status Report"),
		"",
		RenderReport(v.mgr.Report(), styles.ContentWidth(v.width)),
		"",
		s.Help.Render(v.help.View(keys.PageHelp{KeyMap: v.keys})),
	)
	return styles.CenterView(content, v.width, v.height)
}

// RenderReport draws the grouped status counts as a table with a bar per
// status. With no tasks at all it returns the empty-report message.
func RenderReport(counts []store.StatusCount, width int) string {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return lipgloss.NewStyle().Foreground(styles.Current.ForegroundDim).
			Render("No tasks to display in the report yet.")
	}

	barWidth := clamp(width-40, 10, 40)
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		filled := c.Count * barWidth / total
		bar := lipgloss.NewStyle().Foreground(styles.StatusColor(c.Status)).
			Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(styles.Current.Border).
				Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, []string{
			string(c.Status),
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%3.0f%%", float64(c.Count)*100/float64(total)),
			bar,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Current.Border)).
		Headers("Status", "Tasks", "Share", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Bold(true).Foreground(styles.Current.Primary)
			case col == 0 && row >= 0 && row < len(counts):
				return st.Bold(true).Foreground(styles.StatusColor(counts[row].Status))
			case col == 1 || col == 2:
				return st.Align(lipgloss.Right)
			}
			return st
		})

	footer := lipgloss.NewStyle().Foreground(styles.Current.ForegroundDim).
		Render(fmt.Sprintf("%d tasks in total", total))
	return lipgloss.JoinVertical(lipgloss.Left, t.String(), footer)
}

// RenderTaskTable draws tasks as a plain table, used for non-interactive
// listings
func RenderTaskTable(tasks []models.Task, dateLayout string) string {
	if len(tasks) == 0 {
		return "No tasks available."
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.ID, t.Title, string(t.Status), t.DueString(dateLayout)})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Current.Border)).
		Headers("ID", "Title", "Status", "Due Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Bold(true)
			}
			if col == 2 && row >= 0 && row < len(tasks) {
				return st.Foreground(styles.StatusColor(tasks[row].Status))
			}
			return st
		})
	return t.String()
}
