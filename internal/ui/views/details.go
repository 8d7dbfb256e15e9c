package views

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/models"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
)

// DetailView shows a single task looked up by id
type DetailView struct {
	mgr        *manager.Manager
	styles     *styles.Styles
	keys       keys.KeyMap
	help       help.Model
	dateLayout string

	width  int
	height int

	taskID string

	// rendered markdown, keyed by the inputs that produced it
	cacheKey string
	cache    string
}

// NewDetailView creates the detail page
func NewDetailView(mgr *manager.Manager, dateLayout string) *DetailView {
	return &DetailView{
		mgr:        mgr,
		styles:     styles.NewStyles(),
		keys:       keys.DefaultKeyMap(),
		help:       help.New(),
		dateLayout: dateLayout,
	}
}

// SetTask selects which task the page shows
func (v *DetailView) SetTask(id string) {
	v.taskID = id
}

// TaskID returns the id the page was opened with
func (v *DetailView) TaskID() string {
	return v.taskID
}

// Found reports whether the task exists in the store
func (v *DetailView) Found() bool {
	_, ok := v.mgr.Lookup(v.taskID)
	return ok
}

func (v *DetailView) Init() tea.Cmd {
	return nil
}

func (v *DetailView) Capturing() bool {
	return false
}

func (v *DetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = styles.ContentWidth(v.width)
		return v, nil

	case ThemeChanged:
		v.styles = styles.NewStyles()
		v.cacheKey = ""
		return v, nil

	case tea.KeyMsg:
		task, found := v.mgr.Lookup(v.taskID)
		switch {
		case key.Matches(msg, v.keys.Back), msg.Type == tea.KeyBackspace:
			return v, func() tea.Msg { return BackToTasks{} }
		case !found:
			return v, nil
		case key.Matches(msg, v.keys.Edit):
			return v, func() tea.Msg { return EditTask{ID: task.ID} }
		case key.Matches(msg, v.keys.Delete):
			return v, func() tea.Msg { return DeleteTask{ID: task.ID} }
		case key.Matches(msg, v.keys.StatusNext):
			if _, err := v.mgr.UpdateStatus(task.ID, task.Status.Next()); err != nil {
				log.Printf("[details] status: %v", err)
			}
		case key.Matches(msg, v.keys.StatusPrev):
			if _, err := v.mgr.UpdateStatus(task.ID, task.Status.Prev()); err != nil {
				log.Printf("[details] status: %v", err)
			}
		}
	}
	return v, nil
}

// Markdown is the document rendered for a task
func (v *DetailView) Markdown(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "**Status:** %s  \n", t.Status)
	fmt.Fprintf(&b, "**Due Date:** %s  \n", t.DueString(v.dateLayout))
	fmt.Fprintf(&b, "**ID:** `%s`\n\n", t.ID)
	b.WriteString("## Description\n\n")
	b.WriteString(t.Description)
	b.WriteString("\n")
	return b.String()
}

func (v *DetailView) render(t models.Task, width int) string {
	md := v.Markdown(t)
	cacheKey := fmt.Sprintf("%d|%s|%s", width, styles.GlamourStyle(), md)
	if cacheKey == v.cacheKey {
		return v.cache
	}

	out := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err = r.Render(md)
	}
	if err != nil {
		log.Printf("[details] render %s: %v", t.ID, err)
		out = lipgloss.NewStyle().Width(width).Render(md)
	}

	v.cacheKey = cacheKey
	v.cache = strings.TrimRight(out, "\n")
	return v.cache
}

func (v *DetailView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	task, found := v.mgr.Lookup(v.taskID)
	if !found {
		content := lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Foreground(styles.Current.Error).Render("Task Not Found"),
			"",
			fmt.Sprintf("The task with ID %q could not be found.", v.taskID),
			"",
			s.Help.Render(v.help.View(keys.PageHelp{KeyMap: v.keys})),
		)
		return styles.CenterView(content, v.width, v.height)
	}

	actions := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Button.Render(" e Edit "), "  ",
		s.Button.Render(" d Delete "), "  ",
		s.Button.Render(" s Status "), "  ",
		s.Button.Render(" esc Back "),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.TitleMuted.Render("Task Details"),
		v.render(task, max(contentWidth-4, 20)),
		"",
		actions,
		"",
		s.Help.Render(v.help.View(keys.PageHelp{KeyMap: v.keys})),
	)
	return styles.CenterView(content, v.width, v.height)
}
