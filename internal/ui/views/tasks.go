package views

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/models"
	"github.com/tgienger/taskdesk/internal/ui/keys"
	"github.com/tgienger/taskdesk/internal/ui/styles"
)

// FocusArea represents which part of the list page has focus
type FocusArea int

const (
	FocusTaskList FocusArea = iota
	FocusSearchInput
)

// editor form fields, in tab order
const (
	editTitle = iota
	editDesc
	editStatus
	editDue
	editSave
	editFieldCount
)

// TaskListView shows the filtered task list and hosts the editor and delete
// dialogs. Which dialog is showing comes only from the manager's Dialog state.
type TaskListView struct {
	mgr        *manager.Manager
	styles     *styles.Styles
	keys       keys.KeyMap
	help       help.Model
	dateLayout string

	width  int
	height int

	// UI state
	focus       FocusArea
	cursor      int
	scrollY     int
	searchInput textinput.Model

	// Go to task by id
	goingTo   bool
	goToInput textinput.Model

	// Editor widgets, loaded from the draft when the editor opens
	editTitle    textinput.Model
	editDesc     textarea.Model
	editStatus   models.Status
	editDue      textinput.Model
	editFocusIdx int

	// Status line
	status    string
	statusErr bool
}

// NewTaskListView creates the task list page over mgr
func NewTaskListView(mgr *manager.Manager, dateLayout string) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	goTo := textinput.New()
	goTo.Placeholder = "task id"
	goTo.CharLimit = 64

	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000
	desc.SetWidth(50)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10

	v := &TaskListView{
		mgr:         mgr,
		styles:      s,
		keys:        keys.DefaultKeyMap(),
		help:        help.New(),
		dateLayout:  dateLayout,
		focus:       FocusTaskList,
		searchInput: search,
		goToInput:   goTo,
		editTitle:   title,
		editDesc:    desc,
		editDue:     due,
	}
	v.applyHelpStyles()
	return v
}

func (v *TaskListView) applyHelpStyles() {
	v.help.Styles.ShortKey = v.styles.HelpKey
	v.help.Styles.ShortDesc = v.styles.HelpDesc
	v.help.Styles.FullKey = v.styles.HelpKey
	v.help.Styles.FullDesc = v.styles.HelpDesc
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return nil
}

// Capturing reports whether keys are going to a text field or a dialog
func (v *TaskListView) Capturing() bool {
	if _, closed := v.mgr.Dialog().(manager.Closed); !closed {
		return true
	}
	return v.goingTo || v.focus == FocusSearchInput
}

// Status returns the status line text and whether it reports an error
func (v *TaskListView) Status() (string, bool) {
	return v.status, v.statusErr
}

// Cursor returns the index of the highlighted row
func (v *TaskListView) Cursor() int {
	return v.cursor
}

func (v *TaskListView) setStatus(msg string) {
	v.status = msg
	v.statusErr = false
}

func (v *TaskListView) setError(err error) {
	v.status = err.Error()
	v.statusErr = true
}

// selected returns the highlighted task, if any
func (v *TaskListView) selected() (models.Task, bool) {
	rows := v.mgr.VisibleTasks()
	if v.cursor < 0 || v.cursor >= len(rows) {
		return models.Task{}, false
	}
	return rows[v.cursor], true
}

func (v *TaskListView) clampCursor() {
	n := len(v.mgr.VisibleTasks())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
	v.ensureVisible()
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-14, 20, 50))
		v.help.Width = contentWidth
		return v, nil

	case ThemeChanged:
		v.styles = styles.NewStyles()
		v.applyHelpStyles()
		return v, nil

	case tea.KeyMsg:
		switch d := v.mgr.Dialog().(type) {
		case manager.Editor:
			return v.updateEditing(msg, d)
		case manager.ConfirmDelete:
			return v.updateConfirmDelete(msg)
		}

		if v.goingTo {
			return v.updateGoTo(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search input typing first - don't process hotkeys while typing
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter), msg.Type == tea.KeyDown:
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			if v.searchInput.Value() != v.mgr.Query() {
				v.mgr.SetSearchQuery(v.searchInput.Value())
				v.cursor = 0
				v.scrollY = 0
			}
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		if v.mgr.Query() != "" {
			v.searchInput.Reset()
			v.mgr.SetSearchQuery("")
			v.clampCursor()
		}
		v.help.ShowAll = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.mgr.VisibleTasks())-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if t, ok := v.selected(); ok {
			return v, func() tea.Msg { return OpenTask{ID: t.ID} }
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		if err := v.mgr.OpenCreate(); err != nil {
			v.setError(err)
			return v, nil
		}
		return v, v.startEditor()

	case key.Matches(msg, v.keys.Edit):
		if t, ok := v.selected(); ok {
			return v, v.StartEdit(t.ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.selected(); ok {
			v.StartDelete(t.ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.StatusNext), key.Matches(msg, v.keys.StatusPrev):
		t, ok := v.selected()
		if !ok {
			return v, nil
		}
		next := t.Status.Next()
		if key.Matches(msg, v.keys.StatusPrev) {
			next = t.Status.Prev()
		}
		if _, err := v.mgr.UpdateStatus(t.ID, next); err != nil {
			v.setError(err)
			return v, nil
		}
		v.setStatus(fmt.Sprintf("%q → %s", truncate(t.Title, 30), next))
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		return v, v.searchInput.Focus()

	case key.Matches(msg, v.keys.GoTo):
		v.goingTo = true
		v.goToInput.Reset()
		return v, v.goToInput.Focus()

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateGoTo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.goingTo = false
		v.goToInput.Blur()
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		v.goingTo = false
		v.goToInput.Blur()
		id := strings.TrimSpace(v.goToInput.Value())
		if id == "" {
			return v, nil
		}
		return v, func() tea.Msg { return OpenTask{ID: id} }
	}
	var cmd tea.Cmd
	v.goToInput, cmd = v.goToInput.Update(msg)
	return v, cmd
}

// StartEdit opens the editor on task id
func (v *TaskListView) StartEdit(id string) tea.Cmd {
	t, ok := v.mgr.Lookup(id)
	if !ok {
		v.setStatus(fmt.Sprintf("Task %q not found", id))
		v.statusErr = true
		return nil
	}
	if err := v.mgr.OpenEdit(t); err != nil {
		v.setError(err)
		return nil
	}
	v.selectID(id)
	return v.startEditor()
}

// StartDelete opens the delete confirmation for task id
func (v *TaskListView) StartDelete(id string) {
	if err := v.mgr.RequestDelete(id); err != nil {
		v.setError(err)
		return
	}
	v.selectID(id)
}

func (v *TaskListView) selectID(id string) {
	for i, t := range v.mgr.VisibleTasks() {
		if t.ID == id {
			v.cursor = i
			v.ensureVisible()
			return
		}
	}
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Confirm):
		removed, err := v.mgr.CommitDelete()
		if err != nil {
			v.setError(err)
			return v, nil
		}
		if removed {
			v.setStatus("Task deleted")
		}
		v.clampCursor()
	case key.Matches(msg, v.keys.Cancel):
		if err := v.mgr.DismissDelete(); err != nil {
			v.setError(err)
		}
	}
	return v, nil
}

// startEditor loads the editor widgets from the open Editor dialog
func (v *TaskListView) startEditor() tea.Cmd {
	ed, ok := v.mgr.Dialog().(manager.Editor)
	if !ok {
		return nil
	}
	d := ed.Initial()
	v.editTitle.SetValue(d.Title)
	v.editTitle.CursorEnd()
	v.editDesc.SetValue(d.Description)
	v.editStatus = d.Status
	if d.DueDate.IsZero() {
		v.editDue.Reset()
	} else {
		v.editDue.SetValue(d.DueDate.Format(models.DateLayout))
		v.editDue.CursorEnd()
	}
	v.editFocusIdx = editTitle
	return tea.Batch(v.updateEditFocus(), textinput.Blink)
}

// draft reads the editor widgets. An unparseable due date counts as unset.
func (v *TaskListView) draft() models.Draft {
	var due time.Time
	if parsed, err := models.ParseDate(v.editDue.Value()); err == nil {
		due = parsed
	}
	return models.Draft{
		Title:       strings.TrimSpace(v.editTitle.Value()),
		Description: strings.TrimSpace(v.editDesc.Value()),
		Status:      v.editStatus,
		DueDate:     due,
	}
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg, ed manager.Editor) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		if err := v.mgr.DismissEditor(); err != nil {
			v.setError(err)
		}
		v.blurEditor()
		return v, nil

	case key.Matches(msg, v.keys.Save):
		return v, v.saveTask(ed)

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % editFieldCount
		return v, v.updateEditFocus()

	case key.Matches(msg, v.keys.ShiftTab):
		v.editFocusIdx = (v.editFocusIdx + editFieldCount - 1) % editFieldCount
		return v, v.updateEditFocus()

	case key.Matches(msg, v.keys.Enter):
		switch v.editFocusIdx {
		case editTitle, editStatus, editDue:
			v.editFocusIdx++
			return v, v.updateEditFocus()
		case editSave:
			return v, v.saveTask(ed)
		}
		// Enter in the description is a newline

	case v.editFocusIdx == editStatus:
		switch {
		case key.Matches(msg, v.keys.Left), msg.String() == "h":
			v.editStatus = v.editStatus.Prev()
			v.mgr.ClearFieldError(models.FieldStatus)
		case key.Matches(msg, v.keys.Right), msg.String() == "l", msg.String() == " ":
			v.editStatus = v.editStatus.Next()
			v.mgr.ClearFieldError(models.FieldStatus)
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case editTitle:
		before := v.editTitle.Value()
		v.editTitle, cmd = v.editTitle.Update(msg)
		if v.editTitle.Value() != before {
			v.mgr.ClearFieldError(models.FieldTitle)
		}
	case editDesc:
		before := v.editDesc.Value()
		v.editDesc, cmd = v.editDesc.Update(msg)
		if v.editDesc.Value() != before {
			v.mgr.ClearFieldError(models.FieldDescription)
		}
	case editDue:
		before := v.editDue.Value()
		v.editDue, cmd = v.editDue.Update(msg)
		if v.editDue.Value() != before {
			v.mgr.ClearFieldError(models.FieldDueDate)
		}
	}
	return v, cmd
}

func (v *TaskListView) updateEditFocus() tea.Cmd {
	v.blurEditor()
	switch v.editFocusIdx {
	case editTitle:
		return v.editTitle.Focus()
	case editDesc:
		return v.editDesc.Focus()
	case editDue:
		return v.editDue.Focus()
	}
	return nil
}

func (v *TaskListView) blurEditor() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDue.Blur()
}

func (v *TaskListView) saveTask(ed manager.Editor) tea.Cmd {
	task, err := v.mgr.CommitEditor(v.draft())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			v.setStatus("Please fix the highlighted fields.")
			v.statusErr = true
			v.editFocusIdx = v.firstInvalidField(verr.Fields)
			return v.updateEditFocus()
		}
		log.Printf("[tasks] save: %v", err)
		v.setError(err)
		return nil
	}

	v.blurEditor()
	if ed.Mode == manager.ModeCreate {
		v.setStatus(fmt.Sprintf("Added %q", truncate(task.Title, 40)))
	} else {
		v.setStatus(fmt.Sprintf("Updated %q", truncate(task.Title, 40)))
	}
	v.selectID(task.ID)
	v.clampCursor()
	return nil
}

func (v *TaskListView) firstInvalidField(errs models.FieldErrors) int {
	order := map[models.Field]int{
		models.FieldTitle:       editTitle,
		models.FieldDescription: editDesc,
		models.FieldStatus:      editStatus,
		models.FieldDueDate:     editDue,
	}
	for _, f := range models.Fields() {
		if _, bad := errs[f]; bad {
			return order[f]
		}
	}
	return v.editFocusIdx
}

func (v *TaskListView) ensureVisible() {
	// Each task item is 2 lines (title + description)
	visibleItems := max((v.height-12)/2, 1)

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// View renders the view
func (v *TaskListView) View() string {
	switch d := v.mgr.Dialog().(type) {
	case manager.Editor:
		return v.renderEditForm(d)
	case manager.ConfirmDelete:
		return v.renderDeleteConfirm(d)
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderStatusLine())
	b.WriteString(v.styles.Help.Render(v.help.View(keys.ListHelp{KeyMap: v.keys})))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchBox := searchStyle.Width(clamp(contentWidth-30, 16, 40)).Render(v.searchInput.View())

	newBtn := s.Button.Render("+ New Task")

	bar := lipgloss.JoinHorizontal(lipgloss.Center, newBtn, "  ", searchBox)
	if v.goingTo {
		goTo := s.InputFocused.Width(24).Render(v.goToInput.View())
		bar = lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", s.Label.Render("Go to id:"), " ", goTo)
	}

	count := len(v.mgr.VisibleTasks())
	total := len(v.mgr.Tasks())
	counter := s.TitleMuted.Render(fmt.Sprintf("%d of %d tasks", count, total))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, s.Title.Render("Task List"), "  ", counter),
		bar,
	)
}

// column widths for the list: title grows, the rest are fixed
func (v *TaskListView) columns() (title, status, due int) {
	status = 13
	due = 14
	title = max(styles.ContentWidth(v.width)-status-due-6, 16)
	return title, status, due
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles
	rows := v.mgr.VisibleTasks()

	if len(rows) == 0 {
		if v.mgr.Query() != "" {
			return s.TitleMuted.Render("No tasks found matching your search.")
		}
		return s.TitleMuted.Render("No tasks available. Press 'n' to add one.")
	}

	titleW, statusW, dueW := v.columns()
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.ColumnHeader.Width(titleW).Render("Title"),
		s.ColumnHeader.Width(statusW).Render("Status"),
		s.ColumnHeader.Width(dueW).Render("Due Date"),
	)

	visibleItems := max((v.height-12)/2, 1)
	endIdx := min(v.scrollY+visibleItems, len(rows))

	items := []string{header}
	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(rows[i], i == v.cursor && v.focus == FocusTaskList))
	}
	if endIdx < len(rows) {
		items = append(items, s.TitleMuted.Render(fmt.Sprintf("  … %d more", len(rows)-endIdx)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	titleW, statusW, dueW := v.columns()

	rowStyle := s.ListItem
	if selected {
		rowStyle = s.ListSelected
	}

	titleCell := rowStyle.Width(titleW).Render(truncate(task.Title, titleW-2))
	statusCell := rowStyle.Width(statusW).Render(s.StatusBadge(task.Status))
	dueCell := rowStyle.Width(dueW).Render(task.DueString(v.dateLayout))
	line := lipgloss.JoinHorizontal(lipgloss.Top, titleCell, statusCell, dueCell)

	desc := s.TitleMuted.PaddingLeft(2).Render(truncate(task.Description, titleW+statusW+dueW-4))
	return lipgloss.JoinVertical(lipgloss.Left, line, desc)
}

func (v *TaskListView) renderStatusLine() string {
	if v.status == "" {
		return ""
	}
	if v.statusErr {
		return v.styles.StatusError.Render(v.status) + "\n"
	}
	return v.styles.StatusBar.Render(v.status) + "\n"
}

func (v *TaskListView) renderEditForm(ed manager.Editor) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	errs := v.mgr.FieldErrors()

	titleStyle, descStyle, statusStyle, dueStyle, btnStyle := s.Input, s.Input, s.Input, s.Input, s.Button
	switch v.editFocusIdx {
	case editTitle:
		titleStyle = s.InputFocused
	case editDesc:
		descStyle = s.InputFocused
	case editStatus:
		statusStyle = s.InputFocused
	case editDue:
		dueStyle = s.InputFocused
	case editSave:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-10, 20, 50)

	dueErr := errs[models.FieldDueDate]
	if dueErr != "" && strings.TrimSpace(v.editDue.Value()) != "" {
		dueErr += " Use YYYY-MM-DD."
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(ed.Title()),
		s.TitleMuted.Render("Fill in the details for your task."),
		"",
		s.Label.Render("Title *"),
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		s.FieldError.Render(errs[models.FieldTitle]),
		s.Label.Render("Description *"),
		descStyle.Render(v.editDesc.View()),
		s.FieldError.Render(errs[models.FieldDescription]),
		s.Label.Render("Status *"),
		statusStyle.Width(inputWidth).Render(v.renderStatusPicker()),
		s.FieldError.Render(errs[models.FieldStatus]),
		s.Label.Render("Due Date *"),
		dueStyle.Width(16).Render(v.editDue.View()),
		s.FieldError.Render(dueErr),
		btnStyle.Render(" "+ed.SubmitLabel()+" "),
		v.renderStatusLine(),
		s.Help.Render(v.help.View(keys.FormHelp{KeyMap: v.keys})),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Dialog.Render(form),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderStatusPicker() string {
	s := v.styles
	var opts []string
	for _, st := range models.Statuses() {
		if st == v.editStatus {
			opts = append(opts, s.ListSelected.Render("● "+string(st)))
		} else {
			opts = append(opts, s.ListItem.Render("○ "+string(st)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

func (v *TaskListView) renderDeleteConfirm(cd manager.ConfirmDelete) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	name := cd.TargetID
	if t, ok := v.mgr.Lookup(cd.TargetID); ok {
		name = t.Title
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Confirm Deletion"),
		"",
		lipgloss.NewStyle().Width(clamp(contentWidth-20, 20, 50)).Render(
			fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Delete "),
			"  ",
			s.Button.Render(" N - Cancel "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Dialog.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
