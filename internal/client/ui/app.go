// Package ui implements the terminal client: an authentication screen and a
// category-grouped command browser with copy, delete, and add actions.
package ui

import (
	"context"
	"strings"

	"github.com/atinyakov/CmdKeeper/internal/client/api"
	"github.com/atinyakov/CmdKeeper/internal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type mode int

const (
	modeAuth mode = iota
	modeList
	modeAdd
)

// defaultExpandedCategory is the category shown open on first render.
// It is a fixed default, not derived from the fetched data.
const defaultExpandedCategory = "Backend"

// row is one visible line of the list view: either a category header or a
// command belonging to the expanded category.
type row struct {
	header   bool
	category string
	command  *models.Command
}

// App is the bubbletea model for the client.
type App struct {
	client *api.Client
	log    *zap.Logger

	mode    mode
	width   int
	height  int
	err     string
	status  string
	loading bool

	// Auth screen
	authInputs  []textinput.Model
	authFocus   int
	registering bool

	// List view
	commands []models.Command
	groups   []Group
	expanded string
	cursor   int

	// Add form
	formInputs []textinput.Model
	formFocus  int
}

// NewApp creates the client model. The API client must already be configured
// with the server base URL; authentication happens inside the app.
func NewApp(client *api.Client, log *zap.Logger) *App {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	return &App{
		client:     client,
		log:        log,
		mode:       modeAuth,
		expanded:   defaultExpandedCategory,
		authInputs: []textinput.Model{username, password},
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Messages produced by API commands.
type (
	commandsMsg   []models.Command
	createdMsg    *models.Command
	deletedMsg    struct{ id string }
	loggedInMsg   struct{}
	registeredMsg struct{}
	errMsg        struct{ err error }
)

func (a *App) fetchCommands() tea.Cmd {
	return func() tea.Msg {
		commands, err := a.client.Commands(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return commandsMsg(commands)
	}
}

func (a *App) login(username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.Login(context.Background(), username, password); err != nil {
			return errMsg{err}
		}
		return loggedInMsg{}
	}
}

func (a *App) register(username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.Register(context.Background(), username, password); err != nil {
			return errMsg{err}
		}
		return registeredMsg{}
	}
}

func (a *App) createCommand(title, command, category string) tea.Cmd {
	return func() tea.Msg {
		created, err := a.client.CreateCommand(context.Background(), title, command, category)
		if err != nil {
			return errMsg{err}
		}
		return createdMsg(created)
	}
}

func (a *App) deleteCommand(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteCommand(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return deletedMsg{id: id}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width - 4
		a.height = msg.Height - 2
		return a, nil

	case errMsg:
		a.loading = false
		a.err = msg.err.Error()
		return a, nil

	case registeredMsg:
		a.loading = false
		a.registering = false
		a.status = "Account created, please log in"
		a.authInputs[1].SetValue("")
		return a, nil

	case loggedInMsg:
		a.mode = modeList
		a.status = ""
		a.loading = true
		return a, a.fetchCommands()

	case commandsMsg:
		a.loading = false
		a.setCommands(msg)
		return a, nil

	case createdMsg:
		// Navigate back to the list, which refetches on entry.
		a.mode = modeList
		a.status = "Added!"
		a.loading = true
		return a, a.fetchCommands()

	case deletedMsg:
		// Server confirmed the delete: drop the record locally, no refetch.
		kept := a.commands[:0]
		for _, cmd := range a.commands {
			if cmd.ID != msg.id {
				kept = append(kept, cmd)
			}
		}
		a.setCommands(kept)
		a.status = "Deleted!"
		return a, nil

	case tea.KeyMsg:
		a.status = ""

		switch a.mode {
		case modeAuth:
			return a.updateAuth(msg)
		case modeList:
			return a.updateList(msg)
		case modeAdd:
			return a.updateForm(msg)
		}
	}

	return a, nil
}

// setCommands replaces local state and regroups, clamping the cursor.
func (a *App) setCommands(commands []models.Command) {
	a.commands = commands
	a.groups = GroupByCategory(commands)
	if rows := a.visibleRows(); a.cursor >= len(rows) {
		a.cursor = max(0, len(rows)-1)
	}
}

func (a *App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.err = ""
		return a, nil

	case "tab", "shift+tab", "up", "down":
		a.authFocus = (a.authFocus + 1) % len(a.authInputs)
		for i := range a.authInputs {
			a.authInputs[i].Blur()
		}
		return a, a.authInputs[a.authFocus].Focus()

	case "ctrl+r":
		a.registering = !a.registering
		return a, nil

	case "enter":
		username := strings.TrimSpace(a.authInputs[0].Value())
		password := a.authInputs[1].Value()
		if username == "" || password == "" {
			a.err = "Username and password are required"
			return a, nil
		}
		a.err = ""
		a.loading = true
		if a.registering {
			return a, a.register(username, password)
		}
		return a, a.login(username, password)

	default:
		var cmd tea.Cmd
		a.authInputs[a.authFocus], cmd = a.authInputs[a.authFocus].Update(msg)
		return a, cmd
	}
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.visibleRows()

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "esc":
		a.err = ""

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(rows)-1 {
			a.cursor++
		}

	case "enter":
		if a.cursor < len(rows) && rows[a.cursor].header {
			a.toggleCategory(rows[a.cursor].category)
		}

	case "c":
		if a.cursor < len(rows) && rows[a.cursor].command != nil {
			a.copyToClipboard(rows[a.cursor].command.Command)
		}

	case "d":
		if a.cursor < len(rows) && rows[a.cursor].command != nil {
			return a, a.deleteCommand(rows[a.cursor].command.ID)
		}

	case "a":
		a.mode = modeAdd
		a.err = ""
		a.initForm()
	}

	return a, nil
}

// toggleCategory expands the given category, or collapses everything when it
// is already the expanded one.
func (a *App) toggleCategory(category string) {
	if a.expanded == category {
		a.expanded = ""
	} else {
		a.expanded = category
	}
	if rows := a.visibleRows(); a.cursor >= len(rows) {
		a.cursor = max(0, len(rows)-1)
	}
}

// copyToClipboard is fire-and-forget: a failure is logged and ignored.
func (a *App) copyToClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		a.log.Warn("failed to copy to clipboard", zap.Error(err))
		return
	}
	a.status = "Copied to clipboard!"
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.mode = modeList
		a.err = ""
		return a, nil

	case "tab", "down":
		a.formFocus = (a.formFocus + 1) % len(a.formInputs)
		return a, a.focusFormInput()

	case "shift+tab", "up":
		a.formFocus--
		if a.formFocus < 0 {
			a.formFocus = len(a.formInputs) - 1
		}
		return a, a.focusFormInput()

	case "enter":
		title := strings.TrimSpace(a.formInputs[0].Value())
		command := strings.TrimSpace(a.formInputs[1].Value())
		category := strings.TrimSpace(a.formInputs[2].Value())
		if title == "" || command == "" || category == "" {
			a.err = "Title, command and category are required"
			return a, nil
		}
		a.err = ""
		a.loading = true
		return a, a.createCommand(title, command, category)

	default:
		var cmd tea.Cmd
		a.formInputs[a.formFocus], cmd = a.formInputs[a.formFocus].Update(msg)
		return a, cmd
	}
}

func (a *App) initForm() {
	a.formInputs = make([]textinput.Model, 3)

	title := textinput.New()
	title.Placeholder = "Enter command title"
	title.Focus()

	command := textinput.New()
	command.Placeholder = "Enter command"

	category := textinput.New()
	category.Placeholder = "Enter category"

	a.formInputs[0] = title
	a.formInputs[1] = command
	a.formInputs[2] = category
	a.formFocus = 0
}

func (a *App) focusFormInput() tea.Cmd {
	for i := range a.formInputs {
		a.formInputs[i].Blur()
	}
	return a.formInputs[a.formFocus].Focus()
}

// visibleRows flattens the grouping into renderable lines: every category
// header plus the commands of the expanded category only.
func (a *App) visibleRows() []row {
	var rows []row
	for _, g := range a.groups {
		rows = append(rows, row{header: true, category: g.Category})
		if g.Category != a.expanded {
			continue
		}
		for i := range g.Commands {
			rows = append(rows, row{command: &g.Commands[i]})
		}
	}
	return rows
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cmdkeeper"))
	b.WriteString("\n\n")

	if a.err != "" {
		b.WriteString(errorStyle.Render("Error: " + a.err))
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render("(esc to dismiss)"))
		b.WriteString("\n\n")
	}

	switch a.mode {
	case modeAuth:
		b.WriteString(a.renderAuth())
	case modeAdd:
		b.WriteString(a.renderForm())
	default:
		b.WriteString(a.renderList())
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderHelp())

	return appStyle.Render(b.String())
}

func (a *App) renderAuth() string {
	var b strings.Builder

	title := "Log in"
	if a.registering {
		title = "Create account"
	}
	b.WriteString(labelStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Username", "Password"}
	for i, input := range a.authInputs {
		b.WriteString(labelStyle.Render(labels[i] + ": "))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) renderList() string {
	if a.loading {
		return mutedStyle.Render("Loading...\n")
	}
	rows := a.visibleRows()
	if len(rows) == 0 {
		return mutedStyle.Render("No commands yet. Press 'a' to add one.\n")
	}

	var lines []string
	for i, r := range rows {
		prefix := "  "
		if i == a.cursor {
			prefix = "▸ "
		}

		if r.header {
			style := categoryStyle
			marker := "+"
			if r.category == a.expanded {
				style = expandedCategoryStyle
				marker = "-"
			}
			lines = append(lines, style.Render(prefix+marker+" "+r.category))
			continue
		}

		style := normalStyle
		if i == a.cursor {
			style = selectedStyle
		}
		lines = append(lines, style.Render(prefix+"  "+r.command.Title))
		lines = append(lines, cmdPreviewStyle.Render("      "+truncate(r.command.Command, a.width-10)))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (a *App) renderForm() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Add New Command"))
	b.WriteString("\n\n")

	labels := []string{"Title", "Command", "Category"}
	for i, input := range a.formInputs {
		b.WriteString(labelStyle.Render(labels[i] + ": "))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) renderHelp() string {
	var keys []struct{ key, desc string }
	switch a.mode {
	case modeAuth:
		keys = []struct{ key, desc string }{
			{"enter", "submit"},
			{"tab", "switch field"},
			{"ctrl+r", "toggle register"},
			{"ctrl+c", "quit"},
		}
	case modeAdd:
		keys = []struct{ key, desc string }{
			{"tab", "next field"},
			{"enter", "save"},
			{"esc", "cancel"},
		}
	default:
		keys = []struct{ key, desc string }{
			{"enter", "expand/collapse"},
			{"c", "copy"},
			{"d", "delete"},
			{"a", "add"},
			{"q", "quit"},
		}
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, helpKeyStyle.Render(k.key)+" "+helpStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
