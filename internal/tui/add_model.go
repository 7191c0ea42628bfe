package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/parser"
	"github.com/mfigueiredo/tarefa/internal/store"
)

// Step represents the current step in the add wizard
type Step int

const (
	StepText Step = iota
	StepCategory
	StepPriority
	StepDue
	StepConfirm
)

// AddModel represents the TUI model for the add task wizard
type AddModel struct {
	st    *store.Store
	cfg   *config.Config
	theme Theme

	step      Step
	textInput textinput.Model
	dueInput  textinput.Model

	// Choice steps
	categoryIndex int
	priorityIndex int

	width  int
	height int

	// Run in its own bubbletea program (true) or embedded in the list (false)
	standalone bool

	// State
	validationErr string
	err           error
	completed     bool
	cancelled     bool
	done          bool
	createdText   string
}

var priorityChoices = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// NewAddModel creates a new add wizard model for standalone use
func NewAddModel(st *store.Store, cfg *config.Config, prefilled map[string]string) AddModel {
	return newAddModel(st, cfg, prefilled, true)
}

func newAddModel(st *store.Store, cfg *config.Config, prefilled map[string]string, standalone bool) AddModel {
	theme := themeFor(st.Dark())

	textInput := textinput.New()
	textInput.Placeholder = "What needs doing? (required)"
	textInput.CharLimit = 200
	textInput.Width = 60
	textInput.Focus()

	dueInput := textinput.New()
	dueInput.Placeholder = "dd/mm/yyyy, 3 days, 24 hours, 2 weeks (Enter to skip)"
	dueInput.CharLimit = 50
	dueInput.Width = 60

	for _, in := range []*textinput.Model{&textInput, &dueInput} {
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SecondaryText))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.AccentBright))
	}

	m := AddModel{
		st:         st,
		cfg:        cfg,
		theme:      theme,
		step:       StepText,
		textInput:  textInput,
		dueInput:   dueInput,
		standalone: standalone,
	}

	// Defaults from config
	if i := indexOfCategory(cfg.DefaultCategory); i >= 0 {
		m.categoryIndex = i
	}
	if p, ok := models.ParsePriority(cfg.DefaultPriority); ok {
		m.priorityIndex = int(p) - 1
	}

	// Pre-filled values from flags or smart parsing
	if text, ok := prefilled["text"]; ok {
		m.textInput.SetValue(text)
	}
	if category, ok := prefilled["category"]; ok {
		if matched, valid := models.MatchCategory(category); valid {
			m.categoryIndex = indexOfCategory(matched)
		}
	}
	if priority, ok := prefilled["priority"]; ok {
		if p, valid := models.ParsePriority(priority); valid {
			m.priorityIndex = int(p) - 1
		}
	}
	if due, ok := prefilled["due"]; ok {
		m.dueInput.SetValue(due)
	}

	return m
}

func indexOfCategory(name string) int {
	for i, c := range models.Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// Init initializes the model
func (m AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleStepKeys(msg)
	}

	return m.updateInputs(msg)
}

// handleStepKeys handles key input for the current wizard step
func (m AddModel) handleStepKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case StepText:
		if msg.String() == "enter" {
			if strings.TrimSpace(m.textInput.Value()) == "" {
				m.validationErr = "Task text is required"
				return m, nil
			}
			m.validationErr = ""
			m.step = StepCategory
			return m, nil
		}
		return m.updateInputs(msg)

	case StepCategory:
		switch msg.String() {
		case "up", "k", "left", "h":
			if m.categoryIndex > 0 {
				m.categoryIndex--
			}
		case "down", "j", "right", "l":
			if m.categoryIndex < len(models.Categories)-1 {
				m.categoryIndex++
			}
		case "enter":
			m.step = StepPriority
		}
		return m, nil

	case StepPriority:
		switch msg.String() {
		case "up", "k", "left", "h":
			if m.priorityIndex > 0 {
				m.priorityIndex--
			}
		case "down", "j", "right", "l":
			if m.priorityIndex < len(priorityChoices)-1 {
				m.priorityIndex++
			}
		case "enter":
			m.step = StepDue
			return m, m.dueInput.Focus()
		}
		return m, nil

	case StepDue:
		if msg.String() == "enter" {
			if _, err := parser.ParseDueDate(strings.TrimSpace(m.dueInput.Value())); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			m.validationErr = ""
			m.dueInput.Blur()
			m.step = StepConfirm
			return m, nil
		}
		return m.updateInputs(msg)

	case StepConfirm:
		switch msg.String() {
		case "enter", "y":
			return m.save()
		case "n", "backspace":
			// Back to the first step for corrections
			m.step = StepText
			return m, m.textInput.Focus()
		}
		return m, nil
	}

	return m, nil
}

// save commits the task to the store
func (m AddModel) save() (tea.Model, tea.Cmd) {
	due, err := parser.ParseDueDate(strings.TrimSpace(m.dueInput.Value()))
	if err != nil {
		m.validationErr = err.Error()
		m.step = StepDue
		return m, m.dueInput.Focus()
	}

	task, err := m.st.Add(
		m.textInput.Value(),
		models.Categories[m.categoryIndex],
		priorityChoices[m.priorityIndex],
		due,
	)
	if err != nil {
		m.err = err
	} else if task != nil {
		m.completed = true
		m.createdText = task.Text
	}
	m.done = true

	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// updateInputs forwards messages to the focused text input
func (m AddModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case StepText:
		m.textInput, cmd = m.textInput.Update(msg)
	case StepDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

// View renders the wizard
func (m AddModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.AccentMain))
	b.WriteString(titleStyle.Render("📋 New task"))
	b.WriteString("\n\n")

	b.WriteString(m.renderStep(StepText, "Text", m.renderTextStep()))
	b.WriteString(m.renderStep(StepCategory, "Category", m.renderChoices(categoryNames(), m.categoryIndex, m.step == StepCategory)))
	b.WriteString(m.renderStep(StepPriority, "Priority", m.renderChoices(priorityNames(), m.priorityIndex, m.step == StepPriority)))
	b.WriteString(m.renderStep(StepDue, "Due date", m.renderDueStep()))

	if m.step == StepConfirm {
		b.WriteString("\n")
		confirmStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Success)).
			Bold(true)
		b.WriteString(confirmStyle.Render("Save this task? enter/y save · n edit · esc cancel"))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Error))
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.HelpText)).
		Italic(true).
		MarginTop(1)
	b.WriteString(helpStyle.Render("enter next · esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// renderStep renders one labeled wizard row, highlighting the active step
func (m AddModel) renderStep(step Step, label, content string) string {
	labelColor := m.theme.SecondaryText
	marker := "  "
	if m.step == step {
		labelColor = m.theme.AccentBright
		marker = "› "
	}
	labelStyle := lipgloss.NewStyle().
		Bold(m.step == step).
		Foreground(lipgloss.Color(labelColor)).
		Width(12)

	return marker + labelStyle.Render(label) + content + "\n"
}

// renderTextStep renders the text input or its committed value
func (m AddModel) renderTextStep() string {
	if m.step == StepText {
		return m.textInput.View()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.PrimaryText)).Render(m.textInput.Value())
}

// renderDueStep renders the due input or its committed value
func (m AddModel) renderDueStep() string {
	if m.step == StepDue {
		return m.dueInput.View()
	}
	value := strings.TrimSpace(m.dueInput.Value())
	if value == "" {
		value = "none"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.PrimaryText)).Render(value)
}

// renderChoices renders a horizontal choice list with the selection marked
func (m AddModel) renderChoices(options []string, selected int, active bool) string {
	parts := make([]string, 0, len(options))
	for i, option := range options {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.DisabledText))
		if i == selected {
			color := m.theme.PrimaryText
			if active {
				color = m.theme.AccentBright
			}
			style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
			option = "[" + option + "]"
		}
		parts = append(parts, style.Render(option))
	}
	return strings.Join(parts, "  ")
}

func categoryNames() []string {
	return models.Categories
}

func priorityNames() []string {
	names := make([]string, len(priorityChoices))
	for i, p := range priorityChoices {
		names[i] = p.String()
	}
	return names
}
