package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/store"
	"github.com/mfigueiredo/tarefa/internal/view"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusConfirm
)

// ListModel represents the TUI model for the task list
type ListModel struct {
	st    *store.Store
	cfg   *config.Config
	theme Theme

	// Current projection of the store
	tasks    []models.Task
	selected int

	// UI state
	focus  Focus
	width  int
	height int
	status string

	// Add wizard overlay, non-nil while active
	adding *AddModel

	// Pagination
	currentPage  int
	tasksPerPage int
}

// NewListModel creates a new list TUI model
func NewListModel(st *store.Store, cfg *config.Config) ListModel {
	m := ListModel{
		st:           st,
		cfg:          cfg,
		theme:        themeFor(st.Dark()),
		focus:        FocusTable,
		tasksPerPage: 10,
	}
	m.refresh()
	return m
}

// refresh recomputes the visible projection and clamps the selection
func (m *ListModel) refresh() {
	m.tasks = m.st.Visible()
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	maxPages := (len(m.tasks) + m.tasksPerPage - 1) / m.tasksPerPage
	if maxPages == 0 {
		maxPages = 1
	}
	if m.currentPage >= maxPages {
		m.currentPage = maxPages - 1
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The add wizard gets every message while it is open
	if m.adding != nil {
		child, cmd := m.adding.Update(msg)
		if am, ok := child.(AddModel); ok {
			m.adding = &am
			if am.done {
				if am.completed {
					m.status = fmt.Sprintf("Added \"%s\"", am.createdText)
				}
				m.adding = nil
				m.refresh()
			}
		}
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(2) - pagination(1) - help(1) - borders and margins
		availableHeight := m.height - 12
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.tasksPerPage = availableHeight
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusConfirm {
			return m.handleConfirmKeys(msg)
		}
		return m.handleTableKeys(msg)
	}

	return m, nil
}

// handleTableKeys handles key input for the task table
func (m ListModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			if m.selected < m.currentPage*m.tasksPerPage && m.currentPage > 0 {
				m.currentPage--
			}
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
			if m.selected >= (m.currentPage+1)*m.tasksPerPage {
				m.currentPage++
			}
		}
		return m, nil

	case "left", "h":
		if m.currentPage > 0 {
			m.currentPage--
			m.selected = m.currentPage * m.tasksPerPage
		}
		return m, nil

	case "right", "l":
		maxPages := (len(m.tasks) + m.tasksPerPage - 1) / m.tasksPerPage
		if m.currentPage < maxPages-1 {
			m.currentPage++
			m.selected = m.currentPage * m.tasksPerPage
		}
		return m, nil

	case " ", "space", "enter":
		if task := m.selectedTask(); task != nil {
			toggled, err := m.st.ToggleCompleted(task.ID)
			if err != nil {
				m.status = fmt.Sprintf("Error: %v", err)
			} else if toggled != nil && toggled.Completed {
				m.status = fmt.Sprintf("Completed \"%s\"", toggled.Text)
			} else if toggled != nil {
				m.status = fmt.Sprintf("\"%s\" back to pending", toggled.Text)
			}
			m.refresh()
		}
		return m, nil

	case "d":
		if task := m.selectedTask(); task != nil {
			m.st.RequestRemove(task.ID)
			m.focus = FocusConfirm
		}
		return m, nil

	case "f":
		m.st.SetStatusFilter(nextStatusFilter(m.st.StatusFilter()))
		m.selected = 0
		m.currentPage = 0
		m.refresh()
		return m, nil

	case "c":
		m.st.SetCategoryFilter(nextCategoryFilter(m.st.CategoryFilter()))
		m.selected = 0
		m.currentPage = 0
		m.refresh()
		return m, nil

	case "t":
		dark, err := m.st.ToggleTheme()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		}
		m.theme = themeFor(dark)
		return m, nil

	case "a":
		child := newAddModel(m.st, m.cfg, nil, false)
		m.adding = &child
		return m, m.adding.Init()
	}

	return m, nil
}

// handleConfirmKeys handles key input for the delete confirmation modal
func (m ListModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		removed, err := m.st.ConfirmRemove()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		} else if removed != nil {
			m.status = fmt.Sprintf("Deleted \"%s\"", removed.Text)
		}
		m.focus = FocusTable
		m.refresh()
		return m, nil

	case "n", "esc", "q":
		m.st.CancelRemove()
		m.focus = FocusTable
		return m, nil
	}
	return m, nil
}

// selectedTask returns the task under the cursor, nil when the list is empty
func (m ListModel) selectedTask() *models.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

// nextStatusFilter cycles all -> pending -> completed -> all
func nextStatusFilter(f models.StatusFilter) models.StatusFilter {
	switch f {
	case models.StatusAll:
		return models.StatusPending
	case models.StatusPending:
		return models.StatusCompleted
	default:
		return models.StatusAll
	}
}

// nextCategoryFilter cycles all -> each category -> all
func nextCategoryFilter(current string) string {
	if current == models.CategoryAll {
		return models.Categories[0]
	}
	for i, c := range models.Categories {
		if c == current {
			if i == len(models.Categories)-1 {
				return models.CategoryAll
			}
			return models.Categories[i+1]
		}
	}
	return models.CategoryAll
}

// View renders the TUI
func (m ListModel) View() string {
	if m.adding != nil {
		return m.adding.View()
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	table := m.renderTaskTable(m.width - 2)

	var bottom string
	switch {
	case m.focus == FocusConfirm:
		bottom = m.renderConfirmBar()
	default:
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		header,
		table,
		"",
		bottom,
	)
}

// renderHeader renders the title and active filters
func (m ListModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.AccentMain))

	filterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.SecondaryText))

	filters := fmt.Sprintf("  status: %s · category: %s", m.st.StatusFilter(), m.st.CategoryFilter())
	return titleStyle.Render("📋 tarefa") + filterStyle.Render(filters)
}

// renderTaskTable renders the task table for the current page
func (m ListModel) renderTaskTable(width int) string {
	var b strings.Builder

	if len(m.tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.SecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No tasks match the active filters"))
	} else {
		columnHeaderStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.theme.AccentBright)).
			Padding(0, 1)

		availableWidth := width - 4
		stateWidth := 6
		categoryWidth := 10
		priorityWidth := 8
		dueWidth := 12
		textWidth := availableWidth - stateWidth - categoryWidth - priorityWidth - dueWidth - 8
		if textWidth < 20 {
			textWidth = 20
		}

		headers := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
			stateWidth, "STATE",
			textWidth, "TEXT",
			categoryWidth, "CATEGORY",
			priorityWidth, "PRIORITY",
			dueWidth, "DUE")
		b.WriteString(columnHeaderStyle.Render(headers))
		b.WriteString("\n\n")

		startIndex := m.currentPage * m.tasksPerPage
		endIndex := startIndex + m.tasksPerPage
		if endIndex > len(m.tasks) {
			endIndex = len(m.tasks)
		}

		for i := startIndex; i < endIndex; i++ {
			b.WriteString(m.renderTaskRow(m.tasks[i], i == m.selected, textWidth, stateWidth, categoryWidth, priorityWidth, dueWidth))
			b.WriteString("\n")
		}

		if m.tasksPerPage < len(m.tasks) {
			totalPages := (len(m.tasks) + m.tasksPerPage - 1) / m.tasksPerPage
			pageInfo := fmt.Sprintf("Page %d/%d (%d tasks)", m.currentPage+1, totalPages, len(m.tasks))
			pageStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.HelpText)).
				Align(lipgloss.Center).
				Width(width - 2).
				MarginTop(1)
			b.WriteString(pageStyle.Render(pageInfo))
		}
	}

	outerBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(width)

	return outerBorderStyle.Render(b.String())
}

// renderTaskRow renders a single table row
func (m ListModel) renderTaskRow(task models.Task, isSelected bool, textWidth, stateWidth, categoryWidth, priorityWidth, dueWidth int) string {
	text := task.Text
	if len(text) > textWidth-1 && textWidth > 4 {
		text = text[:textWidth-4] + "..."
	}

	stateText := "○"
	if task.Completed {
		stateText = "✓"
	}

	dueText := "-"
	if task.Due != nil {
		now := time.Now()
		switch {
		case view.IsOverdue(task.Due, now) && !task.Completed:
			dueText = "OVERDUE"
		default:
			dueText = view.FormatDate(*task.Due)
		}
	}

	var stateColor string
	if task.Completed {
		stateColor = m.theme.Success
	} else {
		stateColor = m.theme.SecondaryText
	}

	priorityColor := m.theme.SecondaryText
	switch task.Priority {
	case models.PriorityHigh:
		priorityColor = m.theme.Error
	case models.PriorityMedium:
		priorityColor = m.theme.Warning
	}

	dueColor := m.theme.DisabledText
	if dueText == "OVERDUE" {
		dueColor = m.theme.Error
	} else if task.Due != nil {
		dueColor = m.theme.AccentBright
	}

	rowContent := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
		stateWidth, lipgloss.NewStyle().Foreground(lipgloss.Color(stateColor)).Render(stateText),
		textWidth, text,
		categoryWidth, task.Category,
		priorityWidth, lipgloss.NewStyle().Foreground(lipgloss.Color(priorityColor)).Render(task.Priority.String()),
		dueWidth, lipgloss.NewStyle().Foreground(lipgloss.Color(dueColor)).Render(dueText))

	if isSelected {
		selectedBorder := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.AccentMain)).
			Bold(true).
			Padding(0, 1)
		return selectedBorder.Render(rowContent)
	}
	return " " + rowContent
}

// renderConfirmBar renders the delete confirmation prompt
func (m ListModel) renderConfirmBar() string {
	pending := m.st.PendingRemove()
	if pending == nil {
		return ""
	}

	confirmStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Warning))

	return confirmStyle.Render(fmt.Sprintf("Delete \"%s\"? y/n", pending.Text))
}

// renderHelpBar renders the help bar with hotkey hints
func (m ListModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.HelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	help := "↑/↓ nav · space toggle · a add · d delete · f status · c category · t theme · q quit"
	if m.status != "" {
		help = m.status + "  ·  " + help
	}
	return helpStyle.Render(help)
}
