package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prwatch/internal/app"
	"prwatch/internal/menu"
)

type model struct {
	styles  styles
	ctx     context.Context
	cfgPath string
	app     *app.App

	menu   menu.Menu
	rows   []menu.Row
	cursor int

	spinner   spinner.Model
	isLoading bool
	status    string
	fatalErr  error
}

func initialModel(ctx context.Context, cfgPath string, theme ThemeName) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Points

	return &model{
		styles:    GetTheme(theme),
		ctx:       ctx,
		cfgPath:   cfgPath,
		spinner:   sp,
		isLoading: true,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(m.ctx, m.cfgPath), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var spCmd tea.Cmd
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case appInitializedMsg:
		if msg.err != nil {
			m.fatalErr = msg.err
			return m, tea.Quit
		}
		m.app = msg.app
		m.status = "Waiting for the first poll..."
		return m, tea.Batch(loadMenuCmd(m.app), menuTickCmd())

	case menuMsg:
		m.isLoading = false
		m.setMenu(msg.menu)
		return m, spCmd

	case tickMsg:
		if m.app == nil {
			return m, menuTickCmd()
		}
		return m, tea.Batch(loadMenuCmd(m.app), menuTickCmd())

	case openedMsg:
		if msg.err != nil {
			m.status = "Could not open browser: " + msg.err.Error()
		} else {
			m.status = "Opened " + msg.url
		}
		return m, loadMenuCmd(m.app)

	case errorMsg:
		m.status = msg.Error()
		return m, nil
	}

	return m, spCmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case "r":
		if m.app == nil {
			return m, nil
		}
		m.status = "Refreshing..."
		return m, refreshCmd(m.app)

	case "s":
		if m.app == nil {
			return m, nil
		}
		m.status = "Marked all as seen."
		return m, markSeenCmd(m.app)

	case "enter", "o":
		if m.app == nil || m.cursor >= len(m.rows) {
			return m, nil
		}
		return m, openCmd(m.app, m.rows[m.cursor].URL)
	}

	return m, nil
}

// setMenu swaps in a fresh menu and keeps the cursor on the same pull
// request when it still exists.
func (m *model) setMenu(next menu.Menu) {
	var selectedURL string
	if m.cursor < len(m.rows) {
		selectedURL = m.rows[m.cursor].URL
	}

	m.menu = next
	m.rows = m.rows[:0]
	for _, section := range next.Sections {
		m.rows = append(m.rows, section.Rows...)
	}

	m.cursor = 0
	for i, row := range m.rows {
		if row.URL == selectedURL {
			m.cursor = i
			break
		}
	}
}

func (m *model) View() string {
	if m.fatalErr != nil {
		return m.styles.error.Render("Failed to start: "+m.fatalErr.Error()) + "\n"
	}
	if m.app == nil || m.isLoading {
		return fmt.Sprintf("\n  %s starting prwatch...\n\n", m.spinner.View())
	}

	header := fmt.Sprintf("prwatch  %d open", m.menu.Total)
	if m.menu.HasUnseen {
		header += "  " + m.styles.badge.Render("● unseen activity")
	}

	var body []string
	body = append(body, m.styles.header.Render(header))

	if m.menu.Total == 0 {
		body = append(body, m.styles.inactive.Render("No open pull requests."))
	}

	idx := 0
	for _, section := range m.menu.Sections {
		body = append(body, m.styles.section.Render(fmt.Sprintf("%s (%d)", section.Title, len(section.Rows))))
		for _, row := range section.Rows {
			line := fmt.Sprintf("%s %s %s  %s  @%s", row.StatusGlyph, row.ActivityGlyph, row.Repo, row.Title, row.Author)
			if idx == m.cursor {
				body = append(body, m.styles.selected.Render("> "+line))
			} else {
				body = append(body, m.styles.row.Render(line))
			}
			idx++
		}
	}

	if m.status != "" {
		body = append(body, "", m.styles.inactive.Render(m.status))
	}
	body = append(body, m.styles.help.Render("↑/↓ move · enter open · r refresh · s mark seen · q quit"))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, body...)) + "\n"
}
