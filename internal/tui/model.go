package tui

import (
	"fmt"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies a dashboard view.
type Tab int

const (
	TabOverview Tab = iota
	TabAccounts
	TabProperties
)

var tabNames = []string{"Overview", "Accounts", "Properties"}

// Config holds the dependencies the dashboard needs.
type Config struct {
	Storage service.Storage
	Width   int
	Height  int
}

// Model holds the dashboard state.
type Model struct {
	lastError     error
	storage       service.Storage
	breakdown     *aggregate.Breakdown
	accounts      []model.Account
	properties    []model.Property
	series        aggregate.Series
	accountTable  table.Model
	propertyTable table.Model
	growth        aggregate.Growth
	portfolio     aggregate.PortfolioMetrics
	keymap        KeyMap
	tab           Tab
	width         int
	height        int
	showHelp      bool
	quitting      bool
	ready         bool
}

func newModel(cfg Config) Model {
	return Model{
		storage: cfg.Storage,
		keymap:  DefaultKeyMap(),
		tab:     TabOverview,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Init starts the data load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.loadData())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTables()

	case dataLoadedMsg:
		m.series = msg.series
		m.growth = msg.growth
		m.breakdown = msg.breakdown
		m.accounts = msg.accounts
		m.properties = msg.properties
		m.portfolio = msg.portfolio
		m.accountTable = newAccountTable(msg.accounts)
		m.propertyTable = newPropertyTable(msg.properties)
		m.resizeTables()
		m.ready = true

	case errorMsg:
		m.lastError = msg.err
		m.ready = true
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
	case key.Matches(msg, m.keymap.Overview):
		m.tab = TabOverview
	case key.Matches(msg, m.keymap.Accounts):
		m.tab = TabAccounts
	case key.Matches(msg, m.keymap.Props):
		m.tab = TabProperties
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		var cmd tea.Cmd
		switch m.tab {
		case TabAccounts:
			m.accountTable, cmd = m.accountTable.Update(msg)
		case TabProperties:
			m.propertyTable, cmd = m.propertyTable.Update(msg)
		case TabOverview:
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) resizeTables() {
	height := m.height - 10
	if height < 4 {
		height = 4
	}
	m.accountTable.SetHeight(height)
	m.propertyTable.SetHeight(height)
}

// View renders the active tab.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return loadingStyle.Render("Loading portfolio...")
	}
	if m.lastError != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.lastError))
	}

	var body string
	switch m.tab {
	case TabAccounts:
		body = m.renderAccounts()
	case TabProperties:
		body = m.renderProperties()
	default:
		body = m.renderOverview()
	}

	sections := []string{m.renderTabs(), body}
	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func newAccountTable(accounts []model.Account) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Institution", Width: 20},
		{Title: "Balance", Width: 14},
	}

	rows := make([]table.Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, table.Row{
			a.Name,
			cli.CategoryLabel(a.Category),
			a.Institution,
			cli.Money(a.Amount),
		})
	}

	return newStyledTable(columns, rows)
}

func newPropertyTable(properties []model.Property) table.Model {
	columns := []table.Column{
		{Title: "Address", Width: 30},
		{Title: "Type", Width: 16},
		{Title: "Value", Width: 14},
		{Title: "Equity", Width: 14},
	}

	rows := make([]table.Row, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, table.Row{
			p.Address,
			string(p.Type),
			cli.Money(p.Value),
			cli.Money(p.Equity()),
		})
	}

	return newStyledTable(columns, rows)
}

func newStyledTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(cli.PrimaryColor).
		Bold(true)
	t.SetStyles(s)

	return t
}
