package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SummaryView ViewState = iota
	SessionListView
)

// Data is one consistent snapshot of everything the dashboard renders.
type Data struct {
	Artists  []models.Artist
	Sessions []models.Session
	Report   reports.Report
}

// Loader fetches fresh dashboard data. The dashboard re-fetches after every
// reload rather than subscribing to changes; there is no notification
// mechanism in the store.
type Loader func() (Data, error)

// Model represents the TUI application state.
type Model struct {
	load        Loader
	view        ViewState
	width       int
	height      int
	data        Data
	summaryList list.Model
	sessionList list.Model
	err         error
	help        help.Model
	keys        keyMap
}

type dataLoadedMsg struct {
	data Data
	err  error
}

// NewModel creates a new TUI model with the provided data loader.
func NewModel(load Loader) *Model {
	return &Model{
		load: load,
		view: SummaryView,
		help: help.New(),
		keys: newKeyMap(),
	}
}

// Init initializes the TUI by loading the dashboard data.
func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

func (m *Model) fetch() tea.Cmd {
	return func() tea.Msg {
		data, err := m.load()
		return dataLoadedMsg{data: data, err: err}
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.summaryList.SetSize(msg.Width-4, msg.Height-8)
		m.sessionList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.view == SummaryView {
				m.view = SessionListView
			} else {
				m.view = SummaryView
			}
			return m, nil
		case "r":
			return m, m.fetch()
		}

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.data = msg.data
		m.rebuildLists()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case SummaryView:
		m.summaryList, cmd = m.summaryList.Update(msg)
	case SessionListView:
		m.sessionList, cmd = m.sessionList.Update(msg)
	}
	return m, cmd
}

// rebuildLists recreates both lists from the loaded snapshot.
func (m *Model) rebuildLists() {
	summaryItems := make([]list.Item, len(m.data.Report.Summaries))
	for i, s := range m.data.Report.Summaries {
		summaryItems[i] = summaryItem{summary: s}
	}
	m.summaryList = list.New(summaryItems, list.NewDefaultDelegate(), 0, 0)
	m.summaryList.Title = fmt.Sprintf("Controle por Cliente • Total Recebido %s", shared.FormatBRL(m.data.Report.TotalPaid))

	names := make(map[string]string, len(m.data.Artists))
	for _, a := range m.data.Artists {
		names[a.ID] = a.Name
	}

	sessionItems := make([]list.Item, len(m.data.Sessions))
	for i, s := range m.data.Sessions {
		name := names[s.ArtistID]
		if name == "" {
			name = s.ArtistID
		}
		sessionItems[i] = sessionItem{session: s, artistName: name}
	}
	m.sessionList = list.New(sessionItems, list.NewDefaultDelegate(), 0, 0)
	m.sessionList.Title = fmt.Sprintf("Histórico (%d)", len(m.data.Sessions))

	if m.width > 0 {
		m.summaryList.SetSize(m.width-4, m.height-8)
		m.sessionList.SetSize(m.width-4, m.height-8)
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.due.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch m.view {
	case SummaryView:
		body = m.summaryList.View()
	case SessionListView:
		body = m.sessionList.View()
	}

	return fmt.Sprintf("%s\n%s", body, styles.help.Render(m.help.View(m.keys)))
}
