// Package console is the terminal operator console.
package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/station"
)

// DefaultRefresh is how often the console re-reads the store.
const DefaultRefresh = 2 * time.Second

type view int

const (
	viewStations view = iota
	viewFailures
	viewMaintenance
)

var viewNames = []string{"Stations", "Failures", "Maintenance"}

type refreshMsg time.Time

var (
	colorOK    = lipgloss.Color("10")
	colorWarn  = lipgloss.Color("11")
	colorAlert = lipgloss.Color("9")
	colorDim   = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tabStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeTab  = tabStyle.Reverse(true)
)

type model struct {
	store    access.OperatorStore
	refresh  time.Duration
	table    table.Model
	view     view
	width    int
	height   int
	help     bool
	status   string
	states   []station.OperationalState
	failures []station.FailureEvent
	actions  []station.MaintenanceAction
}

func newModel(store access.OperatorStore, refresh time.Duration) model {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	m := model{
		store:   store,
		refresh: refresh,
		table:   table.New(table.WithFocused(true), table.WithHeight(8)),
		width:   100,
	}
	m.reload()
	return m
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(m.tableHeight())
		m.reload()
		return m, nil
	case refreshMsg:
		m.reload()
		return m, m.tick()
	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h", "?":
			m.help = true
			return m, nil
		case "tab":
			m.switchView((m.view + 1) % view(len(viewNames)))
			return m, nil
		case "shift+tab":
			m.switchView((m.view + view(len(viewNames)) - 1) % view(len(viewNames)))
			return m, nil
		case "r":
			m.reload()
			m.status = "refreshed"
			return m, nil
		case "a", "c", "e", "d":
			m.act(msg.String())
			m.reload()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) switchView(v view) {
	m.view = v
	m.status = ""
	m.table.SetRows(nil)
	m.table.SetCursor(0)
	m.reload()
}

// act runs the operator action bound to key on the selected row.
func (m *model) act(key string) {
	i := m.table.Cursor()
	switch m.view {
	case viewFailures:
		if key != "a" || i < 0 || i >= len(m.failures) {
			return
		}
		id := m.failures[i].ID
		if m.store.AcknowledgeFailure(id) {
			m.status = "acknowledged " + id
		} else {
			m.status = id + " no longer exists"
		}
	case viewMaintenance:
		if i < 0 || i >= len(m.actions) {
			return
		}
		next := map[string]station.ActionStatus{
			"a": station.ActionAcknowledged,
			"c": station.ActionCompleted,
			"e": station.ActionEscalated,
			"d": station.ActionDismissed,
		}[key]
		id := m.actions[i].ID
		ok, err := m.store.UpdateMaintenanceActionStatus(id, next)
		switch {
		case err != nil:
			m.status = err.Error()
		case !ok:
			m.status = id + " no longer exists"
		default:
			m.status = fmt.Sprintf("%s → %s", id, next)
		}
	}
}

// reload re-reads the store and rebuilds the table for the current view.
func (m *model) reload() {
	m.states = m.store.OperationalStates()
	m.failures = m.store.FailureEvents()
	m.actions = m.store.MaintenanceActions()

	var cols []table.Column
	var rows []table.Row
	switch m.view {
	case viewStations:
		cols = columns(m.width, []string{"ID", "Name", "Status", "Chargers", "Queue", "Batteries", "Alerts", "Uptime", "Eff."}, []int{8, 22, 9, 9, 6, 9, 6, 8, 7})
		for _, o := range m.states {
			rows = append(rows, table.Row{
				o.StationID, o.StationName, string(o.Status),
				fmt.Sprintf("%d/%d", o.ActiveChargers, o.TotalChargers),
				fmt.Sprint(o.CurrentQueue), fmt.Sprint(o.BatteryInventory), fmt.Sprint(o.Alerts),
				fmt.Sprintf("%.1f%%", o.Uptime), fmt.Sprintf("%.1f%%", o.PerformanceMetrics.Efficiency),
			})
		}
	case viewFailures:
		cols = columns(m.width, []string{"ID", "Station", "Severity", "Category", "When", "Ack"}, []int{10, 22, 9, 20, 17, 5})
		for _, f := range m.failures {
			ack := ""
			if f.Acknowledged {
				ack = "yes"
			}
			rows = append(rows, table.Row{
				f.ID, f.StationName, string(f.Severity), string(f.Category),
				f.Timestamp.Format("2006-01-02 15:04"), ack,
			})
		}
	case viewMaintenance:
		cols = columns(m.width, []string{"ID", "Title", "Station", "Priority", "Status", "Due"}, []int{10, 28, 20, 9, 13, 17})
		for _, a := range m.actions {
			rows = append(rows, table.Row{
				a.ID, a.Title, a.StationName, string(a.Priority), string(a.Status),
				a.DueDate.Format("2006-01-02 15:04"),
			})
		}
	}
	// rows render against the current columns, so swap columns on an empty table
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// columns scales widths down so the table fits in width.
func columns(width int, titles []string, widths []int) []table.Column {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	cols := make([]table.Column, len(titles))
	for i, t := range titles {
		w := widths[i]
		if width > 0 && total > width {
			w = max(3, w*width/total)
		}
		cols[i] = table.Column{Title: t, Width: w}
	}
	return cols
}

func (m model) tableHeight() int {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) View() string {
	if m.help {
		return m.renderHelp()
	}
	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
		m.table.View(),
	}
	if d := m.renderDetail(); d != "" {
		sections = append(sections, dimStyle.Render(strings.Repeat("─", max(m.width, 10))), d)
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m model) renderHeader() string {
	var online, degraded, offline, alerts int
	for _, o := range m.states {
		alerts += o.Alerts
		switch o.Status {
		case station.StatusOnline:
			online++
		case station.StatusDegraded:
			degraded++
		case station.StatusOffline:
			offline++
		}
	}
	dot := func(c lipgloss.Color, n int, label string) string {
		return lipgloss.NewStyle().Foreground(c).Render("●") + fmt.Sprintf(" %d %s", n, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Swap network"), "  ",
		dot(colorOK, online, "online"), "  ",
		dot(colorWarn, degraded, "degraded"), "  ",
		dot(colorAlert, offline, "offline"), "  ",
		fmt.Sprintf("alerts=%d", alerts),
	)
}

func (m model) renderTabs() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.view {
			tabs[i] = activeTab.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderDetail shows the long text of the selected failure or action.
func (m model) renderDetail() string {
	i := m.table.Cursor()
	width := max(m.width, 20)
	switch m.view {
	case viewFailures:
		if i < 0 || i >= len(m.failures) {
			return ""
		}
		f := m.failures[i]
		lines := []string{
			wordwrap.String("Root cause: "+f.PredictedRootCause, width),
			wordwrap.String(f.Description, width),
			fmt.Sprintf("Codes: %s  Recurrence: %.0f%%  Downtime: %dm",
				strings.Join(f.ErrorCodeSequence, ","), f.RecurrenceProbability*100, f.EstimatedDowntime),
		}
		return strings.Join(lines, "\n")
	case viewMaintenance:
		if i < 0 || i >= len(m.actions) {
			return ""
		}
		return wordwrap.String(m.actions[i].Description, width)
	}
	return ""
}

func (m model) renderFooter() string {
	keys := "tab switch view · r refresh · h help · q quit"
	switch m.view {
	case viewFailures:
		keys = "a acknowledge · " + keys
	case viewMaintenance:
		keys = "a ack · c complete · e escalate · d dismiss · " + keys
	}
	line := dimStyle.Render(keys)
	if m.status != "" {
		line = m.status + "  " + line
	}
	return line
}

func (m model) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" tab / shift+tab  switch view",
		" ↑↓ / j k         move selection",
		" a                acknowledge failure or maintenance action",
		" c                complete maintenance action",
		" e                escalate maintenance action",
		" d                dismiss maintenance action",
		" r                refresh now",
		" h/?              toggle this help view",
		" q                quit",
	}
	return strings.Join(lines, "\n")
}
