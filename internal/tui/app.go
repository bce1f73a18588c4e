// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for Cadence.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The walkthrough player rides the same loop. Its timers come back through
// Update as plain messages, and every change it makes to the dashboard goes
// through the player.Host methods implemented on App below.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cadencehq/walkthrough/internal/config"
	"github.com/cadencehq/walkthrough/internal/logbook"
	"github.com/cadencehq/walkthrough/internal/player"
	"github.com/cadencehq/walkthrough/internal/script"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMenu      appState = iota // Launch menu shown before the dashboard
	stateDashboard                 // Coordinator dashboard, tour overlay optional
)

const (
	chromeRows      = 5  // header, tab bar, footer and their margins
	overlayReserve  = 12 // walkthrough overlay drawn below the content
	logPanelReserve = 11 // LOG box when toggled on
)

const siteName = "Columbia University Medical Center"

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithPlayerOptions forwards extra options to the embedded walkthrough player.
func WithPlayerOptions(opts ...player.Option) AppOption {
	return func(a *App) {
		a.playerOpts = append(a.playerOpts, opts...)
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  config.Config
	logbook *logbook.Logbook

	tour       *script.Script
	player     *player.Player
	playerOpts []player.Option
	overlay    *walkthroughView

	// UI components
	menu        list.Model
	activeTab   string
	patients    table.Model
	patientRows []Patient
	content     viewport.Model
	anchors     map[string]int

	// Dashboard state the walkthrough script drives
	selectedID string
	flags      map[string]bool

	showLog   bool
	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance
func NewApp(cfg config.Config, tour *script.Script, book *logbook.Logbook, opts ...AppOption) (*App, error) {
	if tour == nil {
		return nil, fmt.Errorf("tui: tour script is required")
	}

	menu := list.New(buildMenu(tour), list.NewDefaultDelegate(), 0, 0)
	menu.Title = "◈ CADENCE"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	rows := sitePatients()
	app := &App{
		state:       stateMenu,
		config:      cfg,
		logbook:     book,
		tour:        tour,
		menu:        menu,
		overlay:     newWalkthroughView(),
		activeTab:   tabPatients,
		patients:    newPatientTable(rows),
		patientRows: rows,
		content:     viewport.New(96, 24),
		flags:       map[string]bool{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	p, err := player.New(tour, app, append([]player.Option{player.WithLogbook(book)}, app.playerOpts...)...)
	if err != nil {
		return nil, err
	}
	app.player = p
	app.rebuildContent()
	book.Info("Dashboard opened · script %q · %d steps", tour.Name(), tour.Len())
	return app, nil
}

// buildMenu creates the launch menu items
func buildMenu(tour *script.Script) []list.Item {
	return []list.Item{
		menuItem{
			title: "Start the site tour",
			desc:  fmt.Sprintf("%d scripted steps through the Cadence dashboard", tour.Len()),
		},
		menuItem{title: "Open the dashboard", desc: "Browse the demo site without narration"},
		menuItem{title: "Exit", desc: "Quit Cadence"},
	}
}

func newPatientTable(rows []Patient) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 16},
		{Title: "Trial", Width: 13},
		{Title: "Risk", Width: 6},
		{Title: "Next visit", Width: 12},
		{Title: "Status", Width: 10},
	}
	tableRows := make([]table.Row, len(rows))
	for i, p := range rows {
		tableRows[i] = table.Row{p.ID, p.Name, p.Trial, fmt.Sprintf("%.2f", p.Risk), p.NextVisit, p.Status}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#5B8DEF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	if a.config.Autostart {
		return a.startWalkthrough()
	}
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything else is fair game for the player's timers.
	if cmd := a.player.Update(msg); cmd != nil {
		return a, cmd
	}

	if a.state == stateMenu {
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Tour keys win while a walkthrough is running. Anything the player does
	// not map falls through to the normal dashboard bindings.
	if cmd, handled := a.player.HandleKey(msg); handled {
		if !a.player.Active() {
			a.statusMsg = "Tour ended · w restarts it"
			a.layout()
		}
		return a, cmd
	}

	switch a.state {
	case stateMenu:
		return a.handleMenuKey(msg, key)
	default:
		return a.handleDashboardKey(key)
	}
}

func (a *App) handleMenuKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "enter":
		item, ok := a.menu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		switch item.title {
		case "Start the site tour":
			return a, a.startWalkthrough()
		case "Open the dashboard":
			a.state = stateDashboard
			a.statusMsg = "Browsing freely · w starts the tour"
			a.layout()
		case "Exit":
			return a, tea.Quit
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
		a.statusMsg = ""
	case "w":
		return a, a.startWalkthrough()
	case "l":
		a.showLog = !a.showLog
		a.layout()
	case "tab":
		a.showTab(nextTab(a.activeTab, 1))
	case "shift+tab":
		a.showTab(nextTab(a.activeTab, -1))
	case "1", "2", "3", "4":
		a.showTab(tabOrder[int(key[0]-'1')])
	case "enter":
		if a.activeTab == tabPatients {
			if row := a.patients.Cursor(); row >= 0 && row < len(a.patientRows) {
				a.SelectEntity(a.patientRows[row].ID)
			}
		}
	case "up", "k":
		if a.activeTab == tabPatients {
			a.patients.MoveUp(1)
			a.rebuildContent()
		} else {
			a.content.LineUp(1)
		}
	case "down", "j":
		if a.activeTab == tabPatients {
			a.patients.MoveDown(1)
			a.rebuildContent()
		} else {
			a.content.LineDown(1)
		}
	case "pgup":
		a.content.ViewUp()
	case "pgdown":
		a.content.ViewDown()
	}
	return a, nil
}

// startWalkthrough activates the player over the dashboard.
func (a *App) startWalkthrough() tea.Cmd {
	if a.player.Active() {
		return nil
	}
	a.state = stateDashboard
	a.statusMsg = ""
	cmd := a.player.Activate()
	a.layout()
	return cmd
}

// layout re-derives component sizes from the window and what is on screen.
func (a *App) layout() {
	width, height := a.width, a.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 32
	}
	a.menu.SetSize(max(0, width-6), max(0, height-10))
	a.overlay.SetWidth(width)

	reserved := chromeRows
	if a.player.Active() {
		reserved += overlayReserve
	}
	if a.showLog {
		reserved += logPanelReserve
	}
	a.content.Width = max(20, width-4)
	a.content.Height = max(5, height-reserved)
	a.rebuildContent()
}

// rebuildContent re-renders the active tab into the viewport, keeping the
// scroll position and republishing the tab's anchor lines.
func (a *App) rebuildContent() {
	var tc tabContent
	switch a.activeTab {
	case tabCalendar:
		tc = a.buildCalendarTab()
	case tabChat:
		tc = a.buildChatTab()
	case tabAnalytics:
		tc = a.buildAnalyticsTab()
	default:
		tc = a.buildPatientsTab()
	}
	offset := a.content.YOffset
	a.content.SetContent(tc.body)
	a.content.SetYOffset(offset)
	a.anchors = tc.anchors
}

func (a *App) showTab(tab string) {
	if tab == a.activeTab {
		return
	}
	a.activeTab = tab
	a.rebuildContent()
	a.content.GotoTop()
}

func nextTab(current string, delta int) string {
	for i, tab := range tabOrder {
		if tab == current {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

func (a *App) lookupPatient(id string) (Patient, bool) {
	for _, p := range a.patientRows {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// SwitchTab brings the named dashboard tab to the front.
func (a *App) SwitchTab(tab string) {
	if !validTab(tab) {
		a.logbook.Warn("Ignoring switch to unknown tab %q", tab)
		return
	}
	a.showTab(tab)
}

// SelectEntity highlights a participant in the roster and its detail panel.
func (a *App) SelectEntity(id string) {
	a.selectedID = id
	for i, p := range a.patientRows {
		if p.ID == id {
			a.patients.SetCursor(i)
			a.statusMsg = fmt.Sprintf("Selected %s · %s", p.ID, p.Name)
			break
		}
	}
	a.rebuildContent()
}

// ClearSelection drops the highlighted participant.
func (a *App) ClearSelection() {
	if a.selectedID == "" {
		return
	}
	a.selectedID = ""
	a.rebuildContent()
}

// SetFlag flips a named demo condition, such as the knowledge-loss state.
func (a *App) SetFlag(name string, value bool) {
	if a.flags[name] == value {
		return
	}
	a.flags[name] = value
	a.rebuildContent()
}

// ScrollTo moves the content viewport to a named anchor on the active tab.
// Unknown anchors leave the viewport where it is.
func (a *App) ScrollTo(anchor string) {
	if line, ok := a.anchors[anchor]; ok {
		a.content.SetYOffset(line)
	}
}

// ResetScroll returns the content viewport to the top.
func (a *App) ResetScroll() {
	a.content.GotoTop()
}

// View renders the current state to a string.
func (a *App) View() string {
	if a.state == stateMenu {
		hint := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			Render("enter → choose    q → quit")
		return lipgloss.JoinVertical(lipgloss.Left, a.menu.View(), hint)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("◈ CADENCE · " + siteName)
	sections := []string{header, a.renderTabBar(), a.content.View()}
	if a.showLog {
		if panel := a.renderLogPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	if overlay := a.overlay.Render(a.player.Snapshot()); overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, a.renderFooter())
	return strings.Join(sections, "\n")
}

func (a *App) renderTabBar() string {
	parts := make([]string, 0, len(tabOrder))
	for i, tab := range tabOrder {
		label := fmt.Sprintf("%d %s", i+1, tabTitles[tab])
		if tab == a.activeTab {
			parts = append(parts, lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF")).
				Render("["+label+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) renderLogPanel() string {
	lines, total := a.logbook.Tail(8)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

func (a *App) renderFooter() string {
	parts := []string{}
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	if !a.player.Active() {
		parts = append(parts, "1-4 tabs · ↑/↓ move · enter select · w tour · l log · esc menu · q quit")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(strings.Join(parts, "  ·  "))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
