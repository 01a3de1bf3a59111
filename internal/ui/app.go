package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/logtail"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/prefs"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/screen"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/store"
)

// View represents the current view mode.
type View int

const (
	ViewLaunches View = iota
	ViewRockets
	ViewCapsules
	ViewDetail
	ViewLogs
)

func (v View) String() string {
	switch v {
	case ViewRockets:
		return "Rockets"
	case ViewCapsules:
		return "Capsules"
	case ViewDetail:
		return "Detail"
	case ViewLogs:
		return "Log"
	default:
		return "Launches"
	}
}

// viewFromPref maps a persisted start view to a list view.
func viewFromPref(name string) View {
	switch name {
	case prefs.ViewRockets:
		return ViewRockets
	case prefs.ViewCapsules:
		return ViewCapsules
	default:
		return ViewLaunches
	}
}

func (v View) pref() string {
	switch v {
	case ViewRockets:
		return prefs.ViewRockets
	case ViewCapsules:
		return prefs.ViewCapsules
	default:
		return prefs.ViewLaunches
	}
}

// Repository is the slice of the sync layer the UI reads from.
type Repository interface {
	ObserveAllLaunches(ctx context.Context) (*store.Subscription[[]domain.Launch], error)
	ObserveUpcoming(ctx context.Context) (*store.Subscription[[]domain.Launch], error)
	ObservePast(ctx context.Context, limit int) (*store.Subscription[[]domain.Launch], error)
	ObserveSuccessful(ctx context.Context, limit int) (*store.Subscription[[]domain.Launch], error)
	ObserveRockets(ctx context.Context) (*store.Subscription[[]domain.Rocket], error)
	ObserveCapsules(ctx context.Context) (*store.Subscription[[]domain.Capsule], error)

	GetLaunchByID(ctx context.Context, id string) (domain.Launch, bool, error)
	GetRocketByID(ctx context.Context, id string) (domain.Rocket, bool, error)
	GetCapsuleByID(ctx context.Context, id string) (domain.Capsule, bool, error)
	ClearLaunches(ctx context.Context) error

	RefreshLaunches(ctx context.Context) result.Result[repository.Refresh]
	RefreshUpcomingLaunches(ctx context.Context) result.Result[repository.Refresh]
	RefreshRockets(ctx context.Context) result.Result[repository.Refresh]
	RefreshRocket(ctx context.Context, id string) result.Result[repository.Refresh]
	RefreshCapsules(ctx context.Context) result.Result[repository.Refresh]
}

var (
	errLaunchNotCached  = errors.New("launch is no longer cached")
	errCapsuleNotCached = errors.New("capsule is no longer cached")
)

// screenHandle is the type-erased view of the active screen.Holder.
type screenHandle interface {
	Start(ctx context.Context) error
	Retry() bool
	Close()
	Updates() <-chan struct{}
}

type detailKind int

const (
	detailLaunch detailKind = iota
	detailCapsule
)

type detailState struct {
	kind      detailKind
	id        string
	loading   bool
	launch    domain.Launch
	rocket    domain.Rocket
	hasRocket bool
	capsule   domain.Capsule
	// launchNames maps a capsule's launch ids to cached mission names.
	launchNames map[string]string
	err         string
}

func (d detailState) loaded() bool {
	if d.kind == detailCapsule {
		return d.capsule.ID != ""
	}
	return d.launch.ID != ""
}

// Model is the main Bubble Tea model for the application.
type Model struct {
	ctx       context.Context
	repo      Repository
	prefsPath string
	logPath   string
	prefs     prefs.Prefs

	keys  keyMap
	theme Theme

	currentView View
	listView    View // list shown behind the detail and log views
	filter      store.LaunchFilter

	// searching is true while the search input has focus. searchQuery
	// narrows the launch list by mission name or flight number.
	searching   bool
	searchQuery string
	searchInput textinput.Model

	width    int
	height   int
	ready    bool
	showHelp bool

	spinner spinner.Model

	// gen identifies the open screen; updates from closed ones are dropped.
	gen    int
	active screenHandle

	launches screen.UIState[[]domain.Launch]
	rockets  screen.UIState[[]domain.Rocket]
	capsules screen.UIState[[]domain.Capsule]
	selected int

	launchHolder  *screen.Holder[[]domain.Launch]
	rocketHolder  *screen.Holder[[]domain.Rocket]
	capsuleHolder *screen.Holder[[]domain.Capsule]

	detail         detailState
	detailViewport viewport.Model

	logEntries  []logtail.Entry
	logErr      string
	logViewport viewport.Model

	notice  string
	initCmd tea.Cmd
}

// Message types
type (
	tickMsg         time.Time
	screenUpdateMsg struct{ gen int }
	prefsSavedMsg   struct{ err error }
	logsMsg         struct {
		entries []logtail.Entry
		err     error
	}
	detailMsg       struct {
		kind        detailKind
		id          string
		launch      domain.Launch
		rocket      domain.Rocket
		hasRocket   bool
		capsule     domain.Capsule
		launchNames map[string]string
		err         error
	}
	launchesClearedMsg struct{ err error }
)

// New creates a model and opens the start view's screen.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	m := Model{
		ctx:            ctx,
		repo:           opts.Repo,
		prefsPath:      opts.PrefsPath,
		logPath:        opts.LogPath,
		prefs:          opts.Prefs,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(opts.Prefs.Theme),
		filter:         store.LaunchesAll,
		spinner:        s,
		searchInput:    ti,
		detailViewport: viewport.New(0, 0),
		logViewport:    viewport.New(0, 0),
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.initCmd = m.openScreen(viewFromPref(opts.Prefs.StartView))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.spinner.Tick, tickCmd(DefaultUIInterval))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detailViewport.Width = msg.Width
		m.detailViewport.Height = max(msg.Height-chromeHeight, 1)
		m.logViewport.Width = msg.Width
		m.logViewport.Height = max(msg.Height-chromeHeight, 1)
		switch m.currentView {
		case ViewDetail:
			m.detailViewport.SetContent(m.renderDetailContent())
		case ViewLogs:
			m.logViewport.SetContent(m.renderLogContent())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case screenUpdateMsg:
		if msg.gen != m.gen || m.active == nil {
			return m, nil
		}
		m.syncState()
		return m, waitForScreen(m.gen, m.active.Updates())

	case detailMsg:
		if msg.id != m.detail.id || msg.kind != m.detail.kind {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.detail.err = detailErrorMessage(msg.err)
		} else {
			m.detail.err = ""
			m.detail.launch = msg.launch
			m.detail.rocket = msg.rocket
			m.detail.hasRocket = msg.hasRocket
			m.detail.capsule = msg.capsule
			m.detail.launchNames = msg.launchNames
		}
		m.detailViewport.SetContent(m.renderDetailContent())
		return m, nil

	case launchesClearedMsg:
		if msg.err != nil {
			m.notice = "Could not clear the launch cache"
			return m, nil
		}
		m.notice = ""
		if m.listView == ViewLaunches && m.active != nil {
			m.active.Retry()
		}
		return m, nil

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = ""
		if msg.err != nil {
			m.logErr = msg.err.Error()
		}
		m.logViewport.SetContent(m.renderLogContent())
		m.logViewport.GotoBottom()
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.notice = "Could not save preferences"
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tickCmd(DefaultUIInterval)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closeScreen()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeScreen()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.prefs.Theme = m.theme.Name
		switch m.currentView {
		case ViewDetail:
			m.detailViewport.SetContent(m.renderDetailContent())
		case ViewLogs:
			m.logViewport.SetContent(m.renderLogContent())
		}
		return m, savePrefsCmd(m.prefsPath, m.prefs)

	case key.Matches(msg, m.keys.ViewLaunches):
		return m, m.switchView(ViewLaunches)
	case key.Matches(msg, m.keys.ViewRockets):
		return m, m.switchView(ViewRockets)
	case key.Matches(msg, m.keys.ViewCapsules):
		return m, m.switchView(ViewCapsules)
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Retry):
		if m.active != nil && m.active.Retry() {
			m.notice = ""
		}
	case key.Matches(msg, m.keys.CycleFilter):
		if m.currentView == ViewLaunches {
			m.filter = nextFilter(m.filter)
			return m, m.openScreen(ViewLaunches)
		}
	case key.Matches(msg, m.keys.Open):
		switch m.currentView {
		case ViewLaunches:
			if visible := m.visibleLaunches(); m.selected < len(visible) {
				return m, m.openDetail(visible[m.selected].ID)
			}
		case ViewCapsules:
			if m.selected < len(m.capsules.Data) {
				return m, m.openCapsuleDetail(m.capsules.Data[m.selected].ID)
			}
		}
	case key.Matches(msg, m.keys.Search):
		if m.currentView == ViewLaunches {
			m.searching = true
			m.searchInput.SetValue(m.searchQuery)
			m.searchInput.CursorEnd()
			return m, m.searchInput.Focus()
		}
	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewLaunches && m.searchQuery != "" {
			m.setSearch("")
		}
	case key.Matches(msg, m.keys.ClearCache):
		if m.currentView == ViewLaunches {
			return m, clearLaunchesCmd(m.ctx, m.repo)
		}
	case key.Matches(msg, m.keys.Logs):
		m.currentView = ViewLogs
		return m, loadLogsCmd(m.logPath)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.listHeight())
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(m.rowCount()-1, 0)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = m.listView
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		if m.detail.kind == detailCapsule {
			return m, m.openCapsuleDetail(m.detail.id)
		}
		return m, m.openDetail(m.detail.id)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.currentView = m.listView
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		return m, loadLogsCmd(m.logPath)
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// handleSearchKey edits the launch search. The list narrows as the query
// changes; enter keeps the query and esc drops it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.closeScreen()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setSearch(m.searchInput.Value())
	return m, cmd
}

func (m *Model) setSearch(query string) {
	query = strings.TrimSpace(query)
	if query == m.searchQuery {
		return
	}
	m.searchQuery = query
	m.selected = 0
}

// visibleLaunches is the launch list after the search query is applied.
func (m Model) visibleLaunches() []domain.Launch {
	if m.searchQuery == "" {
		return m.launches.Data
	}
	var out []domain.Launch
	for _, l := range m.launches.Data {
		if matchesLaunch(l, m.searchQuery) {
			out = append(out, l)
		}
	}
	return out
}

// matchesLaunch reports whether the mission name contains query, ignoring
// case, or query is the flight number with an optional leading '#'.
func matchesLaunch(l domain.Launch, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), q) {
		return true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(q, "#"))
	return err == nil && l.FlightNumber > 0 && n == l.FlightNumber
}

// switchView shows a list view. Returning from the detail or log view to the
// list behind it keeps that list's screen open.
func (m *Model) switchView(v View) tea.Cmd {
	if (m.currentView == ViewDetail || m.currentView == ViewLogs) && v == m.listView {
		m.currentView = v
		return nil
	}
	if v == m.currentView {
		return nil
	}
	cmd := m.openScreen(v)
	if m.prefs.StartView == v.pref() {
		return cmd
	}
	m.prefs.StartView = v.pref()
	return tea.Batch(cmd, savePrefsCmd(m.prefsPath, m.prefs))
}

// openScreen closes the active screen and starts a holder for v.
func (m *Model) openScreen(v View) tea.Cmd {
	m.closeScreen()
	m.gen++
	m.currentView, m.listView = v, v
	m.selected = 0
	m.notice = ""

	repo := m.repo
	var h screenHandle
	switch v {
	case ViewRockets:
		m.rockets = screen.UIState[[]domain.Rocket]{}
		m.rocketHolder = screen.New[[]domain.Rocket](repo.ObserveRockets, repo.RefreshRockets, screen.NonEmpty[domain.Rocket])
		h = m.rocketHolder
	case ViewCapsules:
		m.capsules = screen.UIState[[]domain.Capsule]{}
		m.capsuleHolder = screen.New[[]domain.Capsule](repo.ObserveCapsules, repo.RefreshCapsules, screen.NonEmpty[domain.Capsule])
		h = m.capsuleHolder
	default:
		m.launches = screen.UIState[[]domain.Launch]{}
		observe, refresh := launchSource(repo, m.filter)
		m.launchHolder = screen.New[[]domain.Launch](observe, refresh, screen.NonEmpty[domain.Launch])
		h = m.launchHolder
	}

	if err := h.Start(m.ctx); err != nil {
		log.Error().Err(err).Str("view", v.String()).Msg("open screen failed")
		h.Close()
		m.notice = "Could not read the local cache"
		return nil
	}
	m.active = h
	m.syncState()
	return waitForScreen(m.gen, h.Updates())
}

func (m *Model) closeScreen() {
	if m.active == nil {
		return
	}
	m.active.Close()
	m.active = nil
}

// launchSource picks the live query and refresh behind a launch filter.
func launchSource(repo Repository, filter store.LaunchFilter) (screen.Observe[[]domain.Launch], screen.Refresh) {
	switch filter {
	case store.LaunchesUpcoming:
		return repo.ObserveUpcoming, repo.RefreshUpcomingLaunches
	case store.LaunchesPast:
		return func(ctx context.Context) (*store.Subscription[[]domain.Launch], error) {
			return repo.ObservePast(ctx, LaunchListLimit)
		}, repo.RefreshLaunches
	case store.LaunchesSuccessful:
		return func(ctx context.Context) (*store.Subscription[[]domain.Launch], error) {
			return repo.ObserveSuccessful(ctx, LaunchListLimit)
		}, repo.RefreshLaunches
	default:
		return repo.ObserveAllLaunches, repo.RefreshLaunches
	}
}

func nextFilter(f store.LaunchFilter) store.LaunchFilter {
	switch f {
	case store.LaunchesAll:
		return store.LaunchesUpcoming
	case store.LaunchesUpcoming:
		return store.LaunchesPast
	case store.LaunchesPast:
		return store.LaunchesSuccessful
	default:
		return store.LaunchesAll
	}
}

// syncState copies the active holder's snapshot into the model.
func (m *Model) syncState() {
	switch m.listView {
	case ViewRockets:
		if m.rocketHolder != nil {
			m.rockets = m.rocketHolder.Snapshot()
		}
	case ViewCapsules:
		if m.capsuleHolder != nil {
			m.capsules = m.capsuleHolder.Snapshot()
		}
	default:
		if m.launchHolder != nil {
			m.launches = m.launchHolder.Snapshot()
		}
	}
	m.selected = clamp(m.selected, 0, m.rowCount()-1)
}

func (m Model) rowCount() int {
	switch m.listView {
	case ViewRockets:
		return len(m.rockets.Data)
	case ViewCapsules:
		return len(m.capsules.Data)
	default:
		return len(m.visibleLaunches())
	}
}

func (m *Model) moveSelection(delta int) {
	m.selected = clamp(m.selected+delta, 0, m.rowCount()-1)
}

// listHeight is the number of rows available to a list body.
func (m Model) listHeight() int {
	// one line for the column header
	return max(m.height-chromeHeight-1, 1)
}

func (m *Model) openDetail(id string) tea.Cmd {
	m.currentView = ViewDetail
	m.detail = detailState{kind: detailLaunch, id: id, loading: true}
	m.detailViewport.GotoTop()
	m.detailViewport.SetContent(m.renderDetailContent())
	return loadDetailCmd(m.ctx, m.repo, id)
}

// loadDetailCmd reads a launch from the cache and makes sure its rocket is
// cached too, fetching it when missing.
func loadDetailCmd(ctx context.Context, repo Repository, id string) tea.Cmd {
	return func() tea.Msg {
		msg := detailMsg{kind: detailLaunch, id: id}
		launch, ok, err := repo.GetLaunchByID(ctx, id)
		if err != nil {
			msg.err = err
			return msg
		}
		if !ok {
			msg.err = errLaunchNotCached
			return msg
		}
		msg.launch = launch
		if launch.RocketID == "" {
			return msg
		}

		rocket, ok, err := repo.GetRocketByID(ctx, launch.RocketID)
		if err == nil && !ok {
			if res := repo.RefreshRocket(ctx, launch.RocketID); !res.IsOk() {
				log.Debug().Err(res.Err()).Str("rocket", launch.RocketID).Msg("rocket refresh failed")
				return msg
			}
			rocket, ok, err = repo.GetRocketByID(ctx, launch.RocketID)
		}
		if err != nil {
			log.Warn().Err(err).Str("rocket", launch.RocketID).Msg("rocket lookup failed")
			return msg
		}
		msg.rocket, msg.hasRocket = rocket, ok
		return msg
	}
}

func (m *Model) openCapsuleDetail(id string) tea.Cmd {
	m.currentView = ViewDetail
	m.detail = detailState{kind: detailCapsule, id: id, loading: true}
	m.detailViewport.GotoTop()
	m.detailViewport.SetContent(m.renderDetailContent())
	return loadCapsuleDetailCmd(m.ctx, m.repo, id)
}

// loadCapsuleDetailCmd reads a capsule and the names of its cached launches.
func loadCapsuleDetailCmd(ctx context.Context, repo Repository, id string) tea.Cmd {
	return func() tea.Msg {
		msg := detailMsg{kind: detailCapsule, id: id}
		capsule, ok, err := repo.GetCapsuleByID(ctx, id)
		if err != nil {
			msg.err = err
			return msg
		}
		if !ok {
			msg.err = errCapsuleNotCached
			return msg
		}
		msg.capsule = capsule
		msg.launchNames = make(map[string]string, len(capsule.LaunchIDs))
		for _, launchID := range capsule.LaunchIDs {
			launch, found, err := repo.GetLaunchByID(ctx, launchID)
			if err != nil {
				log.Warn().Err(err).Str("launch", launchID).Msg("launch lookup failed")
				continue
			}
			if found {
				msg.launchNames[launchID] = launch.Name
			}
		}
		return msg
	}
}

func clearLaunchesCmd(ctx context.Context, repo Repository) tea.Cmd {
	return func() tea.Msg {
		err := repo.ClearLaunches(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("clear launch cache failed")
		}
		return launchesClearedMsg{err: err}
	}
}

func detailErrorMessage(err error) string {
	switch {
	case errors.Is(err, errLaunchNotCached):
		return "This launch is no longer in the local cache"
	case errors.Is(err, errCapsuleNotCached):
		return "This capsule is no longer in the local cache"
	}
	return screen.ErrorMessage(err)
}

// waitForScreen blocks until the screen signals a change. A closed channel
// yields no message.
func waitForScreen(gen int, updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return screenUpdateMsg{gen: gen}
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logsMsg{}
		}
		entries, err := logtail.Tail(path, logTailLines)
		return logsMsg{entries: entries, err: err}
	}
}

func savePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		err := prefs.Save(path, p)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("save preferences failed")
		}
		return prefsSavedMsg{err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	bar := m.renderCommandBar()
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(bar), 1)

	var body string
	switch m.currentView {
	case ViewDetail:
		body = m.detailViewport.View()
	case ViewLogs:
		body = m.logViewport.View()
	case ViewRockets:
		body = m.renderRockets(bodyHeight)
	case ViewCapsules:
		body = m.renderCapsules(bodyHeight)
	default:
		body = m.renderLaunches(bodyHeight)
	}

	body = lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Height(bodyHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar)
}
