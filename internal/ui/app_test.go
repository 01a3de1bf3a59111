package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/prefs"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/spacex"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/store"
)

// fakeAPI serves canned records for every endpoint.
type fakeAPI struct {
	mu       sync.Mutex
	launches []spacex.LaunchRecord
	rockets  []spacex.RocketRecord
	capsules []spacex.CapsuleRecord
	err      error
}

func (f *fakeAPI) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeAPI) launchList(keep func(spacex.LaunchRecord) bool) result.Result[[]spacex.LaunchRecord] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return result.Fail[[]spacex.LaunchRecord](f.err)
	}
	var out []spacex.LaunchRecord
	for _, l := range f.launches {
		if keep(l) {
			out = append(out, l)
		}
	}
	return result.Ok(out)
}

func (f *fakeAPI) GetLaunches(context.Context, spacex.Page) result.Result[[]spacex.LaunchRecord] {
	return f.launchList(func(spacex.LaunchRecord) bool { return true })
}

func (f *fakeAPI) GetPastLaunches(context.Context, spacex.Page) result.Result[[]spacex.LaunchRecord] {
	return f.launchList(func(l spacex.LaunchRecord) bool { return !l.Upcoming })
}

func (f *fakeAPI) GetUpcomingLaunches(context.Context, int) result.Result[[]spacex.LaunchRecord] {
	return f.launchList(func(l spacex.LaunchRecord) bool { return l.Upcoming })
}

func (f *fakeAPI) GetLatestLaunch(context.Context) result.Result[spacex.LaunchRecord] {
	return result.Fail[spacex.LaunchRecord](errors.New("not served"))
}

func (f *fakeAPI) GetRockets(context.Context) result.Result[[]spacex.RocketRecord] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return result.Fail[[]spacex.RocketRecord](f.err)
	}
	return result.Ok(f.rockets)
}

func (f *fakeAPI) GetRocketByID(_ context.Context, id string) result.Result[spacex.RocketRecord] {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rockets {
		if r.ID == id {
			return result.Ok(r)
		}
	}
	return result.Fail[spacex.RocketRecord](&spacex.Error{Kind: spacex.KindHTTPStatus, Op: "rockets/" + id, Status: 404})
}

func (f *fakeAPI) GetCapsules(context.Context, spacex.Page) result.Result[[]spacex.CapsuleRecord] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return result.Fail[[]spacex.CapsuleRecord](f.err)
	}
	return result.Ok(f.capsules)
}

func sampleAPI() *fakeAPI {
	yes := true
	return &fakeAPI{
		launches: []spacex.LaunchRecord{
			{ID: "l1", Name: "FalconSat", FlightNumber: 1, DateUTC: "2006-03-24T22:30:00.000Z", Success: new(bool), Rocket: "falcon1",
				Failures: []spacex.FailureRecord{{Time: 33, Reason: "merlin engine failure"}}},
			{ID: "l2", Name: "CRS-20", FlightNumber: 91, DateUTC: "2020-03-07T04:50:31.000Z", Success: &yes, Rocket: "falcon9",
				Capsules: []string{"c1"}},
			{ID: "l3", Name: "Crew-9", FlightNumber: 200, DateUTC: "2030-01-01T00:00:00.000Z", Upcoming: true, Rocket: "falcon9"},
		},
		rockets: []spacex.RocketRecord{
			{ID: "falcon9", Name: "Falcon 9", Type: "rocket", Active: true, Stages: 2, CostPerLaunch: 50_000_000, SuccessRatePct: 98},
		},
		capsules: []spacex.CapsuleRecord{
			{ID: "c1", Serial: "C112", Status: "active", Type: "Dragon 2.0", ReuseCount: 3},
		},
	}
}

func newTestModel(t *testing.T, api spacex.Fetcher, p prefs.Prefs) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(context.Background(), filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	prefsPath := filepath.Join(dir, "prefs.toml")
	m := new(Model)
	*m = New(Options{
		Context:   context.Background(),
		Repo:      repository.New(st, api),
		Prefs:     p,
		PrefsPath: prefsPath,
	})
	t.Cleanup(m.closeScreen)
	update(m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, prefsPath
}

func update(m *Model, msg tea.Msg) tea.Cmd {
	next, cmd := m.Update(msg)
	*m = next.(Model)
	return cmd
}

// pump feeds screen updates into the model until done holds.
func pump(t *testing.T, m *Model, done func(*Model) bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !done(m) {
		if m.active == nil {
			t.Fatalf("no active screen")
		}
		msgs := make(chan tea.Msg, 1)
		go func(cmd tea.Cmd) { msgs <- cmd() }(waitForScreen(m.gen, m.active.Updates()))
		select {
		case msg := <-msgs:
			if msg == nil {
				t.Fatalf("screen closed while waiting")
			}
			update(m, msg)
		case <-deadline:
			t.Fatalf("timed out waiting for screen state")
		}
	}
}

// waitClosed drains a pending signal and expects the channel to be closed.
func waitClosed(t *testing.T, updates <-chan struct{}) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("screen updates not closed")
		}
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func launchesLoaded(n int) func(*Model) bool {
	return func(m *Model) bool {
		return !m.launches.IsLoading && len(m.launches.Data) == n
	}
}

func names(launches []domain.Launch) []string {
	out := make([]string, len(launches))
	for i, l := range launches {
		out[i] = l.Name
	}
	return out
}

func TestModel_StartViewShowsCachedLaunches(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	if m.currentView != ViewLaunches {
		t.Fatalf("currentView = %v, want Launches", m.currentView)
	}
	if got := strings.Join(names(m.launches.Data), ","); got != "Crew-9,CRS-20,FalconSat" {
		t.Fatalf("launches = %s, want newest first", got)
	}
	view := m.View()
	for _, want := range []string{"FalconSat", "UPCOMING", "Filter: All"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestModel_StartViewFromPrefs(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Prefs{Theme: "Slate", StartView: prefs.ViewCapsules})
	pump(t, m, func(m *Model) bool { return len(m.capsules.Data) == 1 })

	if m.currentView != ViewCapsules {
		t.Fatalf("currentView = %v, want Capsules", m.currentView)
	}
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %s, want Slate", m.theme.Name)
	}
	if !strings.Contains(m.View(), "C112") {
		t.Fatalf("View missing capsule serial")
	}
}

func TestModel_CycleFilterReopensScreen(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))
	old := m.launchHolder
	gen := m.gen

	update(m, keyPress("f"))

	if m.filter != store.LaunchesUpcoming {
		t.Fatalf("filter = %v, want Upcoming", m.filter)
	}
	if m.gen != gen+1 || m.launchHolder == old {
		t.Fatalf("filter change did not open a new screen")
	}
	waitClosed(t, old.Updates())
	pump(t, m, launchesLoaded(1))
	if m.launches.Data[0].Name != "Crew-9" {
		t.Fatalf("upcoming = %v, want Crew-9", names(m.launches.Data))
	}
}

func TestModel_StaleScreenUpdateIgnored(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))
	update(m, keyPress("2"))

	if cmd := update(m, screenUpdateMsg{gen: m.gen - 1}); cmd != nil {
		t.Fatalf("stale update returned a command")
	}
}

func TestModel_SwitchViewPersistsStartView(t *testing.T) {
	m, path := newTestModel(t, sampleAPI(), prefs.Defaults())

	cmd := update(m, keyPress("2"))
	if m.currentView != ViewRockets {
		t.Fatalf("currentView = %v, want Rockets", m.currentView)
	}
	if m.prefs.StartView != prefs.ViewRockets {
		t.Fatalf("StartView = %q, want rockets", m.prefs.StartView)
	}
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	pump(t, m, func(m *Model) bool { return len(m.rockets.Data) == 1 })

	if err := prefs.Save(path, m.prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := prefs.Load(path).StartView; got != prefs.ViewRockets {
		t.Fatalf("saved StartView = %q, want rockets", got)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, path := newTestModel(t, sampleAPI(), prefs.Defaults())

	cmd := update(m, keyPress("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %s, want Kanagawa", m.theme.Name)
	}
	msg, ok := cmd().(prefsSavedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("save prefs msg = %#v", msg)
	}
	if got := prefs.Load(path).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestModel_DetailFetchesMissingRocket(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	update(m, keyPress("j")) // CRS-20
	cmd := update(m, keyPress("enter"))
	if m.currentView != ViewDetail || !m.detail.loading {
		t.Fatalf("detail not opened: view=%v loading=%v", m.currentView, m.detail.loading)
	}
	update(m, cmd())

	if m.detail.err != "" {
		t.Fatalf("detail error = %q", m.detail.err)
	}
	if !m.detail.hasRocket || m.detail.rocket.Name != "Falcon 9" {
		t.Fatalf("rocket = %+v hasRocket=%v, want Falcon 9", m.detail.rocket, m.detail.hasRocket)
	}
	content := m.renderDetailContent()
	for _, want := range []string{"CRS-20", "Falcon 9", "$50.0M", "Capsules (1)"} {
		if !strings.Contains(content, want) {
			t.Fatalf("detail missing %q:\n%s", want, content)
		}
	}

	gen := m.gen
	update(m, keyPress("esc"))
	if m.currentView != ViewLaunches || m.gen != gen {
		t.Fatalf("esc: view=%v gen=%d, want Launches on the same screen", m.currentView, m.gen)
	}
}

func TestModel_DetailShowsFailures(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	update(m, keyPress("G")) // FalconSat
	cmd := update(m, keyPress("enter"))
	update(m, cmd())

	if m.detail.hasRocket {
		t.Fatalf("falcon1 is not served, hasRocket = true")
	}
	content := m.renderDetailContent()
	for _, want := range []string{"Failures (1)", "T+33s: merlin engine failure", "not cached"} {
		if !strings.Contains(content, want) {
			t.Fatalf("detail missing %q:\n%s", want, content)
		}
	}
}

func TestModel_ErrorWithoutCacheShowsMessage(t *testing.T) {
	api := sampleAPI()
	api.fail(&spacex.Error{Kind: spacex.KindTransport, Op: "launches", Err: errors.New("dial tcp: refused")})
	m, _ := newTestModel(t, api, prefs.Defaults())
	pump(t, m, func(m *Model) bool { return m.launches.HasError() })

	if m.launches.HasContent() {
		t.Fatalf("HasContent = true with an empty cache")
	}
	view := m.View()
	if !strings.Contains(view, "Unable to reach the SpaceX API") {
		t.Fatalf("View missing error message:\n%s", view)
	}
	if !strings.Contains(view, "Press r to retry") {
		t.Fatalf("View missing retry hint")
	}

	api.fail(nil)
	update(m, keyPress("r"))
	pump(t, m, launchesLoaded(3))
	if m.launches.HasError() {
		t.Fatalf("error not cleared after successful retry: %q", m.launches.Error)
	}
}

func TestModel_QuitClosesScreen(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))
	holder := m.launchHolder

	cmd := update(m, keyPress("q"))
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not quit")
	}
	if m.active != nil {
		t.Fatalf("active screen still set after quit")
	}
	waitClosed(t, holder.Updates())
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())

	update(m, keyPress("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	update(m, keyPress("esc"))
	if m.showHelp {
		t.Fatalf("esc did not close help")
	}
}

func TestModel_LogViewShowsTail(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	m.logPath = filepath.Join(t.TempDir(), "spacex.log")
	line := `{"level":"warn","failures":2,"time":"2026-03-01T10:04:05Z","message":"background refresh failed"}`
	if err := os.WriteFile(m.logPath, []byte(line+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	cmd := update(m, keyPress("L"))
	if m.currentView != ViewLogs || cmd == nil {
		t.Fatalf("log view not opened: view=%v", m.currentView)
	}
	update(m, cmd())

	content := m.renderLogContent()
	for _, want := range []string{"WARN", "background refresh failed", "failures=", "2"} {
		if !strings.Contains(content, want) {
			t.Fatalf("log view missing %q:\n%s", want, content)
		}
	}

	update(m, keyPress("esc"))
	if m.currentView != ViewLaunches {
		t.Fatalf("esc: view = %v, want Launches", m.currentView)
	}
}

func TestNextFilterCycles(t *testing.T) {
	f := store.LaunchesAll
	var seen []string
	for range 4 {
		f = nextFilter(f)
		seen = append(seen, f.String())
	}
	if got := strings.Join(seen, ","); got != "Upcoming,Past,Successful,All" {
		t.Fatalf("filters = %s", got)
	}
}

func TestModel_SearchNarrowsLaunches(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	if cmd := update(m, keyPress("/")); !m.searching || cmd == nil {
		t.Fatalf("search not started: searching=%v", m.searching)
	}
	update(m, keyPress("crs"))
	if got := strings.Join(names(m.visibleLaunches()), ","); got != "CRS-20" {
		t.Fatalf("visible = %s, want CRS-20", got)
	}
	view := m.View()
	if !strings.Contains(view, "Search:") || strings.Contains(view, "FalconSat") {
		t.Fatalf("View does not reflect the search:\n%s", view)
	}

	update(m, keyPress("enter"))
	if m.searching || m.searchQuery != "crs" {
		t.Fatalf("enter: searching=%v query=%q, want query kept", m.searching, m.searchQuery)
	}
	cmd := update(m, keyPress("enter"))
	if m.currentView != ViewDetail || m.detail.id != "l2" || cmd == nil {
		t.Fatalf("enter on a search result opened %v/%q, want detail of l2", m.currentView, m.detail.id)
	}

	update(m, keyPress("esc"))
	update(m, keyPress("esc"))
	if m.searchQuery != "" || len(m.visibleLaunches()) != 3 {
		t.Fatalf("esc did not clear the search: query=%q", m.searchQuery)
	}
}

func TestModel_SearchTypingDoesNotTriggerShortcuts(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	update(m, keyPress("/"))
	for _, k := range []string{"q", "2", "f"} {
		update(m, keyPress(k))
	}
	if m.active == nil || m.currentView != ViewLaunches || m.filter != store.LaunchesAll {
		t.Fatalf("typing ran shortcuts: view=%v filter=%v active=%v", m.currentView, m.filter, m.active != nil)
	}
	if m.searchQuery != "q2f" {
		t.Fatalf("searchQuery = %q, want q2f", m.searchQuery)
	}
	if !strings.Contains(m.View(), `No launches match "q2f"`) {
		t.Fatalf("View missing no-match message")
	}

	update(m, keyPress("esc"))
	if m.searching || m.searchQuery != "" || m.searchInput.Value() != "" {
		t.Fatalf("esc while typing: searching=%v query=%q", m.searching, m.searchQuery)
	}
}

func TestMatchesLaunch(t *testing.T) {
	l := domain.Launch{Name: "CRS-20", FlightNumber: 91}
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"crs", true},
		{" CRS-2 ", true},
		{"91", true},
		{"#91", true},
		{"9", false},
		{"crew", false},
	}
	for _, tt := range tests {
		if got := matchesLaunch(l, tt.query); got != tt.want {
			t.Errorf("matchesLaunch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
	if matchesLaunch(domain.Launch{Name: "TBD"}, "0") {
		t.Errorf("flight 0 should not match the query 0")
	}
}

func TestModel_CapsuleDetailNamesCachedLaunches(t *testing.T) {
	api := sampleAPI()
	api.capsules[0].Launches = []string{"l2", "l9"}
	m, _ := newTestModel(t, api, prefs.Defaults())
	pump(t, m, launchesLoaded(3))

	update(m, keyPress("3"))
	pump(t, m, func(m *Model) bool { return len(m.capsules.Data) == 1 })

	cmd := update(m, keyPress("enter"))
	if m.currentView != ViewDetail || m.detail.kind != detailCapsule || cmd == nil {
		t.Fatalf("capsule detail not opened: view=%v kind=%v", m.currentView, m.detail.kind)
	}
	update(m, cmd())

	if m.detail.err != "" {
		t.Fatalf("detail error = %q", m.detail.err)
	}
	content := m.renderDetailContent()
	for _, want := range []string{"C112", "Dragon 2.0", "Launches (2)", "CRS-20", "l9 (not cached)"} {
		if !strings.Contains(content, want) {
			t.Fatalf("capsule detail missing %q:\n%s", want, content)
		}
	}

	cmd = update(m, keyPress("r"))
	if m.detail.kind != detailCapsule || !m.detail.loading || cmd == nil {
		t.Fatalf("reload lost the capsule detail: kind=%v loading=%v", m.detail.kind, m.detail.loading)
	}
	update(m, cmd())
	if m.detail.capsule.Serial != "C112" {
		t.Fatalf("reloaded capsule = %+v", m.detail.capsule)
	}

	update(m, keyPress("esc"))
	if m.currentView != ViewCapsules {
		t.Fatalf("esc: view = %v, want Capsules", m.currentView)
	}
}

func TestModel_ClearCacheRefetchesLaunches(t *testing.T) {
	m, _ := newTestModel(t, sampleAPI(), prefs.Defaults())
	pump(t, m, launchesLoaded(3))
	before := m.launches.LastUpdated

	cmd := update(m, keyPress("X"))
	if cmd == nil {
		t.Fatalf("X returned no command")
	}
	msg, ok := cmd().(launchesClearedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("clear msg = %#v", msg)
	}
	if _, found, err := m.repo.GetLaunchByID(context.Background(), "l1"); err != nil || found {
		t.Fatalf("launch l1 still cached after clear: found=%v err=%v", found, err)
	}

	update(m, msg)
	pump(t, m, func(m *Model) bool {
		return !m.launches.IsLoading && len(m.launches.Data) == 3 && m.launches.LastUpdated.After(before)
	})
	if m.launches.HasError() {
		t.Fatalf("refresh after clear failed: %q", m.launches.Error)
	}
}
