package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/catalog"
	"github.com/jask/storefront/internal/config"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/service"
)

const (
	defaultWidth          = 80
	defaultHeight         = 24
	defaultNoticeDuration = 3 * time.Second
)

// Describer renders an app's description asset for the terminal.
type Describer interface {
	Render(ref string, width int) (string, error)
}

// App ties together views.
type App struct {
	ctx    context.Context
	store  *service.Storefront
	nav    *nav.Navigator
	desc   Describer
	cfg    config.UIConfig
	log    *zap.Logger
	keys   keyMap
	flag   <-chan bool
	width  int
	height int

	// store screen
	search    textinput.Model
	searching bool
	results   []catalog.App
	appCursor int

	// categories screen
	counts         []catalog.CategoryCount
	categoryCursor int

	// detail screen
	shotCursor   int
	description  viewport.Model
	descriptions map[string]string // ref -> rendered text at descWidth
	descWidth    int

	notice     string
	noticeWarn bool
	noticeSeq  int
	status     string
}

// New builds the model. The onboarding subscription lives as long as ctx.
func New(ctx context.Context, store *service.Storefront, desc Describer, cfg config.UIConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = defaultNoticeDuration
	}
	search := textinput.New()
	search.Placeholder = "Search apps, categories"
	search.Prompt = "/ "
	search.CharLimit = 64

	a := &App{
		ctx:          ctx,
		store:        store,
		nav:          nav.New(store.Catalog(), log),
		desc:         desc,
		cfg:          cfg,
		log:          log,
		keys:         newKeyMap(),
		flag:         store.Onboarding().Subscribe(ctx),
		width:        defaultWidth,
		height:       defaultHeight,
		search:       search,
		results:      store.Apps(),
		counts:       catalog.SortByCount(store.CategoryCounts()),
		description:  viewport.New(defaultWidth, descriptionHeight(defaultHeight)),
		descriptions: make(map[string]string),
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.waitOnboarding()
}

// Navigator exposes the screen state, mostly for tests.
func (a *App) Navigator() *nav.Navigator { return a.nav }

// waitOnboarding blocks on the shared flag and delivers the next value.
func (a *App) waitOnboarding() tea.Cmd {
	ch := a.flag
	return func() tea.Msg {
		done, ok := <-ch
		return onboardingMsg{done: done, closed: !ok}
	}
}

func (a *App) markSeenCmd() tea.Cmd {
	return func() tea.Msg {
		a.store.MarkOnboardingSeen(a.ctx)
		return markedMsg{}
	}
}

func (a *App) describeCmd(app catalog.App, width int) tea.Cmd {
	if a.desc == nil || app.DescriptionAsset == "" {
		return nil
	}
	ref := app.DescriptionAsset
	return func() tea.Msg {
		text, err := a.desc.Render(ref, width)
		return descriptionMsg{ref: ref, width: width, text: text, err: err}
	}
}

// showNotice sets a transient notice and schedules its removal.
func (a *App) showNotice(text string, warn bool) tea.Cmd {
	a.noticeSeq++
	seq := a.noticeSeq
	a.notice = text
	a.noticeWarn = warn
	return tea.Tick(a.cfg.NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.description.Width = a.contentWidth()
		a.description.Height = descriptionHeight(m.Height)
		if a.nav.Current().Kind == nav.KindDetail {
			return a, a.loadDescription()
		}
	case onboardingMsg:
		if m.closed {
			return a, nil
		}
		if a.nav.OnboardingChanged(m.done) {
			a.log.Debug("onboarding already completed, skipping screen")
			return a, tea.Batch(a.arrive(), a.waitOnboarding())
		}
		return a, a.waitOnboarding()
	case markedMsg:
		return a, nil
	case descriptionMsg:
		if m.err != nil {
			a.log.Warn("render description", zap.String("asset", m.ref), zap.Error(m.err))
			a.status = "Description unavailable"
			return a, nil
		}
		a.descriptions[m.ref] = m.text
		a.descWidth = m.width
		if app, ok := a.nav.CurrentApp(); ok && app.DescriptionAsset == m.ref {
			a.description.SetContent(m.text)
		}
	case noticeExpiredMsg:
		if m.seq == a.noticeSeq {
			a.notice = ""
		}
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch a.nav.Current().Kind {
		case nav.KindOnboarding:
			return a.handleOnboardingKey(m)
		case nav.KindStore:
			return a.handleStoreKey(m)
		case nav.KindCategories:
			return a.handleCategoriesKey(m)
		case nav.KindDetail:
			return a.handleDetailKey(m)
		case nav.KindScreenshot:
			return a.handleScreenshotKey(m)
		}
	}
	return a, nil
}

func (a *App) handleOnboardingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Continue):
		if out := a.nav.ContinueOnboarding(); out.Moved {
			return a, tea.Batch(a.arrive(), a.markSeenCmd())
		}
	}
	return a, nil
}

func (a *App) handleStoreKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		if key.Matches(m, a.keys.SearchDone) {
			a.searching = false
			a.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(m)
		a.refilter()
		return a, cmd
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Search):
		a.searching = true
		return a, a.search.Focus()
	case key.Matches(m, a.keys.Clear):
		if a.search.Value() != "" {
			a.search.SetValue("")
			a.refilter()
		}
	case key.Matches(m, a.keys.Up):
		if a.appCursor > 0 {
			a.appCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.appCursor < len(a.results)-1 {
			a.appCursor++
		}
	case key.Matches(m, a.keys.Categories):
		return a, a.apply(a.nav.OpenCategories())
	case key.Matches(m, a.keys.Open):
		if len(a.results) == 0 {
			return a, nil
		}
		return a, a.apply(a.nav.OpenApp(a.results[a.appCursor].ID))
	}
	return a, nil
}

func (a *App) handleCategoriesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Back):
		a.back()
	case key.Matches(m, a.keys.Up):
		if a.categoryCursor > 0 {
			a.categoryCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.categoryCursor < len(a.counts)-1 {
			a.categoryCursor++
		}
	case key.Matches(m, a.keys.Filter):
		if len(a.counts) == 0 {
			return a, nil
		}
		label := a.counts[a.categoryCursor].Category.Label()
		a.back()
		a.search.SetValue(label)
		a.refilter()
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	app, ok := a.nav.CurrentApp()
	if !ok {
		a.back()
		return a, a.showNotice(nav.NoticeAppUnavailable, true)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Back):
		a.back()
	case key.Matches(m, a.keys.Prev):
		if a.shotCursor > 0 {
			a.shotCursor--
		}
	case key.Matches(m, a.keys.Next):
		if a.shotCursor < len(app.Screenshots)-1 {
			a.shotCursor++
		}
	case key.Matches(m, a.keys.Open):
		if len(app.Screenshots) == 0 {
			return a, nil
		}
		return a, a.apply(a.nav.OpenScreenshot(app.ID, app.Screenshots[a.shotCursor].ID))
	case key.Matches(m, a.keys.Install):
		res := a.store.Install(app)
		a.status = res.Status
		return a, a.showNotice(res.Toast, false)
	default:
		var cmd tea.Cmd
		a.description, cmd = a.description.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleScreenshotKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Close):
		a.back()
	}
	return a, nil
}

// apply reacts to a navigation outcome.
func (a *App) apply(out nav.Outcome) tea.Cmd {
	if out.Notice != "" {
		return a.showNotice(out.Notice, true)
	}
	if !out.Moved {
		return nil
	}
	return a.arrive()
}

func (a *App) back() {
	if a.nav.Back() {
		a.status = ""
	}
}

// arrive resets per-screen state for the screen just entered.
func (a *App) arrive() tea.Cmd {
	a.status = ""
	switch a.nav.Current().Kind {
	case nav.KindCategories:
		a.categoryCursor = 0
	case nav.KindDetail:
		a.shotCursor = 0
		a.description.SetContent("")
		a.description.GotoTop()
		return a.loadDescription()
	}
	return nil
}

// loadDescription uses the cached rendering when it matches the width.
func (a *App) loadDescription() tea.Cmd {
	app, ok := a.nav.CurrentApp()
	if !ok {
		return nil
	}
	width := a.contentWidth()
	if text, ok := a.descriptions[app.DescriptionAsset]; ok && a.descWidth == width {
		a.description.SetContent(text)
		return nil
	}
	return a.describeCmd(app, width)
}

func (a *App) refilter() {
	a.results = a.store.Search(a.search.Value())
	if a.appCursor >= len(a.results) {
		a.appCursor = 0
	}
}

func (a *App) contentWidth() int {
	if a.width < 20 {
		return 20
	}
	return a.width - 4
}

func descriptionHeight(total int) int {
	h := total - 14
	if h < 3 {
		return 3
	}
	return h
}

type onboardingMsg struct {
	done   bool
	closed bool
}

type markedMsg struct{}

type descriptionMsg struct {
	ref   string
	width int
	text  string
	err   error
}

type noticeExpiredMsg struct{ seq int }
