package tui

import (
	"context"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vitrinedev/vitrine/internal/catalog"
	"github.com/vitrinedev/vitrine/internal/config"
	"github.com/vitrinedev/vitrine/internal/database/repository"
	"github.com/vitrinedev/vitrine/internal/manifest"
	"github.com/vitrinedev/vitrine/internal/view"
)

// App is the single owner of the catalog and the pager. It dispatches
// navigation intents from every input source to the pager and re-renders
// the view model after each transition.
type App struct {
	ctx     context.Context
	cfg     config.Config
	loader  *manifest.Loader
	history *repository.HistoryRepo // nil when history is disabled
	keys    *keyRegistry
	session string

	state   appState
	catalog catalog.Catalog
	pager   *catalog.Pager
	vm      view.Model
	status  string
	width   int
	height  int

	jump        *jumpPicker // non-nil while the jump overlay is open
	historyRows []repository.View
	historyOpen bool

	frame frameState
}

type appState string

const (
	stateLoading appState = "loading"
	stateBrowse  appState = "browse"
	stateEmpty   appState = "empty" // load succeeded or failed, nothing to show
)

// frameState is the embedding pane for the current entry's document. The
// document is opaque: bytes in, bytes out.
type frameState struct {
	ref     string
	content string
	loading bool
	err     error
}

// Messages.

type catalogMsg struct {
	c catalog.Catalog
	// restored last position for this source, resumePos < 0 when none
	resumePos int
}

type loadFailedMsg struct{ err error }

type frameMsg struct {
	ref  string
	data []byte
	err  error
}

type statusMsg string

// NavigateMsg is the uniform navigation intent for non-keyboard sources.
// Any producer (pointer layer, future gesture input) can send it; it is
// handled identically to the bound directional keys.
type NavigateMsg struct {
	Previous bool
}

func New(ctx context.Context, cfg config.Config, loader *manifest.Loader, history *repository.HistoryRepo) *App {
	return &App{
		ctx:     ctx,
		cfg:     cfg,
		loader:  loader,
		history: history,
		keys:    newKeyRegistry(defaultBindings()),
		session: uuid.NewString(),
		state:   stateLoading,
		pager:   catalog.NewPager(0),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

// loadCatalog runs the one startup load: fetch and parse the manifest and,
// only when resume is opted in, look up the stored position for this
// source. All-or-nothing; a failure carries only its cause. The default is
// no lookup, so a fresh load always opens on the newest entry.
func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		c, err := a.loader.Load(a.ctx, a.cfg.Manifest.Source)
		if err != nil {
			return loadFailedMsg{err}
		}
		resume := -1
		if a.history != nil && a.cfg.History.Resume {
			if pos, ok, err := a.history.LastPosition(a.ctx, a.cfg.Manifest.Source); err == nil && ok {
				resume = pos
			}
		}
		return catalogMsg{c: c, resumePos: resume}
	}
}

func (a *App) loadFrame(ref string) tea.Cmd {
	return func() tea.Msg {
		data, err := a.loader.ReadDocument(a.ctx, ref, int64(a.cfg.UI.PreviewBytes))
		return frameMsg{ref: ref, data: data, err: err}
	}
}

func (a *App) recordView(idx int) tea.Cmd {
	if a.history == nil {
		return nil
	}
	e := a.catalog.At(idx)
	return func() tea.Msg {
		v := repository.View{
			SessionID:  a.session,
			Source:     a.cfg.Manifest.Source,
			EntryTitle: e.Title,
			EntryPath:  e.Path,
			EntryDate:  e.Date.Format("2006-01-02"),
			Position:   idx,
		}
		if err := a.history.RecordView(a.ctx, v); err != nil {
			return statusMsg("history: " + err.Error())
		}
		return nil
	}
}

func (a *App) loadHistory() tea.Cmd {
	if a.history == nil {
		return nil
	}
	return func() tea.Msg {
		rows, err := a.history.RecentViews(a.ctx, a.cfg.Manifest.Source, 20)
		if err != nil {
			return statusMsg("history: " + err.Error())
		}
		return historyMsg(rows)
	}
}

type historyMsg []repository.View

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height

	case tea.KeyMsg:
		if a.jump != nil {
			return a.updateJump(m)
		}
		if a.historyOpen {
			return a.updateHistory(m)
		}
		switch a.keys.intentFor(m, scopeBrowse) {
		case intentQuit:
			return a.quit()
		case intentPrevious:
			return a.navigate(true)
		case intentNext:
			return a.navigate(false)
		case intentJump:
			if a.state == stateBrowse {
				a.jump = newJumpPicker(a.catalog, a.dateFormat())
			}
		case intentHistory:
			if a.history != nil && !a.historyOpen {
				return a, a.loadHistory()
			}
		}

	case tea.MouseMsg:
		return a.handleMouse(m)

	case NavigateMsg:
		return a.navigate(m.Previous)

	case catalogMsg:
		a.catalog = m.c
		a.pager = catalog.NewPager(m.c.Len())
		if m.c.Len() == 0 {
			a.state = stateEmpty
			a.status = "manifest loaded, no entries"
			a.vm = view.Render(a.catalog, 0, a.dateFormat())
			return a, nil
		}
		a.state = stateBrowse
		a.status = ""
		if m.resumePos >= 0 {
			// out-of-range stored positions are no-ops, leaving the newest
			a.pager.Jump(m.resumePos)
		}
		return a.sync(-1)

	case loadFailedMsg:
		a.state = stateEmpty
		a.status = m.err.Error()
		a.vm = view.Render(a.catalog, 0, a.dateFormat())

	case frameMsg:
		// drop stale frames from positions we already left
		if m.ref == a.frame.ref {
			a.frame.loading = false
			a.frame.err = m.err
			a.frame.content = string(m.data)
		}

	case historyMsg:
		a.historyRows = []repository.View(m)
		a.historyOpen = true

	case statusMsg:
		a.status = string(m)
	}
	return a, nil
}

// navigate applies one pager transition and re-renders. Boundary input is a
// no-op transition; the re-render is harmless because the view projection
// is pure.
func (a *App) navigate(previous bool) (tea.Model, tea.Cmd) {
	if a.state != stateBrowse {
		return a, nil
	}
	before, _ := a.pager.Current()
	if previous {
		a.pager.Previous()
	} else {
		a.pager.Next()
	}
	return a.sync(before)
}

// sync re-renders the view model for the current position and, when the
// position actually changed, kicks off the frame load and the history
// write. before < 0 forces the side effects (initial render).
func (a *App) sync(before int) (tea.Model, tea.Cmd) {
	idx, ok := a.pager.Current()
	a.vm = view.Render(a.catalog, idx, a.dateFormat())
	if !ok || idx == before {
		return a, nil
	}
	ref := manifest.ResolveRef(a.cfg.Manifest.Source, a.vm.ContentReference)
	a.frame = frameState{ref: ref, loading: true}
	return a, tea.Batch(a.loadFrame(ref), a.recordView(idx))
}

func (a *App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a.quit()
	case "esc":
		a.jump = nil
	case "enter":
		it, ok := a.jump.selected()
		a.jump = nil
		if ok {
			before, _ := a.pager.Current()
			a.pager.Jump(it.index)
			return a.sync(before)
		}
	case "up", "ctrl+p":
		a.jump.cursorUp()
	case "down", "ctrl+n":
		a.jump.cursorDown()
	case "backspace":
		if a.jump.query != "" {
			_, size := utf8.DecodeLastRuneInString(a.jump.query)
			a.jump.setQuery(a.jump.query[:len(a.jump.query)-size])
		}
	default:
		if msg.Type == tea.KeyRunes {
			a.jump.setQuery(a.jump.query + string(msg.Runes))
		}
	}
	return a, nil
}

func (a *App) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a.quit()
	case "esc", "v", "q":
		a.historyOpen = false
	}
	return a, nil
}

// quit persists the final position for this source before the program
// exits. Saving once here, synchronously, keeps the stored position
// deterministic: per-navigation async writes could land out of order.
func (a *App) quit() (tea.Model, tea.Cmd) {
	if a.history != nil && a.state == stateBrowse {
		if idx, ok := a.pager.Current(); ok {
			_ = a.history.SavePosition(a.ctx, a.cfg.Manifest.Source, idx)
		}
	}
	return a, tea.Quit
}

// handleMouse maps pointer activation onto the previous/next controls:
// a left-button release on the left half of the screen is "previous", on
// the right half "next". Same path as the keys from there on.
func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.jump != nil || a.historyOpen {
		return a, nil
	}
	if m.Action != tea.MouseActionRelease || m.Button != tea.MouseButtonLeft {
		return a, nil
	}
	if a.width <= 0 {
		return a, nil
	}
	return a.navigate(m.X < a.width/2)
}

func (a *App) dateFormat() string {
	if a.cfg.UI.DateFormat != "" {
		return a.cfg.UI.DateFormat
	}
	return view.DefaultDateFormat
}
