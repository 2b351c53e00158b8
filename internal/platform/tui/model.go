package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/logging"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/platform/host"
	"github.com/vovakirdan/fbcore/internal/platform/snapshot"
	"github.com/vovakirdan/fbcore/internal/registry"
)

// Options configure a terminal session.
type Options struct {
	TickRate int
	Seed     uint32
	KeyMap   host.KeyMap
	Hold     int    // Frames a key press stays held; 0 = host.DefaultHold
	ShotDir  string // Screenshot directory; "" = ~/.fbcore/screenshots
	Logger   *log.Logger
	Width    int // Initial terminal size, before the first resize message
	Height   int
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model showing one running game.
type Model struct {
	gameID string
	fb     *host.Framebuffer
	keys   *host.Keys
	keymap host.KeyMap
	help   help.Model
	opts   Options
	styles styleCache

	pixels   []core.Color
	seq      uint64
	frame    string
	width    int
	height   int
	step     int
	status   string
	quitting bool
}

// NewModel creates a model that displays fb and feeds keys.
func NewModel(gameID string, fb *host.Framebuffer, keys *host.Keys, opts Options) Model {
	if opts.Hold <= 0 {
		opts.Hold = host.DefaultHold
	}
	if len(opts.KeyMap.Buttons) == 0 {
		opts.KeyMap = host.DefaultKeyMap()
	}
	m := Model{
		gameID: gameID,
		fb:     fb,
		keys:   keys,
		keymap: opts.KeyMap,
		help:   help.New(),
		opts:   opts,
		styles: make(styleCache),
		width:  opts.Width,
		height: opts.Height,
	}
	m.step = m.downsample()
	return m
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.step = m.downsample()
		m.seq = 0 // force a redraw at the new size
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Shot):
		m.saveScreenshot()
		return m, nil
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b := m.keymap.Lookup(msg.String()); b != 0 {
		m.keys.Tap(b, m.opts.Hold)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var seq uint64
	m.pixels, seq = m.fb.Snapshot(m.pixels)
	if seq != m.seq || m.frame == "" {
		m.seq = seq
		m.frame = RenderFrame(m.pixels, m.fb.Width(), m.fb.Height(), m.step, m.styles)
	}
	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot stores the last published frame as a BMP.
func (m *Model) saveScreenshot() {
	pixels, _ := m.fb.Snapshot(nil)
	path, err := snapshot.SaveFrame(m.opts.ShotDir, m.gameID, pixels, m.fb.Width(), m.fb.Height())
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		if m.opts.Logger != nil {
			m.opts.Logger.Error("screenshot", "err", err)
		}
		return
	}
	m.status = "saved " + path
	if m.opts.Logger != nil {
		m.opts.Logger.Info("screenshot", "path", path)
	}
}

func (m Model) downsample() int {
	if m.width <= 0 || m.height <= 0 {
		return 1
	}
	// Keep two rows for the help line and status.
	return Downsample(m.fb.Width(), m.fb.Height(), m.width, m.height-2)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := m.frame + "\n" + helpStyle.Render(m.help.View(m.keymap))
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	return view
}

// Run plays game in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, game registry.Game, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fb := host.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	keys := &host.Keys{}
	pacer := host.NewPacer(fb, opts.TickRate)

	var lopts []loop.Option
	if opts.Seed != 0 {
		lopts = append(lopts, loop.WithSeed(opts.Seed))
	}
	if opts.Logger != nil {
		lopts = append(lopts, logging.Observers(opts.Logger, 0)...)
	}
	runner := loop.New(fb, keys, pacer, lopts...)

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- runner.Run(ctx, game)
	}()

	p := tea.NewProgram(
		NewModel(game.ID(), fb, keys, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()

	cancel()
	pacer.Close()
	if lerr := <-loopErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
		return fmt.Errorf("tui: frame loop: %w", lerr)
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
