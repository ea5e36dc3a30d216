// Package demo implements the terminal fade demo: a banner whose
// opacity is animated by the motion scheduler and rendered by blending
// foreground into background color.
package demo

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/fade"
)

// Options configure the demo.
type Options struct {
	Curve     animation.Curve
	CurveName string
	Duration  time.Duration
	FrameRate int
}

// Run starts the demo and blocks until the user quits.
func Run(opts Options) error {
	if opts.FrameRate <= 0 {
		opts.FrameRate = animation.DefaultFrameRate
	}
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// frameSource adapts scheduler frame requests to bubbletea ticks:
// requests queue up and the next tick message drains them.
type frameSource struct {
	mu      sync.Mutex
	pending []func()
}

func (f *frameSource) request(callback func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, callback)
}

func (f *frameSource) drain() {
	f.mu.Lock()
	batch := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, cb := range batch {
		cb()
	}
}

// banner is the fade surface: opacity plus a display flag.
type banner struct {
	opacity float64
	shown   bool
}

func (b *banner) Opacity() float64     { return b.opacity }
func (b *banner) SetOpacity(v float64) { b.opacity = v }
func (b *banner) SetShown(shown bool)  { b.shown = shown }

type tickMsg time.Time

type model struct {
	opts    Options
	frames  *frameSource
	sched   *animation.Scheduler
	surface *banner
	fader   *fade.Fader

	fg, bg   colorful.Color
	visible  bool
	quitting bool
}

func newModel(opts Options) *model {
	frames := &frameSource{}
	sched := animation.NewScheduler(animation.SchedulerConfig{
		RequestFrame: frames.request,
	})
	surface := &banner{}
	fg, _ := colorful.Hex("#ff75b5")
	bg, _ := colorful.Hex("#1a1a2e")
	return &model{
		opts:    opts,
		frames:  frames,
		sched:   sched,
		surface: surface,
		fader: fade.New(surface, sched, fade.Config{
			Curve:    opts.Curve,
			Duration: opts.Duration,
		}),
		fg:      fg,
		bg:      bg,
		visible: true,
	}
}

func (m *model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.opts.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	m.fader.Show(0)
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.fader.Toggle(0)
		case "v":
			m.visible = !m.visible
			m.sched.SetVisible(m.visible)
		}
	case tickMsg:
		m.frames.drain()
		return m, m.tick()
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7a7a8c"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#55555f")).
			MarginTop(1)
)

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	blended := animation.LerpColor(m.bg, m.fg, m.surface.opacity)
	bannerStyle := titleStyle.Copy().Foreground(lipgloss.Color(blended.Hex()))

	text := "· · ·"
	if m.surface.shown {
		text = "✨ m o t i o n ✨"
	}

	state := "visible"
	if !m.visible {
		state = "hidden (scheduler idle)"
	}

	return fmt.Sprintf("%s\n%s\n%s\n",
		bannerStyle.Render(text),
		statusStyle.Render(fmt.Sprintf("curve %s · opacity %.2f · %s",
			m.opts.CurveName, m.surface.opacity, state)),
		helpStyle.Render("space: fade · v: toggle visibility · q: quit"),
	)
}
