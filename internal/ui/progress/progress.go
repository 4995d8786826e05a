// Package progress provides a cancelable background spinner that shows the CLI
// is still waiting on the cluster.
package progress

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 100 * time.Millisecond

var frames = []string{"[.  ]", "[.. ]", "[...]", "[ ..]", "[  .]", "[   ]"}

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// Option configures a Signal.
type Option func(*Signal)

// WithInterval sets the tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Signal) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLabel sets the text rendered next to the spinner.
func WithLabel(label string) Option {
	return func(s *Signal) {
		s.label = label
	}
}

// WithTerminal overrides terminal detection.
func WithTerminal(tty bool) Option {
	return func(s *Signal) {
		s.tty = tty
	}
}

// Signal runs a Bubble Tea spinner program until stopped. Stop is idempotent.
// The zero value is not usable; use New.
type Signal struct {
	w        io.Writer
	interval time.Duration
	label    string
	tty      bool

	mu      sync.Mutex
	started bool
	stopped bool
	program *tea.Program

	stopOnce sync.Once
	doneCh   chan struct{}
	ticks    atomic.Int64
}

// New creates a Signal writing to w. Rendering only happens when w is a terminal.
func New(w io.Writer, opts ...Option) *Signal {
	s := &Signal{
		w:        w,
		interval: DefaultInterval,
		label:    "waiting for loadtest containers",
		tty:      isTerminal(w),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the spinner program. Calls after the first, or after Stop,
// do nothing.
func (s *Signal) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	// The session owns stdin and signal handling; the program only draws.
	opts := []tea.ProgramOption{tea.WithInput(nil), tea.WithoutSignalHandler()}
	if s.tty {
		opts = append(opts, tea.WithOutput(s.w))
	} else {
		opts = append(opts, tea.WithOutput(io.Discard), tea.WithoutRenderer())
	}
	s.program = tea.NewProgram(s.newModel(), opts...)

	go func() {
		defer close(s.doneCh)
		_, _ = s.program.Run()
	}()
}

// Stop ends the spinner, clears its line and waits until the program has
// exited. It is safe to call more than once and before Start.
func (s *Signal) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		p := s.program
		s.mu.Unlock()

		if p == nil {
			close(s.doneCh)
			return
		}
		p.Send(stopMsg{})
	})
	<-s.doneCh
}

// Ticks reports how many times the spinner has advanced.
func (s *Signal) Ticks() int64 {
	return s.ticks.Load()
}

func (s *Signal) newModel() model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: frames, FPS: s.interval}),
		spinner.WithStyle(spinnerStyle),
	)
	return model{spinner: sp, label: s.label, ticks: &s.ticks}
}

// stopMsg asks the model to blank its view and quit.
type stopMsg struct{}

type model struct {
	spinner spinner.Model
	label   string
	ticks   *atomic.Int64
	done    bool
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		m.ticks.Add(1)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + labelStyle.Render(m.label)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
