package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/casechart/internal/canvas"
	"github.com/yildizm/casechart/internal/cases"
	"github.com/yildizm/casechart/internal/player"
	"github.com/yildizm/casechart/internal/render"
	"github.com/yildizm/casechart/internal/ui/components"
)

// PlaybackOptions configures a PlaybackModel
type PlaybackOptions struct {
	Source        string        // shown in the status line
	Size          int64         // input size in bytes, 0 when unknown
	Delay         time.Duration // time each frame stays up
	Columns       int           // chart grid width in cells
	Rows          int           // chart grid height in cells
	HoldLastFrame bool          // keep the final frame up until the user quits
	Color         bool
	Context       context.Context // stops frame pulls when cancelled, nil for none
}

// PlaybackModel animates frames pulled from a Stepper, one per tick.
// Parsing happens inside Update so the animation stays single threaded.
type PlaybackModel struct {
	stepper  *player.Stepper
	grid     *canvas.Grid
	renderer *render.Renderer
	opts     PlaybackOptions

	progress *components.ProgressBar
	spinner  *components.Spinner
	styles   *Styles

	frame    *cases.Frame
	frames   int
	seq      int
	paused   bool
	done     bool
	quitting bool
	err      error
	width    int
}

// NewPlaybackModel creates a playback model over stepper
func NewPlaybackModel(stepper *player.Stepper, opts PlaybackOptions) *PlaybackModel {
	if opts.Columns < 1 {
		opts.Columns = 140
	}
	if opts.Rows < 1 {
		opts.Rows = 45
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	// pacing comes from tea.Tick, so the grid never sleeps
	grid := canvas.NewGrid(opts.Columns, opts.Rows, canvas.WithColor(opts.Color))

	progress := components.NewProgressBar(30)
	progress.SetProgress(0, opts.Size)

	return &PlaybackModel{
		stepper:  stepper,
		grid:     grid,
		renderer: render.New(grid, 0),
		opts:     opts,
		progress: progress,
		spinner:  components.NewSpinner(),
		styles:   GetStyles(),
	}
}

// Init starts the tick chain
func (m *PlaybackModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		scheduleTick(m.seq, 0),
	)
}

// Update handles messages
func (m *PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if msg.seq != m.seq || m.paused || m.done {
			return m, nil
		}
		return m, m.advance()
	}

	return m, nil
}

func (m *PlaybackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ", "p":
		if m.done {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			return m, nil
		}
		// a fresh schedule so a tick still in flight is ignored
		m.seq++
		return m, scheduleTick(m.seq, m.opts.Delay)
	case "enter":
		if m.done {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// advance pulls and draws one frame, then schedules the next tick
func (m *PlaybackModel) advance() tea.Cmd {
	frame, err := m.stepper.Next(m.opts.Context)
	m.progress.SetProgress(m.stepper.Consumed(), m.opts.Size)

	if errors.Is(err, io.EOF) {
		m.done = true
		if m.opts.HoldLastFrame {
			return nil
		}
		return tea.Quit
	}
	if err != nil {
		m.err = err
		m.done = true
		return tea.Quit
	}

	if err := m.renderer.Draw(frame); err != nil {
		m.err = fmt.Errorf("draw frame %s: %w", frame.Date, err)
		m.done = true
		return tea.Quit
	}
	m.frame = frame
	m.frames++
	m.spinner.Tick()

	return scheduleTick(m.seq, m.opts.Delay)
}

// View renders the chart with a status line beneath it
func (m *PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("casechart"))
	b.WriteString(m.styles.Muted.Render(m.opts.Source))
	b.WriteString("\n")

	if m.frame == nil {
		b.WriteString(m.styles.Muted.Render("waiting for the first frame..."))
	} else {
		b.WriteString(m.grid.Frame())
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))

	return b.String()
}

func (m *PlaybackModel) statusLine() string {
	var state string
	switch {
	case m.err != nil:
		state = m.styles.Error.Render("Error: " + m.err.Error())
	case m.done:
		state = m.styles.Success.Render("Done")
	case m.paused:
		state = m.styles.Warning.Render("Paused")
	default:
		m.spinner.SetLabel("Playing")
		state = m.spinner.Render()
	}

	parts := []string{state, fmt.Sprintf("frames: %d", m.frames)}
	if m.frame != nil {
		parts = append(parts, cases.FormatDateLabel(m.frame.Date))
	}
	parts = append(parts, m.progress.Render())

	return strings.Join(parts, "  ")
}

func (m *PlaybackModel) helpLine() string {
	if m.done {
		return "enter/q quit"
	}
	return "space pause/resume • q quit"
}

// Err returns the error that ended playback, if any
func (m *PlaybackModel) Err() error {
	return m.err
}

// Frames returns how many frames were drawn
func (m *PlaybackModel) Frames() int {
	return m.frames
}

// Done reports whether the input has been fully consumed
func (m *PlaybackModel) Done() bool {
	return m.done
}
