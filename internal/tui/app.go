// Package tui is the interactive terminal front end: a problem entry
// screen feeding a live simulation screen. One bubbletea program drives
// both; the render loop is a self-re-arming tick that advances the
// session clock and redraws from the latest parameters.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Abhiabhilash8/PhysiLab/internal/config"
	"github.com/Abhiabhilash8/PhysiLab/internal/kinematics"
	"github.com/Abhiabhilash8/PhysiLab/internal/lab"
	"github.com/Abhiabhilash8/PhysiLab/internal/render"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
	"github.com/Abhiabhilash8/PhysiLab/internal/session"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Padding(0, 2).Width(46)
)

type uiState int

const (
	stateInput uiState = iota
	stateSim
)

const historyCapacity = 240

type model struct {
	state uiState
	cfg   *config.Config

	inputBuf string
	errMsg   string

	rec     *lab.Record
	clock   *session.Clock
	sim     *render.Surface
	graph   *render.Surface
	history []float64

	paramCursor int
	showGraph   bool
	whatifMode  bool
	whatifBuf   string

	width, height int
}

// NewApp builds the interactive model. An optional initial problem skips
// the entry screen.
func NewApp(cfg *config.Config, problem string) tea.Model {
	m := model{
		state:   stateInput,
		cfg:     cfg,
		sim:     render.NewSimSurface(cfg.Canvas.SimCols, cfg.Canvas.SimRows),
		graph:   render.NewGraphSurface(cfg.Canvas.GraphCols, cfg.Canvas.GraphRows),
		history: make([]float64, 0, historyCapacity),
		width:   100,
		height:  30,
	}
	if strings.TrimSpace(problem) != "" {
		if rec, err := lab.Submit(problem); err == nil {
			m.rec = rec
			m.clock = session.NewClock()
			m.state = stateSim
		}
	}
	return m
}

// Run starts the interactive program.
func Run(cfg *config.Config, problem string) error {
	p := tea.NewProgram(NewApp(cfg, problem), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	if m.state == stateSim {
		return m.tick()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		// The per-tick path touches only the clock and the history
		// buffer; parsing and command interpretation happen on key
		// events. The next frame reads whatever the parameters are now.
		m.clock.Tick()
		m.recordHistory()
		return m, m.tick()
	}
	return m, nil
}

func (m *model) recordHistory() {
	st := kinematics.At(m.rec.Kind, m.rec.Params, m.clock.Elapsed)
	v := st.Y
	if m.rec.Kind == scenario.Pendulum {
		v = st.Swing
	}
	m.history = append(m.history, v)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateInput {
		return m.inputKey(msg)
	}
	if m.whatifMode {
		return m.whatifKey(msg)
	}
	return m.simKey(msg)
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		rec, err := lab.Submit(m.inputBuf)
		if err != nil {
			m.errMsg = "enter a problem first"
			return m, nil
		}
		m.rec = rec
		m.errMsg = ""
		m.startSim()
		return m, tea.Batch(tea.ClearScreen, m.tick())
	case "backspace":
		if len(m.inputBuf) > 0 {
			m.inputBuf = m.inputBuf[:len(m.inputBuf)-1]
		}
	case "1", "2", "3", "4":
		if m.inputBuf == "" {
			idx := int(msg.String()[0] - '1')
			if idx < len(m.cfg.Samples) {
				m.inputBuf = m.cfg.Samples[idx]
			}
			return m, nil
		}
		m.inputBuf += msg.String()
	default:
		if len(msg.Runes) > 0 {
			m.inputBuf += string(msg.Runes)
		} else if msg.String() == " " {
			m.inputBuf += " "
		}
	}
	return m, nil
}

func (m *model) startSim() {
	m.clock = session.NewClock()
	m.history = m.history[:0]
	m.paramCursor = 0
	m.whatifMode = false
	m.whatifBuf = ""
	m.state = stateSim
}

func (m model) simKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n", "esc":
		m.state = stateInput
		m.inputBuf = ""
		return m, tea.ClearScreen
	case " ", "p":
		m.clock.TogglePlay()
	case "r":
		// Rewind time only; parameters keep their current values.
		m.clock.Reset()
		m.history = m.history[:0]
	case "g":
		m.showGraph = !m.showGraph
	case "w":
		m.whatifMode = true
		m.whatifBuf = ""
	case "tab":
		m.paramCursor = (m.paramCursor + 1) % len(scenario.Names())
	case "up", "k":
		m.adjustParam(1.05)
	case "down", "j":
		m.adjustParam(0.95)
	case "right", "l":
		m.nudgeParam(1.0)
	case "left", "h":
		m.nudgeParam(-1.0)
	}
	return m, nil
}

func (m model) whatifKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.rec.ApplyWhatIf(m.whatifBuf)
		m.whatifBuf = ""
		m.whatifMode = false
	case "esc":
		m.whatifBuf = ""
		m.whatifMode = false
	case "backspace":
		if len(m.whatifBuf) > 0 {
			m.whatifBuf = m.whatifBuf[:len(m.whatifBuf)-1]
		}
	default:
		if len(msg.Runes) > 0 {
			m.whatifBuf += string(msg.Runes)
		} else if msg.String() == " " {
			m.whatifBuf += " "
		}
	}
	return m, nil
}

func (m *model) adjustParam(factor float64) {
	name := scenario.Names()[m.paramCursor]
	val, err := m.rec.Params.Get(name)
	if err != nil {
		return
	}
	m.rec.SetParameter(name, val*factor)
}

func (m *model) nudgeParam(delta float64) {
	name := scenario.Names()[m.paramCursor]
	val, err := m.rec.Params.Get(name)
	if err != nil {
		return
	}
	m.rec.SetParameter(name, val+delta)
}

func (m model) View() string {
	if m.state == stateInput {
		return m.viewInput()
	}
	return m.viewSim()
}

func (m model) viewInput() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("p h y s i l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")
	b.WriteString(dim.Render("    describe a physics problem:") + "\n\n")
	b.WriteString("    " + white.Render(m.inputBuf+"▋") + "\n\n")
	if m.errMsg != "" {
		b.WriteString("    " + red.Render(m.errMsg) + "\n\n")
	}
	b.WriteString(dim.Render("    or pick a sample:") + "\n")
	for i, s := range m.cfg.Samples {
		b.WriteString(fmt.Sprintf("      %s %s\n", cyan.Render(fmt.Sprintf("%d", i+1)), dimmer.Render(s)))
	}
	b.WriteString("\n" + dim.Render("    enter simulate   esc quit") + "\n")
	return b.String()
}

func (m model) viewSim() string {
	render.Frame(m.sim, m.rec.Kind, m.rec.Params, m.clock.Elapsed)
	canvasView := canvasStyle.Render(strings.TrimRight(m.sim.String(), "\n"))

	var s strings.Builder

	statusIcon, statusText := green.Render("●"), green.Render("running")
	if !m.clock.Playing {
		statusIcon, statusText = yellow.Render("○"), yellow.Render("paused")
	}
	s.WriteString(fmt.Sprintf("%s %s  %s\n", statusIcon, cyan.Render(m.rec.Kind.String()), statusText))
	s.WriteString(dim.Render("t=") + white.Render(fmt.Sprintf("%.2fs", m.clock.Elapsed)) + "\n\n")

	s.WriteString(dim.Render("PARAMETERS") + "\n")
	for i, name := range scenario.Names() {
		val, _ := m.rec.Params.Get(name)
		line := fmt.Sprintf("%-9s %s %6.2f", name, paramBar(name, val), val)
		if i == m.paramCursor {
			s.WriteString(magenta.Render("▸ "+line) + "\n")
		} else {
			s.WriteString("  " + dim.Render(line) + "\n")
		}
	}

	s.WriteString("\n" + dim.Render("EXPLANATION") + "\n")
	s.WriteString(white.Render(m.rec.Explanation.Title) + "\n")
	for i, step := range m.rec.Explanation.Steps {
		s.WriteString(dim.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
	}
	s.WriteString(cyan.Render(m.rec.Explanation.Equation) + "\n")

	if m.whatifMode {
		s.WriteString("\n" + yellow.Render("what if: ") + white.Render(m.whatifBuf+"▋") + "\n")
	} else {
		s.WriteString("\n" + dimmer.Render("space pause  r reset  tab/↑↓ tune  w what-if") + "\n")
		s.WriteString(dimmer.Render("g graph  n new problem  q quit") + "\n")
	}

	panel := panelStyle.Render(s.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)

	if m.showGraph {
		render.Graph(m.graph, m.rec.Kind, m.rec.Params)
		view += "\n" + canvasStyle.Render(strings.TrimRight(m.graph.String(), "\n"))
	} else if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(60),
			asciigraph.Caption("position history"),
		)
		view += "\n" + dim.Render(chart)
	}

	return view
}

// paramBar renders a 10-slot gauge of the value inside its slider range.
func paramBar(name string, val float64) string {
	lo, hi := 0.0, 1.0
	switch name {
	case "velocity":
		lo, hi = scenario.MinVelocity, scenario.MaxVelocity
	case "angle":
		lo, hi = scenario.MinAngle, scenario.MaxAngle
	case "height":
		lo, hi = scenario.MinHeight, scenario.MaxHeight
	case "gravity":
		lo, hi = scenario.MinGravity, scenario.MaxGravity
	}
	ratio := (val - lo) / (hi - lo)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * 10)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", 10-filled) + "]"
}
