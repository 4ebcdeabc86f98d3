package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
	"github.com/marblekit/marblepath/internal/physics"
	"github.com/marblekit/marblepath/internal/sim"
)

const (
	width  = 80
	height = 24
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a level world in real time and draws it on a braille canvas.
type Model struct {
	world  *sim.World
	spawns []geom.Vec2
	tun    physics.Tuning
	level  string
	fps    int

	tick      int
	collected int
	running   bool
	canvas    *Canvas
}

func NewModel(w *sim.World, level string, fps int) Model {
	spawns := make([]geom.Vec2, len(w.Marbles))
	for i, m := range w.Marbles {
		spawns[i] = m.Pos
	}
	return Model{
		world:   w,
		spawns:  spawns,
		tun:     w.Tuning,
		level:   level,
		fps:     fps,
		running: true,
		canvas:  NewCanvas(width, height),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.collected += m.world.Step(m.tun)
			m.tick++
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) reset() {
	for i, marble := range m.world.Marbles {
		marble.Reset(m.spawns[i])
	}
	for i := range m.world.Stars {
		m.world.Stars[i].Collected = false
	}
	m.tick = 0
	m.collected = 0
}

func (m Model) View() string {
	m.draw()

	stats := m.stats()
	canvas := canvasStyle.Render(m.canvas.Render())

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)
	help := helpStyle.Render("space pause · r reset · q quit")
	return view + "\n" + help
}

func (m Model) draw() {
	m.canvas.Clear()
	b := m.world.Bounds

	win := eq.Window{MinX: b.MinX, MaxX: b.MaxX, MinY: b.MinY, MaxY: b.MaxY}
	for _, p := range m.world.Paths {
		for _, pt := range p.Eq.Points(win, width*2) {
			m.plot(pt)
		}
	}

	for _, marble := range m.world.Marbles {
		for _, pt := range marble.Trail.Points() {
			m.plot(pt)
		}
		// 2x2 sub-pixel block makes the marble stand out from its trail.
		sx, sy := m.toSub(marble.Pos)
		m.canvas.Set(sx, sy)
		m.canvas.Set(sx+1, sy)
		m.canvas.Set(sx, sy+1)
		m.canvas.Set(sx+1, sy+1)
	}

	for _, s := range m.world.Stars {
		if s.Collected {
			continue
		}
		sx, sy := m.toSub(s.Pos)
		m.canvas.SetCell(sx/2, sy/4, '*')
	}
}

func (m Model) plot(p geom.Vec2) {
	if !m.world.Bounds.Contains(p) {
		return
	}
	m.canvas.Set(m.toSub(p))
}

// toSub maps world coordinates onto the canvas sub-pixel grid, y up.
func (m Model) toSub(p geom.Vec2) (int, int) {
	b := m.world.Bounds
	sx := (p.X - b.MinX) / (b.MaxX - b.MinX) * float64(width*2-1)
	sy := (b.MaxY - p.Y) / (b.MaxY - b.MinY) * float64(height*4-1)
	return int(sx), int(sy)
}

func (m Model) stats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("marblepath · "+m.level) + "\n")

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	row("tick", fmt.Sprintf("%d", m.tick))
	row("stars", starStyle.Render(fmt.Sprintf("%d / %d", m.collected, len(m.world.Stars))))

	for i, marble := range m.world.Marbles {
		row(fmt.Sprintf("marble %d", i), fmt.Sprintf("(%.2f, %.2f)", marble.Pos.X, marble.Pos.Y))
		row("  velocity", fmt.Sprintf("(%.3f, %.3f)", marble.Vel.X, marble.Vel.Y))
		state := "freefall"
		if marble.OnPath && marble.CurrentPath != nil {
			state = "on " + marble.CurrentPath.ID
		}
		row("  state", state)
	}

	if !m.running {
		sb.WriteString("\n" + valueStyle.Render("paused"))
	}
	return statsStyle.Render(sb.String())
}

// Run starts the live view and blocks until the user quits.
func Run(w *sim.World, level string, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	p := tea.NewProgram(NewModel(w, level, fps))
	_, err := p.Run()
	return err
}
