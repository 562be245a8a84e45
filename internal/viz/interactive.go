package viz

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/logging"
	"github.com/san-kum/cartgrid/internal/paint"
)

// header and help line around the canvas
const chromeRows = 2

type reloadMsg config.Reload

// Model is the interactive pan view. Mouse drags and arrow keys feed the
// pan offset; every View is a fresh render pass.
type Model struct {
	cfg    *config.Config
	pan    *cartesian.Pan
	canvas *Canvas
	style  paint.Style
	theme  Theme
	styles styles
	keys   keyMap
	help   help.Model

	width, height int
	dragging      bool
	lastX, lastY  int
	status        string
	reloads       <-chan config.Reload
}

// NewModel builds the model. reloads may be nil when the config is not watched.
func NewModel(cfg *config.Config, reloads <-chan config.Reload) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Model{
		cfg:     cfg,
		pan:     cartesian.NewPan(0, 0),
		keys:    defaultKeys(),
		help:    help.New(),
		reloads: reloads,
	}
	m.applyConfig(cfg)
	m.resize(80, 24)
	return m
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.style = cfg.TerminalStyle()
	m.theme = GetTheme(cfg.Terminal.Theme)
	m.styles = newStyles(m.theme)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := height - chromeRows
	if rows < 0 {
		rows = 0
	}
	m.canvas = NewCanvas(width, rows, m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight)
	m.pan.Resize(m.canvas.PixelSize())
	m.help.Width = width
}

func (m Model) Offset() cartesian.Point { return m.pan.Offset() }
func (m Model) Viewport() cartesian.Viewport { return m.pan.Viewport() }
func (m Model) Canvas() *Canvas { return m.canvas }
func (m Model) ThemeName() string { return m.theme.Name }
func (m Model) Config() *config.Config { return m.cfg }

func (m Model) Init() tea.Cmd { return waitReload(m.reloads) }

func waitReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case reloadMsg:
		if msg.Err != nil {
			logging.Warnf("config reload: %v", msg.Err)
			m.status = "reload failed"
		} else {
			m.applyConfig(msg.Config)
			m.resize(m.width, m.height)
			m.status = "config reloaded"
			logging.Infof("config reloaded, interval %v", msg.Config.Terminal.Interval)
		}
		return m, waitReload(m.reloads)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	step := m.cfg.Terminal.PanStep
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.pan.ApplyDelta(-step, 0)
	case key.Matches(msg, m.keys.Right):
		m.pan.ApplyDelta(step, 0)
	case key.Matches(msg, m.keys.Up):
		m.pan.ApplyDelta(0, -step)
	case key.Matches(msg, m.keys.Down):
		m.pan.ApplyDelta(0, step)
	case key.Matches(msg, m.keys.Reset):
		m.pan.Reset()
		m.status = "recentered"
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		m.status = "theme " + m.theme.Name
	case key.Matches(msg, m.keys.Preset):
		m.cyclePreset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.status = ""
	}
	return m, nil
}

func (m *Model) cyclePreset() {
	names := config.ListPresets()
	next := names[0]
	for i, n := range names {
		if n == m.cfg.Preset {
			next = names[(i+1)%len(names)]
			break
		}
	}
	cfg := config.GetPreset(next)
	cfg.Terminal = m.cfg.Terminal
	cfg.Terminal.Theme = config.GetPreset(next).Terminal.Theme
	m.applyConfig(cfg)
	m.status = "palette " + next
}

// handleMouse turns a left-button drag into pan deltas. Cell deltas are
// scaled to pixels so the grid follows the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			return m
		}
		dx, dy := msg.X-m.lastX, msg.Y-m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		m.pan.ApplyDelta(float64(dx)*m.cfg.Terminal.CellWidth, float64(dy)*m.cfg.Terminal.CellHeight)
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

func (m Model) View() string {
	m.canvas.Clear()
	cmds, err := paint.Pass(m.canvas, m.pan.Viewport(), m.cfg.Terminal.Interval, m.style)

	header := m.header(paint.Count(cmds), err)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.canvas.Render(m.style.Background)+m.help.View(m.keys),
	)
}

func (m Model) header(st paint.Stats, err error) string {
	off := m.pan.Offset()
	parts := []string{
		GradientText("cartgrid", m.theme.Primary, m.theme.Secondary),
		m.styles.Label.Render(" offset ") + m.styles.Value.Render(fmt.Sprintf("%+.0f,%+.0f", off.X, off.Y)),
		m.styles.Label.Render(" lines ") + m.styles.Value.Render(fmt.Sprint(st.Grid)),
		m.styles.Label.Render(" labels ") + m.styles.Value.Render(fmt.Sprint(st.Labels/2)),
	}
	if err != nil {
		parts = append(parts, " "+m.styles.Error.Render(err.Error()))
	} else if m.status != "" {
		parts = append(parts, " "+m.styles.Status.Render(m.status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the interactive view on the alternate screen with mouse
// tracking enabled.
func Run(cfg *config.Config, reloads <-chan config.Reload) error {
	p := tea.NewProgram(NewModel(cfg, reloads), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
