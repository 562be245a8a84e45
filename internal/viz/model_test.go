package viz_test

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/viz"
)

func update(m viz.Model, msg tea.Msg) (viz.Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(viz.Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var _ = Describe("Model", func() {
	var m viz.Model

	BeforeEach(func() {
		m = viz.NewModel(config.DefaultConfig(), nil)
		m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	})

	It("sizes the canvas below the header and above the help line", func() {
		Expect(m.Canvas().Width).To(Equal(40))
		Expect(m.Canvas().Height).To(Equal(10))

		vp := m.Viewport()
		Expect(vp.Width).To(Equal(320.0))
		Expect(vp.Height).To(Equal(160.0))
	})

	It("starts with the origin centered", func() {
		Expect(m.Offset()).To(Equal(cartesian.Point{}))
		Expect(m.View()).To(ContainSubstring("cartgrid"))
		Expect(m.View()).To(ContainSubstring("+0,+0"))
	})

	Describe("dragging", func() {
		press := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

		It("pans by the cell delta scaled to pixels", func() {
			m, _ = update(m, press)
			m, _ = update(m, tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			Expect(m.Offset()).To(Equal(cartesian.Point{X: 16, Y: -16}))

			m, _ = update(m, tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			Expect(m.Offset()).To(Equal(cartesian.Point{X: 8, Y: -16}))
		})

		It("ignores motion without a press", func() {
			m, _ = update(m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion})
			Expect(m.Offset()).To(Equal(cartesian.Point{}))
		})

		It("stops after release", func() {
			m, _ = update(m, press)
			m, _ = update(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
			m, _ = update(m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion})
			Expect(m.Offset()).To(Equal(cartesian.Point{}))
		})

		It("ignores the right button", func() {
			m, _ = update(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
			m, _ = update(m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonRight})
			Expect(m.Offset()).To(Equal(cartesian.Point{}))
		})
	})

	Describe("keys", func() {
		It("nudges by the pan step", func() {
			m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
			m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
			Expect(m.Offset()).To(Equal(cartesian.Point{X: 16, Y: -16}))

			m, _ = update(m, runes("h"))
			m, _ = update(m, runes("j"))
			Expect(m.Offset()).To(Equal(cartesian.Point{}))
		})

		It("recenters", func() {
			m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
			m, _ = update(m, runes("r"))
			Expect(m.Offset()).To(Equal(cartesian.Point{}))
			Expect(m.View()).To(ContainSubstring("recentered"))
		})

		It("cycles themes and palettes", func() {
			m, _ = update(m, runes("t"))
			Expect(m.ThemeName()).To(Equal(viz.NextTheme("minimal").Name))

			before := m.Config().Preset
			m, _ = update(m, runes("p"))
			Expect(m.Config().Preset).NotTo(Equal(before))
			Expect(m.Config().Terminal.CellWidth).To(Equal(config.DefaultCellWidth))
		})

		It("quits", func() {
			_, cmd := update(m, runes("q"))
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})
	})

	Describe("config reloads", func() {
		It("applies a reloaded config and keeps listening", func() {
			reloads := make(chan config.Reload, 1)
			m = viz.NewModel(config.DefaultConfig(), reloads)

			cfg := config.DefaultConfig()
			cfg.Terminal.Interval = 32
			reloads <- config.Reload{Config: cfg}

			var cmd tea.Cmd
			m, cmd = update(m, m.Init()())
			Expect(m.Config().Terminal.Interval).To(Equal(32.0))
			Expect(cmd).NotTo(BeNil())
		})

		It("has nothing to wait on without a watcher", func() {
			Expect(m.Init()).To(BeNil())
		})
	})
})
