package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cartgrid/internal/analysis"
	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/export"
	"github.com/san-kum/cartgrid/internal/gui"
	"github.com/san-kum/cartgrid/internal/logging"
	"github.com/san-kum/cartgrid/internal/paint"
	"github.com/san-kum/cartgrid/internal/store"
	"github.com/san-kum/cartgrid/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	watch      bool
	// viewport overrides; zero keeps the config value
	width    int
	height   int
	interval float64
	dx       float64
	dy       float64
	// render output
	format  string
	outPath string
	// pan sweep
	sweepAxis  string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	sweepFixed float64
	sweepSave  bool
	// config init
	force bool
)

// main registers the cartgrid commands. With no subcommand it opens the
// terminal view.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cartgrid",
		Short: "pannable cartesian grid",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.SetLevel(logLevel)
		},
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cartgrid", "data directory for saved sweeps")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "style preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	addViewFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pan the grid in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addViewFlags(tuiCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "pan the grid in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&width, "width", 0, "window width")
	guiCmd.Flags().IntVar(&height, "height", 0, "window height")
	guiCmd.Flags().Float64Var(&interval, "interval", 0, "grid interval in pixels")
	guiCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file on change")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to svg, png, json or txt",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVarP(&format, "format", "f", "svg", "svg, png, json or txt")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	renderCmd.Flags().IntVar(&width, "width", 0, "viewport width")
	renderCmd.Flags().IntVar(&height, "height", 0, "viewport height")
	renderCmd.Flags().Float64Var(&interval, "interval", 0, "grid interval in pixels")
	renderCmd.Flags().Float64Var(&dx, "dx", 0, "pan offset x")
	renderCmd.Flags().Float64Var(&dy, "dy", 0, "pan offset y")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure frames across a pan range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", "x", "pan axis, x or y")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -500, "first offset")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 500, "last offset")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 101, "number of frames")
	sweepCmd.Flags().Float64Var(&sweepFixed, "fixed", 0, "offset on the other axis")
	sweepCmd.Flags().BoolVar(&sweepSave, "save", false, "store the sweep under --data")
	sweepCmd.Flags().IntVar(&width, "width", 0, "viewport width")
	sweepCmd.Flags().IntVar(&height, "height", 0, "viewport height")
	sweepCmd.Flags().Float64Var(&interval, "interval", 0, "grid interval in pixels")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved sweeps",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBACKGROUND\tGRID\tAXIS\tINTERVAL\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%s\n",
					name, p.Style.Background, p.Style.Grid, p.Style.Axis, p.Interval, p.Terminal.Theme)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\nterminal themes: %s\n", strings.Join(viz.ThemeNames(), ", "))
			return nil
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [dump.json]",
		Short: "summarize a frame written by render --format json",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectDump,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, sweepCmd, runsCmd, plotCmd, presetsCmd, inspectCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cartgrid:", err)
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&interval, "interval", 0, "grid interval in terminal pixels")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file on change")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs here while the terminal view runs")
}

// loadConfig resolves the config file, then the preset, then the flags.
// A preset named on the command line replaces the file's style.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Preset = p.Preset
		cfg.Style = p.Style
		cfg.Terminal.Theme = p.Terminal.Theme
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Debugf("config: preset %s, viewport %dx%d, interval %v", cfg.Preset, cfg.Viewport.Width, cfg.Viewport.Height, cfg.Interval)
	return cfg, nil
}

// intervalFlag returns the --interval override, if given. The render pass
// rejects bad values itself.
func intervalFlag(cmd *cobra.Command, fallback float64) float64 {
	if cmd.Flags().Changed("interval") {
		return interval
	}
	return fallback
}

func startWatch() (*config.Watcher, <-chan config.Reload, error) {
	if !watch {
		return nil, nil, nil
	}
	if configFile == "" {
		return nil, nil, fmt.Errorf("--watch needs --config")
	}
	w, err := config.Watch(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", configFile, err)
	}
	logging.Infof("watching %s", configFile)
	return w, w.Reloads, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// the terminal is the display; logs go to a file or nowhere
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Terminal.Interval = intervalFlag(cmd, cfg.Terminal.Interval)
	if !cartesian.ValidInterval(cfg.Terminal.Interval) {
		return fmt.Errorf("interval: %w", cartesian.ErrInvalidInterval)
	}

	w, reloads, err := startWatch()
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
	}
	return viz.Run(cfg, reloads)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Interval = intervalFlag(cmd, cfg.Interval)
	if !cartesian.ValidInterval(cfg.Interval) {
		return fmt.Errorf("interval: %w", cartesian.ErrInvalidInterval)
	}

	w, reloads, err := startWatch()
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
	}
	gui.Run(cfg, reloads)
	return nil
}

var renderFormats = []string{"svg", "png", "json", "txt"}

func renderFrame(cmd *cobra.Command, args []string) error {
	kind := strings.ToLower(format)
	if !slices.Contains(renderFormats, kind) {
		return fmt.Errorf("unknown format %q (have %s)", format, strings.Join(renderFormats, ", "))
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	vp := cartesian.Viewport{
		Width:  float64(cfg.Viewport.Width),
		Height: float64(cfg.Viewport.Height),
		Offset: cartesian.Point{X: dx, Y: dy},
	}
	iv := intervalFlag(cmd, cfg.Interval)
	st := cfg.PaintStyle()

	var cmds []paint.Command
	if kind == "json" {
		cmds, err = renderJSON(vp, iv, st)
	} else {
		cmds, err = renderTo(outPath, func(w io.Writer) ([]paint.Command, error) {
			switch kind {
			case "svg":
				return export.RenderSVG(w, vp, iv, st)
			case "png":
				return export.RenderPNG(w, vp, iv, st)
			default:
				return renderText(w, cfg, vp, iv)
			}
		})
	}
	if err != nil {
		return err
	}

	s := paint.Count(cmds)
	logging.Infof("rendered %s: %d lines, %d texts", kind, s.Lines, s.Texts)
	return nil
}

// renderTo runs fn against stdout or a freshly created file, reporting the
// close error of the file.
func renderTo(path string, fn func(io.Writer) ([]paint.Command, error)) ([]paint.Command, error) {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cmds, err := fn(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return cmds, f.Close()
}

func renderJSON(vp cartesian.Viewport, iv float64, st paint.Style) ([]paint.Command, error) {
	f, err := cartesian.RenderWith(vp, iv, st.ArrowLength)
	if err != nil {
		return nil, err
	}
	fonts, err := export.NewFonts()
	if err != nil {
		return nil, err
	}
	cmds := paint.Compose(f, st, fonts)
	data := store.NewExportData(f, cmds)
	if outPath == "-" {
		return cmds, store.ExportJSONStdout(data)
	}
	return cmds, store.ExportJSON(outPath, data)
}

func inspectDump(cmd *cobra.Command, args []string) error {
	data, err := store.ImportJSON(args[0])
	if err != nil {
		return err
	}
	vp := data.Viewport
	fmt.Printf("viewport: %.0fx%.0f, offset %+.1f,%+.1f, interval %.1f\n\n",
		vp.Width, vp.Height, vp.OffsetX, vp.OffsetY, data.Interval)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYER\tLINES\tTEXTS")
	byLayer := map[string][2]int{}
	var layers []string
	for _, c := range data.Commands {
		n, seen := byLayer[c.Layer]
		if !seen {
			layers = append(layers, c.Layer)
		}
		if c.Op == paint.OpLine.String() {
			n[0]++
		} else {
			n[1]++
		}
		byLayer[c.Layer] = n
	}
	for _, l := range layers {
		fmt.Fprintf(w, "%s\t%d\t%d\n", l, byLayer[l][0], byLayer[l][1])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c := data.Counts
	fmt.Printf("\ngrid %d (major %d), axes %d, labels %d (clamped %d)\n",
		c.GridLines, c.MajorLines, c.Axes, c.Labels, c.Clamped)
	return nil
}

// renderText draws the frame on a braille canvas sized to cover the
// viewport in terminal cells.
func renderText(w io.Writer, cfg *config.Config, vp cartesian.Viewport, iv float64) ([]paint.Command, error) {
	cols := int(vp.Width / cfg.Terminal.CellWidth)
	rows := int(vp.Height / cfg.Terminal.CellHeight)
	canvas := viz.NewCanvas(cols, rows, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)

	cmds, err := paint.Pass(canvas, vp, iv, cfg.TerminalStyle())
	if err != nil {
		return nil, err
	}
	_, err = io.WriteString(w, canvas.Plain())
	return cmds, err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	axis, err := analysis.ParseAxis(sweepAxis)
	if err != nil {
		return err
	}

	res, err := analysis.PanSweep(cmd.Context(), analysis.SweepConfig{
		Axis:     axis,
		From:     sweepFrom,
		To:       sweepTo,
		Steps:    sweepSteps,
		Fixed:    sweepFixed,
		Width:    float64(cfg.Viewport.Width),
		Height:   float64(cfg.Viewport.Height),
		Interval: intervalFlag(cmd, cfg.Interval),
		Style:    cfg.PaintStyle(),
	}, paint.Monospace{})
	if err != nil {
		return err
	}

	fmt.Printf("sweep: %s from %.1f to %.1f, %d frames, %dx%d, interval %.1f\n\n",
		axis, sweepFrom, sweepTo, sweepSteps, cfg.Viewport.Width, cfg.Viewport.Height, res.Config.Interval)
	if err := printSweep(os.Stdout, res); err != nil {
		return err
	}

	if sweepSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

func printSweep(w io.Writer, res *analysis.SweepResult) error {
	for _, m := range []string{"lines", "labels", "commands"} {
		series, err := res.Series(m)
		if err != nil {
			return err
		}
		if len(series) > 1 {
			fmt.Fprintln(w, asciigraph.Plot(series,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(m+" per frame"),
			))
			fmt.Fprintln(w)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tMIN\tMAX\tMEAN")
	for _, m := range analysis.Metrics {
		series, err := res.Series(m)
		if err != nil {
			return err
		}
		s := analysis.Summarize(m, series)
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.2f\n", s.Metric, s.Min, s.Max, s.Mean)
	}
	return tw.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tAXIS\tFROM\tTO\tSTEPS\tVIEWPORT\tINTERVAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%d\t%.0fx%.0f\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Axis,
			run.From,
			run.To,
			run.Steps,
			run.Width,
			run.Height,
			run.Interval,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("axis: %s, %.1f to %.1f\n", meta.Axis, meta.From, meta.To)
	fmt.Printf("samples: %d\n\n", len(samples))

	return printSweep(os.Stdout, &analysis.SweepResult{Samples: samples})
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
