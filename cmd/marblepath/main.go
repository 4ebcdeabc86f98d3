package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/marblekit/marblepath/internal/config"
	"github.com/marblekit/marblepath/internal/eq"
	"github.com/marblekit/marblepath/internal/geom"
	"github.com/marblekit/marblepath/internal/metrics"
	"github.com/marblekit/marblepath/internal/physics"
	"github.com/marblekit/marblepath/internal/sim"
	"github.com/marblekit/marblepath/internal/storage"
	"github.com/marblekit/marblepath/internal/viz"
)

var (
	dataDir    string
	configFile string
	ticks      int
	dt         float64
	seed       int64
	frameRate  int
	numRuns    int
	spread     float64
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "marblepath",
		Short: "curve-following marble physics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".marblepath", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [level]",
		Short: "run a level headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLevel,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "simulation ticks")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep per tick")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [level]",
		Short: "run a level with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [level]",
		Short: "probe level solvability with jittered spawns",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 32, "number of runs")
	ensembleCmd.Flags().Float64Var(&spread, "spread", 0.5, "spawn jitter radius")
	ensembleCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "simulation ticks")
	ensembleCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	ensembleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "list stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListLevels() {
				lvl := config.GetLevel(name)
				fmt.Printf("%-16s curves=%v stars=%d\n", name, lvl.Curves, len(lvl.Stars))
			}
			return nil
		},
	}

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list builtin curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range eq.Names() {
				e, err := eq.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s\n", name, e.Kind())
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, ensembleCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, levelsCmd, curvesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: defaults, then the config file,
// then the level name from the command line.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Level = args[0]
	}
	return cfg, nil
}

func buildWorld(cfg *config.Config) (*sim.World, error) {
	lvl := config.GetLevel(cfg.Level)
	if lvl == nil {
		return nil, fmt.Errorf("unknown level: %s (available: %v)", cfg.Level, config.ListLevels())
	}

	paths := make([]*physics.Path, 0, len(lvl.Curves))
	for _, name := range lvl.Curves {
		e, err := eq.Lookup(name)
		if err != nil {
			return nil, err
		}
		paths = append(paths, &physics.Path{ID: name, Eq: e})
	}

	marble := physics.NewMarble(geom.Vec(lvl.Spawn.X, lvl.Spawn.Y))
	marble.PathThreshold = cfg.Physics.PathThreshold
	marble.Trail = physics.NewTrail(cfg.Physics.MaxTrail)

	stars := make([]physics.Star, 0, len(lvl.Stars))
	for _, s := range lvl.Stars {
		stars = append(stars, physics.NewStar(s.X, s.Y))
	}

	return &sim.World{
		Marbles: []*physics.Marble{marble},
		Paths:   paths,
		Stars:   stars,
		Bounds: physics.Bounds{
			MinX: lvl.Bounds.MinX, MaxX: lvl.Bounds.MaxX,
			MinY: lvl.Bounds.MinY, MaxY: lvl.Bounds.MaxY,
		},
		Tuning: cfg.Physics.Tuning(),
	}, nil
}

func runLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") || cfg.Ticks == 0 {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	world, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator := sim.New(world)
	simulator.AddMetric(metrics.NewPathAdherence())
	simulator.AddMetric(metrics.NewDistance())
	simulator.AddMetric(metrics.NewPeakSpeed())

	simCfg := sim.Config{Ticks: cfg.Ticks, Dt: cfg.Dt, Seed: cfg.Seed, StopOnClear: true}

	fmt.Printf("running %s...\n", cfg.Level)
	start := time.Now()

	result, err := simulator.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Level, simCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksTaken)
	fmt.Printf("stars: %d/%d", result.Collected, len(world.Stars))
	if result.Cleared {
		fmt.Print("  (cleared)")
	}
	fmt.Println()
	if result.Escaped > 0 {
		fmt.Printf("escaped marbles: %d\n", result.Escaped)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	world, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	return viz.Run(world, cfg.Level, frameRate)
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	world, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	simCfg := sim.Config{Ticks: ticks, Dt: config.DefaultDt, Seed: seed, StopOnClear: true}
	ens := sim.NewEnsemble(world, numRuns, seed, spread)

	fmt.Printf("running %d jittered runs of %s...\n", numRuns, cfg.Level)
	results, err := ens.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	cleared := 0
	totalStars := 0
	for _, r := range results {
		if r.Cleared {
			cleared++
		}
		totalStars += r.Collected
	}
	fmt.Printf("clear rate: %.1f%% (%d/%d)\n", sim.ClearRate(results)*100, cleared, len(results))
	fmt.Printf("avg stars per run: %.2f\n", float64(totalStars)/float64(len(results)))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLEVEL\tTIME\tTICKS\tSTARS\tCLEARED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%v\n",
			run.ID,
			run.Level,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Collected,
			run.Cleared,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, xs, ys, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("level: %s\n", meta.Level)
	fmt.Printf("samples: %d\n\n", len(times))

	for i := range xs {
		graph := asciigraph.Plot(xs[i],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("marble %d x vs time", i)),
		)
		fmt.Println(graph)
		fmt.Println()

		graph = asciigraph.Plot(ys[i],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("marble %d y vs time", i)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return exportRun(args[0], func(st *storage.Store, runID string, w *os.File) error {
		return st.ExportJSON(runID, w)
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return exportRun(args[0], func(st *storage.Store, runID string, w *os.File) error {
		return st.ExportCSV(runID, w)
	})
}

func exportRun(runID string, export func(*storage.Store, string, *os.File) error) error {
	st := storage.New(dataDir)

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := export(st, runID, out); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Printf("exported %s to %s\n", runID, outFile)
	}
	return nil
}
