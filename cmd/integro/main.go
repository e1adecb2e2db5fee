package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/integro/internal/config"
	"github.com/san-kum/integro/internal/export"
	"github.com/san-kum/integro/internal/linalg"
	"github.com/san-kum/integro/internal/models"
	"github.com/san-kum/integro/internal/ode"
	"github.com/san-kum/integro/internal/viz"
)

var (
	step       float64
	t0, t1     float64
	method     string
	initState  string
	params     []string
	configFile string
	preset     string
	csvOut     string
	jsonOut    string
	component  int
	verbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "integro",
		Short: "ODE integration and nonlinear solving toolkit",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model and export the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	runCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	runCmd.Flags().Float64Var(&t0, "t0", 0.0, "start time")
	runCmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "end time")
	runCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper: euler, rk4, backward_euler")
	runCmd.Flags().StringVar(&initState, "y0", "", "initial state, comma separated (default: model default)")
	runCmd.Flags().StringArrayVar(&params, "param", nil, "model parameter name=value (repeatable)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&csvOut, "out", "", "write trace CSV to path")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write run JSON to path")

	plotCmd := &cobra.Command{
		Use:   "plot [trace.csv]",
		Short: "plot a CSV trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().IntVar(&component, "component", 0, "state component to plot")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	liveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper: euler, rk4, backward_euler")
	liveCmd.Flags().StringVar(&initState, "y0", "", "initial state, comma separated")
	liveCmd.Flags().StringArrayVar(&params, "param", nil, "model parameter name=value (repeatable)")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(viz.HeaderStyle.Render("models"))
			for _, name := range models.Names() {
				sys, _ := models.New(name)
				fmt.Println(viz.KV(name, fmt.Sprintf("dim %d", sys.Dim())))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if names == nil {
				return fmt.Errorf("no presets for model %q", args[0])
			}
			for _, name := range names {
				cfg := config.GetPreset(args[0], name)
				fmt.Println(viz.KV(name, fmt.Sprintf("%s, step %g, [%g, %g]",
					cfg.Method, cfg.Step, cfg.T0, cfg.T1)))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, modelsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags: flags win over
// the file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for model %q", preset, model)
		}
		// Copy so flag overrides never mutate the shared preset table.
		c := *p
		c.Params = make(map[string]float64, len(p.Params))
		for k, v := range p.Params {
			c.Params[k] = v
		}
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		loaded.Model = model
		cfg = loaded
	}

	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("t1") {
		cfg.T1 = t1
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if initState != "" {
		y0, err := parseState(initState)
		if err != nil {
			return nil, err
		}
		cfg.Y0 = y0
	}
	for _, p := range params {
		name, value, err := parseParam(p)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[name] = value
	}

	return cfg, cfg.Validate()
}

func buildSystem(cfg *config.Config) (models.System, linalg.Vector, error) {
	sys, err := models.New(cfg.Model)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Params) > 0 {
		tunable, ok := sys.(models.Configurable)
		if !ok {
			return nil, nil, fmt.Errorf("model %q has no tunable parameters", cfg.Model)
		}
		for name, value := range cfg.Params {
			if err := tunable.SetParam(name, value); err != nil {
				return nil, nil, err
			}
		}
	}

	y0 := sys.DefaultState()
	if len(cfg.Y0) > 0 {
		y0 = linalg.Vector(cfg.Y0)
	}
	return sys, y0, nil
}

func newStepper(name string, newton config.NewtonConfig) (ode.Stepper, error) {
	switch name {
	case "euler":
		return ode.NewEuler(), nil
	case "rk4":
		return ode.NewRK4(), nil
	case "backward_euler":
		be := ode.NewBackwardEuler()
		if newton.MaxIter > 0 {
			be.MaxIter = newton.MaxIter
		}
		if newton.Tol > 0 {
			be.Tol = newton.Tol
		}
		return be, nil
	default:
		return nil, fmt.Errorf("unknown method %q", name)
	}
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sys, y0, err := buildSystem(cfg)
	if err != nil {
		return err
	}
	stepper, err := newStepper(cfg.Method, cfg.Newton)
	if err != nil {
		return err
	}

	logger.Debug("integrating", "model", cfg.Model, "method", cfg.Method,
		"step", cfg.Step, "t0", cfg.T0, "t1", cfg.T1)
	start := time.Now()

	sol, err := ode.Integrate(sys, stepper, cfg.T0, cfg.T1, y0, cfg.Step)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	tFinal, yFinal := sol.Final()
	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s · %s", cfg.Model, cfg.Method)))
	fmt.Println(viz.KV("samples", strconv.Itoa(sol.Len())))
	fmt.Println(viz.KV("elapsed", elapsed.Round(time.Microsecond).String()))
	fmt.Println(viz.KV("final t", fmt.Sprintf("%.6g", tFinal)))
	fmt.Println(viz.KV("final state", fmt.Sprintf("%.6v", []float64(yFinal))))

	if be, ok := stepper.(*ode.BackwardEuler); ok {
		stats := be.Stats()
		fmt.Println(viz.KV("newton iters", strconv.Itoa(stats.NewtonIterations)))
		if stats.Unconverged > 0 {
			logger.Warn("newton solves hit the iteration cap",
				"steps", stats.Unconverged, "of", stats.Steps)
		}
	}

	if csvOut != "" {
		if err := export.SaveCSV(csvOut, sol); err != nil {
			return err
		}
		logger.Info("wrote trace", "path", csvOut)
	}
	if jsonOut != "" {
		run := export.NewRun(cfg.Model, cfg.Method, cfg.Step, cfg.T0, cfg.T1, sol)
		if err := export.SaveJSON(jsonOut, run); err != nil {
			return err
		}
		logger.Info("wrote run", "path", jsonOut)
	}

	return nil
}

func plotTrace(cmd *cobra.Command, args []string) error {
	sol, err := export.LoadCSV(args[0])
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("y%d vs time", component)
	graph, err := viz.Plot(sol, component, caption)
	if err != nil {
		return err
	}

	fmt.Println(viz.KV("samples", strconv.Itoa(sol.Len())))
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	sys, y0, err := buildSystem(cfg)
	if err != nil {
		return err
	}
	stepper, err := newStepper(cfg.Method, cfg.Newton)
	if err != nil {
		return err
	}

	return viz.RunLive(cfg.Model, sys, stepper, y0, cfg.Step)
}

func parseState(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	state := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing initial state %q: %w", s, err)
		}
		state[i] = v
	}
	return state, nil
}

func parseParam(s string) (string, float64, error) {
	name, raw, found := strings.Cut(s, "=")
	if !found {
		return "", 0, fmt.Errorf("parameter %q is not name=value", s)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parsing parameter %q: %w", s, err)
	}
	return name, value, nil
}
