package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Abhiabhilash8/PhysiLab/internal/config"
	"github.com/Abhiabhilash8/PhysiLab/internal/kinematics"
	"github.com/Abhiabhilash8/PhysiLab/internal/lab"
	"github.com/Abhiabhilash8/PhysiLab/internal/render"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
	"github.com/Abhiabhilash8/PhysiLab/internal/tui"
)

var (
	configFile string
	frameTime  float64
	showGraph  bool
)

// main registers commands and flags. With no subcommand the interactive
// TUI starts; the subcommands expose the pipeline headless for scripting.
func main() {
	rootCmd := &cobra.Command{
		Use:   "physilab [problem text...]",
		Short: "turn physics word problems into live simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(loadConfig(), strings.Join(args, " "))
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	solveCmd := &cobra.Command{
		Use:   "solve [problem text...]",
		Short: "parse a problem and print its solution",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve,
	}

	frameCmd := &cobra.Command{
		Use:   "frame [problem text...]",
		Short: "render one simulation frame to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFrame,
	}
	frameCmd.Flags().Float64Var(&frameTime, "t", 0.0, "elapsed time (s)")
	frameCmd.Flags().BoolVar(&showGraph, "graph", false, "render the position-time graph instead")

	classifyCmd := &cobra.Command{
		Use:   "classify [problem text...]",
		Short: "print the detected scenario and parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	}

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "list the sample problem catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for i, s := range loadConfig().Samples {
				fmt.Printf("  %d. %s\n", i+1, s)
			}
		},
	}

	rootCmd.AddCommand(solveCmd, frameCmd, classifyCmd, samplesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	if configFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Warnf("failed to load config %s, using defaults: %v", configFile, err)
		return config.DefaultConfig()
	}
	return cfg
}

func submitArgs(args []string) (*lab.Record, error) {
	rec, err := lab.Submit(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("nothing to solve: %w", err)
	}
	return rec, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	rec, err := submitArgs(args)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n\n", rec.Kind)
	fmt.Println(rec.Explanation.Title)
	for i, step := range rec.Explanation.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	fmt.Printf("\n  %s\n", rec.Explanation.Equation)

	if rec.Kind == scenario.Projectile || rec.Kind == scenario.Vertical {
		data := render.Series(rec.Kind, rec.Params)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption("height (m) vs time, 0-10 s"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func runFrame(cmd *cobra.Command, args []string) error {
	rec, err := submitArgs(args)
	if err != nil {
		return err
	}

	if showGraph {
		s := render.NewGraphSurface(config.DefaultGraphCols, config.DefaultGraphRows)
		render.Graph(s, rec.Kind, rec.Params)
		fmt.Print(s.String())
		return nil
	}

	s := render.NewSimSurface(config.DefaultSimCols, config.DefaultSimRows)
	render.Frame(s, rec.Kind, rec.Params, frameTime)
	fmt.Print(s.String())
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	rec, err := submitArgs(args)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", rec.Kind)
	for _, name := range scenario.Names() {
		val, _ := rec.Params.Get(name)
		fmt.Printf("  %-9s %.2f\n", name, val)
	}

	d := kinematics.Derive(rec.Kind, rec.Params)
	switch rec.Kind {
	case scenario.Projectile:
		fmt.Printf("  max height %.2f m, range %.2f m, flight %.2f s\n", d.MaxHeight, d.Range, d.FlightTime)
	case scenario.Vertical:
		fmt.Printf("  max height %.2f m, time to peak %.2f s\n", d.MaxHeight, d.TimeToPeak)
	}
	return nil
}
