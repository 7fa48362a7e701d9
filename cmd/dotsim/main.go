package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dotsim",
		Short: "Quantum-dot charge-stability simulation and polarization-line fitting",
	}

	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(fitCmd())
	rootCmd.AddCommand(gatesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sweepCmd() *cobra.Command {
	var configPath, outPath string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a 2D charge-stability scan and write the map as JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSweep(configPath, outPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "dotsim.yaml", "Path to the YAML configuration")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output JSON path (default stdout)")

	return cmd
}

func fitCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "fit [data.csv]",
		Short: "Fit the polarization-line model to a detuning,signal CSV trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFit(configPath, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "dotsim.yaml", "Path to the YAML configuration")

	return cmd
}

func gatesCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "gates [detuning µeV]...",
		Short: "Convert a detuning vector to gate voltages via the lever-arm matrix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGates(configPath, args)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "dotsim.yaml", "Path to the YAML configuration")

	return cmd
}
