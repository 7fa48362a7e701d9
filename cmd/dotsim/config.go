package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kvantor/dotarray/dotmodel"
	"github.com/kvantor/dotarray/polarization"
	"github.com/kvantor/dotarray/sweep"
	"github.com/kvantor/dotarray/units"
)

// Config is the YAML surface of dotsim. Energies in µeV, gate voltages
// in mV, temperatures in mK.
type Config struct {
	Dots          DotsConfig  `yaml:"dots"`
	LeverArm      [][]float64 `yaml:"lever_arm"`
	TemperatureMK float64     `yaml:"temperature_mk"`
	Scan          ScanConfig  `yaml:"scan"`
	Fit           FitConfig   `yaml:"fit"`
}

type DotsConfig struct {
	Charging      []float64      `yaml:"charging"`
	InterSite     [][]float64    `yaml:"inter_site"`
	Tunnel        []TunnelConfig `yaml:"tunnel"`
	OffsetBase    []float64      `yaml:"offset_base"`
	MaxOccupation int            `yaml:"max_occupation"`
}

type TunnelConfig struct {
	I int     `yaml:"i"`
	J int     `yaml:"j"`
	T float64 `yaml:"t"`
}

type ScanConfig struct {
	Base    []float64  `yaml:"base"`
	X       AxisConfig `yaml:"x"`
	Y       AxisConfig `yaml:"y"`
	Workers int        `yaml:"workers"`
}

// AxisConfig selects either the direct-detuning mode (dot set, weights
// empty) or a named weighted combination (weights set).
type AxisConfig struct {
	Name    string    `yaml:"name"`
	Dot     *int      `yaml:"dot"`
	Weights []float64 `yaml:"weights"`
	Center  float64   `yaml:"center"`
	Span    float64   `yaml:"span"`
	Steps   int       `yaml:"steps"`
}

type FitConfig struct {
	Method string `yaml:"method"`
}

// LoadConfig reads and decodes the YAML configuration.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// Model builds the dot-array model from the configuration.
func (c *Config) Model() (*dotmodel.DotArray, error) {
	tunnel := make([]dotmodel.TunnelCoupling, len(c.Dots.Tunnel))
	for i, tc := range c.Dots.Tunnel {
		tunnel[i] = dotmodel.TunnelCoupling{I: tc.I, J: tc.J, T: tc.T}
	}

	return dotmodel.NewDotArray(c.Dots.Charging, c.Dots.InterSite, tunnel, c.Dots.OffsetBase, c.Dots.MaxOccupation)
}

// Lever builds the lever-arm transform from the configuration.
func (c *Config) Lever() (*dotmodel.LeverArm, error) {
	return dotmodel.NewLeverArm(c.LeverArm)
}

// ThermalEnergy derives kT (µeV) from the configured temperature.
func (c *Config) ThermalEnergy() float64 {
	return units.ThermalEnergy(c.TemperatureMK * units.MilliKelvin)
}

// Axis resolves one axis configuration against the model size.
func (a AxisConfig) Axis(dots int) sweep.Axis {
	if len(a.Weights) > 0 {
		return sweep.VirtualAxis(a.Name, a.Weights, a.Center, a.Span, a.Steps)
	}
	dot := 0
	if a.Dot != nil {
		dot = *a.Dot
	}

	return sweep.DetuningAxis(a.Name, dot, dots, a.Center, a.Span, a.Steps)
}

// Backend maps the configured fit method name onto a backend; an empty
// name selects Levenberg–Marquardt, anything unrecognized is rejected.
func (f FitConfig) Backend() (polarization.Method, error) {
	switch f.Method {
	case "nelder-mead":
		return polarization.NelderMead, nil
	case "lm", "levenberg-marquardt", "":
		return polarization.LevenbergMarquardt, nil
	default:
		return 0, fmt.Errorf("%w: %q", polarization.ErrUnknownMethod, f.Method)
	}
}
