package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kvantor/dotarray/honeycomb"
	"github.com/kvantor/dotarray/polarization"
	"github.com/kvantor/dotarray/sweep"
)

// sweepOutput is the JSON shape of a finished scan.
type sweepOutput struct {
	XName      string                   `json:"x_name"`
	YName      string                   `json:"y_name"`
	XValues    []float64                `json:"x_values"`
	YValues    []float64                `json:"y_values"`
	Observable [][]float64              `json:"observable"`
	Configs    [][]honeycomb.Occupation `json:"configs"`
	Boundary   [][]bool                 `json:"boundary"`
	Failures   []string                 `json:"failures,omitempty"`
}

func runSweep(configPath, outPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	model, err := cfg.Model()
	if err != nil {
		return err
	}

	scan := sweep.Scan{
		Model: model,
		Base:  cfg.Scan.Base,
		X:     cfg.Scan.X.Axis(model.Dots()),
		Y:     cfg.Scan.Y.Axis(model.Dots()),
	}
	opts := sweep.DefaultOptions()
	opts.Workers = cfg.Scan.Workers
	opts.Progress = func(rowsDone, totalRows int) {
		if rowsDone%5 == 0 || rowsDone == totalRows {
			fmt.Fprintf(os.Stderr, "sweep: %d/%d rows\n", rowsDone, totalRows)
		}
	}

	res, err := scan.Run(opts)
	if err != nil {
		return err
	}

	out := sweepOutput{
		XName:      res.XName,
		YName:      res.YName,
		XValues:    res.XValues,
		YValues:    res.YValues,
		Observable: res.Observable,
		Configs:    res.Configs,
		Boundary:   res.Boundary,
	}
	clamped := 0
	for iy := range res.CellErrs {
		for ix, cellErr := range res.CellErrs[iy] {
			if cellErr != nil {
				out.Failures = append(out.Failures, fmt.Sprintf("(%d,%d): %v", ix, iy, cellErr))
			}
			if res.Boundary[iy][ix] {
				clamped++
			}
		}
	}
	if clamped > 0 {
		fmt.Fprintf(os.Stderr, "sweep: %d cells minimize on the occupation bound; consider raising max_occupation\n", clamped)
	}

	return writeJSON(out, outPath)
}

// fitOutput is the JSON shape of a finished fit.
type fitOutput struct {
	Params       polarization.Params `json:"params"`
	InitialGuess polarization.Params `json:"initial_guess"`
	KT           float64             `json:"kt_uev"`
	Method       string              `json:"method"`
	Residual     float64             `json:"residual"`
	Samples      int                 `json:"samples"`
}

func runFit(configPath, dataPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	detunings, signal, err := readTrace(dataPath)
	if err != nil {
		return err
	}

	method, err := cfg.Fit.Backend()
	if err != nil {
		return err
	}
	opts := polarization.DefaultFitOptions()
	opts.Method = method

	res, err := polarization.Fit(detunings, signal, cfg.ThermalEnergy(), opts)
	if err != nil {
		return err
	}

	return writeJSON(fitOutput{
		Params:       res.Params,
		InitialGuess: res.InitialGuess,
		KT:           res.KT,
		Method:       res.Method.String(),
		Residual:     res.Residual,
		Samples:      len(detunings),
	}, "")
}

func runGates(configPath string, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	lever, err := cfg.Lever()
	if err != nil {
		return err
	}

	detunings := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("detuning %q: %w", arg, err)
		}
		detunings[i] = v
	}

	gates, err := lever.DetuningToGate(detunings)
	if err != nil {
		return err
	}
	for i, g := range gates {
		fmt.Printf("P%d = %.3f mV\n", i+1, g)
	}

	return nil
}

// readTrace parses a two-column CSV of detuning (µeV) and sensor
// signal. A non-numeric first row is treated as a header and skipped.
func readTrace(path string) (detunings, signal []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read trace: %w", err)
	}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("trace row %d: want 2 columns, got %d", i+1, len(row))
		}
		x, errX := strconv.ParseFloat(row[0], 64)
		y, errY := strconv.ParseFloat(row[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				continue // header row
			}

			return nil, nil, fmt.Errorf("trace row %d: non-numeric value", i+1)
		}
		detunings = append(detunings, x)
		signal = append(signal, y)
	}

	return detunings, signal, nil
}

func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
