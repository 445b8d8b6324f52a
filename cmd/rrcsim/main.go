// Package main provides the entry point for rrcsim.
// rrcsim is a cycle-accurate fixed-point simulator of a 23-tap
// square-root-raised-cosine FIR filter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
	"github.com/dsplab/rrcsim/response"
	"github.com/dsplab/rrcsim/timing/filter"
)

var (
	configPath = flag.String("config", "", "Path to coefficient configuration JSON file")
	ticks      = flag.Int("ticks", 64, "Number of clock ticks to simulate")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading coefficient config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid coefficient config: %v\n", err)
		os.Exit(1)
	}

	f := filter.NewWithConfig(cfg)

	fmt.Printf("Impulse response (%d ticks, latency %d):\n", *ticks, f.Latency())
	for i := 0; i < *ticks; i++ {
		in := fixq.Sample(0)
		if i == 0 {
			in = fixq.SampleFromFloat(1.0)
		}
		out := f.Tick(in)
		marker := ""
		if i == f.Latency() {
			marker = "  <- peak tick"
		}
		fmt.Printf("  tick %3d: % 8.4f%s\n", i, out.Float(), marker)
	}

	if *verbose {
		printSummary(cfg, f)
	}
}

func loadConfig() (*coeff.Config, error) {
	if *configPath == "" {
		return coeff.DefaultConfig(), nil
	}
	return coeff.LoadConfig(*configPath)
}

func printSummary(cfg *coeff.Config, f *filter.Filter) {
	taps := coeff.Floats(cfg.Set())

	fmt.Printf("\nDC gain: %.4f\n", response.DCGain(taps))

	db, err := response.MagnitudeDB(taps, 256)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing response: %v\n", err)
		return
	}
	fmt.Println("Magnitude response (dB rel. DC):")
	for k := 0; k < len(db); k += 8 {
		fmt.Printf("  bin %3d: % 8.2f\n", k, db[k])
	}

	stats := f.Stats()
	fmt.Printf("\nTicks: %d\nResets: %d\n", stats.Ticks, stats.Resets)
}
