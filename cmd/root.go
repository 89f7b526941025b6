package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hostdiag/disktemp/collector"
	"github.com/hostdiag/disktemp/config"
	"github.com/hostdiag/disktemp/engine"
	"github.com/hostdiag/disktemp/logger"
	"github.com/hostdiag/disktemp/report"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `disktemp v%s - disk vendor/model/temperature inventory via smartctl

Usage:
  disktemp [OPTIONS]

Options:
  -json             Print records as JSON instead of a table
  -timeout N        Per-probe smartctl timeout in seconds (default: 30)
  -concurrency N    Devices probed in parallel (default: 4)
  -debug            Trace every probe attempt on stderr
  -version          Print version and exit

Runs once, queries every disk, prints a report, exits. Needs root:
smartctl cannot read device health data otherwise.

Examples:
  sudo disktemp
  sudo disktemp -json | jq '.[].temperature_celsius'
  sudo disktemp -debug -timeout 10
`, Version)
}

// Run parses flags and executes one inventory pass.
func Run() error {
	var (
		jsonMode    bool
		debug       bool
		timeoutSec  int
		concurrency int
		showVersion bool
	)

	cfg := config.Default()

	flag.BoolVar(&jsonMode, "json", false, "Print records as JSON instead of a table")
	flag.BoolVar(&debug, "debug", false, "Trace every probe attempt on stderr")
	flag.IntVar(&timeoutSec, "timeout", int(cfg.ProbeTimeout/time.Second), "Per-probe smartctl timeout in seconds")
	flag.IntVar(&concurrency, "concurrency", cfg.Concurrency, "Devices probed in parallel")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("disktemp v%s\n", Version)
		return nil
	}

	logger.Init(debug)

	// smartctl refuses to read device health data without root, so
	// every probe would come back empty. Bail out up front.
	if os.Geteuid() != 0 {
		return fmt.Errorf("must be run as root")
	}

	if timeoutSec > 0 {
		cfg.ProbeTimeout = time.Duration(timeoutSec) * time.Second
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	// Enumeration failure is the only per-run fatal error; everything
	// after this degrades to per-device FAIL rows.
	devices, err := collector.ListBlockDevices(cfg.ExcludePrefixes)
	if err != nil {
		return fmt.Errorf("device enumeration failed: %w", err)
	}

	prober := engine.NewProber(collector.NewSmartctl(), cfg.DeviceTypes, cfg.ProbeTimeout)
	records := engine.ProbeAll(context.Background(), prober, devices, cfg.Concurrency)

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Print(report.Render(records))
	return nil
}
