package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/vocdoni/davinci-kzg/log"
)

func main() {
	// Load configuration
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	log.Init(cfg.Log.Level, cfg.Log.Output, nil)
	log.Infow("starting kzg-prover", "version", Version)

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	report, err := run(cfg)
	if err != nil {
		log.Fatalf("Prover run failed: %v", err)
	}
	log.Infow("prover run completed",
		"curve", report.Curve,
		"degree", report.Degree,
		"points", report.Points,
		"srsBytes", report.SRSBytes,
		"openingBytes", report.OpeningBytes,
		"multiOpeningBytes", report.MultiOpeningBytes,
		"singleValid", report.SingleValid,
		"multiValid", report.MultiValid,
		"perturbedRejected", report.PerturbedRejected)

	if !report.Ok() {
		log.Errorw(errVerificationFailed, "prover run did not verify")
		os.Exit(1)
	}
}
