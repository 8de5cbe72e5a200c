// Package main is the entry point for the stats-report-extractor application
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/myusername/stats-report-extractor/internal/config"
	"github.com/myusername/stats-report-extractor/pkg/report"
	"github.com/myusername/stats-report-extractor/pkg/scraper"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

func main() {
	// Define command-line flags
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configFlag := flag.String("config", "stats.toml", "Path to a TOML config file (optional)")
	inputFlag := flag.String("input", "", "PDF path or URL of the statistics report (overrides config)")
	outputFlag := flag.String("output", "", "Output directory for CSV files (overrides config)")
	flag.Parse()

	// Print version and exit if requested
	if *versionFlag {
		fmt.Printf("stats-report-extractor version %s\n", version)
		return
	}

	// Setup logging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Stats report extractor starting...")
	log.Printf("Version: %s", version)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *inputFlag != "" {
		cfg.Input.Path = *inputFlag
	}
	if *outputFlag != "" {
		cfg.Output.Dir = *outputFlag
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	log.Printf("Using output directory: %s", cfg.Output.Dir)

	pdfPath, err := scraper.ResolveInput(cfg.Input.Path, cfg.Input.CacheDir)
	if err != nil {
		log.Fatalf("Failed to resolve input %s: %v", cfg.Input.Path, err)
	}
	if _, err := report.Inspect(pdfPath); err != nil {
		log.Fatalf("Failed to open report: %v", err)
	}

	year := cfg.SeasonYear()
	if year == "" {
		year = config.YearFromPath(pdfPath)
	}
	log.Printf("Processing %s (season %q)", pdfPath, year)

	runner := report.NewRunner(report.NewServices(cfg), cfg.OCR.Required)
	res := runner.Run(pdfPath, year)

	if _, err := report.WriteOutputs(res, cfg.Output.Dir, cfg.Output.Workbook, os.Stdout); err != nil {
		log.Fatalf("Failed to write outputs: %v", err)
	}

	if err := res.Err(); err != nil {
		log.Printf("Extraction finished with errors: %v", err)
		os.Exit(1)
	}
	fmt.Println("Extraction complete: record, game, player, team, and period CSVs.")
}
