// Package config loads extractor settings from defaults, a TOML file and the environment
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all extractor settings
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	OCR    OCRConfig    `toml:"ocr"`
	Tables TablesConfig `toml:"tables"`
}

// InputConfig selects the report to extract
type InputConfig struct {
	// Path is a local PDF path or an http(s) URL
	Path string `toml:"path"`
	// Year overrides the season year derived from Path
	Year     string `toml:"year"`
	CacheDir string `toml:"cache_dir"`
}

// OutputConfig controls where extracted tables are written
type OutputConfig struct {
	Dir string `toml:"dir"`
	// Workbook, when set, also writes every table to one XLSX file
	Workbook string `toml:"workbook"`
}

// OCRConfig configures page rasterization and text recognition for the image-only pages
type OCRConfig struct {
	DPI            float64 `toml:"dpi"`
	Language       string  `toml:"language"`
	TessdataPrefix string  `toml:"tessdata_prefix"`
	// Required makes a missing player or team statistics page a step failure
	Required bool `toml:"required"`
}

// TablesConfig tunes table detection on the PDF text layer
type TablesConfig struct {
	Pages        string  `toml:"pages"`
	RowTolerance float64 `toml:"row_tolerance"`
	WordGap      float64 `toml:"word_gap"`
	CellGap      float64 `toml:"cell_gap"`
	RowGap       float64 `toml:"row_gap"`
	MinRows      int     `toml:"min_rows"`
}

// DefaultPDFPath is the report processed when nothing else is configured
const DefaultPDFPath = "submission_2/2025SUStats_womens_lacrosse.pdf"

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Input:  InputConfig{Path: DefaultPDFPath, CacheDir: "pdf"},
		Output: OutputConfig{Dir: "."},
		OCR:    OCRConfig{DPI: 300, Language: "eng", Required: true},
		Tables: TablesConfig{
			Pages:        "1-end",
			RowTolerance: 2.0,
			WordGap:      0.25,
			CellGap:      1.0,
			RowGap:       1.8,
			MinRows:      3,
		},
	}
}

// Load reads config: defaults -> TOML file -> .env -> env vars (env wins).
// A missing file at path is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	// Overlay the TOML file
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	// Environment variables win
	if v := os.Getenv("STATS_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("STATS_YEAR"); v != "" {
		cfg.Input.Year = v
	}
	if v := os.Getenv("STATS_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("STATS_WORKBOOK"); v != "" {
		cfg.Output.Workbook = v
	}
	if v := os.Getenv("STATS_TESSDATA_PREFIX"); v != "" {
		cfg.OCR.TessdataPrefix = v
	}
	if v := os.Getenv("STATS_OCR_REQUIRED"); v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid STATS_OCR_REQUIRED %q: %w", v, err)
		}
		cfg.OCR.Required = required
	}

	return cfg, nil
}

var yearRegex = regexp.MustCompile(`(\d{4})`)

// SeasonYear returns the configured year, or the first run of four digits in the input path
func (c Config) SeasonYear() string {
	if c.Input.Year != "" {
		return c.Input.Year
	}
	return YearFromPath(c.Input.Path)
}

// YearFromPath returns the first run of four digits in path, or "" when there is none
func YearFromPath(path string) string {
	if m := yearRegex.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	return ""
}
