// Command starfield converts the Yale Bright Star Catalog into a GLB scene:
// each star becomes an oriented, magnitude-scaled billboard on the inside
// of the unit sphere, colored by spectral class, for use as a static
// background starfield.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/litescript/starfield/internal/catalog"
	"github.com/litescript/starfield/internal/config"
	"github.com/litescript/starfield/internal/logging"
	"github.com/litescript/starfield/internal/palette"
	"github.com/litescript/starfield/internal/scene"
	"github.com/litescript/starfield/internal/ui"
	"github.com/litescript/starfield/internal/version"
)

func main() {
	configPath := flag.String("config", "", "Path to starfield.yaml")
	catalogPath := flag.String("catalog", "", "Local catalog file (.gz accepted; overrides -url)")
	catalogURL := flag.String("url", "", "Catalog URL (gzip-compressed)")
	outPath := flag.String("o", "", "Output GLB path")
	limitMag := flag.Float64("limit-mag", 0, "Drop stars fainter than this magnitude (0 keeps all)")
	summaryMode := flag.Bool("summary", false, "Print per-class catalog summary instead of writing a scene")
	previewMode := flag.Bool("preview", false, "Interactive terminal sky preview")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	timeout := flag.Duration("timeout", catalog.DefaultTimeout, "HTTP fetch timeout")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("starfield " + version.Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags take priority over the config file.
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *catalogURL != "" {
		cfg.Catalog.URL = *catalogURL
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}
	if *limitMag != 0 {
		cfg.Output.MagnitudeLimit = *limitMag
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))

	// Cancel the fetch on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	raw, err := acquire(ctx, cfg, *timeout, logger)
	if err != nil {
		logger.Fatal("Acquire catalog: %v", err)
	}

	records, skipped := catalog.Parse(raw)
	logger.Info("Parsed %d stars (%d non-stellar lines skipped)", len(records), skipped)

	if cfg.Output.MagnitudeLimit != 0 {
		records = catalog.FilterByMagnitude(records, cfg.Output.MagnitudeLimit)
		logger.Info("Magnitude limit %.2f: %d stars retained", cfg.Output.MagnitudeLimit, len(records))
	}

	if *summaryMode {
		scene.WriteSummary(os.Stdout, records)
		return
	}

	if *previewMode {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			ui.WriteSkyMap(os.Stdout, records, 120, 40)
			return
		}
		if err := ui.Run(records); err != nil {
			logger.Fatal("Preview: %v", err)
		}
		return
	}

	doc := scene.Assemble(records, palette.Build())
	if err := scene.SaveGLB(cfg.Output.Path, doc); err != nil {
		logger.Fatal("Write scene: %v", err)
	}
	logger.Info("Wrote %s: %d star nodes, %d materials", cfg.Output.Path, len(doc.Nodes), len(doc.Materials))
}

// acquire returns the uncompressed catalog text from the configured local
// file or, failing that, the configured URL.
func acquire(ctx context.Context, cfg *config.Config, timeout time.Duration, logger *logging.Logger) ([]byte, error) {
	if cfg.Catalog.Path != "" {
		logger.Info("Reading catalog from %s", cfg.Catalog.Path)
		return catalog.ReadFile(cfg.Catalog.Path)
	}
	logger.Info("Fetching catalog from %s", cfg.Catalog.URL)
	fetcher := catalog.NewFetcher(
		catalog.WithURL(cfg.Catalog.URL),
		catalog.WithTimeout(timeout),
	)
	return fetcher.Fetch(ctx)
}
