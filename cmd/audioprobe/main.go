package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/audioprobe/audioprobe/internal/config"
	"github.com/audioprobe/audioprobe/internal/probe"
	"github.com/audioprobe/audioprobe/internal/report"
)

// Exit codes: 1 usage/config, 2 network failure, 3 unsupported format.
const (
	exitUsage       = 1
	exitNetwork     = 2
	exitUnsupported = 3
)

func main() {
	// Command line flags
	var (
		urlFlag     = flag.String("url", "", "Audio file URL to probe")
		configFlag  = flag.String("config", "", "Path to config file")
		keepFlag    = flag.Bool("keep", false, "Keep the downloaded temp file")
		artworkFlag = flag.String("artwork", "", "Save embedded artwork to this path")
		jsonFlag    = flag.Bool("json", false, "Print the report as JSON")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Require exactly one URL
	url := *urlFlag
	if url == "" && flag.NArg() > 0 {
		url = flag.Arg(0)
	}
	if url == "" {
		fmt.Println("audioprobe - Report metadata for a remote audio file")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  audioprobe <audio_url> [options]")
		fmt.Println("  audioprobe -url <audio_url> [options]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	// Apply flags
	if *keepFlag {
		settings.KeepFile = true
	}
	if *artworkFlag != "" {
		settings.ArtworkPath = *artworkFlag
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	quiet := *jsonFlag

	prober := probe.NewProber(settings, func(event probe.ProgressEvent) {
		if quiet {
			return
		}
		if event.Level == probe.LevelVerbose && !settings.Verbose {
			return
		}
		fmt.Println(event.Message)
	}, nil)

	if !quiet {
		fmt.Printf("Fetching metadata from: %s\n", url)
	}

	rep, err := prober.Probe(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nProbe cancelled.")
			os.Exit(130)
		}
		fmt.Println()
		report.RenderError(os.Stdout, err)
		switch {
		case errors.Is(err, probe.ErrUnsupported):
			os.Exit(exitUnsupported)
		default:
			os.Exit(exitNetwork)
		}
	}

	if quiet {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(exitUsage)
		}
		return
	}

	fmt.Println()
	report.Render(os.Stdout, rep)

	if rep.Path != "" {
		fmt.Println()
		fmt.Printf("Downloaded file kept at: %s\n", rep.Path)
	}
}
