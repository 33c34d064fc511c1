package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/yt-tui/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/yt-tui/config.toml)")
	outputDir := flag.String("output", "", "directory to save downloads in (optional, overrides output_dir)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("yt-tui %s\n", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, OutputDir: *outputDir}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "yt-tui: %v\n", err)
		return 1
	}
	return 0
}
