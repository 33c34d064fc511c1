package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yt-tui/internal/config"
	"github.com/five82/yt-tui/internal/loop"
	"github.com/five82/yt-tui/internal/message"
	"github.com/five82/yt-tui/internal/state"
	"github.com/five82/yt-tui/internal/task"
	"github.com/five82/yt-tui/internal/ui"
	"github.com/five82/yt-tui/internal/ytdlp"
)

// Options configure the yt-tui application.
type Options struct {
	ConfigPath string // empty uses ~/.config/yt-tui/config.toml
	OutputDir  string // overrides output_dir from the config file
}

// Run boots the yt-tui TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.WithOutputDir(opts.OutputDir)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := exec.LookPath(cfg.YtDlpPath); err != nil {
		log.Printf("yt-dlp not found, fetches will fail: %v", err)
	}
	log.Printf("starting: yt-dlp=%s output=%s theme=%s", cfg.YtDlpPath, cfg.OutputDir, cfg.Theme)

	client := ytdlp.NewClient(ytdlp.Options{
		Binary:         cfg.YtDlpPath,
		OutputDir:      cfg.OutputDir,
		OutputTemplate: cfg.OutputTemplate,
	})

	term := ui.NewTerminal(ui.Options{
		Theme:     ui.GetTheme(cfg.Theme),
		OutputDir: cfg.OutputDir,
	})

	driver, err := loop.New(loop.Options{
		App:      state.New(ui.SpinnerFrames()),
		Inbox:    message.NewChannel(cfg.ChannelCapacity),
		Launcher: task.NewLauncher(ctx, client),
		Input:    term,
		Renderer: term,
		Tick:     cfg.Tick,
	})
	if err != nil {
		return fmt.Errorf("init event loop: %w", err)
	}

	done := startSession(ctx, driver, term)
	uiErr := term.Run()
	loopErr := <-done

	if loopErr != nil && !errors.Is(loopErr, ui.ErrClosed) {
		return loopErr
	}
	if uiErr != nil && !errors.Is(uiErr, tea.ErrInterrupted) {
		return fmt.Errorf("terminal: %w", uiErr)
	}
	log.Printf("exiting")
	return nil
}
