package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snek/internal/app"
	"github.com/vinser/snek/internal/flags"
	"github.com/vinser/snek/internal/logger"
	"github.com/vinser/snek/internal/sound"
)

var version = "dev"

func main() {
	fl := flags.MustParse()
	if err := run(fl); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run owns every resource that needs releasing, so main exits only after the defers ran.
func run(fl *flags.Flags) error {
	cfg, err := fl.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogFile, cfg.Debug); err != nil {
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("starting", "version", version)

	soundMgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		logger.Log.Warnw("sound disabled", "err", err)
	}
	defer soundMgr.Close()

	model, err := app.New(cfg, soundMgr)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Log.Errorw("program failed", "err", err)
		return err
	}
	return nil
}
