package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercier/resound/internal/app"
	"github.com/lmercier/resound/internal/config"
	"github.com/lmercier/resound/internal/mpris"
	"github.com/lmercier/resound/internal/notify"
	"github.com/lmercier/resound/internal/remote/httpapi"
	"github.com/lmercier/resound/internal/state"
	"github.com/lmercier/resound/internal/stderr"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	svc := httpapi.New(httpapi.NewClient(cfg.ServerURL))
	svc.Start()
	defer svc.Close()

	// Desktop notifications are best effort: run without them when the
	// session bus is unavailable.
	notifier, err := notify.New()
	if err != nil {
		notifier = nil
	}

	m := app.New(cfg, svc, stateMgr, notifier)

	if adapter, err := mpris.New(svc); err == nil {
		defer adapter.Close()
	}

	// Keep native-library noise off fd 2 while the alt screen is up;
	// captured lines show up on the status row instead.
	if err := stderr.Start(); err == nil {
		defer stderr.Stop()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		for line := range stderr.Messages {
			p.Send(app.StderrMsg(line))
		}
	}()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "resound: %v\n", err)
		os.Exit(1)
	}
}
