package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"dirhop/internal/browser"
	"dirhop/internal/eventbus"
	"dirhop/internal/logging"
	"dirhop/internal/ui"
)

// uiEvents are forwarded from the bus into the Bubble Tea program
var uiEvents = []eventbus.EventType{
	eventbus.EventPasteCompleted,
	eventbus.EventEntryRenamed,
	eventbus.EventDeleteFailed,
	eventbus.EventConfigSaved,
}

func runTUI(parent context.Context, opts *options, dir string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	cfg, svc, err := opts.load(bus)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Shutdown() }()

	if dir == "" {
		dir = cfg.StartDir
	}
	log := logging.Get().With("component", "main")

	session, err := browser.New(browser.Options{
		StartDir:   dir,
		ShowHidden: cfg.ShowHidden,
		MaxHistory: cfg.MaxHistory,
		Deleter:    newDeleter(cfg, false),
		Bus:        bus,
	})
	if err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	}

	model := ui.NewModel(bus, cfg, session)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.ShowHidden = event.ShowHidden
		if err := svc.Save(cfg); err != nil {
			log.Error("failed to save config", "path", svc.Path(), "err", err)
		}
	})

	for _, t := range uiEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	log.Info("starting", "dir", session.Dir(), "config", svc.Path())
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
