package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"projectpager/internal/analytics"
	"projectpager/internal/catalog"
	"projectpager/internal/config"
	"projectpager/internal/domain"
	"projectpager/internal/eventbus"
	"projectpager/internal/navigator"
	"projectpager/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("projectpager.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration and catalog
	cfg, err := config.NewConfigService().Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := catalog.Load(cfg.Catalog)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	bus := eventbus.New()

	var tracker analytics.Tracker = analytics.NopTracker{}
	if cfg.Analytics.Enabled {
		analyticsStore, err := analytics.OpenStore(cfg.Analytics.Path)
		if err != nil {
			log.Printf("Analytics store unavailable, logging instead: %v", err)
			tracker = analytics.LogTracker{}
		} else {
			defer analyticsStore.Close()
			tracker = analyticsStore
		}
	}

	vm := navigator.New(bus, tracker)
	startIndex := cfg.StartIndex
	if startIndex >= store.Len() {
		startIndex = 0
	}
	initial, _ := store.At(startIndex)
	vm.Configure(domain.NavigatorConfig{
		Index:   &startIndex,
		Project: initial,
		RefTag:  domain.RefTag(cfg.RefTag),
	})

	model := ui.NewModel(bus, cfg, vm, store.Projects())
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if cfg.UISettings.WatchCatalog {
		go func() {
			err := catalog.Watch(ctx, cfg.Catalog, func(projects []domain.Project) {
				p.Send(ui.CatalogReloadedMsg{Projects: projects})
			})
			if err != nil {
				log.Printf("Catalog watcher failed: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
