package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"projectpager/internal/analytics"
	"projectpager/internal/catalog"
	"projectpager/internal/config"
	"projectpager/internal/domain"
	"projectpager/internal/eventbus"
	"projectpager/internal/navigator"
	"projectpager/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var catalogPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to project catalog (overrides config)")
	flag.Parse()

	// Local .env overrides, if present
	_ = godotenv.Load()
	if env := os.Getenv("PROJECTPAGER_CONFIG"); configPath == "" && env != "" {
		configPath = env
	}

	// Set up logging
	logFile, err := os.OpenFile("projectpager.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configService := config.NewConfigService()
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configService.LoadFromPath(configPath)
	} else {
		cfg, err = configService.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}

	// Load the project catalog
	store, err := catalog.Load(cfg.Catalog)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Create the analytics tracker
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

	// Create and configure the navigator
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

	// Create the UI
	model := ui.NewModel(bus, cfg, vm, store.Projects())
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Watch the catalog file for changes
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

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
