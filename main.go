package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"markview/internal/config"
	"markview/internal/document"
	"markview/internal/domain"
	"markview/internal/eventbus"
	"markview/internal/metrics"
	"markview/internal/navigator"
	"markview/internal/ui"
	"markview/internal/watcher"
)

func main() {
	// Parse command line arguments
	var noWatch bool
	flag.BoolVar(&noWatch, "no-watch", false, "Disable reloading on file changes")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("markview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
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

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// Resolve the file to view
	targetPath, err := resolveTarget(flag.Args(), cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Load the document
	var doc *domain.Document
	if targetPath != "" {
		doc, err = document.Load(targetPath)
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", targetPath, err)
			os.Exit(1)
		}
		log.Printf("Loaded %s (%d lines)", targetPath, doc.LineCount)
	} else {
		doc = &domain.Document{}
	}

	// Build the navigation coordinator
	m := metrics.New(cfg.Theme.BaseTextSize, cfg.Theme.LineHeightMultiplier, cfg.Theme.ContentHeightBuffer)
	nav := navigator.New(doc, navigator.Options{
		PageFraction:   cfg.Scroll.PagePercent,
		SpaceFraction:  cfg.Scroll.SpacePercent,
		ArrowIncrement: cfg.Scroll.ArrowIncrement,
		ViewportSize:   cfg.Window.Height,
		Metrics:        m,
	})

	// Resume where the reader left off
	positions := config.NewPositionStore()
	if targetPath != "" {
		if pos, ok := positions.Load(targetPath); ok {
			nav.RestorePosition(pos)
		}
	}

	// Create UI model and Bubble Tea program
	uiModel := ui.NewModel(bus, cfg, positions, nav)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward document events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventDocumentChanged, forward)
	bus.Subscribe(eventbus.EventDocumentRemoved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Quit cleanly on SIGINT/SIGTERM
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Watch the file for changes
	if cfg.Watcher.Enabled && !noWatch && targetPath != "" {
		w := watcher.NewService(bus, time.Duration(cfg.Watcher.DebounceMS)*time.Millisecond)
		if err := w.Watch(targetPath); err != nil {
			log.Printf("Failed to watch %s: %v", targetPath, err)
		} else {
			defer w.Close()
		}
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Remember where the reader stopped, whatever the exit path
	if targetPath != "" {
		if err := positions.Save(targetPath, nav.Position()); err != nil {
			log.Printf("Failed to save position: %v", err)
		}
	}
}

// resolveTarget picks the file to view: the first argument if given,
// otherwise the first default file present in the working directory.
func resolveTarget(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("resolving path: %w", err)
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("cannot open %s: %w", args[0], err)
		}
		if !supportedExtension(path, cfg.Files.SupportedExtensions) {
			log.Printf("Unrecognized extension for %s, viewing anyway", path)
		}
		return path, nil
	}

	for _, name := range cfg.Files.DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return filepath.Abs(name)
		}
	}

	return "", nil
}

func supportedExtension(path string, extensions []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
