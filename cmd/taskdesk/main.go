package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tgienger/taskdesk/internal/config"
	"github.com/tgienger/taskdesk/internal/db"
	"github.com/tgienger/taskdesk/internal/manager"
	"github.com/tgienger/taskdesk/internal/models"
	"github.com/tgienger/taskdesk/internal/seed"
	"github.com/tgienger/taskdesk/internal/store"
	"github.com/tgienger/taskdesk/internal/ui"
	"github.com/tgienger/taskdesk/internal/ui/styles"
	"github.com/tgienger/taskdesk/internal/ui/views"
	"github.com/tgienger/taskdesk/internal/version"
)

func main() {
	var (
		cfgPath     string
		dbPath      string
		seedFile    string
		debug       bool
		showVersion bool
		listOnly    bool
	)

	flag.StringVar(&cfgPath, "config", config.ResolveConfigPath(), "config file path")
	flag.StringVar(&dbPath, "db", "", "settings database path (overrides config)")
	flag.StringVar(&seedFile, "seed", "", "YAML file with the starting tasks (overrides config)")
	flag.BoolVar(&debug, "debug", false, "write a debug log")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&listOnly, "list", false, "print the tasks and the status report, then exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("%s %s\n", config.AppName, version.String())
		return
	}

	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}
	if debug {
		cfg.Debug = true
	}

	// The terminal belongs to bubbletea, so logs only ever go to a file
	log.SetOutput(io.Discard)
	if cfg.Debug {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
			f, err := tea.LogToFile(cfg.LogFile, "")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
		}
	}
	log.Printf("[main] %s %s config=%s db=%s", config.AppName, version.String(), cfgPath, cfg.DBPath)

	tasks, err := loadSeed(cfg.SeedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seed tasks: %v\n", err)
		os.Exit(1)
	}
	s := store.New()
	if err := s.Seed(tasks); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding tasks: %v\n", err)
		os.Exit(1)
	}
	mgr := manager.New(s)

	if listOnly || !(term.IsTerminal(int(os.Stdin.Fd())) || term.IsTerminal(int(os.Stdout.Fd()))) {
		fmt.Println(views.RenderTaskTable(mgr.Tasks(), cfg.DateLayout))
		fmt.Println(views.RenderReport(mgr.Report(), styles.MaxWidth))
		return
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	app := ui.NewApp(database, mgr, ui.Options{
		DateLayout: cfg.DateLayout,
		SkipLogin:  cfg.SkipLogin,
		Version:    version.Version,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadSeed(path string) ([]models.Task, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}
