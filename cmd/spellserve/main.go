/*
Package main implements the spellserve lookup server and CLI.

SpellServe answers partial or misspelled words with up to nine ranked
dictionary matches drawn from one or more word lists. It can operate as
a MessagePack IPC server for integration with launcher plugins, or as a
CLI application for testing and debugging.

Three matching methods are available: literal prefix matching ("regex"),
weighted fuzzy scoring ("fuzzy") and symmetric-delete edit-distance
lookup ("symspell"). Cheap length and first-character pre-filters bound
the input of the expensive methods, and a bounded FIFO cache memoizes
recent queries per method and vocabulary selection.

# Usage

Start the server with default settings:

	spellserve

Use a custom word list directory and enable debug mode:

	spellserve -data /path/to/vocabularies -d

Run in CLI mode for interactive testing:

	spellserve -c -method symspell -vocab english,english_uk

The data directory holds one text file per list ("english.txt"), one
word per line, ISO 8859-1 encoded.

# Configuration

Runtime configuration is managed through a TOML file:

	[search]
	method = "fuzzy"
	limit = 9
	score_cutoff = 65.0
	max_edit_distance = 2
	compound = false

	[vocab]
	dir = "vocabularies"
	lists = "english,english_uk"

The config file is automatically created with defaults if it doesn't
exist. A "configure" IPC request changes method and lists at runtime;
the engine reloads the vocabulary, clears its result cache and rebuilds
the delete index synchronously before answering further queries.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/internal/cli"
	"github.com/spellserve/spellserve/pkg/config"
	"github.com/spellserve/spellserve/pkg/engine"
	"github.com/spellserve/spellserve/pkg/server"
	"github.com/spellserve/spellserve/pkg/vocab"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, vocabulary store, engine and the chosen frontend.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	dataDir := flag.String("data", "", "Directory containing the word list files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	method := flag.String("method", "", "Matching method: regex, fuzzy or symspell")
	vocabLists := flag.String("vocab", "", "Comma separated word list names")
	cutoff := flag.Float64("cutoff", defaults.Search.ScoreCutoff, "Minimum fuzzy score (0-100)")
	compound := flag.Bool("compound", defaults.Search.Compound, "Enable compound segmentation for symspell lookups")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	activePath := *configPath
	if activePath == "" {
		if defaultPath, err := config.GetDefaultConfigPath(); err == nil {
			activePath = defaultPath
		}
	}
	var cfg *config.Config
	if activePath == "" {
		log.Warn("No usable config path, using built-in defaults...")
		cfg = config.DefaultConfig()
	} else {
		log.Debugf("Using config file: (%s)", activePath)
		var err error
		cfg, err = config.InitConfig(activePath)
		if err != nil {
			log.Warnf("Failed to load config: %v. Using built-in defaults...", err)
			cfg = config.DefaultConfig()
		}
	}

	// flags override the config file
	if *dataDir != "" {
		cfg.Vocab.Dir = *dataDir
	}
	if *method != "" {
		cfg.Search.Method = *method
	}
	if *vocabLists != "" {
		cfg.Vocab.Lists = *vocabLists
	}
	if *cutoff != defaults.Search.ScoreCutoff {
		cfg.Search.ScoreCutoff = *cutoff
	}
	if *compound != defaults.Search.Compound {
		cfg.Search.Compound = *compound
	}

	log.Debugf("Using word lists %q from %q", cfg.Vocab.Lists, cfg.Vocab.Dir)

	store := vocab.NewStore(cfg.Vocab.Dir)
	eng, err := engine.New(store,
		engine.Settings{Method: cfg.Search.Method, Vocabulary: cfg.Vocab.Lists},
		engine.Options{
			ScoreCutoff:     cfg.Search.ScoreCutoff,
			MaxEditDistance: cfg.Search.MaxEditDistance,
			Compound:        cfg.Search.Compound,
		})
	if err != nil {
		// engine stays up with an empty vocabulary; queries return
		// empty results until a configure request fixes the lists
		log.Warnf("Vocabulary load failed: %v", err)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(eng)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(eng)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SpellServe ] Ranked word lookups for launcher plugins")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
