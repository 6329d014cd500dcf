package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"seatgrid-cli/config"
	"seatgrid-cli/logging"
	"seatgrid-cli/store"
	"seatgrid-cli/tui"
)

const appName = "seatgrid-cli"

var (
	version = "dev"
	commit  = "none"
)

type options struct {
	layoutPath string
}

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--layout <file>] [--version]\n", appName)
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func handleArgs(args []string) (options, bool) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return opts, false
		case "-v", "--version", "version":
			printVersion()
			return opts, false
		case "--layout":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--layout requires a file path")
				os.Exit(2)
			}
			i++
			opts.layoutPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", args[i])
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}
	return opts, true
}

func newKVFactory(cfg *config.Config) tui.KVFactory {
	return func(theaterID string) (store.KV, error) {
		switch cfg.Persistence.Backend {
		case "redis":
			return store.NewRedisKV(cfg.Persistence.RedisAddr, cfg.Persistence.RedisDB, theaterID)
		case "file", "":
			return store.NewFileKV(theaterID, cfg.Persistence.CacheDir)
		default:
			return nil, fmt.Errorf("unknown persistence backend %q", cfg.Persistence.Backend)
		}
	}
}

func main() {
	opts, ok := handleArgs(os.Args[1:])
	if !ok {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	theaters, err := config.LoadTheaters(opts.layoutPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := tui.New(cfg, logger, theaters, newKVFactory(cfg))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
