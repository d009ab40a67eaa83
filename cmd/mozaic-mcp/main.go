package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/build"
	mcpserver "github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/mcp"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/mcplog"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/normalize"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/search"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/util"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "build":
		if err := runBuild(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("mozaic-mcp %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runBuild normalizes a design system checkout into the SQLite database.
// Per-file problems are logged as warnings; only a failed database write is
// fatal.
func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	sourceFlag := fs.String("source", "", "design system source checkout")
	dbFlag := fs.String("db", "", "output database path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to read project config: %w", err)
	}

	logger := newLogger(*logLevel, cfg)
	sourceDir := resolveSourceDir(*sourceFlag, cfg)
	dbPath := resolveDBPath(*dbFlag, cfg)

	var excludes []string
	if cfg != nil {
		excludes = cfg.Excludes
	}

	res := normalize.Run(filepath.Join(sourceDir, "tokens"), excludes, logger)
	coll := build.Collect(sourceDir, logger)

	data := store.BuildData{
		Tokens:     res.Tokens,
		Components: coll.Components,
		Utilities:  coll.Utilities,
		Docs:       coll.Docs,
		Icons:      coll.Icons,
	}
	if err := store.Build(context.Background(), dbPath, data); err != nil {
		return err
	}

	logger.Info("database built",
		"path", dbPath,
		"tokens", len(data.Tokens),
		"components", len(data.Components),
		"utilities", len(data.Utilities),
		"docs", len(data.Docs),
		"icons", len(data.Icons),
		"warnings", len(res.Warnings)+len(coll.Warnings))
	return nil
}

// runServe starts the MCP stdio server over a previously built database.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbFlag := fs.String("db", "", "database path")
	watch := fs.Bool("watch", false, "reload when the database file is rebuilt")
	callLogFlag := fs.String("call-log", "", "JSONL tool-call log path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to read project config: %w", err)
	}

	logger := newLogger(*logLevel, cfg)
	dbPath := resolveDBPath(*dbFlag, cfg)

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	defer st.Close()

	calls, err := mcplog.New(resolveCallLog(*callLogFlag, cfg))
	if err != nil {
		return err
	}
	if calls != nil {
		defer calls.Close()
	}

	if *watch {
		w, err := store.NewWatcher(st, 0, logger)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
	}

	exec := search.NewExecutor(st, st, logger)
	srv := mcpserver.NewServer(st, exec, logger, calls)

	logger.Info("starting MCP server", "db", dbPath, "watch", *watch)
	return srv.ServeStdio()
}

// newLogger builds the process logger, letting a --log-level flag override
// the project config. Logs go to stderr; stdout belongs to the MCP protocol.
func newLogger(levelFlag string, cfg *ProjectConfig) *slog.Logger {
	lc := util.DefaultLoggerConfig()
	if cfg != nil {
		if cfg.Log.Level != "" {
			lc.Level = util.LogLevel(cfg.Log.Level)
		}
		if cfg.Log.Format != "" {
			lc.Format = util.LogFormat(cfg.Log.Format)
		}
	}
	if levelFlag != "" {
		lc.Level = util.LogLevel(levelFlag)
	}
	return util.NewLogger(lc)
}

func printUsage() {
	fmt.Println("Usage: mozaic-mcp <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build      Normalize a design system checkout into the SQLite database")
	fmt.Println("  serve      Start the MCP server over stdio")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
