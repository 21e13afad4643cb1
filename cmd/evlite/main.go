package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"evlite/pkg/config"
	"evlite/pkg/core"
	"evlite/pkg/shell"
	"evlite/pkg/table"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: configs/evlite.yaml or evlite.yaml)")
	degree := flag.Int("degree", 0, "B-tree degree, overrides the config file")
	engine := flag.String("engine", "", "Index engine: btree, memtable or sqlite")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *degree != 0 {
		cfg.Index.Degree = *degree
	}
	if *engine != "" {
		cfg.Index.Engine = *engine
	}
	gtrace.CoreTracer.SetTraceLevel(traceLevel(cfg.Log.Level))

	idx, err := core.Open(cfg.Index)
	if err != nil {
		gtrace.CoreTracer.Errorf("[Main] cannot create index: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tbl := table.New(table.DefaultName, idx)
	defer tbl.Close()
	gtrace.CoreTracer.Infof("[Main] table %s on %s index", tbl.Name(), idx.Type())

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	useColor := cfg.Shell.Color == config.ColorAlways ||
		(cfg.Shell.Color == config.ColorAuto && term.IsTerminal(int(os.Stdout.Fd())))

	sh := shell.New(os.Stdin, os.Stdout, tbl, shell.Options{
		Prompt:      cfg.Shell.Prompt,
		Interactive: interactive,
		Color:       useColor,
	})
	if err := sh.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		tbl.Close()
		os.Exit(1)
	}
}

func traceLevel(level string) tracing.TraceLevel {
	switch level {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}
