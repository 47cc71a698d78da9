package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"chord/internal/cli"
	"chord/internal/config"
	"chord/internal/logger"
	"chord/internal/render"
)

func main() {
	cfgPath := flag.String("c", "", "config file (default $XDG_CONFIG_HOME/chord/config.toml)")
	format := flag.String("f", "", "output format: "+strings.Join(render.Formats(), ", "))
	depth := flag.Int("depth", 0, "maximum group nesting")
	tokens := flag.Bool("tokens", false, "print scanner tokens only")
	noDesugar := flag.Bool("no-desugar", false, "keep ranges in the output")
	color := flag.Bool("color", false, "color the tree output")
	verbose := flag.Bool("v", false, "log every pipeline stage")
	flag.Parse()

	if *verbose {
		logger.SetLevel(logger.Debug)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *depth != 0 {
		cfg.MaxDepth = *depth
	}
	if *color {
		cfg.Color = term.IsTerminal(int(os.Stdout.Fd()))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runner := cli.NewRunner(cfg, os.Stdout, logger.L())
	runner.Tokens = *tokens
	runner.NoDesugar = *noDesugar

	if flag.NArg() > 0 {
		if err := runner.Line(strings.Join(flag.Args(), " ")); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(runner, cfg.History)
		return
	}
	runScript(runner, os.Stdin)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.File()
		if err != nil {
			logger.L().WithError(err).Debug("no config directory")
			return config.Default(), nil
		}
		path = p
	}
	logger.L().WithField("path", path).Debug("loading config")
	return config.Load(path)
}

func runScript(runner *cli.Runner, rd io.Reader) {
	if err := runner.Script(rd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive(runner *cli.Runner, historyPath string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("chord> ")
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if err := runner.Line(input); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			defer f.Close()
			_, _ = line.WriteHistory(f)
		}
	}
}
