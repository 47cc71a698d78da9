package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"chord/internal/config"
	"chord/internal/parse"
	"chord/internal/render"
)

// maxLine bounds a single script line.
const maxLine = 1 << 20

// Runner compiles shorthand lines and writes their rendering.
type Runner struct {
	Builder   parse.Builder
	Format    string
	Render    render.Options
	Tokens    bool
	NoDesugar bool
	Out       io.Writer
	Log       *logrus.Logger
}

// NewRunner builds a runner from a loaded configuration.
func NewRunner(cfg config.Config, out io.Writer, log *logrus.Logger) *Runner {
	return &Runner{
		Builder: parse.Builder{MaxDepth: cfg.MaxDepth, MaxRange: cfg.MaxRange},
		Format:  cfg.Format,
		Render:  render.Options{Color: cfg.Color},
		Out:     out,
		Log:     log,
	}
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return r.Log
}

// Line compiles one shorthand expression and writes the result.
func (r *Runner) Line(input string) error {
	log := r.logger().WithField("input", input)

	toks := parse.Scan(input)
	log.WithField("tokens", len(toks)).Debug("scanned")
	if r.Tokens {
		_, err := io.WriteString(r.Out, render.Tokens(toks))
		return err
	}

	nodes, err := r.Builder.Build(toks)
	if err != nil {
		log.WithError(err).Debug("build failed")
		return err
	}
	log.WithFields(logrus.Fields{
		"terms": len(nodes),
		"depth": parse.Depth(nodes),
	}).Debug("built")

	if !r.NoDesugar {
		nodes = parse.Desugar(nodes)
		log.Debug("desugared")
	}
	return render.Render(r.Out, r.Format, nodes, r.Render)
}

// Script compiles every non-blank line of rd, stopping at the first error.
func (r *Runner) Script(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := r.Line(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}
