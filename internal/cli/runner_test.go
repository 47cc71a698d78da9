package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"chord/internal/config"
	"chord/internal/parse"
	"chord/internal/render"
)

func newRunner(format string) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Format = format
	return NewRunner(cfg, &out, nil), &out
}

func TestLineShort(t *testing.T) {
	r, out := newRunner(render.FormatShort)
	require.NoError(t, r.Line("super + {1-3}"))
	require.Equal(t, "super + {1, 2, 3}\n", out.String())
}

func TestLineNoDesugar(t *testing.T) {
	r, out := newRunner(render.FormatShort)
	r.NoDesugar = true
	require.NoError(t, r.Line("super + {1-3}"))
	require.Equal(t, "super + {1-3}\n", out.String())
}

func TestLineTokens(t *testing.T) {
	r, out := newRunner(render.FormatTree)
	r.Tokens = true
	require.NoError(t, r.Line("a + b"))
	require.Equal(t, "TEXT \"a\"\nPLUS\nTEXT \"b\"\n", out.String())
}

func TestLineError(t *testing.T) {
	r, out := newRunner(render.FormatTree)
	err := r.Line("{a,b")
	require.ErrorIs(t, err, parse.ErrUnmatchedGroupOpen)
	require.Empty(t, out.String())
}

func TestLineDepthFromConfig(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.MaxDepth = 1
	r := NewRunner(cfg, &out, nil)
	require.NoError(t, r.Line("{a}"))
	require.ErrorIs(t, r.Line("{{a}}"), parse.ErrTooDeep)
}

func TestLineRangeLimitFromConfig(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.MaxRange = 10
	r := NewRunner(cfg, &out, nil)
	require.NoError(t, r.Line("f{0-9}"))
	require.ErrorIs(t, r.Line("{a-z}"), parse.ErrRangeTooLarge)
}

func TestScript(t *testing.T) {
	r, out := newRunner(render.FormatShort)
	in := "a + b\n\n   \nXF86{Play,Pause}\n"
	require.NoError(t, r.Script(strings.NewReader(in)))
	require.Equal(t, "a + b\nXF86{Play, Pause}\n", out.String())
}

func TestScriptStopsAtFirstError(t *testing.T) {
	r, out := newRunner(render.FormatShort)
	in := "a\n{b,\nc\n"
	err := r.Script(strings.NewReader(in))
	require.ErrorIs(t, err, parse.ErrUnmatchedGroupOpen)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, "a\n", out.String())
}

func TestLineLogsStages(t *testing.T) {
	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)
	log.SetLevel(logrus.DebugLevel)

	var out bytes.Buffer
	r := NewRunner(config.Default(), &out, log)
	require.NoError(t, r.Line("k{0-1}"))
	require.Contains(t, logs.String(), "scanned")
	require.Contains(t, logs.String(), "built")
	require.Contains(t, logs.String(), "desugared")
}
