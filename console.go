package bstree

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig configures the output of Print.
type PrintConfig struct {
	Indent  int            // additional indent per level, in fixed width ‘en’s
	Colors  bool           // print values in colors depending on their depth
	Palette []*color.Color // colors for depth 0, 1, …; cycled for deeper levels
	Context *uax11.Context // context for computing display widths of values
}

// Print outputs a tree sideways to w: the root is in the leftmost column,
// right subtrees are printed above their parents, left subtrees below.
// Tilting the head to the left shows the tree in its usual orientation.
//
// If parameter config is nil, a config will be created from the current
// terminal's properties (see ConfigFromTerminal).
func Print[T any](t *Tree[T], w io.Writer, config *PrintConfig) error {
	if t == nil || w == nil {
		return ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &printer[T]{
		w:       &stickyWriter{w: w},
		config:  config,
		context: config.Context,
		palette: config.Palette,
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	if config.Colors && len(p.palette) == 0 {
		p.palette = makeDefaultPalette()
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p.print(t.root, 0, 0, "")
	return p.w.err
}

var setupGraphemes sync.Once

type printer[T any] struct {
	w       *stickyWriter
	config  *PrintConfig
	context *uax11.Context
	palette []*color.Color
}

const (
	rightMarker = "┌─ "
	leftMarker  = "└─ "
)

func (p *printer[T]) print(n *node[T], col int, depth int, marker string) {
	if n == nil {
		return
	}
	label := fmt.Sprint(n.value)
	childcol := col + p.width(marker) + p.width(label) + 1 + p.config.Indent
	p.print(n.right, childcol, depth+1, rightMarker)
	io.WriteString(p.w, strings.Repeat(" ", col))
	io.WriteString(p.w, marker)
	if p.config.Colors {
		p.palette[depth%len(p.palette)].Fprint(p.w, label)
	} else {
		io.WriteString(p.w, label)
	}
	io.WriteString(p.w, "\n")
	p.print(n.left, childcol, depth+1, leftMarker)
}

func (p *printer[T]) width(s string) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// stickyWriter remembers the first write error and drops all output after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(b []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(b)
	sw.err = err
	return n, err
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue, color.Bold),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
		color.New(color.FgRed),
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks whether stdout is a terminal, and if so it switches on colors and
// sets the indent depending on the terminal's width.
func ConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{
		Indent:  1,
		Context: uax11.ContextFromEnvironment(),
	}
	if term.IsTerminal(1) {
		config.Colors = true
		w, _, err := term.GetSize(1)
		if err == nil {
			if w > 120 {
				config.Indent = 3
			} else if w < 40 {
				config.Indent = 0
			}
		}
	}
	tracer().P("print", "console").Infof("indent = %d, colors = %v", config.Indent, config.Colors)
	return config
}
