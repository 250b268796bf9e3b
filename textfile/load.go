package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// number of lines the broadcaster buffers for the loading goroutine
const bufferedLines = 64

// Option configures the loading of a text file.
type Option func(*loader)

// WithCharset decodes files in a legacy single-byte encoding, e.g.
// charmap.ISO8859_1. Without this option files are read as UTF-8.
func WithCharset(cm *charmap.Charmap) Option {
	return func(l *loader) {
		l.charset = cm
	}
}

// WithCompare orders the values of the tree by compare instead of
// strings.Compare.
func WithCompare(compare func(a, b string) int) Option {
	return func(l *loader) {
		if compare != nil {
			l.compare = compare
		}
	}
}

type loader struct {
	charset *charmap.Charmap
	compare func(a, b string) int
}

// Load reads a file, which must be a text file, and inserts every non-blank
// line into a new tree.
//
// Opening of the file is done synchronously. Lines are read asynchronously,
// but Load returns only after the whole file has been consumed. If reading
// fails, Load returns the error and no tree.
func Load(name string, opts ...Option) (*bstree.Tree[string], error) {
	l := &loader{compare: strings.Compare}
	for _, opt := range opts {
		opt(l)
	}
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	cast := caster.New(nil)
	lines, ok := cast.Sub(context.Background(), bufferedLines)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to lines of %s", name)
	}
	go readLines(f, l.charset, cast)
	//
	t := bstree.NewFunc(l.compare)
	var loadErr error
	for msg := range lines {
		switch m := msg.(type) {
		case string:
			t.Insert(m)
		case error:
			loadErr = m
		}
	}
	if loadErr != nil {
		return nil, loadErr
	}
	tracer().P("file", name).Debugf("loaded %d values", t.Len())
	return t, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", bstree.ErrIllegalArguments, name)
	}
	return os.Open(name) // just open for read access
}

// --- File loading goroutine ------------------------------------------------

// readLines publishes every non-blank line of f to cast, followed by an error
// value if reading fails. It closes f and cast when done.
func readLines(f *os.File, cm *charmap.Charmap, cast *caster.Caster) {
	defer cast.Close()
	defer f.Close()
	var r io.Reader = f
	if cm != nil {
		r = transform.NewReader(f, cm.NewDecoder())
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			cast.Pub(s)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("reading %s: %s", f.Name(), err.Error())
		cast.Pub(fmt.Errorf("textfile: reading %s: %w", f.Name(), err))
	}
}
