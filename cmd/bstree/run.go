package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/bstree/collation"
	"github.com/npillmayer/bstree/textfile"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

type options struct {
	file    string
	numeric bool
	remove  string
	lang    string
	latin1  bool
	dot     bool
	print   bool
	check   bool
}

// run builds a tree from args or from opts.file and reports on it to w.
// With opts.dot set, w receives nothing but the DOT graph and the report goes
// to diag.
func run(opts options, args []string, w, diag io.Writer) error {
	if opts.latin1 && opts.file == "" {
		return fmt.Errorf("%w: -latin1 requires -f", bstree.ErrIllegalArguments)
	}
	var removals []string
	if opts.remove != "" {
		removals = strings.Split(opts.remove, ",")
	}
	if opts.numeric {
		if opts.file != "" || opts.lang != "" {
			return fmt.Errorf("%w: -n cannot be combined with -f or -lang", bstree.ErrIllegalArguments)
		}
		values, err := parseInts(args)
		if err != nil {
			return err
		}
		rm, err := parseInts(removals)
		if err != nil {
			return err
		}
		return report(bstree.From(values...), rm, opts, w, diag)
	}
	compare := strings.Compare
	if opts.lang != "" {
		tag, err := language.Parse(opts.lang)
		if err != nil {
			return err
		}
		compare = collation.Compare(tag)
	}
	t := bstree.NewFunc(compare)
	if opts.file != "" {
		fileopts := []textfile.Option{textfile.WithCompare(compare)}
		if opts.latin1 {
			fileopts = append(fileopts, textfile.WithCharset(charmap.ISO8859_1))
		}
		loaded, err := textfile.Load(opts.file, fileopts...)
		if err != nil {
			return err
		}
		t.MoveFrom(loaded)
	}
	for _, v := range args {
		t.Insert(v)
	}
	return report(t, removals, opts, w, diag)
}

func report[T any](t *bstree.Tree[T], removals []T, opts options, out, diag io.Writer) error {
	for _, v := range removals {
		if !t.Remove(v) {
			tracer().Infof("value %v not in tree", v)
		}
	}
	w := out
	if opts.dot {
		w = diag
	}
	fmt.Fprintf(w, "size: %d\n", t.Len())
	fmt.Fprintf(w, "height: %d\n", t.Height())
	if min, err := t.Min(); err == nil {
		fmt.Fprintf(w, "min: %v\n", min)
	}
	if max, err := t.Max(); err == nil {
		fmt.Fprintf(w, "max: %v\n", max)
	}
	if opts.check {
		if err := t.Check(); err != nil {
			return err
		}
		fmt.Fprintln(w, "check: ok")
	}
	if opts.print {
		if err := bstree.Print(t, w, nil); err != nil {
			return err
		}
	}
	if opts.dot {
		bstree.Tree2Dot(t, out)
	}
	return nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("%w: not an integer: %q", bstree.ErrIllegalArguments, a)
		}
		values = append(values, v)
	}
	return values, nil
}
