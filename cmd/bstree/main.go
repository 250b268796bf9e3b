/*
Command bstree builds a binary search tree from values given on the command
line or in a text file, optionally removes some of them, and prints the
tree's statistics.

Usage:

	bstree [flags] value…

Examples:

	bstree -n -print 10 5 15 3 7
	bstree -f words.txt -lang de -dot | dot -Tsvg > words.svg
	bstree -n -remove 8 -check 5 3 8 1 4 7 9

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "f", "", "load values from a text file, one per line")
	flag.BoolVar(&opts.numeric, "n", false, "values are integers")
	flag.StringVar(&opts.remove, "remove", "", "comma separated values to remove after building the tree")
	flag.StringVar(&opts.lang, "lang", "", "order strings by the collation rules of a language, e.g. 'de'")
	flag.BoolVar(&opts.latin1, "latin1", false, "text file is encoded in ISO 8859-1")
	flag.BoolVar(&opts.dot, "dot", false, "write the tree in Graphviz DOT format; statistics go to stderr")
	flag.BoolVar(&opts.print, "print", false, "print the tree sideways")
	flag.BoolVar(&opts.check, "check", false, "check the tree's invariants")
	level := flag.String("trace", "Error", "trace level: Error, Info or Debug")
	flag.Parse()

	setupTracing(*level)
	if err := run(opts, flag.Args(), os.Stdout, os.Stderr); err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "bstree: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
}
