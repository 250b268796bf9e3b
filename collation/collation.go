/*
Package collation creates binary search trees of strings which are ordered by
the collation rules of a language.

	t := collation.New(language.German, collate.IgnoreCase)
	t.Insert("Äpfel")
	t.Insert("Zebra")
	t.Insert("apfel")

Values equal under the collation count as duplicates. With collate.IgnoreCase,
Find("APFEL") therefore reports true. collate.Loose additionally folds
accents, making "côte" and "cote" equal.

A collator keeps internal buffers and is not safe for concurrent use. Neither
is a tree; every tree gets a collator of its own.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package collation

import (
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// Compare returns a comparison function for strings, following the collation
// rules for tag.
func Compare(tag language.Tag, opts ...collate.Option) func(a, b string) int {
	tracer().Debugf("collation for %s", tag)
	c := collate.New(tag, opts...)
	return c.CompareString
}

// New creates an empty tree of strings, ordered by the collation rules for tag.
func New(tag language.Tag, opts ...collate.Option) *bstree.Tree[string] {
	return bstree.NewFunc(Compare(tag, opts...))
}

// From creates a tree ordered by the collation rules for tag and inserts all
// values, in order.
func From(tag language.Tag, values []string, opts ...collate.Option) *bstree.Tree[string] {
	return bstree.FromFunc(Compare(tag, opts...), values...)
}
