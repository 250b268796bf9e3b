/*
Package html builds binary search trees of strings from the textual content
of HTML.

Every text node of an HTML fragment becomes a value of the tree, trimmed of
surrounding white space. Blank text nodes as well as the content of script
and style elements are skipped. Values are inserted in document order.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// FromNode creates a tree of strings for the textual content of an HTML
// element and all its descendents.
func FromNode(n *html.Node) (*bstree.Tree[string], error) {
	if n == nil {
		return nil, bstree.ErrIllegalArguments
	}
	t := bstree.New[string]()
	collectText(n, t)
	return t, nil
}

// FromHTML creates a tree of strings from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts the
// pure text.
func FromHTML(input io.Reader) (*bstree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	t := bstree.New[string]()
	for _, n := range nodes {
		collectText(n, t)
	}
	tracer().Debugf("tree from HTML has %d values", t.Len())
	return t, nil
}

func collectText(n *html.Node, t *bstree.Tree[string]) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			t.Insert(s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, t)
	}
}
