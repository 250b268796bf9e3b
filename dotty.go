package bstree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with their values, formatted with fmt.Sprint. If a node
// has just one child, the missing one is drawn as an empty circle, to keep
// left and right apart. A nil tree or writer produces no output.
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	if t == nil || w == nil {
		tracer().Errorf("DOT output: %v", ErrIllegalArguments)
		return
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 0
	_ = t.each(func(n *node[T], depth int) error {
		ID := ids.alloc(n)
		label := strings.ReplaceAll(fmt.Sprint(n.value), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return nil
		}
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return nil
	})
	if err := writeAll(w,
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
}

func writeAll(w io.Writer, parts ...string) error {
	for _, s := range parts {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled,color=black"
	if n.left == nil && n.right == nil {
		s += ",fillcolor=\"#a3d7e4\",shape=box"
	} else {
		s += ",fillcolor=white,shape=circle"
	}
	return s
}
