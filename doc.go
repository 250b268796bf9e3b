/*
Package bstree offers a plain, unbalanced binary search tree for ordered values.

Trees

A Tree stores values of a type T ordered by a comparison function. Values
strictly greater than a node are routed to its right subtree, all others,
including duplicates, to its left subtree. Duplicates are therefore retained
and always accumulate to the left of their first equal ancestor.

	t := bstree.From(10, 5, 15, 3, 7)
	m, _ := t.Min()      // 3
	h := t.Height()      // 3
	ok := t.Find(6)      // false

The tree does no balancing. Inserting a sorted sequence degenerates the tree
into a list, making operations O(n). This is accepted behaviour: clients with
adversarial input should shuffle it or use a balanced tree.

Trees are not safe for concurrent use. Clients needing concurrent access have
to guard every operation with a single lock, or work on independent clones.

For debugging, a tree may be written in Graphviz DOT format (Tree2Dot) or
printed sideways to a console (Print).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bstree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// TreeError is an error type for the bstree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyTree is flagged whenever Min or Max are called for an empty tree.
const ErrEmptyTree = TreeError("tree is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariant signals a violated structural invariant, see Tree.Check.
const ErrInvariant = TreeError("tree invariant violated")
