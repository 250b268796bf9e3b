/*
Package textfile provides API helpers to load the lines of text files into
binary search trees.

Every non-blank line of a file, trimmed of surrounding white space, becomes a
value of the tree. Lines are inserted in file order.

Reading is done by a background goroutine, which broadcasts lines to the
loading goroutine. Only the loading goroutine ever touches the tree; trees
are not safe for concurrent use. The Load API is synchronous.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
