/*
Package selector implements the compound-selector model of the style engine.

Overview

A selector is a whitespace-separated chain of simple-selector nodes
(descendant combinator), each node carrying an optional element type, an
optional id, and sorted sets of class names and pseudo-class states:

   textview#title.big.red:hover:focus

Nodes know their canonical text form ("fullname") and their specificity
contribution; selectors carry the accumulated specificity, a monotonic
batch number encoding source order, and a rolling hash used as the cache
key for computed styles.

Package selector also hosts the name expansion used by the rule index:
from one node, every compound name under which the node may be requested
(all subsets of its classes and states, combined with id and type).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kaskade.selector'.
func tracer() tracing.Trace {
	return tracing.Select("kaskade.selector")
}
