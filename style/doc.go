/*
Package style defines the value model of the style engine.

Overview

A CSS property value is one of a closed set of variants: a keyword, a
number, an integer, a string, a color, an image reference, a unit-bearing
quantity, a length, a percentage, an array of values, or raw unparsed
text. Type Value is a tagged representation of this sum; clients switch
on Value.Type() and read the variant through the typed accessors.

Besides single values, this package holds the two aggregate shapes the
engine works with:

▪︎ PropertyList, a sparse ordered sequence of (key, value) pairs, used to
accumulate the body of a style rule before it is merged into a
declaration.

▪︎ Declaration, a dense sequence indexed by property key, the shape of a
computed style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kaskade.style'.
func tracer() tracing.Trace {
	return tracing.Select("kaskade.style")
}
