/*
Package valdef compiles and applies CSS value definitions.

Overview

Properties declare the shape of their values in the W3C value-definition
mini-language, e.g.

   auto | <length> | <percentage>
   [ <length> | <percentage> | auto ]{1,2} | cover | contain
   <length>{2,4} && <color>?

Compile translates such a definition into a tree of ValDef nodes:
keyword leaves, data-type leaves (<length>, <color>, …, resolved through
a type registry), and groups combining children by juxtaposition, '&&',
'||', '|' or brackets, with optional repetition bounds. Juxtaposition
binds tighter than '&&', which binds tighter than '||', which binds
tighter than '|'; brackets override precedence; the multipliers '?', '*',
'+' and '{m,n}' apply to the immediately preceding term or bracket group.

Parse matches property value text against a compiled definition and
yields the style.Value the first successful interpretation produces.
Value text is tokenized with the CSS scanner of gorilla/css, the same
tokenizer the douceur stylesheet parser builds on.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package valdef

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kaskade.valdef'.
func tracer() tracing.Trace {
	return tracing.Select("kaskade.valdef")
}
