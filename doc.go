/*
Package kaskade is the core of a CSS style engine for GUI toolkits.

Overview

A Library ingests style rules tagged by a selector, indexes them in a
multi-level trie keyed by compound selector names, and computes the
cascaded style declaration for an element described by a selector chain.
Specificity, source order (batch numbers) and a per-query cache drive
the cascade; descendant combinators are matched by walking the trie from
the target node up through the ancestry.

The stylesheet tokenizer producing (selector, declaration) pairs and the
layout engine consuming computed styles are external collaborators; see
package cssom for the stylesheet-facing interfaces and the douceur-backed
default implementation.

Clients typically do

   lib := kaskade.NewLibrary()
   sel, _ := selector.Parse("div.red")
   props := &style.PropertyList{}
   props.Add(kaskade.PropWidth, style.Length(100, "px"))
   lib.AddRules(sel, props, "app.css")
   decl := lib.ComputedStyle(sel)

The engine is cooperatively single-threaded: registries, trie and cache
are shared state without internal locking, and every operation completes
synchronously. Hosts driving a Library from several goroutines have to
serialize AddRules, ComputedStyle and teardown externally.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kaskade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kaskade.library'.
func tracer() tracing.Trace {
	return tracing.Select("kaskade.library")
}
