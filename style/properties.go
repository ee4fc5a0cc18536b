package style

// PropertyEntry is one (key, value) pair of a rule body.
type PropertyEntry struct {
	Key   int
	Value Value
}

// PropertyList is a sparse, ordered sequence of property entries. Rule
// bodies are accumulated in property lists before they are merged into a
// declaration during cascade.
type PropertyList struct {
	entries []PropertyEntry
}

// Add appends a (key, value) pair. An existing entry for key is
// overwritten in place, keeping its position.
func (pl *PropertyList) Add(key int, v Value) {
	for i := range pl.entries {
		if pl.entries[i].Key == key {
			pl.entries[i].Value = v
			return
		}
	}
	pl.entries = append(pl.entries, PropertyEntry{Key: key, Value: v})
}

// Find returns the value stored under key.
func (pl *PropertyList) Find(key int) (Value, bool) {
	for _, e := range pl.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Null(), false
}

// Remove deletes the entry for key, reporting whether one existed.
func (pl *PropertyList) Remove(key int) bool {
	for i, e := range pl.entries {
		if e.Key == key {
			pl.entries = append(pl.entries[:i], pl.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (pl *PropertyList) Len() int {
	if pl == nil {
		return 0
	}
	return len(pl.entries)
}

// ForEach calls f for every entry, in insertion order.
func (pl *PropertyList) ForEach(f func(key int, v Value)) {
	if pl == nil {
		return
	}
	for _, e := range pl.entries {
		f(e.Key, e.Value)
	}
}

// AddDeclaration appends every set slot of a declaration to the list,
// returning the number of entries added.
func (pl *PropertyList) AddDeclaration(decl *Declaration) int {
	count := 0
	decl.ForEach(func(key int, v Value) {
		pl.Add(key, v.Clone())
		count++
	})
	return count
}

// MergeInto copies the list into a declaration: a slot already set in
// the declaration is left alone, everything else receives a deep copy.
// The declaration grows to hold the largest key of the list. Returns the
// number of slots written.
func (pl *PropertyList) MergeInto(decl *Declaration) int {
	count := 0
	for _, e := range pl.entries {
		if !e.Value.IsValid() {
			continue
		}
		if decl.IsSet(e.Key) {
			continue
		}
		decl.Set(e.Key, e.Value.Clone())
		count++
	}
	return count
}
