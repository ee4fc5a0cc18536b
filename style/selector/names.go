package selector

// Name expansion: a rule is indexed under the fullname of its rightmost
// node, but an element asks for styles with a node that may carry more
// classes and states than any single rule mentions. Expand therefore
// enumerates every compound name under which the element's node may have
// been indexed: type and id, alone and combined, joined with every
// non-empty subset of the classes and every non-empty subset of the
// states, all in sorted order.
//
// The collector walks the levels type → id → class → class₂ → status →
// status₂, extending a single stack-allocated scratch buffer and
// truncating it on the way back up. Recursion depth is bounded by the
// class count plus the state count of the node.

// collector is the scratch state of one expansion run.
type collector struct {
	node     *Node
	buf      [MaxNameLen]byte
	len      int
	out      []string
	overflow bool
}

// Expand enumerates the compound names of n. The result contains no
// duplicates and is deterministic for sorted, duplicate-free nodes. When
// a generated name would exceed MaxNameLen, the name and its extensions
// are dropped and ErrCapacity is returned alongside the names that fit.
func (n *Node) Expand() ([]string, error) {
	c := collector{node: n}
	c.typeLevel()
	c.idLevel()
	c.classLevel(0)
	c.statusLevel(0)
	if c.overflow {
		tracer().Errorf("name expansion of %q exceeds %d chars", n.fullname, MaxNameLen)
		return c.out, ErrCapacity
	}
	return c.out, nil
}

// ExpandInto appends the expansion of n to names, sharing the error
// contract of Expand.
func (n *Node) ExpandInto(names []string) ([]string, error) {
	c := collector{node: n, out: names}
	c.typeLevel()
	c.idLevel()
	c.classLevel(0)
	c.statusLevel(0)
	if c.overflow {
		tracer().Errorf("name expansion of %q exceeds %d chars", n.fullname, MaxNameLen)
		return c.out, ErrCapacity
	}
	return c.out, nil
}

func (c *collector) emit() {
	c.out = append(c.out, string(c.buf[:c.len]))
}

// descend appends sep+name to the scratch buffer and runs below, undoing
// the extension afterwards. sep 0 appends the bare name.
func (c *collector) descend(sep byte, name string, below func()) {
	mark := c.len
	n := c.len + len(name)
	if sep != 0 {
		n++
	}
	if n > MaxNameLen {
		c.overflow = true
		return
	}
	if sep != 0 {
		c.buf[c.len] = sep
		c.len++
	}
	copy(c.buf[c.len:], name)
	c.len += len(name)
	below()
	c.len = mark
}

func (c *collector) typeLevel() {
	if c.node.typ == "" {
		return
	}
	c.descend(0, c.node.typ, func() {
		c.emit()
		c.idLevel()
		c.classLevel(0)
		c.statusLevel(0)
	})
}

func (c *collector) idLevel() {
	if c.node.id == "" {
		return
	}
	c.descend('#', c.node.id, func() {
		c.emit()
		c.classLevel(0)
		c.statusLevel(0)
	})
}

// classLevel emits every class subset that starts at index ≥ start,
// extending each subset with the state combinations.
func (c *collector) classLevel(start int) {
	for i := start; i < len(c.node.classes); i++ {
		c.descend('.', c.node.classes[i], func() {
			c.emit()
			c.classLevel(i + 1)
			c.statusLevel(0)
		})
	}
}

func (c *collector) statusLevel(start int) {
	for i := start; i < len(c.node.status); i++ {
		c.descend(':', c.node.status[i], func() {
			c.emit()
			c.statusLevel(i + 1)
		})
	}
}
