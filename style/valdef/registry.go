package valdef

import (
	"errors"
	"fmt"
)

// Errors flagged by the registry and the compiler.
var (
	ErrDuplicate = errors.New("already registered")
	ErrNotFound  = errors.New("unknown identifier")
	ErrSyntax    = errors.New("value definition syntax error")
)

// KeywordLookup resolves a keyword spelling to its registered identifier.
// The style library satisfies this with its keyword registry.
type KeywordLookup interface {
	KeywordKey(name string) (int, bool)
}

// Registry holds the data types and type aliases value definitions may
// reference, together with the keyword table bare identifiers resolve
// against.
type Registry struct {
	types    map[string]*TypeRecord
	aliases  map[string]*aliasEntry
	keywords KeywordLookup
}

// aliasEntry holds the definition text of an alias and, once the alias
// has been referenced, its compiled tree.
type aliasEntry struct {
	definition string
	tree       *ValDef
	compiling  bool
}

// NewRegistry creates an empty registry resolving keywords through
// keywords.
func NewRegistry(keywords KeywordLookup) *Registry {
	return &Registry{
		types:    make(map[string]*TypeRecord),
		aliases:  make(map[string]*aliasEntry),
		keywords: keywords,
	}
}

// RegisterType registers a data type under name (without the angle
// brackets), to be referenced as <name>.
func (r *Registry) RegisterType(name string, parse ValueParser) (*TypeRecord, error) {
	if _, ok := r.types[name]; ok {
		return nil, fmt.Errorf("type <%s>: %w", name, ErrDuplicate)
	}
	rec := &TypeRecord{Name: name, Parse: parse}
	r.types[name] = rec
	return rec, nil
}

// Type returns the record registered under name.
func (r *Registry) Type(name string) (*TypeRecord, bool) {
	rec, ok := r.types[name]
	return rec, ok
}

// RegisterAlias registers alias as a shorthand for a definition text,
// e.g. RegisterAlias("shadow", "<length>{2,4} && <color>?"). A reference
// <alias> then expands to the compiled definition. Alias spellings must
// not shadow registered keywords or types.
func (r *Registry) RegisterAlias(alias string, definition string) error {
	if _, ok := r.keywords.KeywordKey(alias); ok {
		return fmt.Errorf("alias %q shadows a keyword: %w", alias, ErrDuplicate)
	}
	if _, ok := r.types[alias]; ok {
		return fmt.Errorf("alias %q shadows a type: %w", alias, ErrDuplicate)
	}
	if _, ok := r.aliases[alias]; ok {
		return fmt.Errorf("alias %q: %w", alias, ErrDuplicate)
	}
	r.aliases[alias] = &aliasEntry{definition: definition}
	return nil
}

// ResolveAlias returns the definition text behind an alias.
func (r *Registry) ResolveAlias(alias string) (string, bool) {
	entry, ok := r.aliases[alias]
	if !ok {
		return "", false
	}
	return entry.definition, true
}

// resolveAliasTree compiles the alias definition on first use and hands
// out clones of the cached tree.
func (r *Registry) resolveAliasTree(alias string) (*ValDef, error) {
	entry, ok := r.aliases[alias]
	if !ok {
		return nil, fmt.Errorf("alias %q: %w", alias, ErrNotFound)
	}
	if entry.tree == nil {
		if entry.compiling {
			return nil, fmt.Errorf("alias %q: %w: definition refers to itself", alias, ErrSyntax)
		}
		entry.compiling = true
		tree, err := r.Compile(entry.definition)
		entry.compiling = false
		if err != nil {
			return nil, fmt.Errorf("alias %q: %v", alias, err)
		}
		entry.tree = tree
	}
	return entry.tree.Clone(), nil
}
