package kaskade

import (
	"errors"
	"fmt"

	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/kaskade/style/valdef"
)

// Errors flagged by the registries.
var (
	ErrDuplicate = errors.New("already registered")
	ErrNotFound  = errors.New("not registered")
)

// keywordEntry pairs a keyword identifier with its canonical spelling.
type keywordEntry struct {
	key  int
	name string
}

// PropertyDefinition describes one registered property: its dense key,
// its name, the compiled shape of its values and the initial value.
type PropertyDefinition struct {
	Key     int
	Name    string
	Syntax  *valdef.ValDef
	Initial style.Value
}

// Library is one complete style engine instance: the keyword and
// property registries, the value-type registry, the style-rule index and
// the computed-style cache. Libraries are independent of each other;
// most hosts use the package-level default.
type Library struct {
	keywords     map[string]*keywordEntry
	keywordNames map[int]*keywordEntry
	properties   []*PropertyDefinition
	propertyMap  map[string]*PropertyDefinition
	types        *valdef.Registry
	groups       []map[string]*linkGroup
	cache        map[uint32]*style.Declaration
	origins      stringPool
}

// NewLibrary creates a style library with the built-in keywords, value
// types, type aliases and properties registered.
func NewLibrary() *Library {
	lib := NewEmptyLibrary()
	lib.registerBuiltinKeywords()
	if err := lib.types.RegisterBuiltinTypes(); err != nil {
		panic(err) // a fresh type registry cannot collide
	}
	lib.registerBuiltinAliases()
	lib.registerBuiltinProperties()
	return lib
}

// NewEmptyLibrary creates a style library without any registrations,
// mainly useful for tests and for hosts with a fully custom property
// set.
func NewEmptyLibrary() *Library {
	lib := &Library{
		keywords:     make(map[string]*keywordEntry),
		keywordNames: make(map[int]*keywordEntry),
		propertyMap:  make(map[string]*PropertyDefinition),
		cache:        make(map[uint32]*style.Declaration),
	}
	lib.types = valdef.NewRegistry(lib)
	return lib
}

// Close tears the library down. Using a closed library is undefined.
func (lib *Library) Close() {
	lib.keywords = nil
	lib.keywordNames = nil
	lib.properties = nil
	lib.propertyMap = nil
	lib.types = nil
	lib.groups = nil
	lib.cache = nil
	lib.origins.drop()
}

// --- Keyword registry ------------------------------------------------------

// RegisterKeyword registers a keyword under an identifier. Registration
// fails if either the identifier or the spelling is already taken.
func (lib *Library) RegisterKeyword(id int, name string) error {
	if _, ok := lib.keywords[name]; ok {
		return fmt.Errorf("keyword %q: %w", name, ErrDuplicate)
	}
	if _, ok := lib.keywordNames[id]; ok {
		return fmt.Errorf("keyword id %d: %w", id, ErrDuplicate)
	}
	entry := &keywordEntry{key: id, name: name}
	lib.keywords[name] = entry
	lib.keywordNames[id] = entry
	return nil
}

// KeywordKey resolves a keyword spelling to its identifier.
func (lib *Library) KeywordKey(name string) (int, bool) {
	entry, ok := lib.keywords[name]
	if !ok {
		return -1, false
	}
	return entry.key, true
}

// KeywordName resolves a keyword identifier to its spelling.
func (lib *Library) KeywordName(id int) (string, bool) {
	entry, ok := lib.keywordNames[id]
	if !ok {
		return "", false
	}
	return entry.name, true
}

// --- Property registry -----------------------------------------------------

// RegisterProperty registers a property under the next free key and
// returns the key. The syntax text is compiled; a syntax error aborts
// the registration. The initial value text is parsed against the
// compiled syntax; if it does not parse, the property's initial value is
// the invalid value.
func (lib *Library) RegisterProperty(name, syntax, initial string) (int, error) {
	key := len(lib.properties)
	if err := lib.RegisterPropertyWithKey(key, name, syntax, initial); err != nil {
		return -1, err
	}
	return key, nil
}

// RegisterPropertyWithKey registers a property under a caller-chosen
// key, growing the key space as needed. Used for the built-in property
// set, whose keys are fixed constants.
func (lib *Library) RegisterPropertyWithKey(key int, name, syntax, initial string) error {
	if key < 0 {
		return fmt.Errorf("property %q: negative key", name)
	}
	if _, ok := lib.propertyMap[name]; ok {
		return fmt.Errorf("property %q: %w", name, ErrDuplicate)
	}
	if key < len(lib.properties) && lib.properties[key] != nil {
		return fmt.Errorf("property key %d: %w", key, ErrDuplicate)
	}
	tree, err := lib.types.Compile(syntax)
	if err != nil {
		return fmt.Errorf("property %q: %v", name, err)
	}
	initialValue, err := valdef.Parse(tree, initial)
	if err != nil {
		tracer().Infof("property %q: initial value %q does not parse", name, initial)
		initialValue = style.Invalid()
	}
	for key >= len(lib.properties) {
		lib.properties = append(lib.properties, nil)
	}
	def := &PropertyDefinition{
		Key:     key,
		Name:    name,
		Syntax:  tree,
		Initial: initialValue,
	}
	lib.properties[key] = def
	lib.propertyMap[name] = def
	return nil
}

// Property returns the definition registered under a property name.
func (lib *Library) Property(name string) *PropertyDefinition {
	return lib.propertyMap[name]
}

// PropertyByKey returns the definition registered under a property key.
func (lib *Library) PropertyByKey(key int) *PropertyDefinition {
	if key < 0 || key >= len(lib.properties) {
		return nil
	}
	return lib.properties[key]
}

// PropertyCount returns the size of the key space, i.e. largest key + 1.
func (lib *Library) PropertyCount() int {
	return len(lib.properties)
}

// propertyName resolves a key for diagnostic output.
func (lib *Library) propertyName(key int) string {
	if def := lib.PropertyByKey(key); def != nil {
		return def.Name
	}
	return fmt.Sprintf("<unknown property %d>", key)
}

// --- Value types -----------------------------------------------------------

// Types exposes the value-type registry of the library.
func (lib *Library) Types() *valdef.Registry {
	return lib.types
}

// RegisterValueType registers a data type for use in value definitions.
func (lib *Library) RegisterValueType(name string, parse valdef.ValueParser) (*valdef.TypeRecord, error) {
	return lib.types.RegisterType(name, parse)
}

// RegisterValueTypeAlias registers alias as a shorthand for a definition
// text.
func (lib *Library) RegisterValueTypeAlias(alias, definition string) error {
	return lib.types.RegisterAlias(alias, definition)
}

// ResolveValueType returns the definition text behind an alias.
func (lib *Library) ResolveValueType(alias string) (string, bool) {
	return lib.types.ResolveAlias(alias)
}

// ParseValueFor parses value text against the registered syntax of the
// named property.
func (lib *Library) ParseValueFor(property, text string) (style.Value, error) {
	def := lib.Property(property)
	if def == nil {
		return style.Invalid(), fmt.Errorf("property %q: %w", property, ErrNotFound)
	}
	return valdef.Parse(def.Syntax, text)
}

// --- Default library -------------------------------------------------------

var defaultLibrary *Library

// Init sets up the package-level default library with all built-ins. A
// previous default library is torn down first.
func Init() {
	if defaultLibrary != nil {
		defaultLibrary.Close()
	}
	defaultLibrary = NewLibrary()
}

// Destroy tears down the package-level default library.
func Destroy() {
	if defaultLibrary != nil {
		defaultLibrary.Close()
		defaultLibrary = nil
	}
}

// Default returns the package-level default library, setting it up on
// first use.
func Default() *Library {
	if defaultLibrary == nil {
		Init()
	}
	return defaultLibrary
}
