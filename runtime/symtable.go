package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// Symbol table for variables.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with grammars:
// Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used during
// runtime of the calculator program.
//
type Tag struct {
	name  string
	Value int64
}

// NewTag creates a new tag with value 0.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%d>", s.name, s.Value)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
// Tags are kept sorted by name.
type SymbolTable struct {
	table *treemap.Map // string -> *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	if tag, found := t.table.Get(tagname); found {
		return tag.(*Tag)
	}
	return nil
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	tag := NewTag(tagname)
	t.table.Put(tagname, tag)
	return tag, false
}

// Get returns the value of a variable. Variables never assigned have value 0.
func (t *SymbolTable) Get(name string) int64 {
	v, _ := t.Lookup(name)
	return v
}

// Lookup returns the value of a variable and a flag, telling if the
// variable has been assigned before.
func (t *SymbolTable) Lookup(name string) (int64, bool) {
	if tag := t.ResolveTag(name); tag != nil {
		return tag.Value, true
	}
	return 0, false
}

// Set assigns a value to a variable, overwriting any previous value.
func (t *SymbolTable) Set(name string, value int64) {
	tag, _ := t.ResolveOrDefineTag(name)
	tag.Value = value
	tracer().P("var", name).Debugf("set to %d", value)
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return t.table.Size()
}

// Each iterates over each tag in the table, in order of names,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	t.table.Each(func(k interface{}, v interface{}) {
		mapper(k.(string), v.(*Tag))
	})
}
