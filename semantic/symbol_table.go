package semantic

import (
	"maps"
	"slices"
)

// Type is the inferred type of an expression or variable.
type Type string

// TypeNumber is the only type of the language.
const TypeNumber Type = "number"

// SymbolTable maps variable names to their inferred type. It lives for the
// whole session: entries are overwritten on reassignment and only removed by
// Reset.
type SymbolTable struct {
	store map[string]Type
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		store: make(map[string]Type),
	}
}

// Define records (or overwrites) the type of name.
func (s *SymbolTable) Define(name string, typ Type) {
	s.store[name] = typ
}

func (s *SymbolTable) Lookup(name string) (Type, bool) {
	typ, ok := s.store[name]
	return typ, ok
}

func (s *SymbolTable) IsDefined(name string) bool {
	_, ok := s.store[name]
	return ok
}

// Names returns the defined variable names in lexical order.
func (s *SymbolTable) Names() []string {
	return slices.Sorted(maps.Keys(s.store))
}

func (s *SymbolTable) Len() int { return len(s.store) }

// Clone returns an independent copy of the table.
func (s *SymbolTable) Clone() *SymbolTable {
	return &SymbolTable{store: maps.Clone(s.store)}
}

// Reset removes every entry.
func (s *SymbolTable) Reset() {
	clear(s.store)
}

// Restore makes s hold the entries of snapshot, typically a Clone taken
// earlier. snapshot must not be used afterwards.
func (s *SymbolTable) Restore(snapshot *SymbolTable) {
	s.store = snapshot.store
}
