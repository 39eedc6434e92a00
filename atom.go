package camomile

import (
	"strconv"
	"strings"
)

// AtomType tells whether an atom holds a number or a symbol.
type AtomType uint8

const (
	// AtomFloat is a numeric atom.
	AtomFloat AtomType = iota
	// AtomSymbol is a symbolic atom.
	AtomSymbol
)

// Atom is one element of a message: a float or a symbol.
type Atom struct {
	Type   AtomType
	Float  float64
	Symbol string
}

// FloatAtom returns a numeric atom.
func FloatAtom(v float64) Atom {
	return Atom{Type: AtomFloat, Float: v}
}

// SymbolAtom returns a symbolic atom.
func SymbolAtom(s string) Atom {
	return Atom{Type: AtomSymbol, Symbol: s}
}

// IsFloat reports whether the atom is numeric.
func (a Atom) IsFloat() bool {
	return a.Type == AtomFloat
}

// String formats the atom the way it would appear in a patch.
func (a Atom) String() string {
	if a.Type == AtomFloat {
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	}
	return a.Symbol
}

// ParseAtoms converts whitespace-separated words into atoms. Words that parse
// as numbers become floats, everything else becomes a symbol.
func ParseAtoms(words []string) []Atom {
	atoms := make([]Atom, 0, len(words))
	for _, w := range words {
		if v, err := strconv.ParseFloat(w, 64); err == nil {
			atoms = append(atoms, FloatAtom(v))
			continue
		}
		atoms = append(atoms, SymbolAtom(w))
	}
	return atoms
}

// ParseMessage splits a textual message such as "range 0 1000" into its
// selector and arguments. A message starting with a number gets the "float"
// selector, and an empty message is a "bang".
func ParseMessage(line string) (selector string, args []Atom) {
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
	if len(fields) == 0 {
		return selectorBang, nil
	}
	atoms := ParseAtoms(fields)
	if atoms[0].IsFloat() {
		return selectorFloat, atoms
	}
	return atoms[0].Symbol, atoms[1:]
}
