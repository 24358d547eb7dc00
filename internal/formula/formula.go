// Package formula is a small catalog of named Machin-like pi formulas,
// loaded once from an embedded TOML file, so the CLI can offer
// --formula NAME as an alternative to spelling out multiplier/argument
// pairs by hand.
package formula

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"

	"github.com/GBuella/pi-arccot/internal/arccot"
)

//go:embed formulas.toml
var catalogFS embed.FS

// TermSpec is one multiplier/argument pair as stored in formulas.toml.
type TermSpec struct {
	Mult int64  `toml:"mult"`
	Arg  uint32 `toml:"arg"`
}

// Spec is one named formula.
type Spec struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Scale       uint32     `toml:"scale"`
	Terms       []TermSpec `toml:"terms"`
}

// ArccotTerms converts Spec's term specs into arccot.Terms.
func (s Spec) ArccotTerms() []arccot.Term {
	terms := make([]arccot.Term, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = arccot.Term{Mult: t.Mult, Arg: t.Arg}
	}
	return terms
}

type catalog struct {
	Formula []Spec `toml:"formula"`
}

var byName map[string]Spec

func init() {
	data, err := catalogFS.ReadFile("formulas.toml")
	if err != nil {
		panic(fmt.Sprintf("formula: reading embedded catalog: %v", err))
	}
	var c catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		panic(fmt.Sprintf("formula: decoding embedded catalog: %v", err))
	}
	byName = make(map[string]Spec, len(c.Formula))
	for _, f := range c.Formula {
		byName[f.Name] = f
	}
}

// Lookup returns the named formula and whether it was found.
func Lookup(name string) (Spec, bool) {
	s, ok := byName[name]
	return s, ok
}

// Names returns every registered formula name, sorted for a
// deterministic --list-formulas listing.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default is the built-in Stormer-style formula used when the CLI is
// invoked with no arguments at all.
const Default = "default"
