// Package celebrity is a simple factory: one place that knows every
// Celebrity implementation and builds them by Kind.
package celebrity

import (
	"fmt"
	"sort"
	"strings"

	"pizzeria/internal/model"
)

// Kind identifies a celebrity implementation.
type Kind int

const (
	MrBeast Kind = iota
	PewDiePie
	Markiplier
)

var kindNames = map[Kind]string{
	MrBeast:    "mrbeast",
	PewDiePie:  "pewdiepie",
	Markiplier: "markiplier",
}

// String returns the lower-case celebrity name ParseKind accepts.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a celebrity name to its Kind.
func ParseKind(s string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("celebrity %q: %w", s, model.ErrUnrecognizedVariant)
}

// Celebrity is anything the factory can produce.
type Celebrity interface {
	// CatchPhrase is a vacuous string of words that appeals to the widest audience.
	CatchPhrase() string

	// Dazzle performs for the audience. Implementations may do nothing.
	Dazzle() error
}

// Earner is implemented by celebrities that report their earnings.
type Earner interface {
	Money() int
}

// Money reports c's earnings, or model.ErrUnimplementedCapability when c
// does not track them.
func Money(c Celebrity) (int, error) {
	earner, ok := c.(Earner)
	if !ok {
		return 0, fmt.Errorf("%T money: %w", c, model.ErrUnimplementedCapability)
	}
	return earner.Money(), nil
}

type mrBeast struct{}

func (mrBeast) CatchPhrase() string { return "Roar!" }
func (mrBeast) Dazzle() error       { return nil }
func (mrBeast) Money() int          { return 100 }

type pewDiePie struct{}

func (pewDiePie) CatchPhrase() string { return "Woof!" }
func (pewDiePie) Dazzle() error       { return nil }

type markiplier struct{}

func (markiplier) CatchPhrase() string { return "Meow!" }
func (markiplier) Dazzle() error       { return nil }

var constructors = map[Kind]func() Celebrity{
	MrBeast:    func() Celebrity { return &mrBeast{} },
	PewDiePie:  func() Celebrity { return &pewDiePie{} },
	Markiplier: func() Celebrity { return &markiplier{} },
}

// Create builds the celebrity registered for kind.
func Create(kind Kind) (Celebrity, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("celebrity kind %d: %w", int(kind), model.ErrUnrecognizedVariant)
	}
	return ctor(), nil
}

// Kinds lists every kind Create accepts, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
