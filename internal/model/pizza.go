package model

import (
	"github.com/google/uuid"
)

// Status tracks how far a pizza has moved through the kitchen.
type Status string

const (
	StatusCreated Status = "created"
	StatusBaked   Status = "baked"
	StatusCut     Status = "cut"
	StatusBoxed   Status = "boxed"
)

// Pizza is the product every store creates.
type Pizza interface {
	ID() uuid.UUID
	Toppings() []string
	Dough() DoughType
	SetDough(d DoughType)
	Seasonings() string
	SetSeasonings(s string)
	SauceType() string
	SetSauceType(s string)
	Status() Status

	Bake()
	Cut()
	Box()
}

// BasePizza holds the state shared by every pizza family.
// Concrete families embed it and preset their dough.
type BasePizza struct {
	id         uuid.UUID
	toppings   []string
	dough      DoughType
	seasonings string
	sauceType  string
	status     Status
}

func newBasePizza(ingredients []string, dough DoughType) BasePizza {
	toppings := make([]string, len(ingredients))
	copy(toppings, ingredients)

	return BasePizza{
		id:       uuid.New(),
		toppings: toppings,
		dough:    dough,
		status:   StatusCreated,
	}
}

func (p *BasePizza) ID() uuid.UUID { return p.id }

// Toppings returns a copy so callers cannot alter the pizza's toppings.
func (p *BasePizza) Toppings() []string {
	out := make([]string, len(p.toppings))
	copy(out, p.toppings)
	return out
}

func (p *BasePizza) Dough() DoughType       { return p.dough }
func (p *BasePizza) SetDough(d DoughType)   { p.dough = d }
func (p *BasePizza) Seasonings() string     { return p.seasonings }
func (p *BasePizza) SetSeasonings(s string) { p.seasonings = s }
func (p *BasePizza) SauceType() string      { return p.sauceType }
func (p *BasePizza) SetSauceType(s string)  { p.sauceType = s }
func (p *BasePizza) Status() Status         { return p.status }

func (p *BasePizza) Bake() { p.status = StatusBaked }
func (p *BasePizza) Cut()  { p.status = StatusCut }
func (p *BasePizza) Box()  { p.status = StatusBoxed }

// NewYorkPizza is a thin crust pizza.
type NewYorkPizza struct {
	BasePizza
}

// NewNewYorkPizza creates a New York pizza with the given toppings.
func NewNewYorkPizza(ingredients []string) *NewYorkPizza {
	return &NewYorkPizza{BasePizza: newBasePizza(ingredients, DoughThin)}
}

// ChicagoPizza is a pan pizza.
type ChicagoPizza struct {
	BasePizza
}

// NewChicagoPizza creates a Chicago pizza with the given toppings.
func NewChicagoPizza(ingredients []string) *ChicagoPizza {
	return &ChicagoPizza{BasePizza: newBasePizza(ingredients, DoughPan)}
}

// CaliforniaPizza leaves the dough unspecified.
type CaliforniaPizza struct {
	BasePizza
}

// NewCaliforniaPizza creates a California pizza with the given toppings.
func NewCaliforniaPizza(ingredients []string) *CaliforniaPizza {
	return &CaliforniaPizza{BasePizza: newBasePizza(ingredients, DoughNone)}
}
