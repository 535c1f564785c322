package service

import (
	"context"

	"pizzeria/internal/celebrity"
	"pizzeria/internal/model"
	"pizzeria/internal/store"
)

// Registry resolves a region to the creator of its pizza family.
type Registry interface {
	// Lookup returns the creator for region or an ErrUnrecognizedVariant error.
	Lookup(region store.Region) (store.Creator, error)

	// Regions lists every registered region.
	Regions() []store.Region
}

// OrderService defines operations for ordering pizzas.
type OrderService interface {
	// OrderPizza orders a pizza with the given toppings from the store of region.
	OrderPizza(ctx context.Context, region string, toppings []string) (model.Pizza, error)

	// Regions lists the regions pizzas can be ordered from.
	Regions() []store.Region

	// Menu reports the default dough of every region.
	Menu() (map[store.Region]model.DoughType, error)
}

// CelebrityService defines operations on the celebrity factory.
type CelebrityService interface {
	// Introduce creates the named celebrity, lets it dazzle and returns its catch phrase.
	Introduce(ctx context.Context, name string) (string, error)

	// Roster lists every celebrity the factory can create.
	Roster() []celebrity.Kind
}
