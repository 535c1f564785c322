// Package store implements the pizza stores: a fixed ordering pipeline with a
// single family-specific creation step.
package store

import (
	"fmt"
	"reflect"

	"pizzeria/internal/model"
)

// Creator is the one step a store family supplies.
type Creator interface {
	// CreatePizza builds a new, unbaked pizza from the given toppings.
	CreatePizza(ingredients []string) model.Pizza
}

// CreatorFunc adapts a plain function to Creator.
type CreatorFunc func(ingredients []string) model.Pizza

// CreatePizza calls f(ingredients).
func (f CreatorFunc) CreatePizza(ingredients []string) model.Pizza {
	return f(ingredients)
}

// Order runs the ordering pipeline: create, bake, cut, box.
// The steps always run in this order and exactly once each.
func Order(creator Creator, ingredients []string) (model.Pizza, error) {
	pizza, err := Create(creator, ingredients)
	if err != nil {
		return nil, err
	}

	pizza.Bake()
	pizza.Cut()
	pizza.Box()

	return pizza, nil
}

// Create runs only the creation step. It fails with model.ErrInvalidProduct
// when there is no creator or the creator hands back no pizza.
func Create(creator Creator, ingredients []string) (model.Pizza, error) {
	if creator == nil {
		return nil, fmt.Errorf("no creator: %w", model.ErrInvalidProduct)
	}

	pizza := creator.CreatePizza(ingredients)
	if isNil(pizza) {
		return nil, fmt.Errorf("%T: %w", creator, model.ErrInvalidProduct)
	}
	return pizza, nil
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(p model.Pizza) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NewYorkCreator makes thin crust pizzas.
type NewYorkCreator struct{}

func (NewYorkCreator) CreatePizza(ingredients []string) model.Pizza {
	return model.NewNewYorkPizza(ingredients)
}

// ChicagoCreator makes pan pizzas.
type ChicagoCreator struct{}

func (ChicagoCreator) CreatePizza(ingredients []string) model.Pizza {
	return model.NewChicagoPizza(ingredients)
}

// CaliforniaCreator makes pizzas with no dough preset.
type CaliforniaCreator struct{}

func (CaliforniaCreator) CreatePizza(ingredients []string) model.Pizza {
	return model.NewCaliforniaPizza(ingredients)
}
