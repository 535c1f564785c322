package store

import (
	"github.com/rs/zerolog"

	"pizzeria/internal/model"
)

// Store binds a creator to a region and logs every order it takes.
// It keeps no per-order state, so one Store may serve concurrent callers.
type Store struct {
	region  Region
	creator Creator
	logger  zerolog.Logger
}

// New creates a store for region.
func New(region Region, creator Creator, logger zerolog.Logger) *Store {
	return &Store{
		region:  region,
		creator: creator,
		logger:  logger.With().Str("component", "store").Str("region", string(region)).Logger(),
	}
}

// Region returns the store's region.
func (s *Store) Region() Region {
	return s.region
}

// OrderPizza runs the ordering pipeline with the store's creator.
func (s *Store) OrderPizza(ingredients []string) (model.Pizza, error) {
	pizza, err := Order(s.creator, ingredients)
	if err != nil {
		s.logger.Error().Err(err).Int("topping_count", len(ingredients)).Msg("failed to order pizza")
		return nil, err
	}

	s.logger.Debug().
		Str("pizza_id", pizza.ID().String()).
		Str("dough", pizza.Dough().String()).
		Strs("toppings", pizza.Toppings()).
		Str("status", string(pizza.Status())).
		Msg("pizza ready")

	return pizza, nil
}
