package service

import (
	"context"
	"fmt"

	"pizzeria/internal/model"
	"pizzeria/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	registry Registry
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(registry Registry, logger zerolog.Logger) OrderService {
	return &orderService{
		registry: registry,
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// OrderPizza orders a pizza with the given toppings from the store of region.
// A cancelled context is rejected up front; once started, an order runs to completion.
func (s *orderService) OrderPizza(ctx context.Context, region string, toppings []string) (model.Pizza, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orderID := uuid.New()
	logger := s.logger.With().Str("order_id", orderID.String()).Logger()

	creator, err := s.registry.Lookup(store.ParseRegion(region))
	if err != nil {
		logger.Warn().
			Err(err).
			Str("region", region).
			Str("code", model.CodeOf(err)).
			Msg("unknown region")
		return nil, err
	}

	// The store adds the region to every line it logs.
	st := store.New(store.ParseRegion(region), creator, logger)

	pizza, err := st.OrderPizza(toppings)
	if err != nil {
		return nil, fmt.Errorf("failed to order pizza: %w", err)
	}

	logger.Info().
		Str("region", string(st.Region())).
		Str("pizza_id", pizza.ID().String()).
		Str("dough", pizza.Dough().String()).
		Int("topping_count", len(toppings)).
		Msg("order completed successfully")

	return pizza, nil
}

// Regions lists the regions pizzas can be ordered from.
func (s *orderService) Regions() []store.Region {
	return s.registry.Regions()
}

// Menu reports the default dough of every region.
func (s *orderService) Menu() (map[store.Region]model.DoughType, error) {
	regions := s.registry.Regions()
	menu := make(map[store.Region]model.DoughType, len(regions))

	for _, region := range regions {
		creator, err := s.registry.Lookup(region)
		if err != nil {
			return nil, err
		}

		sample, err := store.Create(creator, nil)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("region", string(region)).
				Str("code", model.CodeOf(err)).
				Msg("creator returned no pizza")
			return nil, fmt.Errorf("region %q: %w", region, err)
		}
		menu[region] = sample.Dough()
	}

	return menu, nil
}
