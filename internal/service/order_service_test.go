package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pizzeria/internal/model"
	"pizzeria/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRegistry is a mock implementation of Registry.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Lookup(region store.Region) (store.Creator, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Creator), args.Error(1)
}

func (m *MockRegistry) Regions() []store.Region {
	args := m.Called()
	return args.Get(0).([]store.Region)
}

// MockCreator is a mock implementation of store.Creator.
type MockCreator struct {
	mock.Mock
}

func (m *MockCreator) CreatePizza(ingredients []string) model.Pizza {
	args := m.Called(ingredients)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(model.Pizza)
}

func TestOrderService_OrderPizza_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	toppings := []string{"cheese", "pepperoni"}

	mockRegistry := new(MockRegistry)
	mockCreator := new(MockCreator)

	service := NewOrderService(mockRegistry, logger)

	mockRegistry.On("Lookup", store.Region("new-york")).Return(mockCreator, nil)
	mockCreator.On("CreatePizza", toppings).Return(model.NewNewYorkPizza(toppings))

	pizza, err := service.OrderPizza(ctx, "new-york", toppings)

	require.NoError(t, err)
	require.NotNil(t, pizza)
	assert.Equal(t, toppings, pizza.Toppings())
	assert.Equal(t, model.DoughThin, pizza.Dough())
	assert.Equal(t, model.StatusBoxed, pizza.Status())

	mockRegistry.AssertExpectations(t)
	mockCreator.AssertNumberOfCalls(t, "CreatePizza", 1)
}

func TestOrderService_OrderPizza_DefaultRegistry(t *testing.T) {
	service := NewOrderService(store.DefaultRegistry(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		region   string
		expected model.DoughType
	}{
		{region: "new-york", expected: model.DoughThin},
		{region: "chicago", expected: model.DoughPan},
		{region: "california", expected: model.DoughNone},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			pizza, err := service.OrderPizza(ctx, tt.region, []string{})

			require.NoError(t, err)
			assert.Empty(t, pizza.Toppings())
			assert.Equal(t, tt.expected, pizza.Dough())
		})
	}
}

func TestOrderService_OrderPizza_UnknownRegion(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRegistry := new(MockRegistry)
	service := NewOrderService(mockRegistry, logger)

	lookupErr := fmt.Errorf("region %q: %w", "atlantis", model.ErrUnrecognizedVariant)
	mockRegistry.On("Lookup", store.Region("atlantis")).Return(nil, lookupErr)

	pizza, err := service.OrderPizza(ctx, "atlantis", []string{"cheese"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnrecognizedVariant))
	assert.Nil(t, pizza)
	mockRegistry.AssertExpectations(t)
}

func TestOrderService_OrderPizza_CreatorReturnsNothing(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRegistry := new(MockRegistry)
	mockCreator := new(MockCreator)
	service := NewOrderService(mockRegistry, logger)

	mockRegistry.On("Lookup", store.Region("chicago")).Return(mockCreator, nil)
	mockCreator.On("CreatePizza", []string{"cheese"}).Return(nil)

	pizza, err := service.OrderPizza(ctx, "chicago", []string{"cheese"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidProduct))
	assert.Contains(t, err.Error(), "failed to order pizza")
	assert.Nil(t, pizza)
}

func TestOrderService_OrderPizza_CancelledContext(t *testing.T) {
	mockRegistry := new(MockRegistry)
	service := NewOrderService(mockRegistry, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pizza, err := service.OrderPizza(ctx, "new-york", []string{"cheese"})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, pizza)
	mockRegistry.AssertNotCalled(t, "Lookup", mock.Anything)
}

func TestOrderService_Regions(t *testing.T) {
	service := NewOrderService(store.DefaultRegistry(), zerolog.Nop())

	assert.Equal(t,
		[]store.Region{store.RegionCalifornia, store.RegionChicago, store.RegionNewYork},
		service.Regions(),
	)
}

func TestOrderService_Menu(t *testing.T) {
	service := NewOrderService(store.DefaultRegistry(), zerolog.Nop())

	menu, err := service.Menu()

	require.NoError(t, err)
	assert.Equal(t, map[store.Region]model.DoughType{
		store.RegionNewYork:    model.DoughThin,
		store.RegionChicago:    model.DoughPan,
		store.RegionCalifornia: model.DoughNone,
	}, menu)
}

func TestOrderService_Menu_BrokenCreator(t *testing.T) {
	tests := []struct {
		name    string
		created model.Pizza
	}{
		{
			name:    "Untyped nil",
			created: nil,
		},
		{
			name:    "Typed nil pointer",
			created: (*model.ChicagoPizza)(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := new(MockRegistry)
			service := NewOrderService(mockRegistry, zerolog.Nop())

			creator := store.CreatorFunc(func([]string) model.Pizza { return tt.created })
			mockRegistry.On("Regions").Return([]store.Region{"broken"})
			mockRegistry.On("Lookup", store.Region("broken")).Return(creator, nil)

			var (
				menu map[store.Region]model.DoughType
				err  error
			)
			require.NotPanics(t, func() { menu, err = service.Menu() })

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidProduct))
			assert.Nil(t, menu)
		})
	}
}

func TestOrderService_OrderPizza_LogsRegionOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	service := NewOrderService(store.DefaultRegistry(), logger)

	_, err := service.OrderPizza(context.Background(), " Chicago ", []string{"cheese"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, `"region":`), line)
		assert.Contains(t, line, `"region":"chicago"`)
		assert.Contains(t, line, `"order_id":`)
	}
}
