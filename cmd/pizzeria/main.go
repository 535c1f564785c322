package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pizzeria/internal/config"
	"pizzeria/internal/service"
	"pizzeria/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting pizzeria demo")

	// Stop taking new orders on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	orderService := service.NewOrderService(store.DefaultRegistry(), logger)
	celebrityService := service.NewCelebrityService(logger)

	menu, err := orderService.Menu()
	if err != nil {
		return fmt.Errorf("failed to build menu: %w", err)
	}
	for _, region := range orderService.Regions() {
		logger.Info().
			Str("region", string(region)).
			Str("dough", menu[region].String()).
			Msg("store open")
	}

	dough, overrideDough, err := cfg.Demo.DoughOverride()
	if err != nil {
		return err
	}

	for _, region := range cfg.Demo.Regions {
		pizza, err := orderService.OrderPizza(ctx, region, cfg.Demo.Toppings)
		if err != nil {
			return fmt.Errorf("failed to order from %s: %w", region, err)
		}
		if overrideDough {
			pizza.SetDough(dough)
		}

		fmt.Printf("%s: %s crust with %v (%s)\n", region, pizza.Dough(), pizza.Toppings(), pizza.Status())
	}

	var celebrities []string
	switch cfg.Demo.Celebrity {
	case "":
	case config.AllCelebrities:
		for _, kind := range celebrityService.Roster() {
			celebrities = append(celebrities, kind.String())
		}
	default:
		celebrities = []string{cfg.Demo.Celebrity}
	}

	for _, name := range celebrities {
		phrase, err := celebrityService.Introduce(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to introduce celebrity: %w", err)
		}

		fmt.Printf("%s says %q\n", name, phrase)
	}

	logger.Info().Msg("pizzeria demo completed")

	return nil
}
