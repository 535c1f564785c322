package service

import (
	"context"
	"fmt"

	"pizzeria/internal/celebrity"

	"github.com/rs/zerolog"
)

// celebrityService implements CelebrityService.
type celebrityService struct {
	create func(celebrity.Kind) (celebrity.Celebrity, error)
	logger zerolog.Logger
}

// NewCelebrityService creates a new celebrity service backed by celebrity.Create.
func NewCelebrityService(logger zerolog.Logger) CelebrityService {
	return &celebrityService{
		create: celebrity.Create,
		logger: logger.With().Str("service", "celebrity").Logger(),
	}
}

// Introduce creates the named celebrity, lets it dazzle and returns its catch phrase.
func (s *celebrityService) Introduce(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	kind, err := celebrity.ParseKind(name)
	if err != nil {
		s.logger.Warn().Str("celebrity", name).Err(err).Msg("unknown celebrity")
		return "", err
	}

	c, err := s.create(kind)
	if err != nil {
		s.logger.Error().Err(err).Str("celebrity", kind.String()).Msg("failed to create celebrity")
		return "", err
	}

	if err := c.Dazzle(); err != nil {
		s.logger.Error().Err(err).Str("celebrity", kind.String()).Msg("celebrity failed to dazzle")
		return "", fmt.Errorf("%s failed to dazzle: %w", kind, err)
	}

	event := s.logger.Info().Str("celebrity", kind.String())
	if money, err := celebrity.Money(c); err == nil {
		event = event.Int("money", money)
	}
	event.Msg("celebrity introduced")

	return c.CatchPhrase(), nil
}

// Roster lists every celebrity the factory can create.
func (s *celebrityService) Roster() []celebrity.Kind {
	return celebrity.Kinds()
}
