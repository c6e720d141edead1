package service

import (
	"context"
	"errors"
	"fmt"

	"shiddaha/internal/modules/profile/domain"
	profileout "shiddaha/internal/modules/profile/port/out"
	"shiddaha/internal/platform/clock"
	apperrors "shiddaha/internal/platform/errors"
)

// ProfileService applies ledger operations to the stored profile snapshot.
// The store is the committed truth: every mutation loads the snapshot,
// applies a pure domain operation, and saves the result. A failed save
// leaves the stored profile at its pre-operation value.
type ProfileService struct {
	clock clock.Clock
	store profileout.Store
}

func NewProfileService(clock clock.Clock, store profileout.Store) *ProfileService {
	return &ProfileService{clock: clock, store: store}
}

func (s *ProfileService) Create(ctx context.Context, characterID, name string) (domain.Profile, error) {
	_, err := s.store.Load(ctx)
	if err == nil {
		return domain.Profile{}, apperrors.ErrProfileExists
	}
	if !errors.Is(err, apperrors.ErrNoProfile) {
		return domain.Profile{}, err
	}
	profile, err := domain.New(characterID, name, s.clock.Now())
	if err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context) (domain.Profile, error) {
	return s.store.Load(ctx)
}

func (s *ProfileService) Credit(ctx context.Context, minutes int) (domain.Profile, error) {
	return s.apply(ctx, func(p domain.Profile) (domain.Profile, error) {
		return p.Credit(minutes)
	})
}

func (s *ProfileService) Buy(ctx context.Context, itemID string, price int, category string) (domain.Profile, error) {
	return s.apply(ctx, func(p domain.Profile) (domain.Profile, error) {
		switch category {
		case domain.CategoryTents:
			next, err := p.BuyTent(itemID, price)
			if err != nil {
				return domain.Profile{}, err
			}
			// Buying a tent equips it right away.
			return next.SelectTent(itemID)
		case domain.CategoryCharacters:
			return p.BuyCharacter(itemID, price)
		default:
			return domain.Profile{}, fmt.Errorf("%w: category %s", apperrors.ErrUnknownItem, category)
		}
	})
}

func (s *ProfileService) SelectTent(ctx context.Context, tentID string) (domain.Profile, error) {
	return s.apply(ctx, func(p domain.Profile) (domain.Profile, error) {
		return p.SelectTent(tentID)
	})
}

func (s *ProfileService) SelectCharacter(ctx context.Context, characterID string) (domain.Profile, error) {
	return s.apply(ctx, func(p domain.Profile) (domain.Profile, error) {
		return p.SelectCharacter(characterID)
	})
}

func (s *ProfileService) Delete(ctx context.Context) error {
	return s.store.Delete(ctx)
}

func (s *ProfileService) apply(ctx context.Context, op func(domain.Profile) (domain.Profile, error)) (domain.Profile, error) {
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	next, err := op(current)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := next.Validate(); err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Profile{}, err
	}
	return next, nil
}
