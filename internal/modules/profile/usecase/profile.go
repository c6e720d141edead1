package usecase

import (
	"context"

	"shiddaha/internal/modules/profile/domain"
	"shiddaha/internal/modules/profile/dto"
	profilein "shiddaha/internal/modules/profile/port/in"
	"shiddaha/internal/modules/profile/service"
	"shiddaha/internal/platform/log"
)

type Interactor struct {
	svc    *service.ProfileService
	events *log.Logger
}

func NewInteractor(svc *service.ProfileService, events *log.Logger) profilein.Usecase {
	return &Interactor{svc: svc, events: events}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Create(ctx, input.CharacterID, input.Name)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	_ = i.events.Append(log.Event{Event: log.EventProfileCreated, Name: profile.CharacterName, ItemID: profile.CharacterImageID})
	return toOutput(profile), nil
}

func (i *Interactor) Get(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Get(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Credit(ctx context.Context, minutes int) (dto.ProfileOutput, error) {
	profile, err := i.svc.Credit(ctx, minutes)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Purchase(ctx context.Context, input dto.PurchaseInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Buy(ctx, input.ItemID, input.Price, input.Category)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	_ = i.events.Append(log.Event{Event: log.EventPurchase, ItemID: input.ItemID, Price: input.Price})
	return toOutput(profile), nil
}

func (i *Interactor) SelectTent(ctx context.Context, tentID string) (dto.ProfileOutput, error) {
	profile, err := i.svc.SelectTent(ctx, tentID)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	_ = i.events.Append(log.Event{Event: log.EventItemSelected, ItemID: tentID})
	return toOutput(profile), nil
}

func (i *Interactor) SelectCharacter(ctx context.Context, characterID string) (dto.ProfileOutput, error) {
	profile, err := i.svc.SelectCharacter(ctx, characterID)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	_ = i.events.Append(log.Event{Event: log.EventItemSelected, ItemID: characterID})
	return toOutput(profile), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Delete(ctx)
}

func toOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		CharacterImageID:    p.CharacterImageID,
		CharacterName:       p.CharacterName,
		Currency:            p.Currency,
		TotalMinutesStudied: p.TotalMinutesStudied,
		CreatedAt:           p.CreatedAt,
		SelectedTentID:      p.SelectedTentID,
		OwnedTentIDs:        p.OwnedTentIDs,
		OwnedCharacterIDs:   p.OwnedCharacterIDs,
	}
}
