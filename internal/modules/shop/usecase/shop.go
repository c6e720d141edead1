package usecase

import (
	"context"

	profiledto "shiddaha/internal/modules/profile/dto"
	profilein "shiddaha/internal/modules/profile/port/in"
	"shiddaha/internal/modules/shop/domain"
	"shiddaha/internal/modules/shop/dto"
	shopin "shiddaha/internal/modules/shop/port/in"
	"shiddaha/internal/modules/shop/service"
)

// Interactor resolves catalog items against the profile and routes purchases
// and selections through the profile ledger. The ledger itself rejects
// already-owned purchases and unaffordable prices; nothing here mutates
// state directly.
type Interactor struct {
	svc     *service.ShopService
	profile profilein.Usecase
}

func NewInteractor(svc *service.ShopService, profile profilein.Usecase) shopin.Usecase {
	return &Interactor{svc: svc, profile: profile}
}

// List returns the catalog, filtered by category when one is given, with
// Owned/Selected flags from the current profile.
func (i *Interactor) List(ctx context.Context, category string) ([]dto.ItemView, error) {
	items, err := i.svc.Items(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := i.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.ItemView, 0, len(items))
	for _, item := range items {
		if category != "" && string(item.Category) != category {
			continue
		}
		views = append(views, toView(item, profile))
	}
	return views, nil
}

func (i *Interactor) Buy(ctx context.Context, itemID string) (dto.PurchaseOutput, error) {
	item, err := i.svc.Find(ctx, itemID)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	profile, err := i.profile.Purchase(ctx, profiledto.PurchaseInput{
		ItemID:   item.ID,
		Price:    item.Price,
		Category: string(item.Category),
	})
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return dto.PurchaseOutput{Item: toView(item, profile), Currency: profile.Currency}, nil
}

func (i *Interactor) Select(ctx context.Context, itemID string) (dto.ItemView, error) {
	item, err := i.svc.Find(ctx, itemID)
	if err != nil {
		return dto.ItemView{}, err
	}
	var profile profiledto.ProfileOutput
	if item.Category == domain.CategoryTents {
		profile, err = i.profile.SelectTent(ctx, item.ID)
	} else {
		profile, err = i.profile.SelectCharacter(ctx, item.ID)
	}
	if err != nil {
		return dto.ItemView{}, err
	}
	return toView(item, profile), nil
}

func toView(item domain.Item, profile profiledto.ProfileOutput) dto.ItemView {
	view := dto.ItemView{
		ID:       item.ID,
		ImageID:  item.ImageID,
		Price:    item.Price,
		Category: string(item.Category),
	}
	switch item.Category {
	case domain.CategoryTents:
		for _, id := range profile.OwnedTentIDs {
			if id == item.ID {
				view.Owned = true
			}
		}
		view.Selected = profile.SelectedTentID == item.ID
	case domain.CategoryCharacters:
		for _, id := range profile.OwnedCharacterIDs {
			if id == item.ID {
				view.Owned = true
			}
		}
		view.Selected = profile.CharacterImageID == item.ID
	}
	return view
}
