package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "shiddaha/internal/platform/errors"
)

// Items every profile owns from creation. The default tent is equipped until
// another one is bought and selected.
const DefaultTentID = "tent"

var DefaultCharacterIDs = []string{"char_boy", "char_girl"}

// Store categories, as the shop names them on purchase requests.
const (
	CategoryTents      = "tents"
	CategoryCharacters = "characters"
)

// Profile is the single persisted user record: identity, dates balance, and
// cosmetic ownership. Ledger operations are pure: they take a snapshot by
// value and return the updated copy, leaving the receiver untouched. Nothing
// is committed until the caller persists the returned snapshot.
type Profile struct {
	CharacterImageID    string    `json:"character_image_id"`
	CharacterName       string    `json:"character_name"`
	Currency            int       `json:"currency"`
	TotalMinutesStudied int       `json:"total_minutes_studied"`
	CreatedAt           time.Time `json:"created_at"`
	SelectedTentID      string    `json:"selected_tent_id"`
	OwnedTentIDs        []string  `json:"owned_tent_ids"`
	OwnedCharacterIDs   []string  `json:"owned_character_ids"`
}

// New creates a profile equipped with the chosen default character and the
// default tent. The name is trimmed; an empty result is rejected.
func New(characterID, name string, now time.Time) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, apperrors.ErrInvalidName
	}
	if !slices.Contains(DefaultCharacterIDs, characterID) {
		return Profile{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidCharacter, characterID)
	}
	return Profile{
		CharacterImageID:  characterID,
		CharacterName:     name,
		CreatedAt:         now,
		SelectedTentID:    DefaultTentID,
		OwnedTentIDs:      []string{DefaultTentID},
		OwnedCharacterIDs: slices.Clone(DefaultCharacterIDs),
	}, nil
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.CharacterName) == "" {
		return apperrors.ErrInvalidName
	}
	if p.Currency < 0 {
		return fmt.Errorf("currency must be non-negative, got %d", p.Currency)
	}
	if p.TotalMinutesStudied < 0 {
		return fmt.Errorf("total minutes must be non-negative, got %d", p.TotalMinutesStudied)
	}
	if len(p.OwnedTentIDs) == 0 || len(p.OwnedCharacterIDs) == 0 {
		return fmt.Errorf("owned sets must not be empty")
	}
	if !slices.Contains(p.OwnedTentIDs, p.SelectedTentID) {
		return fmt.Errorf("selected tent %q is not owned", p.SelectedTentID)
	}
	if !slices.Contains(p.OwnedCharacterIDs, p.CharacterImageID) {
		return fmt.Errorf("equipped character %q is not owned", p.CharacterImageID)
	}
	return nil
}

func (p Profile) OwnsTent(id string) bool {
	return slices.Contains(p.OwnedTentIDs, id)
}

func (p Profile) OwnsCharacter(id string) bool {
	return slices.Contains(p.OwnedCharacterIDs, id)
}

// Credit applies a completed focus session: one date per minute, and the
// lifetime minute counter advances by the same amount.
func (p Profile) Credit(minutes int) (Profile, error) {
	if minutes <= 0 {
		return Profile{}, fmt.Errorf("%w: %d minutes", apperrors.ErrInvalidDuration, minutes)
	}
	out := p.clone()
	out.Currency += minutes
	out.TotalMinutesStudied += minutes
	return out, nil
}

// BuyTent deducts price and adds the tent to the owned set. Owning the tent
// already or lacking the funds rejects the purchase with no change.
func (p Profile) BuyTent(id string, price int) (Profile, error) {
	if p.OwnsTent(id) {
		return Profile{}, fmt.Errorf("%w: %s", apperrors.ErrAlreadyOwned, id)
	}
	out, err := p.spend(price)
	if err != nil {
		return Profile{}, err
	}
	out.OwnedTentIDs = append(out.OwnedTentIDs, id)
	return out, nil
}

func (p Profile) BuyCharacter(id string, price int) (Profile, error) {
	if p.OwnsCharacter(id) {
		return Profile{}, fmt.Errorf("%w: %s", apperrors.ErrAlreadyOwned, id)
	}
	out, err := p.spend(price)
	if err != nil {
		return Profile{}, err
	}
	out.OwnedCharacterIDs = append(out.OwnedCharacterIDs, id)
	return out, nil
}

// SelectTent equips an owned tent.
func (p Profile) SelectTent(id string) (Profile, error) {
	if !p.OwnsTent(id) {
		return Profile{}, fmt.Errorf("%w: tent %s", apperrors.ErrNotOwned, id)
	}
	out := p.clone()
	out.SelectedTentID = id
	return out, nil
}

// SelectCharacter equips an owned character. The equipped character is the
// active identity; there is no separate selected-character field.
func (p Profile) SelectCharacter(id string) (Profile, error) {
	if !p.OwnsCharacter(id) {
		return Profile{}, fmt.Errorf("%w: character %s", apperrors.ErrNotOwned, id)
	}
	out := p.clone()
	out.CharacterImageID = id
	return out, nil
}

func (p Profile) spend(price int) (Profile, error) {
	if price < 0 {
		return Profile{}, fmt.Errorf("price must be non-negative, got %d", price)
	}
	if p.Currency < price {
		return Profile{}, fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientFunds, p.Currency, price)
	}
	out := p.clone()
	out.Currency -= price
	return out, nil
}

func (p Profile) clone() Profile {
	out := p
	out.OwnedTentIDs = slices.Clone(p.OwnedTentIDs)
	out.OwnedCharacterIDs = slices.Clone(p.OwnedCharacterIDs)
	return out
}
