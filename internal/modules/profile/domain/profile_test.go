package domain_test

import (
	"errors"
	"testing"
	"time"

	"shiddaha/internal/modules/profile/domain"
	apperrors "shiddaha/internal/platform/errors"
)

var testNow = time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)

func newProfile(t *testing.T) domain.Profile {
	t.Helper()
	p, err := domain.New("char_girl", "Aicha", testNow)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	return p
}

func TestNewProfileDefaults(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	if p.Currency != 0 || p.TotalMinutesStudied != 0 {
		t.Fatalf("fresh profile has currency %d, minutes %d", p.Currency, p.TotalMinutesStudied)
	}
	if p.SelectedTentID != domain.DefaultTentID || !p.OwnsTent(domain.DefaultTentID) {
		t.Fatalf("fresh profile tent: selected %q, owned %v", p.SelectedTentID, p.OwnedTentIDs)
	}
	if !p.OwnsCharacter("char_boy") || !p.OwnsCharacter("char_girl") {
		t.Fatalf("fresh profile characters: %v", p.OwnedCharacterIDs)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestNewProfileTrimsName(t *testing.T) {
	t.Parallel()
	p, err := domain.New("char_boy", "  Karim  ", testNow)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	if p.CharacterName != "Karim" {
		t.Fatalf("name = %q, want trimmed", p.CharacterName)
	}
}

func TestNewProfileRejectsBlankName(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := domain.New("char_boy", name, testNow); !errors.Is(err, apperrors.ErrInvalidName) {
			t.Errorf("name %q: got %v, want ErrInvalidName", name, err)
		}
	}
}

func TestNewProfileRejectsUnknownCharacter(t *testing.T) {
	t.Parallel()
	if _, err := domain.New("girl1", "Aicha", testNow); !errors.Is(err, apperrors.ErrInvalidCharacter) {
		t.Fatalf("got %v, want ErrInvalidCharacter", err)
	}
}

func TestCreditGrowsBalanceAndLifetimeMinutes(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	p, err := p.Credit(25)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	p, err = p.Credit(40)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if p.Currency != 65 || p.TotalMinutesStudied != 65 {
		t.Fatalf("after credits: currency %d, minutes %d, want 65/65", p.Currency, p.TotalMinutesStudied)
	}
}

func TestCreditRejectsNonPositiveMinutes(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	for _, minutes := range []int{0, -5} {
		if _, err := p.Credit(minutes); !errors.Is(err, apperrors.ErrInvalidDuration) {
			t.Errorf("credit %d: got %v, want ErrInvalidDuration", minutes, err)
		}
	}
}

func TestBuyTentSpendsAndGrantsOwnership(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	p, err := p.Credit(200)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	bought, err := p.BuyTent("tent2", 180)
	if err != nil {
		t.Fatalf("buy tent: %v", err)
	}
	if bought.Currency != 20 {
		t.Fatalf("currency after purchase = %d, want 20", bought.Currency)
	}
	if !bought.OwnsTent("tent2") {
		t.Fatalf("tent2 not owned after purchase: %v", bought.OwnedTentIDs)
	}
	// Originating snapshot is untouched.
	if p.Currency != 200 || p.OwnsTent("tent2") {
		t.Fatalf("receiver mutated: currency %d, owned %v", p.Currency, p.OwnedTentIDs)
	}
}

func TestBuyRejectsInsufficientFunds(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	p, err := p.Credit(100)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if _, err := p.BuyTent("tent2", 180); !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Fatalf("buy tent: got %v, want ErrInsufficientFunds", err)
	}
	if _, err := p.BuyCharacter("girl1", 180); !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Fatalf("buy character: got %v, want ErrInsufficientFunds", err)
	}
	if p.Currency != 100 {
		t.Fatalf("failed purchase changed balance to %d", p.Currency)
	}
}

func TestBuyRejectsAlreadyOwned(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	p, err := p.Credit(500)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if _, err := p.BuyTent(domain.DefaultTentID, 0); !errors.Is(err, apperrors.ErrAlreadyOwned) {
		t.Fatalf("rebuy default tent: got %v, want ErrAlreadyOwned", err)
	}
	if _, err := p.BuyCharacter("char_boy", 0); !errors.Is(err, apperrors.ErrAlreadyOwned) {
		t.Fatalf("rebuy default character: got %v, want ErrAlreadyOwned", err)
	}
	if p.Currency != 500 {
		t.Fatalf("rejected rebuy changed balance to %d", p.Currency)
	}
}

func TestBuyCharacterDoesNotEquip(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	p, err := p.Credit(180)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	p, err = p.BuyCharacter("girl1", 180)
	if err != nil {
		t.Fatalf("buy character: %v", err)
	}
	if p.CharacterImageID != "char_girl" {
		t.Fatalf("purchase changed equipped character to %q", p.CharacterImageID)
	}
	if !p.OwnsCharacter("girl1") {
		t.Fatalf("girl1 not owned: %v", p.OwnedCharacterIDs)
	}
}

func TestSelectTentRequiresOwnership(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	if _, err := p.SelectTent("tent3"); !errors.Is(err, apperrors.ErrNotOwned) {
		t.Fatalf("select unowned tent: got %v, want ErrNotOwned", err)
	}

	p, err := p.Credit(180)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	p, err = p.BuyTent("tent3", 180)
	if err != nil {
		t.Fatalf("buy tent: %v", err)
	}
	p, err = p.SelectTent("tent3")
	if err != nil {
		t.Fatalf("select owned tent: %v", err)
	}
	if p.SelectedTentID != "tent3" {
		t.Fatalf("selected tent = %q, want tent3", p.SelectedTentID)
	}
}

func TestSelectCharacterRequiresOwnership(t *testing.T) {
	t.Parallel()
	p := newProfile(t)
	if _, err := p.SelectCharacter("boy2"); !errors.Is(err, apperrors.ErrNotOwned) {
		t.Fatalf("select unowned character: got %v, want ErrNotOwned", err)
	}
	p, err := p.SelectCharacter("char_boy")
	if err != nil {
		t.Fatalf("select owned character: %v", err)
	}
	if p.CharacterImageID != "char_boy" {
		t.Fatalf("equipped character = %q, want char_boy", p.CharacterImageID)
	}
}

func TestValidateCatchesBrokenInvariants(t *testing.T) {
	t.Parallel()
	base := newProfile(t)
	cases := map[string]func(domain.Profile) domain.Profile{
		"negative currency": func(p domain.Profile) domain.Profile { p.Currency = -1; return p },
		"negative minutes":  func(p domain.Profile) domain.Profile { p.TotalMinutesStudied = -1; return p },
		"unowned tent selected": func(p domain.Profile) domain.Profile {
			p.SelectedTentID = "tent6"
			return p
		},
		"unowned character equipped": func(p domain.Profile) domain.Profile {
			p.CharacterImageID = "boy1"
			return p
		},
		"empty owned tents": func(p domain.Profile) domain.Profile {
			p.OwnedTentIDs = nil
			return p
		},
	}
	for name, mutate := range cases {
		if err := mutate(base).Validate(); err == nil {
			t.Errorf("%s: validate passed, want error", name)
		}
	}
}
