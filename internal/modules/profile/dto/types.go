package dto

import "time"

type CreateInput struct {
	CharacterID string
	Name        string
}

type PurchaseInput struct {
	ItemID   string
	Price    int
	Category string
}

type ProfileOutput struct {
	CharacterImageID    string
	CharacterName       string
	Currency            int
	TotalMinutesStudied int
	CreatedAt           time.Time
	SelectedTentID      string
	OwnedTentIDs        []string
	OwnedCharacterIDs   []string
}
