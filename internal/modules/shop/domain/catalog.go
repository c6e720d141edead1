package domain

import (
	"fmt"

	apperrors "shiddaha/internal/platform/errors"
)

type Category string

const (
	CategoryTents      Category = "tents"
	CategoryCharacters Category = "characters"
)

func (c Category) Validate() error {
	switch c {
	case CategoryTents, CategoryCharacters:
		return nil
	default:
		return fmt.Errorf("unknown store category: %s", c)
	}
}

// Item is one entry of the static cosmetic catalog. Items are not persisted;
// ownership lives on the profile.
type Item struct {
	ID       string   `yaml:"id"`
	ImageID  string   `yaml:"image"`
	Price    int      `yaml:"price"`
	Category Category `yaml:"category"`
}

func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item id is required")
	}
	if i.Price < 0 {
		return fmt.Errorf("item %s price must be non-negative, got %d", i.ID, i.Price)
	}
	return i.Category.Validate()
}

// DefaultCatalog is the built-in shop: one free tent, two free characters,
// and the paid cosmetics. The free items are owned unconditionally from
// profile creation.
func DefaultCatalog() []Item {
	return []Item{
		{ID: "tent", ImageID: "tent", Price: 0, Category: CategoryTents},
		{ID: "tent2", ImageID: "tent2", Price: 180, Category: CategoryTents},
		{ID: "tent3", ImageID: "tent3", Price: 180, Category: CategoryTents},
		{ID: "tent4", ImageID: "tent4", Price: 180, Category: CategoryTents},
		{ID: "tent5", ImageID: "tent5", Price: 180, Category: CategoryTents},
		{ID: "tent6", ImageID: "tent6", Price: 180, Category: CategoryTents},
		{ID: "char_boy", ImageID: "char_boy", Price: 0, Category: CategoryCharacters},
		{ID: "char_girl", ImageID: "char_girl", Price: 0, Category: CategoryCharacters},
		{ID: "girl1", ImageID: "girl1", Price: 180, Category: CategoryCharacters},
		{ID: "girl2", ImageID: "girl2", Price: 180, Category: CategoryCharacters},
		{ID: "girl3", ImageID: "girl3", Price: 180, Category: CategoryCharacters},
		{ID: "girl4", ImageID: "girl4", Price: 180, Category: CategoryCharacters},
		{ID: "boy1", ImageID: "boy1", Price: 180, Category: CategoryCharacters},
		{ID: "boy2", ImageID: "boy2", Price: 180, Category: CategoryCharacters},
	}
}

// Find returns the catalog item with the given id.
func Find(items []Item, id string) (Item, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownItem, id)
}
