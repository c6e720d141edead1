package domain_test

import (
	"errors"
	"testing"

	"shiddaha/internal/modules/shop/domain"
	apperrors "shiddaha/internal/platform/errors"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, item := range domain.DefaultCatalog() {
		if err := item.Validate(); err != nil {
			t.Errorf("item %s: %v", item.ID, err)
		}
		if seen[item.ID] {
			t.Errorf("duplicate item id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestDefaultCatalogFreeItems(t *testing.T) {
	t.Parallel()
	catalog := domain.DefaultCatalog()
	for _, id := range []string{"tent", "char_boy", "char_girl"} {
		item, err := domain.Find(catalog, id)
		if err != nil {
			t.Fatalf("find %s: %v", id, err)
		}
		if item.Price != 0 {
			t.Errorf("%s price = %d, want free", id, item.Price)
		}
	}
}

func TestFindUnknownItem(t *testing.T) {
	t.Parallel()
	if _, err := domain.Find(domain.DefaultCatalog(), "tent999"); !errors.Is(err, apperrors.ErrUnknownItem) {
		t.Fatalf("got %v, want ErrUnknownItem", err)
	}
}

func TestCategoryValidate(t *testing.T) {
	t.Parallel()
	if err := domain.CategoryTents.Validate(); err != nil {
		t.Fatalf("tents: %v", err)
	}
	if err := domain.CategoryCharacters.Validate(); err != nil {
		t.Fatalf("characters: %v", err)
	}
	if err := domain.Category("hats").Validate(); err == nil {
		t.Fatal("unknown category validated")
	}
}

func TestItemValidate(t *testing.T) {
	t.Parallel()
	bad := []domain.Item{
		{ID: "", Price: 0, Category: domain.CategoryTents},
		{ID: "tent9", Price: -1, Category: domain.CategoryTents},
		{ID: "tent9", Price: 10, Category: "hats"},
	}
	for _, item := range bad {
		if err := item.Validate(); err == nil {
			t.Errorf("item %+v validated, want error", item)
		}
	}
}
