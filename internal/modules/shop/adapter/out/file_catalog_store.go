package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shiddaha/internal/modules/shop/domain"
	shopout "shiddaha/internal/modules/shop/port/out"
)

// FileCatalogStore serves the catalog from an optional shop.yaml in the data
// directory, falling back to the built-in catalog when the file is absent.
type FileCatalogStore struct {
	path string
}

func NewFileCatalogStore(path string) shopout.CatalogStore {
	return &FileCatalogStore{path: path}
}

func (s *FileCatalogStore) Items(_ context.Context) ([]domain.Item, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("read shop catalog: %w", err)
	}
	var file struct {
		Items []domain.Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse shop catalog: %w", err)
	}
	if len(file.Items) == 0 {
		return domain.DefaultCatalog(), nil
	}
	return file.Items, nil
}
