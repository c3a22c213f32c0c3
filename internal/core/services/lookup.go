package services

import (
	"tf2schema-service/internal/core/domain"
)

// LookupService answers item and SKU queries against the manager's
// current schema snapshot.
type LookupService struct {
	manager *SchemaManagerService
}

func NewLookupService(manager *SchemaManagerService) *LookupService {
	return &LookupService{manager: manager}
}

func (s *LookupService) ItemByDefindex(defindex int) (*domain.SchemaItem, error) {
	schema, err := s.manager.Current()
	if err != nil {
		return nil, err
	}
	return schema.ItemByDefindex(defindex)
}

func (s *LookupService) ItemByName(name string) (*domain.SchemaItem, error) {
	schema, err := s.manager.Current()
	if err != nil {
		return nil, err
	}
	return schema.ItemByName(name)
}

func (s *LookupService) ItemBySKU(sku string) (*domain.SchemaItem, domain.SKU, error) {
	schema, err := s.manager.Current()
	if err != nil {
		return nil, domain.SKU{}, err
	}
	parsed, err := domain.ParseSKU(sku)
	if err != nil {
		return nil, domain.SKU{}, err
	}
	item, err := schema.ItemBySKU(parsed)
	if err != nil {
		return nil, domain.SKU{}, err
	}
	return item, parsed, nil
}

func (s *LookupService) NameFromSKU(sku string) (string, error) {
	schema, err := s.manager.Current()
	if err != nil {
		return "", err
	}
	parsed, err := domain.ParseSKU(sku)
	if err != nil {
		return "", err
	}
	return schema.NameFromSKU(parsed)
}

func (s *LookupService) SKUFromName(name string) (domain.SKU, error) {
	schema, err := s.manager.Current()
	if err != nil {
		return domain.SKU{}, err
	}
	return schema.SKUFromName(name)
}
