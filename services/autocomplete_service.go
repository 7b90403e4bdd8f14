package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/openmario/api/model"
	"gorm.io/gorm"
)

// autocompleteLimit caps every suggestion list
const autocompleteLimit = 100

// Suggestion is one autocomplete result
type Suggestion struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AutocompleteService serves fuzzy name lookups over the relational
// store for the search UI.
type AutocompleteService struct {
	db *gorm.DB
}

// NewAutocompleteService creates a new autocomplete service
func NewAutocompleteService(db *gorm.DB) *AutocompleteService {
	return &AutocompleteService{db: db}
}

// fuzzyPattern builds a character-gap ILIKE pattern, so "mth" matches
// "MaTcH lab" the way the search UI expects ("m%t%h%").
func fuzzyPattern(query string) string {
	chars := strings.Split(strings.ToLower(strings.TrimSpace(query)), "")
	return strings.Join(chars, "%") + "%"
}

// SearchCompanies finds companies whose name fuzzy-matches the query
func (s *AutocompleteService) SearchCompanies(ctx context.Context, query string) ([]Suggestion, error) {
	pattern := fuzzyPattern(query)

	results := make([]Suggestion, 0, autocompleteLimit)
	err := s.db.WithContext(ctx).
		Model(&model.Company{}).
		Select("id", "name").
		Where("name ILIKE ?", pattern).
		Order("name ASC").
		Limit(autocompleteLimit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// SearchPositions finds positions whose name fuzzy-matches the query,
// scoped to one company unless companyName is "*".
func (s *AutocompleteService) SearchPositions(ctx context.Context, companyName, query string) ([]Suggestion, error) {
	pattern := fuzzyPattern(query)

	tx := s.db.WithContext(ctx).
		Model(&model.Position{}).
		Select("position.id", "position.name").
		Joins("INNER JOIN company ON company.id = position.company_id").
		Where("position.name ILIKE ?", pattern)

	if companyName != "*" {
		tx = tx.Where("company.name = ?", strings.TrimSpace(companyName))
	}

	results := make([]Suggestion, 0, autocompleteLimit)
	err := tx.Order("position.name ASC").
		Limit(autocompleteLimit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// SearchLocations finds locations matching the query against city,
// state, or state code, formatted as "City, ST".
func (s *AutocompleteService) SearchLocations(ctx context.Context, query string) ([]Suggestion, error) {
	pattern := fuzzyPattern(query)

	var locations []model.Location
	err := s.db.WithContext(ctx).
		Where("city ILIKE ? OR state ILIKE ? OR state_code ILIKE ?", pattern, pattern, pattern).
		Order("city ASC").
		Limit(autocompleteLimit).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}

	results := make([]Suggestion, 0, len(locations))
	for _, loc := range locations {
		results = append(results, Suggestion{ID: loc.ID, Name: loc.DisplayName()})
	}

	return results, nil
}
