package autocomplete

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/openmario/api/services"
	"github.com/openmario/api/utils/response"
	"github.com/openmario/api/utils/validation"
)

// Searcher is the fuzzy lookup contract served by the autocomplete
// endpoints
type Searcher interface {
	SearchCompanies(ctx context.Context, query string) ([]services.Suggestion, error)
	SearchPositions(ctx context.Context, companyName, query string) ([]services.Suggestion, error)
	SearchLocations(ctx context.Context, query string) ([]services.Suggestion, error)
}

// AutocompleteHandler handles autocomplete requests
type AutocompleteHandler struct {
	search    Searcher
	validator *validation.Validator
}

// NewAutocompleteHandler creates a new autocomplete handler
func NewAutocompleteHandler(search Searcher) *AutocompleteHandler {
	return &AutocompleteHandler{
		search:    search,
		validator: validation.NewValidator(),
	}
}

// CompanySearchRequest is the query contract for company autocomplete
type CompanySearchRequest struct {
	Query string `validate:"required,min=3"`
}

// PositionSearchRequest is the query contract for position autocomplete
type PositionSearchRequest struct {
	Company string `validate:"required"`
	Query   string `validate:"required,min=3"`
}

// LocationSearchRequest is the query contract for location autocomplete
type LocationSearchRequest struct {
	Query string `validate:"required,min=3"`
}

// SearchCompanies handles GET /autocomplete/company?comp=...
func (h *AutocompleteHandler) SearchCompanies(c *fiber.Ctx) error {
	req := CompanySearchRequest{
		Query: validation.SanitizeString(c.Query("comp")),
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Should have minimum 3 characters")
	}

	results, err := h.search.SearchCompanies(c.UserContext(), req.Query)
	if err != nil {
		log.Printf("Error searching companies: %v", err)
		return response.Conflict(c, "Database query failed")
	}

	return response.List(c, results)
}

// SearchPositions handles GET /autocomplete/position?comp=...&pos=...
func (h *AutocompleteHandler) SearchPositions(c *fiber.Ctx) error {
	req := PositionSearchRequest{
		Company: c.Query("comp"),
		Query:   validation.SanitizeString(c.Query("pos")),
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		fieldErrors := validation.FormatValidationErrors(err)
		if _, ok := fieldErrors["company"]; ok {
			return response.BadRequest(c, "Company Name is Required")
		}
		return response.BadRequest(c, "Should have minimum 3 characters")
	}

	results, err := h.search.SearchPositions(c.UserContext(), req.Company, req.Query)
	if err != nil {
		log.Printf("Error searching positions: %v", err)
		return response.Conflict(c, "Database query failed")
	}

	return response.List(c, results)
}

// SearchLocations handles GET /autocomplete/location?loc=...
func (h *AutocompleteHandler) SearchLocations(c *fiber.Ctx) error {
	req := LocationSearchRequest{
		Query: validation.SanitizeString(c.Query("loc")),
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Should have minimum 3 characters")
	}

	results, err := h.search.SearchLocations(c.UserContext(), req.Query)
	if err != nil {
		log.Printf("Error searching locations: %v", err)
		return response.Conflict(c, "Database query failed")
	}

	return response.List(c, results)
}
