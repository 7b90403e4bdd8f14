package autocomplete

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmario/api/services"
)

type fakeSearcher struct {
	suggestions []services.Suggestion
	err         error

	lastCompany string
	lastQuery   string
}

func (f *fakeSearcher) SearchCompanies(ctx context.Context, query string) ([]services.Suggestion, error) {
	f.lastQuery = query
	return f.suggestions, f.err
}

func (f *fakeSearcher) SearchPositions(ctx context.Context, companyName, query string) ([]services.Suggestion, error) {
	f.lastCompany = companyName
	f.lastQuery = query
	return f.suggestions, f.err
}

func (f *fakeSearcher) SearchLocations(ctx context.Context, query string) ([]services.Suggestion, error) {
	f.lastQuery = query
	return f.suggestions, f.err
}

func newTestApp(search Searcher) *fiber.App {
	app := fiber.New()
	handler := NewAutocompleteHandler(search)
	app.Get("/autocomplete/company", handler.SearchCompanies)
	app.Get("/autocomplete/position", handler.SearchPositions)
	app.Get("/autocomplete/location", handler.SearchLocations)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSearchCompaniesShortQuery(t *testing.T) {
	app := newTestApp(&fakeSearcher{})

	status, body := doRequest(t, app, "/autocomplete/company?comp=go")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Should have minimum 3 characters"}`, body)
}

func TestSearchCompaniesTrimsWhitespace(t *testing.T) {
	search := &fakeSearcher{suggestions: []services.Suggestion{}}
	app := newTestApp(search)

	status, _ := doRequest(t, app, "/autocomplete/company?comp=%20%20goo%20")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "goo", search.lastQuery)
}

func TestSearchCompaniesReturnsBareArray(t *testing.T) {
	search := &fakeSearcher{
		suggestions: []services.Suggestion{
			{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Google"},
		},
	}
	app := newTestApp(search)

	status, body := doRequest(t, app, "/autocomplete/company?comp=goo")

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, "["), "body: %s", body)
	assert.Contains(t, body, `"name":"Google"`)
}

func TestSearchCompaniesDatabaseError(t *testing.T) {
	app := newTestApp(&fakeSearcher{err: errors.New("dial tcp: connection refused")})

	status, body := doRequest(t, app, "/autocomplete/company?comp=goo")

	assert.Equal(t, fiber.StatusConflict, status)
	assert.JSONEq(t, `{"message":"Database query failed"}`, body)
}

func TestSearchPositionsRequiresCompany(t *testing.T) {
	app := newTestApp(&fakeSearcher{})

	status, body := doRequest(t, app, "/autocomplete/position?pos=eng")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Company Name is Required"}`, body)
}

func TestSearchPositionsScopedToCompany(t *testing.T) {
	search := &fakeSearcher{suggestions: []services.Suggestion{}}
	app := newTestApp(search)

	status, _ := doRequest(t, app, "/autocomplete/position?comp=Google&pos=eng")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Google", search.lastCompany)
	assert.Equal(t, "eng", search.lastQuery)
}

func TestSearchPositionsShortQueryWithCompany(t *testing.T) {
	app := newTestApp(&fakeSearcher{})

	status, body := doRequest(t, app, "/autocomplete/position?comp=Google&pos=en")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Should have minimum 3 characters"}`, body)
}

func TestSearchLocationsShortQuery(t *testing.T) {
	app := newTestApp(&fakeSearcher{})

	status, _ := doRequest(t, app, "/autocomplete/location?loc=ph")

	assert.Equal(t, fiber.StatusBadRequest, status)
}
