package course

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmario/api/model"
	"github.com/openmario/api/services"
)

const testCourseID = "9f1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"

type fakeResolver struct {
	result *model.CourseRequirements
	err    error
}

func (f *fakeResolver) Resolve(ctx context.Context, courseID string) (*model.CourseRequirements, error) {
	return f.result, f.err
}

type fakeFetcher struct {
	detail         *model.CourseDetail
	availabilities []model.CourseAvailability
	err            error
}

func (f *fakeFetcher) GetCourse(ctx context.Context, courseID string) (*model.CourseDetail, error) {
	return f.detail, f.err
}

func (f *fakeFetcher) GetAvailabilities(ctx context.Context, courseID string) ([]model.CourseAvailability, error) {
	return f.availabilities, f.err
}

func newTestApp(resolver RequisitesResolver, fetcher CourseFetcher) *fiber.App {
	app := fiber.New()
	handler := NewCourseHandler(resolver, fetcher)
	app.Get("/courses/prereqs/:course_id", handler.GetRequisites)
	app.Get("/courses/availabilities/:course_id", handler.GetAvailabilities)
	app.Get("/courses/:course_id", handler.GetCourse)
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

func TestGetRequisitesInvalidUUID(t *testing.T) {
	app := newTestApp(&fakeResolver{}, &fakeFetcher{})

	status, body := doRequest(t, app, "/courses/prereqs/not-a-uuid")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid uuid"}`, body)
}

func TestGetRequisitesNotFound(t *testing.T) {
	app := newTestApp(&fakeResolver{err: services.ErrCourseNotFound}, &fakeFetcher{})

	status, body := doRequest(t, app, "/courses/prereqs/"+testCourseID)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Course not found"}`, body)
}

func TestGetRequisitesSuccess(t *testing.T) {
	relID := "G1"
	resolver := &fakeResolver{
		result: &model.CourseRequirements{
			Course: model.CourseInfo{
				ID:           testCourseID,
				Name:         "Data Structures",
				SubjectID:    "CS",
				CourseNumber: "260",
			},
			Prerequisites: [][]model.Prerequisite{
				{
					{ID: "a", RelationshipID: &relID, RelationshipType: "prerequisite"},
					{ID: "b", RelationshipID: &relID, RelationshipType: "prerequisite"},
				},
			},
			Corequisites: []model.Corequisite{},
		},
	}
	app := newTestApp(resolver, &fakeFetcher{})

	status, body := doRequest(t, app, "/courses/prereqs/"+testCourseID)

	assert.Equal(t, fiber.StatusOK, status)

	var envelope struct {
		Data model.CourseRequirements `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "Data Structures", envelope.Data.Course.Name)
	require.Len(t, envelope.Data.Prerequisites, 1)
	assert.Len(t, envelope.Data.Prerequisites[0], 2)
	assert.Contains(t, body, `"corequisites":[]`)
}

func TestGetRequisitesInternalErrorRedacted(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("bolt://secret-host:7687 unreachable")}
	app := newTestApp(resolver, &fakeFetcher{})

	status, body := doRequest(t, app, "/courses/prereqs/"+testCourseID)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"Internal server error"}`, body)
	assert.NotContains(t, body, "secret-host")
}

func TestGetCourseSuccess(t *testing.T) {
	fetcher := &fakeFetcher{
		detail: &model.CourseDetail{
			ID:           testCourseID,
			SubjectID:    "CS",
			CourseNumber: "260",
			Title:        "Data Structures",
			Credits:      3,
		},
	}
	app := newTestApp(&fakeResolver{}, fetcher)

	status, body := doRequest(t, app, "/courses/"+testCourseID)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"data"`)
	assert.Contains(t, body, `"title":"Data Structures"`)
}

func TestGetCourseInvalidUUID(t *testing.T) {
	app := newTestApp(&fakeResolver{}, &fakeFetcher{})

	status, body := doRequest(t, app, "/courses/123")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid uuid"}`, body)
}

func TestGetAvailabilitiesBareArray(t *testing.T) {
	fetcher := &fakeFetcher{
		availabilities: []model.CourseAvailability{
			{Term: "202515", CRN: "12345"},
		},
	}
	app := newTestApp(&fakeResolver{}, fetcher)

	status, body := doRequest(t, app, "/courses/availabilities/"+testCourseID)

	assert.Equal(t, fiber.StatusOK, status)
	// Availabilities are a bare array, not a data envelope.
	assert.True(t, strings.HasPrefix(body, "["), "body: %s", body)
	assert.Contains(t, body, `"crn":"12345"`)
	assert.Contains(t, body, `"instructor":null`)
}

func TestGetAvailabilitiesNotFound(t *testing.T) {
	app := newTestApp(&fakeResolver{}, &fakeFetcher{err: services.ErrCourseNotFound})

	status, body := doRequest(t, app, "/courses/availabilities/"+testCourseID)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Course not found"}`, body)
}
