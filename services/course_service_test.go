package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmario/api/graph"
)

type fakeCourseExecutor struct {
	detail         []graph.Record
	availabilities []graph.Record
	err            error
}

func (f *fakeCourseExecutor) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if strings.Contains(cypher, "TEACHES") {
		return f.availabilities, nil
	}
	return f.detail, nil
}

func detailRecord() graph.Record {
	return graph.Record{
		"id":                 "c1",
		"subject_id":         "CS",
		"course_number":      "260",
		"title":              "Data Structures",
		"description":        "Stacks, queues, trees.",
		"credits":            3.0,
		"writing_intensive":  false,
		"repeat_status":      nil,
		"instruction_type":   "Lecture",
		"instruction_method": "Face To Face",
		"crn":                int64(12345),
	}
}

func availabilityRecord(term, crn string, instructorID any) graph.Record {
	rec := graph.Record{
		"term":            term,
		"crn":             crn,
		"instructor_id":   instructorID,
		"instructor_name": nil,
		"avg_difficulty":  nil,
		"avg_rating":      nil,
		"num_ratings":     nil,
	}
	if instructorID != nil {
		rec["instructor_name"] = "J. Popyack"
		rec["avg_difficulty"] = 2.8
		rec["avg_rating"] = 4.1
		rec["num_ratings"] = int64(37)
	}
	return rec
}

func TestGetCourseNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{})

	course, err := svc.GetCourse(context.Background(), "missing")

	require.ErrorIs(t, err, ErrCourseNotFound)
	assert.Nil(t, course)
}

func TestGetCourseDecodesNullableFields(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{detail: []graph.Record{detailRecord()}})

	course, err := svc.GetCourse(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, "Data Structures", course.Title)
	assert.Equal(t, 3.0, course.Credits)
	assert.Nil(t, course.RepeatStatus)
	require.NotNil(t, course.Description)
	assert.Equal(t, "Stacks, queues, trees.", *course.Description)
	require.NotNil(t, course.CRN)
	assert.Equal(t, int64(12345), *course.CRN)
}

func TestGetCourseWithoutOffering(t *testing.T) {
	rec := detailRecord()
	rec["instruction_type"] = nil
	rec["instruction_method"] = nil
	rec["crn"] = nil
	svc := NewCourseService(&fakeCourseExecutor{detail: []graph.Record{rec}})

	course, err := svc.GetCourse(context.Background(), "c1")

	require.NoError(t, err)
	assert.Nil(t, course.InstructionType)
	assert.Nil(t, course.InstructionMethod)
	assert.Nil(t, course.CRN)
}

func TestGetAvailabilitiesNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{})

	availabilities, err := svc.GetAvailabilities(context.Background(), "missing")

	require.ErrorIs(t, err, ErrCourseNotFound)
	assert.Nil(t, availabilities)
}

func TestGetAvailabilitiesNilInstructor(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{
		availabilities: []graph.Record{availabilityRecord("202515", "12345", nil)},
	})

	availabilities, err := svc.GetAvailabilities(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, availabilities, 1)
	assert.Equal(t, "202515", availabilities[0].Term)
	assert.Equal(t, "12345", availabilities[0].CRN)
	assert.Nil(t, availabilities[0].Instructor)
}

func TestGetAvailabilitiesWithInstructor(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{
		availabilities: []graph.Record{availabilityRecord("202515", "12345", int64(9))},
	})

	availabilities, err := svc.GetAvailabilities(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, availabilities, 1)
	instructor := availabilities[0].Instructor
	require.NotNil(t, instructor)
	assert.Equal(t, int64(9), instructor.ID)
	assert.Equal(t, "J. Popyack", instructor.Name)
	require.NotNil(t, instructor.AvgRating)
	assert.Equal(t, 4.1, *instructor.AvgRating)
}

func TestAvailabilitiesQueryCoercesInstructorProperties(t *testing.T) {
	// Ingested instructor properties are not reliably typed; the query
	// must normalize them so decoding never fails on a string-typed
	// number.
	assert.Contains(t, availabilitiesCypher, "toInteger(instructor.id)")
	assert.Contains(t, availabilitiesCypher, "toFloat(instructor.avg_difficulty)")
	assert.Contains(t, availabilitiesCypher, "toFloat(instructor.avg_rating)")
	assert.Contains(t, availabilitiesCypher, "toInteger(instructor.num_ratings)")
	assert.Contains(t, availabilitiesCypher, "CASE WHEN instructor IS NULL THEN null")
}

func TestGetAvailabilitiesDropsIncompleteRows(t *testing.T) {
	svc := NewCourseService(&fakeCourseExecutor{
		availabilities: []graph.Record{
			availabilityRecord("202515", "12345", nil),
			availabilityRecord("", "67890", nil),
			availabilityRecord("202525", "", nil),
		},
	})

	availabilities, err := svc.GetAvailabilities(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, availabilities, 1)
	assert.Equal(t, "12345", availabilities[0].CRN)
}
