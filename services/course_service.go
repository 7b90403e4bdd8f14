package services

import (
	"context"
	"fmt"

	"github.com/openmario/api/graph"
	"github.com/openmario/api/model"
)

// CourseService serves single-course lookups against the graph store.
type CourseService struct {
	exec GraphExecutor
}

// NewCourseService creates a course service
func NewCourseService(exec GraphExecutor) *CourseService {
	return &CourseService{exec: exec}
}

const courseDetailCypher = `
MATCH (course:Course)
WHERE course.id = $course_id
OPTIONAL MATCH (course)-[offers:OFFERS]->(section:Section)
RETURN course.id AS id,
       course.subject_id AS subject_id,
       course.course_number AS course_number,
       course.title AS title,
       course.description AS description,
       course.credits AS credits,
       course.writing_intensive AS writing_intensive,
       course.repeat_status AS repeat_status,
       offers.instruction_type AS instruction_type,
       offers.instruction_method AS instruction_method,
       section.crn AS crn
LIMIT 1
`

// Instructor rating properties arrive from ingestion with mixed types,
// so the query coerces them before the typed decoder sees them.
const availabilitiesCypher = `
MATCH (course:Course)-[offers:OFFERS]->(section:Section)
WHERE course.id = $course_id AND offers.instruction_type IS NOT NULL
OPTIONAL MATCH (instructor:Instructor)-[:TEACHES]->(section)
RETURN toString(section.term) AS term,
       toString(section.crn) AS crn,
       CASE WHEN instructor IS NULL THEN null ELSE toInteger(instructor.id) END AS instructor_id,
       CASE WHEN instructor IS NULL THEN null ELSE COALESCE(instructor.name, '') END AS instructor_name,
       CASE WHEN instructor.avg_difficulty IS NULL THEN null ELSE toFloat(instructor.avg_difficulty) END AS avg_difficulty,
       CASE WHEN instructor.avg_rating IS NULL THEN null ELSE toFloat(instructor.avg_rating) END AS avg_rating,
       CASE WHEN instructor.num_ratings IS NULL THEN null ELSE toInteger(instructor.num_ratings) END AS num_ratings
`

// GetCourse fetches the full attribute set for one course, including
// offering attributes when an OFFERS edge exists.
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*model.CourseDetail, error) {
	records, err := s.exec.ExecuteRead(ctx, courseDetailCypher, map[string]any{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrCourseNotFound
	}

	return decodeCourseDetail(records[0])
}

// GetAvailabilities lists every section offering of the course across
// terms. Sections missing a term or CRN are dropped. A course with no
// sections (or no node at all) resolves to ErrCourseNotFound, matching
// the single not-found surface of the HTTP boundary.
func (s *CourseService) GetAvailabilities(ctx context.Context, courseID string) ([]model.CourseAvailability, error) {
	records, err := s.exec.ExecuteRead(ctx, availabilitiesCypher, map[string]any{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrCourseNotFound
	}

	availabilities := make([]model.CourseAvailability, 0, len(records))
	for _, rec := range records {
		a, err := decodeAvailability(rec)
		if err != nil {
			return nil, err
		}
		if a.Term == "" || a.CRN == "" {
			continue
		}
		availabilities = append(availabilities, *a)
	}

	return availabilities, nil
}

func decodeCourseDetail(rec graph.Record) (*model.CourseDetail, error) {
	var (
		d   model.CourseDetail
		err error
	)
	if d.ID, err = rec.String("id"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.SubjectID, err = rec.String("subject_id"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.CourseNumber, err = rec.String("course_number"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.Title, err = rec.String("title"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.Description, err = rec.NullableString("description"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.Credits, err = rec.Float64("credits"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.WritingIntensive, err = rec.Bool("writing_intensive"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.RepeatStatus, err = rec.NullableString("repeat_status"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.InstructionType, err = rec.NullableString("instruction_type"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.InstructionMethod, err = rec.NullableString("instruction_method"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	if d.CRN, err = rec.NullableInt64("crn"); err != nil {
		return nil, fmt.Errorf("decode course detail: %w", err)
	}
	return &d, nil
}

func decodeAvailability(rec graph.Record) (*model.CourseAvailability, error) {
	var a model.CourseAvailability

	term, err := rec.NullableString("term")
	if err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	crn, err := rec.NullableString("crn")
	if err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if term != nil {
		a.Term = *term
	}
	if crn != nil {
		a.CRN = *crn
	}

	instructorID, err := rec.NullableInt64("instructor_id")
	if err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if instructorID == nil {
		return &a, nil
	}

	instructor := &model.Instructor{ID: *instructorID}
	name, err := rec.NullableString("instructor_name")
	if err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if name != nil {
		instructor.Name = *name
	}
	if instructor.AvgDifficulty, err = rec.NullableFloat64("avg_difficulty"); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if instructor.AvgRating, err = rec.NullableFloat64("avg_rating"); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	if instructor.NumRatings, err = rec.NullableInt64("num_ratings"); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	a.Instructor = instructor

	return &a, nil
}
