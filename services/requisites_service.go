package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/openmario/api/graph"
	"github.com/openmario/api/model"
	"github.com/openmario/api/utils/cache"
)

// ErrCourseNotFound is returned when the target course has no node in
// the graph. A course with no requisite edges is not an error.
var ErrCourseNotFound = errors.New("course not found")

// RequisitesCachePrefix prefixes cached requisite payload keys; the
// invalidation job deletes everything under it.
const RequisitesCachePrefix = "requisites:"

// GraphExecutor is the read-only query contract the resolver needs
// from the graph store.
type GraphExecutor interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error)
}

// RequisitesCache is the slice of the cache the resolver needs: JSON
// reads and writes keyed by course. A miss is cache.ErrNotFound.
type RequisitesCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// RequisitesService resolves course prerequisite/corequisite structure
// from the graph store. The cache is optional; when nil (or failing)
// every request reads through to the graph.
type RequisitesService struct {
	exec     GraphExecutor
	cache    RequisitesCache
	cacheTTL time.Duration
}

// NewRequisitesService creates a requisites service
func NewRequisitesService(exec GraphExecutor, requisitesCache RequisitesCache, cacheTTL time.Duration) *RequisitesService {
	return &RequisitesService{
		exec:     exec,
		cache:    requisitesCache,
		cacheTTL: cacheTTL,
	}
}

const courseInfoCypher = `
MATCH (course:Course)
WHERE course.id = $course_id
RETURN course.id AS id,
       course.title AS name,
       course.subject_id AS subject_id,
       course.course_number AS course_number
`

const prerequisitesCypher = `
MATCH (prereq:Course)-[rel:PREREQUISITE]->(course:Course)
WHERE course.id = $course_id
RETURN prereq.id AS id,
       prereq.title AS name,
       prereq.subject_id AS subject_id,
       prereq.course_number AS course_number,
       rel.relationship_type AS relationship_type,
       CASE WHEN rel.group_id IS NULL THEN null ELSE toString(rel.group_id) END AS relationship_id,
       rel.can_take_concurrent AS can_take_concurrent,
       rel.minimum_grade AS minimum_grade
`

const corequisitesCypher = `
MATCH (course:Course)-[:COREQUISITE]-(coreq:Course)
WHERE course.id = $course_id
RETURN DISTINCT coreq.id AS id,
       coreq.title AS name,
       coreq.subject_id AS subject_id,
       coreq.course_number AS course_number
`

// Resolve builds the full requisites payload for one course: the
// course header, prerequisite edges partitioned into
// alternative-satisfying groups, and the flat corequisite list.
// Reads go through the cache when one is configured.
func (s *RequisitesService) Resolve(ctx context.Context, courseID string) (*model.CourseRequirements, error) {
	cacheKey := RequisitesCachePrefix + courseID

	if s.cache != nil {
		var cached model.CourseRequirements
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrNotFound) {
			log.Printf("Requisites cache read failed for %s: %v", courseID, err)
		}
	}

	course, err := s.lookupCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	prereqs, err := s.collectPrerequisites(ctx, courseID)
	if err != nil {
		return nil, err
	}

	coreqs, err := s.collectCorequisites(ctx, courseID)
	if err != nil {
		return nil, err
	}

	result := &model.CourseRequirements{
		Course:        *course,
		Prerequisites: GroupPrerequisites(prereqs),
		Corequisites:  coreqs,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, result, s.cacheTTL); err != nil {
			log.Printf("Requisites cache write failed for %s: %v", courseID, err)
		}
	}

	return result, nil
}

// lookupCourse fetches the target course header. Zero records means
// the course node does not exist.
func (s *RequisitesService) lookupCourse(ctx context.Context, courseID string) (*model.CourseInfo, error) {
	records, err := s.exec.ExecuteRead(ctx, courseInfoCypher, map[string]any{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrCourseNotFound
	}

	return decodeCourseInfo(records[0])
}

// collectPrerequisites retrieves all single-hop incoming PREREQUISITE
// edges for the course. A non-existent course id yields an empty
// slice, never an error.
func (s *RequisitesService) collectPrerequisites(ctx context.Context, courseID string) ([]model.Prerequisite, error) {
	records, err := s.exec.ExecuteRead(ctx, prerequisitesCypher, map[string]any{"course_id": courseID})
	if err != nil {
		return nil, err
	}

	prereqs := make([]model.Prerequisite, 0, len(records))
	for _, rec := range records {
		p, err := decodePrerequisite(rec)
		if err != nil {
			return nil, err
		}
		prereqs = append(prereqs, *p)
	}

	return prereqs, nil
}

// collectCorequisites retrieves all COREQUISITE edges for the course
// as a flat list; corequisites carry no grouping.
func (s *RequisitesService) collectCorequisites(ctx context.Context, courseID string) ([]model.Corequisite, error) {
	records, err := s.exec.ExecuteRead(ctx, corequisitesCypher, map[string]any{"course_id": courseID})
	if err != nil {
		return nil, err
	}

	coreqs := make([]model.Corequisite, 0, len(records))
	for _, rec := range records {
		c, err := decodeCorequisite(rec)
		if err != nil {
			return nil, err
		}
		coreqs = append(coreqs, *c)
	}

	return coreqs, nil
}

// GroupPrerequisites partitions prerequisite edges into
// alternative-satisfying groups: edges sharing a non-nil
// RelationshipID land in one group, each nil-id edge forms its own
// singleton group. Group order follows first appearance in the input,
// so the same input order always produces the same output. Divergent
// edge attributes within a group are kept verbatim; this is a
// pass-through partition, not a validator.
func GroupPrerequisites(prereqs []model.Prerequisite) [][]model.Prerequisite {
	groups := make([][]model.Prerequisite, 0, len(prereqs))
	index := make(map[string]int)

	for _, p := range prereqs {
		if p.RelationshipID == nil {
			groups = append(groups, []model.Prerequisite{p})
			continue
		}

		if i, ok := index[*p.RelationshipID]; ok {
			groups[i] = append(groups[i], p)
			continue
		}

		index[*p.RelationshipID] = len(groups)
		groups = append(groups, []model.Prerequisite{p})
	}

	return groups
}

func decodeCourseInfo(rec graph.Record) (*model.CourseInfo, error) {
	var (
		course model.CourseInfo
		err    error
	)
	if course.ID, err = rec.String("id"); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	if course.Name, err = rec.String("name"); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	if course.SubjectID, err = rec.String("subject_id"); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	if course.CourseNumber, err = rec.String("course_number"); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	return &course, nil
}

func decodePrerequisite(rec graph.Record) (*model.Prerequisite, error) {
	var (
		p   model.Prerequisite
		err error
	)
	if p.ID, err = rec.String("id"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.Name, err = rec.String("name"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.SubjectID, err = rec.String("subject_id"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.CourseNumber, err = rec.String("course_number"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.RelationshipType, err = rec.String("relationship_type"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.RelationshipID, err = rec.NullableString("relationship_id"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.CanTakeConcurrent, err = rec.Bool("can_take_concurrent"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	if p.MinimumGrade, err = rec.String("minimum_grade"); err != nil {
		return nil, fmt.Errorf("decode prerequisite: %w", err)
	}
	return &p, nil
}

func decodeCorequisite(rec graph.Record) (*model.Corequisite, error) {
	var (
		c   model.Corequisite
		err error
	)
	if c.ID, err = rec.String("id"); err != nil {
		return nil, fmt.Errorf("decode corequisite: %w", err)
	}
	if c.Name, err = rec.String("name"); err != nil {
		return nil, fmt.Errorf("decode corequisite: %w", err)
	}
	if c.SubjectID, err = rec.String("subject_id"); err != nil {
		return nil, fmt.Errorf("decode corequisite: %w", err)
	}
	if c.CourseNumber, err = rec.String("course_number"); err != nil {
		return nil, fmt.Errorf("decode corequisite: %w", err)
	}
	return &c, nil
}
