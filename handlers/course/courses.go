package course

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/openmario/api/model"
	"github.com/openmario/api/services"
	"github.com/openmario/api/utils/response"
	"github.com/openmario/api/utils/validation"
)

// RequisitesResolver resolves the grouped prerequisite/corequisite
// payload for one course
type RequisitesResolver interface {
	Resolve(ctx context.Context, courseID string) (*model.CourseRequirements, error)
}

// CourseFetcher serves single-course lookups
type CourseFetcher interface {
	GetCourse(ctx context.Context, courseID string) (*model.CourseDetail, error)
	GetAvailabilities(ctx context.Context, courseID string) ([]model.CourseAvailability, error)
}

// CourseHandler handles course graph requests
type CourseHandler struct {
	requisites RequisitesResolver
	courses    CourseFetcher
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(requisites RequisitesResolver, courses CourseFetcher) *CourseHandler {
	return &CourseHandler{
		requisites: requisites,
		courses:    courses,
	}
}

// GetRequisites handles GET /courses/prereqs/:course_id
func (h *CourseHandler) GetRequisites(c *fiber.Ctx) error {
	courseID := c.Params("course_id")
	if !validation.ValidateUUID(courseID) {
		return response.BadRequest(c, "Invalid uuid")
	}

	requirements, err := h.requisites.Resolve(c.UserContext(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("Error fetching requisites for course %s: %v", courseID, err)
		return response.InternalServerError(c)
	}

	return response.Data(c, requirements)
}

// GetCourse handles GET /courses/:course_id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("course_id")
	if !validation.ValidateUUID(courseID) {
		return response.BadRequest(c, "Invalid uuid")
	}

	course, err := h.courses.GetCourse(c.UserContext(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("Error fetching course %s: %v", courseID, err)
		return response.InternalServerError(c)
	}

	return response.Data(c, course)
}

// GetAvailabilities handles GET /courses/availabilities/:course_id
func (h *CourseHandler) GetAvailabilities(c *fiber.Ctx) error {
	courseID := c.Params("course_id")
	if !validation.ValidateUUID(courseID) {
		return response.BadRequest(c, "Invalid uuid")
	}

	availabilities, err := h.courses.GetAvailabilities(c.UserContext(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("Error fetching availabilities for course %s: %v", courseID, err)
		return response.InternalServerError(c)
	}

	return response.List(c, availabilities)
}
