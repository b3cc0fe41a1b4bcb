package course

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/store"
	"eduportal/utils/middleware"
	"eduportal/utils/response"
	"eduportal/utils/validation"
)

// CourseHandler groups the course catalog and enrollment endpoints.
type CourseHandler struct {
	records   *store.RecordStore
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(records *store.RecordStore) *CourseHandler {
	return &CourseHandler{
		records:   records,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents a new catalog entry
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Instructor  string `json:"instructor" validate:"required"`
	Credits     int    `json:"credits" validate:"gte=0"`
	Semester    string `json:"semester"`
	Year        string `json:"year"`
}

// UpdateCourseRequest carries optional catalog updates
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Instructor  *string `json:"instructor"`
	Credits     *int    `json:"credits" validate:"omitempty,gte=0"`
	Semester    *string `json:"semester"`
	Year        *string `json:"year"`
}

// ProgressRequest records course progress for the caller's enrollment
type ProgressRequest struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

// List returns the full catalog. Public.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.records.ListCourses(c.Context())
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, courses)
}

// Get returns one course. Public.
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	course, err := h.records.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, course)
}

// Create adds a catalog entry. Route is admin-gated.
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	course, err := h.records.AddCourse(c.Context(), sess, store.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Credits:     req.Credits,
		Semester:    req.Semester,
		Year:        req.Year,
	})
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Created(c, course)
}

// Update edits a catalog entry. Route is admin-gated.
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	course, err := h.records.UpdateCourse(c.Context(), sess, c.Params("id"), store.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Credits:     req.Credits,
		Semester:    req.Semester,
		Year:        req.Year,
	})
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, course)
}

// Delete removes a catalog entry. Route is admin-gated.
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	if err := h.records.DeleteCourse(c.Context(), sess, c.Params("id")); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Course deleted", nil)
}

// Enroll adds the logged-in user to the course. Enrolling twice is a
// no-op.
func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	if err := h.records.Enroll(c.Context(), sess, sess.User.ID, c.Params("id")); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Enrolled", nil)
}

// SetProgress records the logged-in user's progress in the course.
func (h *CourseHandler) SetProgress(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	var req ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	enrollment, err := h.records.SetProgress(c.Context(), sess, sess.User.ID, c.Params("id"), req.Progress)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, enrollment)
}

// MyCourses returns the logged-in user's enrolled-courses view.
func (h *CourseHandler) MyCourses(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	courses, err := h.records.EnrolledCourses(c.Context(), sess, sess.User.ID)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, courses)
}
