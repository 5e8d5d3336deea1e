package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/service"
)

// CourseHandler handles course CRUD and the buy operation.
type CourseHandler struct {
	courseService   service.CourseService
	purchaseService service.PurchaseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService, purchaseService service.PurchaseService) *CourseHandler {
	return &CourseHandler{
		courseService:   courseService,
		purchaseService: purchaseService,
	}
}

// UpdateCourseRequest is a partial update; absent fields keep prior values.
type UpdateCourseRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Image       *CourseImagePatch `json:"image"`
}

// CourseImagePatch replaces the stored image reference wholesale.
type CourseImagePatch struct {
	ExternalID string `json:"public_id"`
	URL        string `json:"url"`
}

// Create godoc
// @Summary Create a course
// @Tags course
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param image formData file true "Course image (jpeg, png, or gif)"
// @Success 201 {object} model.Course
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /course/create [post]
func (h *CourseHandler) Create(c echo.Context) error {
	adminID, err := principalID(c, auth.VariantAdmin)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	priceStr := c.FormValue("price")
	if title == "" || description == "" || priceStr == "" {
		return httpError(errors.ErrMissingFields)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return httpError(errors.ErrMissingFields)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return httpError(errors.ErrMissingFields)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return httpError(errors.ErrMissingFields)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read image")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	course, err := h.courseService.Create(c.Request().Context(), adminID, service.CreateCourseInput{
		Title:            title,
		Description:      description,
		Price:            price,
		Image:            data,
		ImageName:        fileHeader.Filename,
		ImageContentType: contentType,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, course)
}

// Update godoc
// @Summary Update a course owned by the acting admin
// @Tags course
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body UpdateCourseRequest true "Partial update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /course/update/{courseId} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	adminID, err := principalID(c, auth.VariantAdmin)
	if err != nil {
		return err
	}
	courseID, err := parseCourseID(c)
	if err != nil {
		return httpError(err)
	}

	var req UpdateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	patch := service.UpdateCoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if req.Image != nil {
		patch.Image = &model.CourseImage{
			ExternalID: req.Image.ExternalID,
			URL:        req.Image.URL,
		}
	}

	course, err := h.courseService.Update(c.Request().Context(), courseID, adminID, patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "course updated successfully",
		"course":  course,
	})
}

// Delete godoc
// @Summary Delete a course owned by the acting admin
// @Tags course
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /course/delete/{courseId} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	adminID, err := principalID(c, auth.VariantAdmin)
	if err != nil {
		return err
	}
	courseID, err := parseCourseID(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.courseService.Delete(c.Request().Context(), courseID, adminID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "course deleted successfully"})
}

// List godoc
// @Summary List all courses
// @Tags course
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /course/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courseService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(courses),
		"courses": courses,
	})
}

// GetByID godoc
// @Summary Get course details
// @Tags course
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /course/{courseId} [get]
func (h *CourseHandler) GetByID(c echo.Context) error {
	courseID, err := parseCourseID(c)
	if err != nil {
		return httpError(err)
	}

	course, err := h.courseService.GetByID(c.Request().Context(), courseID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "course found",
		"course":  course,
	})
}

// Buy godoc
// @Summary Purchase a course as the acting user
// @Tags course
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /course/buy/{courseId} [post]
func (h *CourseHandler) Buy(c echo.Context) error {
	userID, err := principalID(c, auth.VariantUser)
	if err != nil {
		return err
	}
	courseID, err := parseCourseID(c)
	if err != nil {
		return httpError(err)
	}

	purchase, err := h.purchaseService.Buy(c.Request().Context(), userID, courseID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "course purchased successfully",
		"purchase": purchase,
	})
}

// parseCourseID distinguishes a malformed id (400) from a missing course (404).
func parseCourseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidCourseID
	}
	return id, nil
}
