package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/models"
	"github.com/yeremiapane/menu-app/utils"
)

type CourseController struct{}

func NewCourseController() *CourseController {
	return &CourseController{}
}

// GetAllCourses feeds the course picker on the Add Menu screen.
func (cc *CourseController) GetAllCourses(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All course types", models.Courses())
}

// ValidateCourse
// Endpoint: GET /courses/validate?label=<label>
func (cc *CourseController) ValidateCourse(c *gin.Context) {
	label, ok := c.GetQuery("label")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'label' is required"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Course validation", gin.H{
		"label": label,
		"valid": models.IsValidCourse(label),
	})
}
