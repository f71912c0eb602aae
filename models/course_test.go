package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoursesOrder(t *testing.T) {
	assert.Equal(t, []CourseType{CourseStarter, CourseMainCourse, CourseDessert}, Courses())

	// callers get their own slice
	got := Courses()
	got[0] = CourseDessert
	assert.Equal(t, CourseStarter, Courses()[0])
}

func TestIsValidCourse(t *testing.T) {
	assert.True(t, IsValidCourse("Starter"))
	assert.True(t, IsValidCourse("Main Course"))
	assert.True(t, IsValidCourse("Dessert"))

	assert.False(t, IsValidCourse("MainCourse"))
	assert.False(t, IsValidCourse("starter"))
	assert.False(t, IsValidCourse(" Dessert"))
	assert.False(t, IsValidCourse(""))
}

func TestParseCourse(t *testing.T) {
	c, err := ParseCourse("Main Course")
	assert.NoError(t, err)
	assert.Equal(t, CourseMainCourse, c)

	_, err = ParseCourse("Drinks")
	assert.True(t, errors.Is(err, ErrInvalidCourse))
}
