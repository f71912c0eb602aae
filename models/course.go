package models

import (
	"errors"
	"fmt"
)

// CourseType is the course a dish belongs to. The label is also the display value.
type CourseType string

const (
	CourseStarter    CourseType = "Starter"
	CourseMainCourse CourseType = "Main Course"
	CourseDessert    CourseType = "Dessert"
)

var ErrInvalidCourse = errors.New("invalid course type")

// urutan tampilan tetap
var courseCatalog = [...]CourseType{CourseStarter, CourseMainCourse, CourseDessert}

// Courses returns the fixed course enumeration in display order.
// The caller owns the returned slice.
func Courses() []CourseType {
	out := make([]CourseType, len(courseCatalog))
	copy(out, courseCatalog[:])
	return out
}

// IsValidCourse reports whether candidate matches a course label exactly.
func IsValidCourse(candidate string) bool {
	for _, c := range courseCatalog {
		if string(c) == candidate {
			return true
		}
	}
	return false
}

func ParseCourse(label string) (CourseType, error) {
	if !IsValidCourse(label) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCourse, label)
	}
	return CourseType(label), nil
}

func (c CourseType) String() string {
	return string(c)
}
