package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDishName = errors.New("dish name is required")
	ErrNegativePrice = errors.New("price must not be negative")
)

// MenuEntry is one dish on the menu. Entries are values and are never edited in place.
type MenuEntry struct {
	DishName    string     `json:"dish_name" yaml:"dish_name"`
	Description string     `json:"description" yaml:"description"`
	Price       float64    `json:"price" yaml:"price"`
	CourseType  CourseType `json:"course_type" yaml:"course_type"`
}

// NewMenuEntry builds a well-formed entry or reports which field is wrong.
func NewMenuEntry(dishName, description string, price float64, course string) (MenuEntry, error) {
	entry := MenuEntry{
		DishName:    strings.TrimSpace(dishName),
		Description: description,
		Price:       price,
		CourseType:  CourseType(course),
	}
	if err := entry.Validate(); err != nil {
		return MenuEntry{}, err
	}
	return entry, nil
}

func (e MenuEntry) Validate() error {
	if strings.TrimSpace(e.DishName) == "" {
		return ErrEmptyDishName
	}
	if e.Price < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativePrice, e.Price)
	}
	if !IsValidCourse(string(e.CourseType)) {
		return fmt.Errorf("%w: %q", ErrInvalidCourse, e.CourseType)
	}
	return nil
}

// DisplayPrice formats the price the way the list screen shows it, e.g. "$7.50".
func (e MenuEntry) DisplayPrice() string {
	return fmt.Sprintf("$%.2f", e.Price)
}

// MarshalJSON adds display_price next to the raw price. Decoding ignores it.
func (e MenuEntry) MarshalJSON() ([]byte, error) {
	type plainEntry MenuEntry
	return json.Marshal(struct {
		plainEntry
		DisplayPrice string `json:"display_price"`
	}{plainEntry(e), e.DisplayPrice()})
}

// MenuCollection is an ordered list of entries. Position is identity.
type MenuCollection []MenuEntry

// Clone returns an independent copy; a nil collection clones to an empty one.
func (c MenuCollection) Clone() MenuCollection {
	out := make(MenuCollection, len(c))
	copy(out, c)
	return out
}

// Key returns the list key for the entry at i, "<dish name>-<index>".
func (c MenuCollection) Key(i int) string {
	return fmt.Sprintf("%s-%d", c[i].DishName, i)
}
