package services

import (
	"fmt"
	"os"

	"github.com/yeremiapane/menu-app/models"
	"github.com/yeremiapane/menu-app/utils"
	"gopkg.in/yaml.v3"
)

// SampleEntries returns the predefined dishes shown on a fresh Home screen.
func SampleEntries() models.MenuCollection {
	return models.MenuCollection{
		{
			DishName:    "Bruschetta",
			Description: "Grilled bread with tomato, garlic and basil",
			Price:       7.50,
			CourseType:  models.CourseStarter,
		},
		{
			DishName:    "Beef Lasagna",
			Description: "Layers of pasta, beef ragu and bechamel",
			Price:       15.99,
			CourseType:  models.CourseMainCourse,
		},
		{
			DishName:    "Tiramisu",
			Description: "Coffee-soaked ladyfingers with mascarpone",
			Price:       6.25,
			CourseType:  models.CourseDessert,
		},
	}
}

type seedFile struct {
	Entries []models.MenuEntry `yaml:"entries"`
}

// LoadSeedFile reads initial entries from a YAML file:
//
//	entries:
//	  - dish_name: Bruschetta
//	    price: 7.5
//	    course_type: Starter
func LoadSeedFile(path string) (models.MenuCollection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes YAML seed data and validates every entry.
func ParseSeed(raw []byte) (models.MenuCollection, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make(models.MenuCollection, 0, len(f.Entries))
	for i, e := range f.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		out = append(out, e)
	}
	utils.InfoLogger.Printf("Loaded %d seed menu entries", len(out))
	return out, nil
}
