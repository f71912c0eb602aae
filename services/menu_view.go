package services

import (
	"github.com/yeremiapane/menu-app/models"
)

// FilterByCourse returns the entries of the given course in their original order.
// A nil course returns the whole collection.
func FilterByCourse(collection models.MenuCollection, course *models.CourseType) models.MenuCollection {
	if course == nil {
		return collection.Clone()
	}
	out := models.MenuCollection{}
	for _, e := range collection {
		if e.CourseType == *course {
			out = append(out, e)
		}
	}
	return out
}

func Count(collection models.MenuCollection) int {
	return len(collection)
}

// AveragePrice is the mean price, 0 for an empty collection.
// The mean is updated per entry, so huge prices never overflow a running sum.
func AveragePrice(collection models.MenuCollection) float64 {
	var mean float64
	for i, e := range collection {
		mean += (e.Price - mean) / float64(i+1)
	}
	return mean
}

// AveragePriceByCourse has one key per catalog course, 0 for courses with no entries.
func AveragePriceByCourse(collection models.MenuCollection) map[models.CourseType]float64 {
	courses := models.Courses()
	out := make(map[models.CourseType]float64, len(courses))
	for _, c := range courses {
		out[c] = 0
	}

	counts := make(map[models.CourseType]int)
	for _, e := range collection {
		if _, ok := out[e.CourseType]; !ok {
			continue
		}
		counts[e.CourseType]++
		out[e.CourseType] += (e.Price - out[e.CourseType]) / float64(counts[e.CourseType])
	}
	return out
}

// FindOneByCourse returns the first entry of the course, if any.
func FindOneByCourse(collection models.MenuCollection, course models.CourseType) (models.MenuEntry, bool) {
	for _, e := range collection {
		if e.CourseType == course {
			return e, true
		}
	}
	return models.MenuEntry{}, false
}

// Representatives picks one dish per course, in catalog order. Courses without a dish are skipped.
func Representatives(collection models.MenuCollection) models.MenuCollection {
	out := models.MenuCollection{}
	for _, c := range models.Courses() {
		if e, ok := FindOneByCourse(collection, c); ok {
			out = append(out, e)
		}
	}
	return out
}

// ViewConfig toggles optional parts of a Projection.
type ViewConfig struct {
	GroupByCourse bool
}

type MenuView struct {
	Config ViewConfig
}

func NewMenuView(cfg ViewConfig) *MenuView {
	return &MenuView{Config: cfg}
}

// Projection is what the list screen renders. Positions[i] is the index of Entries[i]
// in the full collection.
type Projection struct {
	Entries         models.MenuCollection         `json:"entries"`
	Keys            []string                      `json:"keys"`
	Positions       []int                         `json:"positions"`
	Count           int                           `json:"count"`
	TotalCount      int                           `json:"total_count"`
	AveragePrice    float64                       `json:"average_price"`
	AverageByCourse map[models.CourseType]float64 `json:"average_by_course,omitempty"`
	Representatives models.MenuCollection         `json:"representatives,omitempty"`
	Course          *models.CourseType            `json:"course,omitempty"`
}

// Project computes the list projection. Count and average follow the filter;
// per-course averages and representatives always cover the whole collection.
func (v *MenuView) Project(collection models.MenuCollection, course *models.CourseType) Projection {
	entries := FilterByCourse(collection, course)

	keys := make([]string, len(entries))
	for i := range entries {
		keys[i] = entries.Key(i)
	}

	// posisi di koleksi penuh, dipakai untuk removeAt
	positions := make([]int, 0, len(entries))
	for i, e := range collection {
		if course == nil || e.CourseType == *course {
			positions = append(positions, i)
		}
	}

	p := Projection{
		Entries:      entries,
		Keys:         keys,
		Positions:    positions,
		Count:        Count(entries),
		TotalCount:   Count(collection),
		AveragePrice: AveragePrice(entries),
		Course:       course,
	}
	if v.Config.GroupByCourse {
		p.AverageByCourse = AveragePriceByCourse(collection)
		p.Representatives = Representatives(collection)
	}
	return p
}
