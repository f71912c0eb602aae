package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-app/models"
)

func TestSampleEntriesAreValid(t *testing.T) {
	samples := SampleEntries()
	require.Len(t, samples, 3)
	for _, e := range samples {
		assert.NoError(t, e.Validate())
	}
	// every course has a sample
	assert.Len(t, Representatives(samples), len(models.Courses()))
}

func TestParseSeed(t *testing.T) {
	raw := []byte(`
entries:
  - dish_name: Bruschetta
    description: Grilled bread
    price: 7.5
    course_type: Starter
  - dish_name: Panna Cotta
    price: 5
    course_type: Dessert
`)
	entries, err := ParseSeed(raw)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bruschetta", entries[0].DishName)
	assert.Equal(t, models.CourseDessert, entries[1].CourseType)
	assert.Equal(t, float64(5), entries[1].Price)
}

func TestParseSeedRejectsInvalidEntry(t *testing.T) {
	raw := []byte(`
entries:
  - dish_name: Mystery
    price: 3
    course_type: Brunch
`)
	_, err := ParseSeed(raw)
	assert.True(t, errors.Is(err, models.ErrInvalidCourse))

	_, err = ParseSeed([]byte("entries: [unterminated"))
	assert.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - dish_name: Soup\n    price: 4\n    course_type: Starter\n"), 0o644))

	entries, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
