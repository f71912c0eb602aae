package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-app/models"
)

func bruschetta() models.MenuEntry {
	return models.MenuEntry{DishName: "Bruschetta", Description: "...", Price: 7.50, CourseType: models.CourseStarter}
}

func lasagna() models.MenuEntry {
	return models.MenuEntry{DishName: "Beef Lasagna", Description: "...", Price: 15.99, CourseType: models.CourseMainCourse}
}

func TestAddEntryDoesNotTouchInput(t *testing.T) {
	base := make(models.MenuCollection, 1, 4)
	base[0] = bruschetta()

	first := AddEntry(base, lasagna())
	second := AddEntry(base, bruschetta())

	assert.Len(t, base, 1)
	assert.Equal(t, "Beef Lasagna", first[1].DishName)
	assert.Equal(t, "Bruschetta", second[1].DishName)
}

func TestRemoveEntryAt(t *testing.T) {
	c := models.MenuCollection{bruschetta(), lasagna(), bruschetta()}

	out, err := RemoveEntryAt(c, 1)
	require.NoError(t, err)
	assert.Equal(t, models.MenuCollection{bruschetta(), bruschetta()}, out)
	assert.Len(t, c, 3)
	assert.Equal(t, "Beef Lasagna", c[1].DishName)

	for _, idx := range []int{-1, 3, 100} {
		_, err := RemoveEntryAt(c, idx)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", idx)
	}

	_, err = RemoveEntryAt(nil, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestMenuStoreTransitions(t *testing.T) {
	empty := NewMenuStore(StoreConfig{})
	assert.Equal(t, 0, empty.Len())

	one := empty.Add(bruschetta())
	two := one.Add(lasagna())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	removed, err := two.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, models.MenuCollection{lasagna()}, removed.Snapshot())
	assert.Equal(t, 2, two.Len())

	same, err := two.RemoveAt(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, two.Snapshot(), same.Snapshot())

	cleared := two.Clear()
	assert.Equal(t, 0, cleared.Len())
	assert.NotNil(t, cleared.Snapshot())
	assert.Equal(t, 2, two.Len())
}

func TestMenuStoreSnapshotIsCopy(t *testing.T) {
	s := NewMenuStore(StoreConfig{}).Add(bruschetta())
	snap := s.Snapshot()
	snap[0].DishName = "changed"
	assert.Equal(t, "Bruschetta", s.Snapshot()[0].DishName)

	received := models.MenuCollection{lasagna()}
	fromSnap := StoreFromSnapshot(received)
	received[0].DishName = "changed"
	assert.Equal(t, "Beef Lasagna", fromSnap.Snapshot()[0].DishName)

	assert.Equal(t, 0, StoreFromSnapshot(nil).Len())
}

func TestNewMenuStoreSeeding(t *testing.T) {
	initial := models.MenuCollection{lasagna()}

	s := NewMenuStore(StoreConfig{IncludeSamples: true, InitialEntries: initial})
	snap := s.Snapshot()
	require.Len(t, snap, len(SampleEntries())+1)
	assert.Equal(t, SampleEntries(), snap[:len(SampleEntries())])
	assert.Equal(t, lasagna(), snap[len(snap)-1])

	onlyInitial := NewMenuStore(StoreConfig{InitialEntries: initial})
	assert.Equal(t, initial, onlyInitial.Snapshot())
}
