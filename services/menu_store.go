package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/menu-app/models"
)

var ErrIndexOutOfRange = errors.New("menu index out of range")

// AddEntry returns a new collection with entry appended. The input is not modified.
func AddEntry(collection models.MenuCollection, entry models.MenuEntry) models.MenuCollection {
	out := make(models.MenuCollection, len(collection), len(collection)+1)
	copy(out, collection)
	return append(out, entry)
}

// RemoveEntryAt returns a new collection without the entry at index.
// Later entries shift down by one, so indices must be re-derived from the result.
func RemoveEntryAt(collection models.MenuCollection, index int) (models.MenuCollection, error) {
	if index < 0 || index >= len(collection) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(collection))
	}
	out := make(models.MenuCollection, 0, len(collection)-1)
	out = append(out, collection[:index]...)
	return append(out, collection[index+1:]...), nil
}

// StoreConfig seeds a new MenuStore.
type StoreConfig struct {
	IncludeSamples bool
	InitialEntries models.MenuCollection
}

// MenuStore holds one session's menu. It is a value: every transition returns a new
// store and leaves the receiver untouched.
type MenuStore struct {
	entries models.MenuCollection
}

func NewMenuStore(cfg StoreConfig) MenuStore {
	var entries models.MenuCollection
	if cfg.IncludeSamples {
		entries = append(entries, SampleEntries()...)
	}
	entries = append(entries, cfg.InitialEntries...)
	return MenuStore{entries: entries.Clone()}
}

// StoreFromSnapshot wraps a received snapshot. A nil snapshot is an empty store.
func StoreFromSnapshot(snapshot models.MenuCollection) MenuStore {
	return MenuStore{entries: snapshot.Clone()}
}

func (s MenuStore) Add(entry models.MenuEntry) MenuStore {
	return MenuStore{entries: AddEntry(s.entries, entry)}
}

func (s MenuStore) RemoveAt(index int) (MenuStore, error) {
	entries, err := RemoveEntryAt(s.entries, index)
	if err != nil {
		return s, err
	}
	return MenuStore{entries: entries}, nil
}

func (s MenuStore) Clear() MenuStore {
	return MenuStore{entries: models.MenuCollection{}}
}

// Snapshot returns a copy of the current entries.
func (s MenuStore) Snapshot() models.MenuCollection {
	return s.entries.Clone()
}

func (s MenuStore) Len() int {
	return len(s.entries)
}
