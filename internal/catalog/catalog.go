package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateID           = errors.New("catalog: duplicate app id")
	ErrDuplicateScreenshotID = errors.New("catalog: duplicate screenshot id")
	ErrUnknownCategory       = errors.New("catalog: unknown category")
	ErrEmptyID               = errors.New("catalog: empty id")
)

// Store is a read-only, ordered set of apps. It is safe for concurrent use
// because nothing mutates it after New returns.
type Store struct {
	apps  []App
	index map[string]int
}

// New validates apps and builds a store over a private copy of them.
func New(apps []App) (*Store, error) {
	s := &Store{
		apps:  make([]App, 0, len(apps)),
		index: make(map[string]int, len(apps)),
	}
	for _, a := range apps {
		if a.ID == "" {
			return nil, fmt.Errorf("app %q: %w", a.Name, ErrEmptyID)
		}
		if _, dup := s.index[a.ID]; dup {
			return nil, fmt.Errorf("app %s: %w", a.ID, ErrDuplicateID)
		}
		if !a.Category.Valid() {
			return nil, fmt.Errorf("app %s: %w", a.ID, ErrUnknownCategory)
		}
		seen := make(map[string]struct{}, len(a.Screenshots))
		for _, sh := range a.Screenshots {
			if sh.ID == "" {
				return nil, fmt.Errorf("app %s screenshot %q: %w", a.ID, sh.Label, ErrEmptyID)
			}
			if _, dup := seen[sh.ID]; dup {
				return nil, fmt.Errorf("app %s screenshot %s: %w", a.ID, sh.ID, ErrDuplicateScreenshotID)
			}
			seen[sh.ID] = struct{}{}
		}
		a.Screenshots = append([]Screenshot(nil), a.Screenshots...)
		s.index[a.ID] = len(s.apps)
		s.apps = append(s.apps, a)
	}
	return s, nil
}

// MustDefault returns the built-in catalog and panics if it is malformed.
func MustDefault() *Store {
	s, err := New(Default())
	if err != nil {
		panic(err)
	}
	return s
}

// List returns every app in catalog order.
func (s *Store) List() []App {
	return append([]App(nil), s.apps...)
}

// Len is the number of apps in the catalog.
func (s *Store) Len() int { return len(s.apps) }

// Find looks an app up by id. A miss is a normal outcome.
func (s *Store) Find(id string) (App, bool) {
	i, ok := s.index[id]
	if !ok {
		return App{}, false
	}
	return s.apps[i], true
}

// CategoryCounts groups the catalog by category. Categories appear in the
// order their first app appears; empty categories are omitted.
func (s *Store) CategoryCounts() []CategoryCount {
	pos := map[Category]int{}
	var out []CategoryCount
	for _, a := range s.apps {
		i, ok := pos[a.Category]
		if !ok {
			pos[a.Category] = len(out)
			out = append(out, CategoryCount{Category: a.Category, Count: 1})
			continue
		}
		out[i].Count++
	}
	return out
}

// SortByCount returns a copy of counts ordered by count descending. Ties keep
// their input order.
func SortByCount(counts []CategoryCount) []CategoryCount {
	out := append([]CategoryCount(nil), counts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
