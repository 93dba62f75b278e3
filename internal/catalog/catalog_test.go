package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindEveryApp(t *testing.T) {
	t.Parallel()

	s := MustDefault()
	for _, want := range Default() {
		got, ok := s.Find(want.ID)
		require.True(t, ok, "find %s", want.ID)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Find(%s) mismatch (-want +got):\n%s", want.ID, diff)
		}
	}

	aurora, ok := s.Find("aurora-pay")
	require.True(t, ok)
	require.Equal(t, "Aurora Pay", aurora.Name)

	_, ok = s.Find("nonexistent")
	require.False(t, ok)
}

func TestListIsStableCopy(t *testing.T) {
	t.Parallel()

	s := MustDefault()
	first := s.List()
	first[0].Name = "mutated"
	first[0].Screenshots[0].Label = "mutated"

	second := s.List()
	require.Equal(t, "aurora-pay", second[0].ID)
	require.Equal(t, "Aurora Pay", second[0].Name)
	require.Len(t, second, 5)
	got := make([]string, 0, len(second))
	for _, a := range second {
		got = append(got, a.ID)
	}
	require.Equal(t, []string{"aurora-pay", "city-metro", "state-services", "stellar-labs", "craft-tools"}, got)
}

func TestCategoryCountsCoverCatalog(t *testing.T) {
	t.Parallel()

	apps := append(Default(), App{ID: "aurora-pay-2", Name: "Aurora Pay 2", Category: Finance})
	s, err := New(apps)
	require.NoError(t, err)

	counts := s.CategoryCounts()
	total := 0
	seen := map[Category]bool{}
	for _, c := range counts {
		require.False(t, seen[c.Category], "category %s listed twice", c.Category)
		require.Positive(t, c.Count)
		seen[c.Category] = true
		total += c.Count
	}
	require.Equal(t, s.Len(), total)
	require.Len(t, counts, 5)
	require.Equal(t, CategoryCount{Category: Finance, Count: 2}, counts[0])

	// deterministic for the same snapshot
	require.Equal(t, counts, s.CategoryCounts())

	sorted := SortByCount(counts)
	require.Equal(t, Finance, sorted[0].Category)
	require.Equal(t, Transport, sorted[1].Category)
}

func TestCategoryCountsOmitEmpty(t *testing.T) {
	t.Parallel()

	s, err := New([]App{{ID: "a", Category: Games}, {ID: "b", Category: Games}})
	require.NoError(t, err)
	require.Equal(t, []CategoryCount{{Category: Games, Count: 2}}, s.CategoryCounts())
}

func TestNewRejectsMalformedCatalog(t *testing.T) {
	t.Parallel()

	_, err := New([]App{{ID: "a", Category: Tools}, {ID: "a", Category: Tools}})
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = New([]App{{ID: "a", Category: Category(42)}})
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = New([]App{{ID: "a", Category: Tools, Screenshots: []Screenshot{{ID: "x"}, {ID: "x"}}}})
	require.ErrorIs(t, err, ErrDuplicateScreenshotID)

	// screenshot ids only need to be unique within their app
	_, err = New([]App{
		{ID: "a", Category: Tools, Screenshots: []Screenshot{{ID: "x"}}},
		{ID: "b", Category: Tools, Screenshots: []Screenshot{{ID: "x"}}},
	})
	require.NoError(t, err)
}

func TestAppScreenshot(t *testing.T) {
	t.Parallel()

	app, ok := MustDefault().Find("aurora-pay")
	require.True(t, ok)

	shot, ok := app.Screenshot("aurora-pay-cards")
	require.True(t, ok)
	require.Equal(t, "Карты", shot.Label)

	_, ok = app.Screenshot("does-not-exist")
	require.False(t, ok)
}
