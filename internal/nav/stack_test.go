package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPopUpTo(t *testing.T) {
	var s Stack
	s.Push(Onboarding)
	s.Push(Store)
	s.Push(Detail("a"))

	require.False(t, s.PopUpTo(KindCategories, true))
	require.Equal(t, 3, s.Len())

	require.True(t, s.PopUpTo(KindStore, false))
	require.Equal(t, []Route{Onboarding, Store}, s.Routes())

	require.True(t, s.PopUpTo(KindOnboarding, true))
	require.Equal(t, 0, s.Len())
	_, ok := s.Top()
	require.False(t, ok)
	_, ok = s.Pop()
	require.False(t, ok)
}

func TestStackReplace(t *testing.T) {
	var s Stack
	s.Replace(Store)
	require.Equal(t, []Route{Store}, s.Routes())
	s.Push(Categories)
	s.Replace(Detail("x"))
	require.Equal(t, []Route{Store, Detail("x")}, s.Routes())
}

func TestRouteString(t *testing.T) {
	require.Equal(t, "store", Store.String())
	require.Equal(t, "detail/aurora-pay", Detail("aurora-pay").String())
	require.Equal(t, "screenshot/aurora-pay/aurora-pay-cards", Screenshot("aurora-pay", "aurora-pay-cards").String())
}
