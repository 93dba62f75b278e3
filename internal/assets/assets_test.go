package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/jask/storefront/internal/catalog"
)

func TestEveryCatalogDescriptionIsEmbedded(t *testing.T) {
	t.Parallel()

	r := NewRenderer(StylePlain)
	refs, err := r.Refs()
	require.NoError(t, err)
	for _, app := range catalog.Default() {
		require.Contains(t, refs, app.DescriptionAsset, "app %s", app.ID)
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md, err := NewRenderer(StylePlain).Markdown("aurora_pay.html")
	require.NoError(t, err)
	want := strings.Join([]string{
		"# Aurora Pay",
		"Бесконтактные платежи, **единый кошелек** для подписок и понятная аналитика расходов.",
		"## Возможности",
		"- Оплата телефоном в одно касание\n- Все подписки и автоплатежи в одном списке\n- Еженедельные отчеты по категориям трат",
		"Подробнее на [aurora-pay.example](https://aurora-pay.example).",
	}, "\n\n") + "\n"
	require.Equal(t, want, md)
}

func TestHTMLToMarkdownOrderedListAndBreaks(t *testing.T) {
	t.Parallel()

	md, err := HTMLToMarkdown(strings.NewReader(`<ol><li>one</li><li> <i>two</i> </li></ol><p>a<br>b</p><script>x()</script>`))
	require.NoError(t, err)
	require.Equal(t, "1. one\n2. *two*\n\na  \nb\n", md)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(StylePlain).Render("city_metro.html", 60)
	require.NoError(t, err)
	require.Contains(t, out, "City Metro")
	require.Contains(t, out, "Интерактивная схема с пересадками")
}

func TestUnknownAssets(t *testing.T) {
	t.Parallel()

	r := NewRenderer(StylePlain)
	for _, ref := range []string{"", "missing.html", "../assets.go", "descriptions/aurora_pay.html"} {
		_, err := r.Render(ref, 40)
		require.ErrorIs(t, err, ErrAssetNotFound, "ref %q", ref)
	}
}

func TestRendererFS(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{"x.html": {Data: []byte("<h2>Hi</h2><p>there</p>")}}
	md, err := NewRendererFS(files, "").Markdown("x.html")
	require.NoError(t, err)
	require.Equal(t, "## Hi\n\nthere\n", md)
}
