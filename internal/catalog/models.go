package catalog

// Category is one of the fixed storefront sections.
type Category int

const (
	Finance Category = iota + 1
	Tools
	Games
	Government
	Transport
)

// Categories lists every known category in display order.
var Categories = []Category{Finance, Tools, Games, Government, Transport}

var categoryNames = map[Category]string{
	Finance:    "Finance",
	Tools:      "Tools",
	Games:      "Games",
	Government: "Government",
	Transport:  "Transport",
}

var categoryLabels = map[Category]string{
	Finance:    "Финансы",
	Tools:      "Инструменты",
	Games:      "Игры",
	Government: "Государственные",
	Transport:  "Транспорт",
}

var categoryHints = map[Category]string{
	Finance:    "Онлайн‑банкинг, кошельки и страховые сервисы",
	Government: "Документы, обращения и цифровые госуслуги",
	Transport:  "Маршруты, билеты и городской транспорт",
	Games:      "Игры, турниры и социальные активности",
	Tools:      "Производительность, автоматизации, утилиты",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Label is the storefront display label.
func (c Category) Label() string { return categoryLabels[c] }

// Hint is the one-line blurb shown on the categories screen.
func (c Category) Hint() string { return categoryHints[c] }

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Icon is drawn from two colors and a glyph.
type Icon struct {
	Background string
	Accent     string
	Glyph      string
}

// Screenshot represents one gradient screenshot placeholder.
type Screenshot struct {
	ID            string
	Label         string
	GradientStart string
	GradientEnd   string
}

// App represents a catalog entry. Records are immutable once the catalog is built.
type App struct {
	ID               string
	Name             string
	Developer        string
	Category         Category
	ShortDescription string
	AgeRating        string
	Rating           float64
	Icon             Icon
	Screenshots      []Screenshot
	DescriptionAsset string
}

// Screenshot returns the screenshot with the given id.
func (a App) Screenshot(id string) (Screenshot, bool) {
	for _, s := range a.Screenshots {
		if s.ID == id {
			return s, true
		}
	}
	return Screenshot{}, false
}

// CategoryCount pairs a category with the number of apps in it.
type CategoryCount struct {
	Category Category
	Count    int
}
