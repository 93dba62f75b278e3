package catalog

// Default returns the built-in showcase catalog. Each call returns fresh slices.
func Default() []App {
	return []App{
		{
			ID:               "aurora-pay",
			Name:             "Aurora Pay",
			Developer:        "Nebula Fintech",
			Category:         Finance,
			ShortDescription: "Бесконтактные платежи и единый кошелек для подписок.",
			AgeRating:        "12+",
			Rating:           4.8,
			Icon:             Icon{Background: "#102043", Accent: "#4AD4FF", Glyph: "₽"},
			Screenshots: []Screenshot{
				shot("aurora-pay-analytics", "Аналитика", "#1C74FF", "#4AD4FF"),
				shot("aurora-pay-cards", "Карты", "#102043", "#1F3DA0"),
				shot("aurora-pay-subscriptions", "Подписки", "#35B6FF", "#68FFD9"),
			},
			DescriptionAsset: "aurora_pay.html",
		},
		{
			ID:               "city-metro",
			Name:             "City Metro",
			Developer:        "Urban Mobility",
			Category:         Transport,
			ShortDescription: "Маршруты метро и наземного транспорта с оплатой поездок.",
			AgeRating:        "0+",
			Rating:           4.4,
			Icon:             Icon{Background: "#0C3C60", Accent: "#FFC857", Glyph: "M"},
			Screenshots: []Screenshot{
				shot("city-metro-map", "Карта", "#0C3C60", "#0FA3B1"),
				shot("city-metro-wallet", "Кошелек", "#FFC857", "#FF5E5B"),
				shot("city-metro-alerts", "Оповещения", "#0FA3B1", "#4AD4FF"),
			},
			DescriptionAsset: "city_metro.html",
		},
		{
			ID:               "state-services",
			Name:             "ГосСервисы Light",
			Developer:        "Digital State",
			Category:         Government,
			ShortDescription: "Документы, штрафы и важные уведомления в одном месте.",
			AgeRating:        "6+",
			Rating:           4.6,
			Icon:             Icon{Background: "#112E51", Accent: "#50E3C2", Glyph: "Г"},
			Screenshots: []Screenshot{
				shot("gos-main", "Главный экран", "#112E51", "#3269FF"),
				shot("gos-docs", "Документы", "#1D976C", "#93F9B9"),
				shot("gos-services", "Сервисы", "#50E3C2", "#4AD4FF"),
			},
			DescriptionAsset: "gos_services.html",
		},
		{
			ID:               "stellar-labs",
			Name:             "Stellar Labs",
			Developer:        "Cosmo Games",
			Category:         Games,
			ShortDescription: "Ролевая игра с кооперативом и редактором уровней.",
			AgeRating:        "16+",
			Rating:           4.9,
			Icon:             Icon{Background: "#1B1338", Accent: "#FF6AC1", Glyph: "★"},
			Screenshots: []Screenshot{
				shot("stellar-battle", "Сражения", "#482880", "#FF6AC1"),
				shot("stellar-build", "Создание", "#1B1338", "#4AD4FF"),
				shot("stellar-coop", "Кооператив", "#32174D", "#9B5DE5"),
			},
			DescriptionAsset: "stellar_labs.html",
		},
		{
			ID:               "craft-tools",
			Name:             "Craft Tools",
			Developer:        "Nordic Systems",
			Category:         Tools,
			ShortDescription: "Менеджер устройств, автоматизация и быстрые сценарии.",
			AgeRating:        "8+",
			Rating:           4.5,
			Icon:             Icon{Background: "#14213D", Accent: "#FCA311", Glyph: "⚙"},
			Screenshots: []Screenshot{
				shot("craft-dashboard", "Панель", "#14213D", "#1F5472"),
				shot("craft-scenes", "Сцены", "#FCA311", "#FFC857"),
				shot("craft-automation", "Автоматизация", "#1F5472", "#4AD4FF"),
			},
			DescriptionAsset: "craft_tools.html",
		},
	}
}

func shot(id, label, start, end string) Screenshot {
	return Screenshot{ID: id, Label: label, GradientStart: start, GradientEnd: end}
}
