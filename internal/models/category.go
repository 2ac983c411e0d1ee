package models

// DefaultCategoryIcon marks habits whose category is outside the known set.
const DefaultCategoryIcon = "⭐"

var categoryIcons = map[string]string{
	CategoryHealth:       "💪",
	CategoryWork:         "💼",
	CategoryLearning:     "📚",
	CategoryFitness:      "🏃",
	CategoryMentalHealth: "🧘",
	CategoryProductivity: "⚡",
}

func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultCategoryIcon
}
