package models

// DayPlan — план питания на один день: упорядоченные строки приёмов пищи
// и достигнутое за день цветовое покрытие.
type DayPlan struct {
	Day            int      `json:"day"`
	Meals          []string `json:"meals"`
	Colors         []string `json:"colors"`
	ColorsAchieved int      `json:"colors_achieved"`
}

// SpecialAdaptations — флаги адаптаций, применённых к плану.
type SpecialAdaptations struct {
	GLP1          bool `json:"glp1"`
	Bariatric     bool `json:"bariatric"`
	Breastfeeding bool `json:"breastfeeding"`
}

// NutritionTargets — суточные цели по нутриентам в текстовом виде.
type NutritionTargets struct {
	FiberDaily   string `json:"fiber_daily"`
	ProteinDaily string `json:"protein_daily"`
	Hydration    string `json:"hydration"`
}

// Guide — рекомендованное пользователю пособие.
type Guide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MealPlan — собранный план питания. Создаётся заново на каждый запрос,
// никуда не сохраняется и после возврата не изменяется.
type MealPlan struct {
	UserName            string             `json:"user_name"`
	HealthGoal          string             `json:"health_goal"`
	PlanDuration        int                `json:"plan_duration"`
	PrimaryCuisine      string             `json:"primary_cuisine"`
	Days                []DayPlan          `json:"meal_plan"`
	AverageColorsPerDay float64            `json:"average_colors_per_day"`
	SpecialAdaptations  SpecialAdaptations `json:"special_adaptations"`
	NutritionTargets    NutritionTargets   `json:"nutrition_targets"`
	Premium             bool               `json:"premium"`
	PremiumMessage      string             `json:"premium_message"`
	PaymentLink         string             `json:"payment_link,omitempty"`
	Guides              []Guide            `json:"guides"`
	FlavorBalanceScore  int                `json:"flavor_balance_score"`
}
