// Package planner собирает план питания по профилю пользователя: случайные
// блюда из таблиц кухонь, добивка цветового покрытия «радужными» перекусами,
// строки гидратации и суточных целей, премиальные атрибуты.
//
// Сборка намеренно недетерминирована — повторные вызовы с одинаковым профилем
// дают разные блюда. Источник случайности инжектируется, чтобы тесты могли
// фиксировать сид и проверять форму результата, а не конкретные блюда.
package planner

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/welforehealth/funnel/internal/catalog"
	"github.com/welforehealth/funnel/internal/models"
)

// targetColorsPerDay — целевое цветовое покрытие дня. Добивка перекусами
// ограничена maxColorBoosts, поэтому цель остаётся ориентиром, а не
// гарантией: кухня с менее чем тремя базовыми цветами до неё не дотянет.
const (
	targetColorsPerDay = 5
	maxColorBoosts     = 2
)

const (
	freeMessage    = "You're viewing your FREE 3-day Flavor Reset Sampler."
	premiumMessage = "✨ Unlock your full 7-day or 14-day Flavor Reset Plan below!"
)

// Planner собирает планы питания. Безопасен для конкурентного использования.
type Planner struct {
	link7Day  string
	link14Day string

	mu  sync.Mutex // защищает rnd
	rnd *rand.Rand
}

// New создает Planner с платёжными ссылками тарифов. Если rnd равен nil,
// используется источник, засеянный текущим временем.
func New(rnd *rand.Rand, link7Day, link14Day string) *Planner {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{
		link7Day:  link7Day,
		link14Day: link14Day,
		rnd:       rnd,
	}
}

// Assemble строит план на profile.PlanDuration дней.
func (p *Planner) Assemble(profile models.UserProfile) models.MealPlan {
	isGLP1 := profile.HasCondition(models.ConditionGLP1)
	isBariatric := profile.HasCondition(models.ConditionBariatric)
	isBreastfeeding := profile.HasCondition(models.ConditionBreastfeeding)
	reducedPortions := isGLP1 || isBariatric

	primaryCuisine, table := p.resolveCuisine(profile.Cuisines)

	days := make([]models.DayPlan, 0, profile.PlanDuration)
	totalColors := 0

	for day := 1; day <= profile.PlanDuration; day++ {
		var meals []string

		breakfast := p.pick(table.Breakfast)
		if reducedPortions {
			breakfast += " (small portion, protein-focused)"
		}
		meals = append(meals, "Breakfast: "+breakfast)

		lunch := p.pick(table.Lunch)
		if reducedPortions {
			lunch += " (reduced portion, high protein)"
		}
		meals = append(meals, "Lunch: "+lunch)

		dinner := p.pick(table.Dinner)
		if reducedPortions {
			dinner += " (small serving, protein priority)"
		}
		meals = append(meals, "Dinner: "+dinner)

		colors := append([]string(nil), table.Colors...)
		if len(colors) < targetColorsPerDay {
			boosted := 0
			for _, color := range catalog.Palette() {
				if boosted == maxColorBoosts {
					break
				}
				if containsColor(colors, color) {
					continue
				}
				meals = append(meals, "Snack: "+p.pick(catalog.FoodsForColor(color)))
				colors = append(colors, color)
				boosted++
			}
		}

		hydration := "Drink 8-10 glasses of water"
		if isBreastfeeding {
			hydration = "Drink 10-12 glasses of water (extra for breastfeeding)"
		}
		meals = append(meals, "Hydration: "+hydration)

		proteinGoal := "60-80g protein"
		if reducedPortions {
			proteinGoal = "80-100g protein (prioritize lean sources)"
		}
		meals = append(meals, fmt.Sprintf("Daily Goals: 20-25g fiber, %s", proteinGoal))

		days = append(days, models.DayPlan{
			Day:            day,
			Meals:          meals,
			Colors:         colors,
			ColorsAchieved: len(colors),
		})
		totalColors += len(colors)
	}

	avgColors := 0.0
	if len(days) > 0 {
		avgColors = roundTo1(float64(totalColors) / float64(len(days)))
	}

	plan := models.MealPlan{
		UserName:            displayName(profile.Name),
		HealthGoal:          profile.HealthGoal,
		PlanDuration:        profile.PlanDuration,
		PrimaryCuisine:      primaryCuisine,
		Days:                days,
		AverageColorsPerDay: avgColors,
		SpecialAdaptations: models.SpecialAdaptations{
			GLP1:          isGLP1,
			Bariatric:     isBariatric,
			Breastfeeding: isBreastfeeding,
		},
		NutritionTargets: models.NutritionTargets{
			FiberDaily:   "20-25g",
			ProteinDaily: proteinTarget(reducedPortions),
			Hydration:    hydrationTarget(isBreastfeeding),
		},
		Premium:        profile.Premium(),
		PremiumMessage: freeMessage,
		Guides:         recommendGuides(profile),
	}

	if plan.Premium {
		plan.PremiumMessage = premiumMessage
		if profile.PlanDuration == 7 {
			plan.PaymentLink = p.link7Day
		} else {
			plan.PaymentLink = p.link14Day
		}
	}
	plan.FlavorBalanceScore = p.flavorBalanceScore(plan.Premium)

	return plan
}

// resolveCuisine выбирает основную кухню: первый элемент предпочтений,
// с откатом на кухню по умолчанию при пустом или нераспознанном значении.
func (p *Planner) resolveCuisine(cuisines []string) (string, catalog.CuisineTable) {
	if len(cuisines) > 0 {
		if table, ok := catalog.Cuisine(cuisines[0]); ok {
			return cuisines[0], table
		}
	}
	table, _ := catalog.Cuisine(catalog.DefaultCuisine)
	return catalog.DefaultCuisine, table
}

func (p *Planner) pick(candidates []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return candidates[p.rnd.Intn(len(candidates))]
}

// flavorBalanceScore — мотивирующий балл 75..95, +3 на премиуме, не выше 100.
func (p *Planner) flavorBalanceScore(premium bool) int {
	p.mu.Lock()
	score := 75 + p.rnd.Intn(21)
	p.mu.Unlock()

	if premium {
		score += 3
	}
	if score > 100 {
		score = 100
	}
	return score
}

// recommendGuides подбирает пособия по цели и особым состояниям; без
// совпадений возвращается общий гид по «радужному» питанию.
func recommendGuides(profile models.UserProfile) []models.Guide {
	goal := strings.ToLower(profile.HealthGoal)
	var guides []models.Guide

	if strings.Contains(goal, "blood_pressure") {
		guides = append(guides, models.Guide{
			Title:       "Heart Health & Blood Pressure Guide",
			Description: "DASH diet principles and sodium reduction strategies",
		})
	}
	if strings.Contains(goal, "blood_sugar") || strings.Contains(goal, "diabetes") {
		guides = append(guides, models.Guide{
			Title:       "Blood Sugar Balance Guide",
			Description: "Glycemic control through balanced meals",
		})
	}
	if strings.Contains(goal, "weight") {
		guides = append(guides, models.Guide{
			Title:       "Sustainable Weight Management",
			Description: "Evidence-based strategies for healthy weight",
		})
	}
	if strings.Contains(goal, "digestive") || strings.Contains(goal, "gut") {
		guides = append(guides, models.Guide{
			Title:       "Gut Health & Digestive Wellness",
			Description: "Fiber-rich foods and probiotics guide",
		})
	}
	if strings.Contains(goal, "heart") {
		guides = append(guides, models.Guide{
			Title:       "Heart Disease Prevention Guide",
			Description: "Mediterranean and DASH diet principles",
		})
	}

	if profile.HasCondition(models.ConditionGLP1) {
		guides = append(guides, models.Guide{
			Title:       "GLP-1 Medication Nutrition Guide",
			Description: "Optimizing nutrition while on Ozempic, Wegovy, or similar medications",
		})
	}
	if profile.HasCondition(models.ConditionBariatric) {
		guides = append(guides, models.Guide{
			Title:       "Post-Bariatric Surgery Nutrition",
			Description: "Protein-focused eating for surgical patients",
		})
	}
	if profile.HasCondition(models.ConditionBreastfeeding) {
		guides = append(guides, models.Guide{
			Title:       "Breastfeeding Nutrition Guide",
			Description: "Meeting increased caloric and hydration needs",
		})
	}

	if len(guides) == 0 {
		guides = append(guides, models.Guide{
			Title:       "Eat the Rainbow Wellness Guide",
			Description: "Complete guide to colorful, nutrient-dense eating",
		})
	}
	return guides
}

func proteinTarget(reducedPortions bool) string {
	if reducedPortions {
		return "80-100g"
	}
	return "60-80g"
}

func hydrationTarget(breastfeeding bool) string {
	if breastfeeding {
		return "10-12 glasses"
	}
	return "8-10 glasses"
}

func displayName(name string) string {
	if name == "" {
		return "Friend"
	}
	return name
}

func containsColor(colors []string, color string) bool {
	for _, c := range colors {
		if c == color {
			return true
		}
	}
	return false
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
