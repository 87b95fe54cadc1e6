package models

import "time"

// QuizRequest используется для приёма данных вебхука квиза из JSON-запроса,
// прежде чем конвертировать их в UserProfile. Обязателен только email —
// остальные поля квиз может не прислать.
type QuizRequest struct {
	Email               string              `json:"email" validate:"required,email"` // Адрес почты (обязателен)
	Name                string              `json:"name,omitempty"`                  // Имя
	Age                 int                 `json:"age,omitempty"`                   // Возраст
	BirthDate           string              `json:"birth_date,omitempty"`            // Дата рождения в формате 2006-01-02
	HealthGoal          string              `json:"health_goal,omitempty"`           // Цель по здоровью
	PlanDuration        int                 `json:"plan_duration,omitempty"`         // Длительность плана в днях
	Cuisines            []string            `json:"cuisines,omitempty"`              // Предпочитаемые кухни
	SpecialConditions   []string            `json:"special_conditions,omitempty"`    // Особые состояния
	DietaryRestrictions []string            `json:"dietary_restrictions,omitempty"`  // Пищевые ограничения
	RainbowPreferences  map[string][]string `json:"rainbow_preferences,omitempty"`   // Выбранные продукты по цветам
}

// ToProfile конвертирует запрос в доменный профиль: нормализует длительность
// плана, парсит особые состояния и при необходимости выводит возраст из даты
// рождения.
func (r QuizRequest) ToProfile() UserProfile {
	age := r.Age
	if age == 0 && r.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", r.BirthDate); err == nil {
			age = AgeFromBirthDate(birth, time.Now())
		}
	}

	return UserProfile{
		Name:                r.Name,
		Email:               r.Email,
		Age:                 age,
		HealthGoal:          r.HealthGoal,
		PlanDuration:        NormalizePlanDuration(r.PlanDuration),
		Cuisines:            r.Cuisines,
		SpecialConditions:   ParseSpecialConditions(r.SpecialConditions),
		DietaryRestrictions: r.DietaryRestrictions,
		RainbowPreferences:  r.RainbowPreferences,
	}
}
