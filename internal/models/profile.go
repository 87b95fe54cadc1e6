// Package models содержит доменные структуры воронки: профиль пользователя из
// квиза, контакт внешней CRM и собранный план питания, а также вспомогательные
// типы для приёма данных из JSON-запросов.
package models

import (
	"strings"
	"time"
)

// SpecialCondition — особое состояние пользователя, влияющее на план питания.
// Набор закрытый: значения вне перечисления отбрасываются при парсинге.
type SpecialCondition string

const (
	// ConditionGLP1 — приём GLP-1 препаратов (Ozempic, Wegovy и т.п.).
	ConditionGLP1 SpecialCondition = "glp1"
	// ConditionBariatric — перенесённая бариатрическая операция.
	ConditionBariatric SpecialCondition = "bariatric"
	// ConditionBreastfeeding — грудное вскармливание.
	ConditionBreastfeeding SpecialCondition = "breastfeeding"
)

// MinAge — минимальный возраст пользователя сервиса.
const MinAge = 18

// FreePlanDuration — длительность бесплатного плана в днях.
const FreePlanDuration = 3

// MaxPlanDuration — максимальный поддерживаемый тариф в днях.
const MaxPlanDuration = 14

// UserProfile представляет профиль пользователя, собранный из ответов квиза.
// Email — внешний идентификатор пользователя в CRM.
type UserProfile struct {
	Name                string             // Отображаемое имя
	Email               string             // Адрес почты, ключ идентичности
	Age                 int                // Возраст (0 — не указан)
	HealthGoal          string             // Цель по здоровью в свободной форме
	PlanDuration        int                // Длительность плана в днях (3/7/14)
	Cuisines            []string           // Предпочитаемые кухни, первая — основная
	SpecialConditions   []SpecialCondition // Особые состояния
	DietaryRestrictions []string           // Пищевые ограничения
	RainbowPreferences  map[string][]string
}

// Premium сообщает, относится ли профиль к платному тарифу.
func (p UserProfile) Premium() bool {
	return p.PlanDuration > FreePlanDuration
}

// HasCondition проверяет наличие особого состояния в профиле.
func (p UserProfile) HasCondition(c SpecialCondition) bool {
	for _, have := range p.SpecialConditions {
		if have == c {
			return true
		}
	}
	return false
}

// ParseSpecialConditions преобразует строки из запроса в закрытый набор
// SpecialCondition. Сравнение точное, без учёта регистра и пробелов по краям:
// подстрочное совпадение намеренно не используется, чтобы значение вроде
// "glp1-adjacent-other-thing" не считалось состоянием glp1.
func ParseSpecialConditions(raw []string) []SpecialCondition {
	var conditions []SpecialCondition
	for _, s := range raw {
		switch SpecialCondition(strings.ToLower(strings.TrimSpace(s))) {
		case ConditionGLP1:
			conditions = appendUnique(conditions, ConditionGLP1)
		case ConditionBariatric:
			conditions = appendUnique(conditions, ConditionBariatric)
		case ConditionBreastfeeding:
			conditions = appendUnique(conditions, ConditionBreastfeeding)
		}
	}
	return conditions
}

func appendUnique(conditions []SpecialCondition, c SpecialCondition) []SpecialCondition {
	for _, have := range conditions {
		if have == c {
			return conditions
		}
	}
	return append(conditions, c)
}

// AgeFromBirthDate вычисляет возраст на дату now. Результат ограничивается
// снизу значением MinAge.
func AgeFromBirthDate(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < MinAge {
		return MinAge
	}
	return age
}

// NormalizePlanDuration приводит длительность плана к поддерживаемому
// диапазону: неположительные значения означают бесплатный план,
// значения выше максимума ограничиваются максимумом.
func NormalizePlanDuration(days int) int {
	switch {
	case days <= 0:
		return FreePlanDuration
	case days > MaxPlanDuration:
		return MaxPlanDuration
	}
	return days
}
