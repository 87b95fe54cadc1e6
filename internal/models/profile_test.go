package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSpecialConditions(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []SpecialCondition
	}{
		{"известные значения", []string{"glp1", "bariatric"}, []SpecialCondition{ConditionGLP1, ConditionBariatric}},
		{"регистр и пробелы", []string{" GLP1 ", "Breastfeeding"}, []SpecialCondition{ConditionGLP1, ConditionBreastfeeding}},
		{"подстрочное совпадение не считается", []string{"glp1-adjacent-other-thing"}, nil},
		{"неизвестные отбрасываются", []string{"vegan", "keto"}, nil},
		{"дубликаты схлопываются", []string{"glp1", "GLP1"}, []SpecialCondition{ConditionGLP1}},
		{"пустой вход", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpecialConditions(tt.raw))
		})
	}
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"взрослый", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), 36},
		{"день рождения ещё не наступил", time.Date(1990, 12, 1, 0, 0, 0, 0, time.UTC), 35},
		{"моложе минимума — ограничение снизу", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), MinAge},
		{"ровно восемнадцать", time.Date(2008, 8, 29, 0, 0, 0, 0, time.UTC), 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeFromBirthDate(tt.birth, now))
		})
	}
}

func TestNormalizePlanDuration(t *testing.T) {
	assert.Equal(t, FreePlanDuration, NormalizePlanDuration(0))
	assert.Equal(t, FreePlanDuration, NormalizePlanDuration(-5))
	assert.Equal(t, 3, NormalizePlanDuration(3))
	assert.Equal(t, 7, NormalizePlanDuration(7))
	assert.Equal(t, 14, NormalizePlanDuration(14))
	assert.Equal(t, MaxPlanDuration, NormalizePlanDuration(90))
}

func TestUserProfile_Premium(t *testing.T) {
	assert.False(t, UserProfile{PlanDuration: 3}.Premium())
	assert.True(t, UserProfile{PlanDuration: 7}.Premium())
	assert.True(t, UserProfile{PlanDuration: 14}.Premium())
}

func TestContact_HasTag(t *testing.T) {
	c := &Contact{ID: "1", Tags: []string{"Lead", "Freemium-Used"}}
	assert.True(t, c.HasTag("Freemium-Used"))
	assert.False(t, c.HasTag("freemium-used"))
	assert.False(t, (*Contact)(nil).HasTag("Freemium-Used"))
}

func TestQuizRequest_ToProfile(t *testing.T) {
	req := QuizRequest{
		Email:             "a@b.com",
		Name:              "Dana",
		PlanDuration:      0,
		SpecialConditions: []string{"GLP1", "unknown"},
	}
	profile := req.ToProfile()

	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, FreePlanDuration, profile.PlanDuration)
	assert.Equal(t, []SpecialCondition{ConditionGLP1}, profile.SpecialConditions)
	assert.False(t, profile.Premium())
}

func TestQuizRequest_ToProfile_BirthDate(t *testing.T) {
	profile := QuizRequest{Email: "a@b.com", BirthDate: "2020-01-01"}.ToProfile()
	assert.Equal(t, MinAge, profile.Age)

	// явный возраст имеет приоритет над датой рождения
	profile = QuizRequest{Email: "a@b.com", Age: 44, BirthDate: "2020-01-01"}.ToProfile()
	assert.Equal(t, 44, profile.Age)
}
