package models

// Contact представляет запись контакта во внешней CRM.
// Запись принадлежит CRM: локально не хранится, идентичность — email.
type Contact struct {
	ID    string   `json:"id"`             // Идентификатор контакта в CRM
	Email string   `json:"email"`          // Адрес почты
	Name  string   `json:"name,omitempty"` // Отображаемое имя
	Tags  []string `json:"tags"`           // Набор тегов (неупорядоченный)
}

// HasTag проверяет членство тега в наборе тегов контакта.
func (c *Contact) HasTag(tag string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
