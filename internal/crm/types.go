package crm

import "github.com/welforehealth/funnel/internal/models"

// lookupResponse — ответ GET /contacts/: список совпадений по фильтру,
// используется первый элемент.
type lookupResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

type createContactRequest struct {
	Email      string `json:"email"`
	LocationID string `json:"locationId"`
	Name       string `json:"name,omitempty"`
}

// createResponse — ответ POST /contacts/: созданный контакт в обёртке.
type createResponse struct {
	Contact models.Contact `json:"contact"`
}

type addTagRequest struct {
	Tags []string `json:"tags"`
}
