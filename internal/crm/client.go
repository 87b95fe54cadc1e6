// Package crm реализует клиент контакт-директории (GoHighLevel-совместимый
// REST API): поиск, создание и проставление тегов контактам по адресу почты.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/welforehealth/funnel/internal/config"
	"github.com/welforehealth/funnel/internal/lib/sl"
	"github.com/welforehealth/funnel/internal/models"
)

// ErrUnexpectedStatus возвращается при любом не-2xx ответе API.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client — HTTP-клиент контакт-директории.
type Client struct {
	apiURL     string
	apiKey     string
	locationID string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт новый клиент CRM. Таймаут исходящих вызовов берётся из
// конфига (по умолчанию 10 секунд); повторов нет.
func New(cfg config.CRM, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		locationID: cfg.LocationID,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Lookup ищет контакт по адресу почты. Отсутствие контакта — не ошибка:
// возвращается (nil, nil). Ошибка означает недоступность сервиса и
// отличается от «не найдено».
func (c *Client) Lookup(ctx context.Context, email string) (*models.Contact, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("locationId", c.locationID)

	req, err := c.newRequest(ctx, http.MethodGet, "/contacts/", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("contact lookup failed", sl.Email(email), sl.Err(err))
		return nil, fmt.Errorf("lookup contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("contact lookup failed", sl.Email(email), slog.String("status", resp.Status))
		return nil, fmt.Errorf("lookup contact: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var result lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("lookup contact: decode response: %w", err)
	}
	if len(result.Contacts) == 0 {
		c.log.Info("no contact found", sl.Email(email))
		return nil, nil
	}

	c.log.Info("contact found", sl.Email(email))
	return &result.Contacts[0], nil
}

// Create создаёт контакт с указанной почтой и (опционально) именем.
// Без созданного контакта запрос обслужить нельзя, поэтому любую ошибку
// вызывающая сторона трактует как фатальную для текущего запроса.
func (c *Client) Create(ctx context.Context, email, name string) (*models.Contact, error) {
	payload := createContactRequest{
		Email:      email,
		LocationID: c.locationID,
		Name:       name,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/contacts/", nil, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("contact create failed", sl.Email(email), sl.Err(err))
		return nil, fmt.Errorf("create contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Error("contact create failed", sl.Email(email), slog.String("status", resp.Status))
		return nil, fmt.Errorf("create contact: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("create contact: decode response: %w", err)
	}

	c.log.Info("contact created", sl.Email(email))
	return &result.Contact, nil
}

// AddTag добавляет тег контакту. Вызывающая сторона трактует ошибку как
// некритичную: доставка письма от проставления тега не зависит.
func (c *Client) AddTag(ctx context.Context, contactID, tag string) error {
	payload := addTagRequest{Tags: []string{tag}}

	req, err := c.newRequest(ctx, http.MethodPut, "/contacts/"+contactID, nil, payload)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("add tag failed", slog.String("contact_id", contactID), sl.Err(err))
		return fmt.Errorf("add tag: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Error("add tag failed", slog.String("contact_id", contactID), slog.String("status", resp.Status))
		return fmt.Errorf("add tag: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	c.log.Info("tag added to contact", slog.String("contact_id", contactID), slog.String("tag", tag))
	return nil
}
