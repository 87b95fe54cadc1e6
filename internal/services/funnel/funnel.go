// Package funnel реализует основной сценарий воронки: по профилю из квиза
// найти или создать контакт в CRM, применить правило «бесплатный план один
// раз» и отправить пользователю письмо с планом либо с предложением апгрейда.
package funnel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/welforehealth/funnel/internal/lib/sl"
	"github.com/welforehealth/funnel/internal/models"
	"github.com/welforehealth/funnel/internal/services/sender"
)

// FreemiumTag — тег CRM, отмечающий использованный бесплатный план.
const FreemiumTag = "Freemium-Used"

// Статусы пользователя относительно воронки.
const (
	// UserStatusNew — контакт только что создан.
	UserStatusNew = "new"
	// UserStatusReturning — контакт существовал, но бесплатный план не получал.
	UserStatusReturning = "returning"
	// UserStatusRepeat — бесплатный план уже был использован.
	UserStatusRepeat = "repeat"
)

// ErrContactService сигнализирует о недоступности CRM: без ответа CRM
// решение о доставке плана принять нельзя.
var ErrContactService = errors.New("contact service unavailable")

// ContactDirectory — операции над контактами внешней CRM.
type ContactDirectory interface {
	Lookup(ctx context.Context, email string) (*models.Contact, error)
	Create(ctx context.Context, email, name string) (*models.Contact, error)
	AddTag(ctx context.Context, contactID, tag string) error
}

// Mailer отправляет письма воронки.
type Mailer interface {
	Send(toEmail, subject, bodyHTML string) bool
	SendAdminNotification(userEmail, planType, userStatus string)
}

// PlanAssembler собирает план питания по профилю.
type PlanAssembler interface {
	Assemble(profile models.UserProfile) models.MealPlan
}

// Result — исход обработки квиза.
type Result struct {
	Delivered  bool             // true — план доставлен, false — отправлен апселл
	UserStatus string           // new / returning / repeat
	Plan       *models.MealPlan // заполнен только при доставке
}

// Service связывает CRM, сборщик планов и отправку писем.
type Service struct {
	contacts  ContactDirectory
	mailer    Mailer
	assembler PlanAssembler
	log       *slog.Logger

	mu    sync.Mutex // защищает locks
	locks map[string]*sync.Mutex
}

// New создает новый экземпляр Service.
func New(contacts ContactDirectory, mailer Mailer, assembler PlanAssembler, log *slog.Logger) *Service {
	return &Service{
		contacts:  contacts,
		mailer:    mailer,
		assembler: assembler,
		log:       log,
		locks:     make(map[string]*sync.Mutex),
	}
}

// ProcessQuiz обрабатывает заполненный квиз: ровно одна доставка бесплатного
// плана на адрес почты, повторные обращения получают письмо с апселлом.
// Обращения с одним адресом сериализуются, чтобы конкурентные запросы не
// обошли проверку тега.
func (s *Service) ProcessQuiz(ctx context.Context, profile models.UserProfile) (Result, error) {
	const op = "services.funnel.ProcessQuiz"
	log := s.log.With(slog.String("op", op), sl.Email(profile.Email))

	unlock := s.lockEmail(profile.Email)
	defer unlock()

	contact, err := s.contacts.Lookup(ctx, profile.Email)
	if err != nil {
		log.Error("contact lookup failed", sl.Err(err))
		return Result{}, fmt.Errorf("%s: %w: %w", op, ErrContactService, err)
	}

	userStatus := UserStatusReturning
	if contact == nil {
		contact, err = s.contacts.Create(ctx, profile.Email, profile.Name)
		if err != nil {
			log.Error("contact create failed", sl.Err(err))
			return Result{}, fmt.Errorf("%s: %w: %w", op, ErrContactService, err)
		}
		userStatus = UserStatusNew
		log.Info("contact created", slog.String("contact_id", contact.ID))
	}

	if contact.HasTag(FreemiumTag) {
		return s.blockAndUpsell(log, profile)
	}

	return s.deliverFreePlan(ctx, log, profile, contact, userStatus)
}

// deliverFreePlan помечает контакт тегом, собирает план и отправляет письма.
// Сбой простановки тега не останавливает доставку: план важнее учёта.
func (s *Service) deliverFreePlan(ctx context.Context, log *slog.Logger, profile models.UserProfile, contact *models.Contact, userStatus string) (Result, error) {
	if err := s.contacts.AddTag(ctx, contact.ID, FreemiumTag); err != nil {
		log.Warn("failed to tag contact, delivering anyway", sl.Err(err))
	}

	plan := s.assembler.Assemble(profile)

	if !s.mailer.Send(profile.Email, sender.SubjectFreePlan, sender.FreePlanEmail(profile.Name)) {
		log.Warn("failed to send plan email")
	}
	s.mailer.SendAdminNotification(profile.Email, "3-Day Free", userStatus)

	plansDelivered.WithLabelValues(userStatus).Inc()
	log.Info("free plan delivered", slog.String("user_status", userStatus))

	return Result{Delivered: true, UserStatus: userStatus, Plan: &plan}, nil
}

// blockAndUpsell отправляет письмо с предложением платных тарифов.
// План не собирается: повторному пользователю он не положен.
func (s *Service) blockAndUpsell(log *slog.Logger, profile models.UserProfile) (Result, error) {
	if !s.mailer.Send(profile.Email, sender.SubjectUpsell, sender.UpsellEmail(profile.Name)) {
		log.Warn("failed to send upsell email")
	}

	requestsBlocked.Inc()
	log.Info("free plan already used, upsell sent")

	return Result{Delivered: false, UserStatus: UserStatusRepeat}, nil
}

// lockEmail берет мьютекс адреса (без учёта регистра) и возвращает функцию
// освобождения.
func (s *Service) lockEmail(email string) func() {
	key := strings.ToLower(email)

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
