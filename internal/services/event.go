package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"eventdesk/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	notifier       domain.Notifier
	delay          domain.Delayer
	validate       *validator.Validate
	contextTimeout time.Duration
	inFlight       atomic.Int64
}

// NewEventService wires the event dashboard core. Every mutation waits on
// the delayer, applies atomically against the repository, and emits exactly
// one notification on success. Payload validation also runs at this
// boundary, not only in the form layer, so the service rejects bad
// payloads on its own.
func NewEventService(repo domain.EventRepository, notifier domain.Notifier, delay domain.Delayer, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		notifier:       notifier,
		delay:          delay,
		validate:       validator.New(),
		contextTimeout: timeout,
	}
}

func (s *eventService) InFlight() int {
	return int(s.inFlight.Load())
}

// begin marks a mutation pending until the returned func runs. Reads do not
// count; they never block.
func (s *eventService) begin() func() {
	s.inFlight.Add(1)
	return func() { s.inFlight.Add(-1) }
}

func (s *eventService) Query(ctx context.Context, filter *domain.EventFilter) ([]*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return Filter(events, filter), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Create validates the payload, assigns a fresh id, derives the slug from
// the title, stamps both timestamps, and appends the event to the store.
func (s *eventService) Create(ctx context.Context, form *domain.EventFormData) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	done := s.begin()
	defer done()

	if err := s.validateForm(form); err != nil {
		return nil, err
	}
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	event := domain.NewEvent(uuid.NewString(), form, time.Now())
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.notifier.Notify(domain.NotifySuccess, "Event Created",
		fmt.Sprintf("%q has been created successfully.", event.Title))
	return event, nil
}

// Update merges the set fields of upd over the stored record and refreshes
// UpdatedAt. The merge is shallow: Location, Contact, and the slice fields
// replace the stored value wholesale when provided. The slug is left
// untouched even when the title changes.
func (s *eventService) Update(ctx context.Context, id string, upd *domain.EventUpdate) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	done := s.begin()
	defer done()

	if err := s.validateUpdate(upd); err != nil {
		return nil, err
	}
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	event, err := s.repo.Update(ctx, id, func(e *domain.EventRecord) error {
		applyUpdate(e, upd)
		if e.EndDate < e.StartDate {
			return &domain.ValidationError{Fields: []string{"endDate: must not be before startDate"}}
		}
		e.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapUpdateErr("update event", err)
	}

	s.notifier.Notify(domain.NotifySuccess, "Event Updated",
		fmt.Sprintf("%q has been updated successfully.", event.Title))
	return event, nil
}

// Delete removes the event. Images and tickets are embedded, so they go
// with it; there are no cascading effects.
func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	done := s.begin()
	defer done()

	if err := s.delay.Wait(ctx); err != nil {
		return err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	s.notifier.Notify(domain.NotifyDanger, "Event Deleted",
		fmt.Sprintf("%q has been deleted.", event.Title))
	return nil
}

// ChangeStatus sets the status unconditionally; domain.CanTransition is the
// single gate should a transition table ever be introduced.
func (s *eventService) ChangeStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	done := s.begin()
	defer done()

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	event, err := s.repo.Update(ctx, id, func(e *domain.EventRecord) error {
		if !domain.CanTransition(e.Status, status) {
			return &domain.ValidationError{
				Fields: []string{fmt.Sprintf("status: cannot change from %q to %q", e.Status, status)},
			}
		}
		e.Status = status
		e.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapUpdateErr("change event status", err)
	}

	kind := domain.NotifySuccess
	if status == domain.StatusCancelled {
		kind = domain.NotifyWarning
	}
	s.notifier.Notify(kind, "Event Status Updated",
		fmt.Sprintf("%q has been %s.", event.Title, statusPhrase(status)))
	return event, nil
}

// ToggleFeatured flips IsFeatured. The flip happens inside the store's
// writer lock, so two concurrent toggles always apply serially.
func (s *eventService) ToggleFeatured(ctx context.Context, id string) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	done := s.begin()
	defer done()

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	event, err := s.repo.Update(ctx, id, func(e *domain.EventRecord) error {
		e.IsFeatured = !e.IsFeatured
		e.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapUpdateErr("toggle featured", err)
	}

	title := "Event Unfeatured"
	phrase := "unfeatured"
	if event.IsFeatured {
		title = "Event Featured"
		phrase = "featured"
	}
	s.notifier.Notify(domain.NotifySuccess, title,
		fmt.Sprintf("%q has been %s.", event.Title, phrase))
	return event, nil
}

func statusPhrase(status domain.EventStatus) string {
	switch status {
	case domain.StatusPublished:
		return "published"
	case domain.StatusDraft:
		return "moved to drafts"
	case domain.StatusCancelled:
		return "cancelled"
	default:
		return "completed"
	}
}

// mapUpdateErr keeps the error taxonomy intact across repo.Update: not
// found and validation failures pass through, anything else is wrapped.
func mapUpdateErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *eventService) validateForm(form *domain.EventFormData) error {
	fields := s.structFields(form)
	if form.StartDate != "" && form.EndDate != "" && form.EndDate < form.StartDate {
		fields = append(fields, "endDate: must not be before startDate")
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (s *eventService) validateUpdate(upd *domain.EventUpdate) error {
	fields := s.structFields(upd)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// structFields runs the tag validator and flattens the result into
// user-facing field messages.
func (s *eventService) structFields(v any) []string {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s: fails %q", fe.Namespace(), fe.Tag()))
	}
	return fields
}

func applyUpdate(e *domain.EventRecord, upd *domain.EventUpdate) {
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.ShortDescription != nil {
		e.ShortDescription = *upd.ShortDescription
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.StartDate != nil {
		e.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		e.EndDate = *upd.EndDate
	}
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		e.EndTime = *upd.EndTime
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.Images != nil {
		e.Images = append([]domain.EventImage(nil), upd.Images...)
	}
	if upd.FeaturedImage != nil {
		img := *upd.FeaturedImage
		e.FeaturedImage = &img
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Tags != nil {
		e.Tags = domain.DedupeTags(upd.Tags)
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.IsPublic != nil {
		e.IsPublic = *upd.IsPublic
	}
	if upd.IsFeatured != nil {
		e.IsFeatured = *upd.IsFeatured
	}
	if upd.Capacity != nil {
		e.Capacity = *upd.Capacity
	}
	if upd.Contact != nil {
		e.Contact = *upd.Contact
	}
	if upd.Tickets != nil {
		e.Tickets = append([]domain.EventTicket(nil), upd.Tickets...)
	}
}
