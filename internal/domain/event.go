package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

// Statuses lists all event statuses in display order.
var Statuses = []EventStatus{StatusDraft, StatusPublished, StatusCancelled, StatusCompleted}

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an event may move between the given
// statuses. Any transition to a valid status is allowed, including
// backwards ones like completed to draft. All transition policy lives here
// so a real state machine can replace it without touching the service.
func CanTransition(from, to EventStatus) bool {
	return to.Valid()
}

// Categories is the recommended category vocabulary for selection UIs.
// Category is stored as free text; membership is not enforced.
var Categories = []string{
	"Technology",
	"Music",
	"Business",
	"Sports",
	"Arts & Culture",
	"Education",
	"Food & Drink",
	"Health & Wellness",
	"Community",
	"Other",
}

// EventImage is an image attached to an event.
type EventImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// EventLocation is the venue address of an event.
type EventLocation struct {
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country" validate:"required"`
	VenueDetails string `json:"venueDetails,omitempty"`
}

// EventContact is the organizer contact for an event.
type EventContact struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// EventTicket is a ticket tier sold for an event.
type EventTicket struct {
	ID                string  `json:"id"`
	Name              string  `json:"name" validate:"required"`
	Price             float64 `json:"price" validate:"gte=0"`
	AvailableQuantity int     `json:"availableQuantity" validate:"gte=0"`
	MaxPerOrder       int     `json:"maxPerOrder,omitempty" validate:"omitempty,gt=0"`
}

// EventRecord is the canonical stored representation of an event, including
// the assigned id, slug, and timestamps. Calendar dates use YYYY-MM-DD and
// clock times use 24-hour HH:MM with no timezone.
//
// Slug is derived from the title once at creation and is never recomputed,
// even when a later update changes the title.
//
// Records handed out in a snapshot are immutable by contract; mutations go
// through the service, which publishes a fresh clone.
type EventRecord struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime"`
	Location         EventLocation `json:"location"`
	Images           []EventImage  `json:"images"`
	FeaturedImage    *EventImage   `json:"featuredImage,omitempty"`
	Category         string        `json:"category"`
	Tags             []string      `json:"tags"`
	Status           EventStatus   `json:"status"`
	IsPublic         bool          `json:"isPublic"`
	IsFeatured       bool          `json:"isFeatured"`
	Capacity         int           `json:"capacity,omitempty"`
	Contact          EventContact  `json:"contact"`
	Tickets          []EventTicket `json:"tickets,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// EventFormData is the subset of EventRecord a caller supplies when
// creating an event: everything except the assigned id, slug, and
// timestamps. Status may be left empty and defaults to draft.
type EventFormData struct {
	Title            string        `json:"title" validate:"required"`
	ShortDescription string        `json:"shortDescription" validate:"required"`
	Description      string        `json:"description" validate:"required"`
	StartDate        string        `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string        `json:"endDate" validate:"required,datetime=2006-01-02"`
	StartTime        string        `json:"startTime" validate:"required,datetime=15:04"`
	EndTime          string        `json:"endTime" validate:"required,datetime=15:04"`
	Location         EventLocation `json:"location"`
	Images           []EventImage  `json:"images"`
	FeaturedImage    *EventImage   `json:"featuredImage,omitempty"`
	Category         string        `json:"category" validate:"required"`
	Tags             []string      `json:"tags"`
	Status           EventStatus   `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
	IsPublic         bool          `json:"isPublic"`
	IsFeatured       bool          `json:"isFeatured"`
	Capacity         int           `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Contact          EventContact  `json:"contact"`
	Tickets          []EventTicket `json:"tickets,omitempty" validate:"omitempty,dive"`
}

// EventUpdate carries a partial update. Nil fields leave the stored value
// untouched. The merge is shallow: Location, Contact, FeaturedImage, and
// the slice fields replace the stored value wholesale when provided, never
// deep-merged. A nil slice means untouched; an empty slice clears.
type EventUpdate struct {
	Title            *string        `json:"title,omitempty"`
	ShortDescription *string        `json:"shortDescription,omitempty"`
	Description      *string        `json:"description,omitempty"`
	StartDate        *string        `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string        `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime        *string        `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime          *string        `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Location         *EventLocation `json:"location,omitempty"`
	Images           []EventImage   `json:"images,omitempty"`
	FeaturedImage    *EventImage    `json:"featuredImage,omitempty"`
	Category         *string        `json:"category,omitempty"`
	Tags             []string       `json:"tags,omitempty"`
	Status           *EventStatus   `json:"status,omitempty" validate:"omitempty,oneof=draft published cancelled completed"`
	IsPublic         *bool          `json:"isPublic,omitempty"`
	IsFeatured       *bool          `json:"isFeatured,omitempty"`
	Capacity         *int           `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Contact          *EventContact  `json:"contact,omitempty"`
	Tickets          []EventTicket  `json:"tickets,omitempty"`
}

// EventFilter selects a subset of events. All set fields must match
// (logical AND); zero-value fields impose no constraint. Search is a
// case-insensitive substring match against title, description, short
// description, or any tag.
type EventFilter struct {
	Status   EventStatus
	Category string
	Featured *bool
	Search   string
}

// NewEvent materializes a stored record from form data: the caller supplies
// the id, the slug is derived from the title, and both timestamps are set
// to now. Tags are deduplicated preserving insertion order.
func NewEvent(id string, form *EventFormData, now time.Time) *EventRecord {
	status := form.Status
	if status == "" {
		status = StatusDraft
	}
	return &EventRecord{
		ID:               id,
		Title:            form.Title,
		Slug:             Slugify(form.Title),
		Description:      form.Description,
		ShortDescription: form.ShortDescription,
		StartDate:        form.StartDate,
		EndDate:          form.EndDate,
		StartTime:        form.StartTime,
		EndTime:          form.EndTime,
		Location:         form.Location,
		Images:           copyImages(form.Images),
		FeaturedImage:    copyImage(form.FeaturedImage),
		Category:         form.Category,
		Tags:             DedupeTags(form.Tags),
		Status:           status,
		IsPublic:         form.IsPublic,
		IsFeatured:       form.IsFeatured,
		Capacity:         form.Capacity,
		Contact:          form.Contact,
		Tickets:          copyTickets(form.Tickets),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Clone returns a deep copy of the record. Snapshots are immutable, so
// every mutation clones before applying changes.
func (e *EventRecord) Clone() *EventRecord {
	clone := *e
	clone.Images = copyImages(e.Images)
	clone.FeaturedImage = copyImage(e.FeaturedImage)
	clone.Tags = append([]string(nil), e.Tags...)
	clone.Tickets = copyTickets(e.Tickets)
	return &clone
}

// DedupeTags drops duplicate tags, preserving first-seen order.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func copyImages(images []EventImage) []EventImage {
	if images == nil {
		return nil
	}
	return append([]EventImage(nil), images...)
}

func copyImage(image *EventImage) *EventImage {
	if image == nil {
		return nil
	}
	clone := *image
	return &clone
}

func copyTickets(tickets []EventTicket) []EventTicket {
	if tickets == nil {
		return nil
	}
	return append([]EventTicket(nil), tickets...)
}

// EventRepository is the storage port for event records. The in-memory
// implementation backs the dashboard today; a networked one can replace it
// without an interface change (such a backend may surface ErrTransient).
type EventRepository interface {
	// List returns a defensive copy of the current snapshot.
	List(ctx context.Context) ([]*EventRecord, error)
	GetByID(ctx context.Context, id string) (*EventRecord, error)
	Create(ctx context.Context, event *EventRecord) error
	// Update applies the mutation to a clone of the stored record under the
	// writer lock and publishes a new snapshot. An error from apply leaves
	// the collection untouched.
	Update(ctx context.Context, id string, apply func(*EventRecord) error) (*EventRecord, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business operations of the event dashboard core.
// Reads never block on pending writes; mutations serialize on the store.
type EventService interface {
	Query(ctx context.Context, filter *EventFilter) ([]*EventRecord, error)
	GetByID(ctx context.Context, id string) (*EventRecord, error)
	Create(ctx context.Context, form *EventFormData) (*EventRecord, error)
	Update(ctx context.Context, id string, upd *EventUpdate) (*EventRecord, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status EventStatus) (*EventRecord, error)
	ToggleFeatured(ctx context.Context, id string) (*EventRecord, error)
	// InFlight reports how many mutations are currently pending; the view
	// layer uses it as its loading indicator.
	InFlight() int
}

// Delayer simulates backend latency for mutations, standing in for the
// fixed timers of the original mock API. Real I/O replaces it by swapping
// the implementation without touching the service contract.
type Delayer interface {
	Wait(ctx context.Context) error
}
