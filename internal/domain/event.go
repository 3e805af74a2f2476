package domain

import (
	"context"
	"time"
)

// EventCategory classifies an event. Valid values are the Category* constants.
type EventCategory string

// EventStatus is the lifecycle state of an event. Valid values are the Status* constants.
type EventStatus string

const (
	CategoryWorkshop EventCategory = "workshop"
	CategoryMeetup   EventCategory = "meetup"
	CategoryTalk     EventCategory = "talk"
	CategorySocial   EventCategory = "social"

	StatusDraft     EventStatus = "draft"
	StatusConfirmed EventStatus = "confirmed"
	StatusCancelled EventStatus = "cancelled"
)

// EventCategories and EventStatuses are the canonical value lists. Validation
// and the store layer both derive from these; there is no second copy.
var (
	EventCategories = []EventCategory{CategoryWorkshop, CategoryMeetup, CategoryTalk, CategorySocial}
	EventStatuses   = []EventStatus{StatusDraft, StatusConfirmed, StatusCancelled}

	validCategories = toSet(EventCategories)
	validStatuses   = toSet(EventStatuses)
)

func toSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Valid reports whether c is one of the canonical categories.
func (c EventCategory) Valid() bool {
	_, ok := validCategories[c]
	return ok
}

// Valid reports whether s is one of the canonical statuses.
func (s EventStatus) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Event is a single entry on the board. ID is assigned by the store on
// create and never changes; CreatedAt/UpdatedAt are maintained by the
// lifecycle service.
// swagger:model Event
type Event struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`
	Organizer   string        `json:"organizer"`
	Status      EventStatus   `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// EventFilter narrows a list query. Every field is optional; a zero value
// means "no constraint". StartDate/EndDate bound Date inclusively on either
// or both ends. Search matches as a case-insensitive substring of title,
// description, or organizer.
type EventFilter struct {
	Category  EventCategory
	Status    EventStatus
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// EventPatch is a partial update. Nil fields are left untouched; any
// provided field, including an empty string, replaces the stored value.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Category    *EventCategory
	Organizer   *string
	Status      *EventStatus
}

// Empty reports whether the patch carries no fields.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil &&
		p.Location == nil && p.Category == nil && p.Organizer == nil && p.Status == nil
}

// EventRepository defines the interface for event storage.
// Update and Delete are atomic single-document operations keyed by id and
// return ErrNotFound when no document matches; Update never upserts.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch, updatedAt time.Time) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
}

// EventService defines the business logic for the event lifecycle.
type EventService interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
}
