package mongodb

import (
	"context"
	"time"

	"eventboard/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// eventDocument is the stored shape of an event. Field names match the
// collection layout; the _id is a native ObjectID and is mapped to its hex
// form at the repository boundary.
type eventDocument struct {
	ID          bson.ObjectID        `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Date        time.Time            `bson:"date"`
	Location    string               `bson:"location"`
	Category    domain.EventCategory `bson:"category"`
	Organizer   string               `bson:"organizer"`
	Status      domain.EventStatus   `bson:"status"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func (d *eventDocument) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Location:    d.Location,
		Category:    d.Category,
		Organizer:   d.Organizer,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type eventRepository struct {
	store *Store
}

// NewEventRepository returns an EventRepository backed by the events
// collection of the given store.
func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	doc := eventDocument{
		ID:          bson.NewObjectID(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		Category:    event.Category,
		Organizer:   event.Organizer,
		Status:      event.Status,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if _, err := r.store.col(ColEvents).InsertOne(ctx, doc); err != nil {
		return wrapError(err)
	}
	event.ID = doc.ID.Hex()
	return nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	docs, err := findMany[eventDocument](ctx, r.store.col(ColEvents), BuildEventQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	events := make([]*domain.Event, len(docs))
	for i, d := range docs {
		events[i] = d.toDomain()
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[eventDocument](ctx, r.store.col(ColEvents), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update applies the patch as a single conditional update keyed by _id and
// returns the post-update document. A zero-match is ErrNotFound; upsert is
// deliberately not enabled.
func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch, updatedAt time.Time) (*domain.Event, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// updatedAt is always bumped, so the $set document is never empty even
	// for a field-less patch.
	set := bson.D{{Key: "updatedAt", Value: updatedAt}}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Date != nil {
		set = append(set, bson.E{Key: "date", Value: *patch.Date})
	}
	if patch.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *patch.Location})
	}
	if patch.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.Organizer != nil {
		set = append(set, bson.E{Key: "organizer", Value: *patch.Organizer})
	}
	if patch.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *patch.Status})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc eventDocument
	err = r.store.col(ColEvents).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, wrapError(err)
	}
	return doc.toDomain(), nil
}

// Delete removes the event by id and returns the removed document for
// confirmation, or ErrNotFound when nothing matched.
func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc eventDocument
	err = r.store.col(ColEvents).FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		return nil, wrapError(err)
	}
	return doc.toDomain(), nil
}
