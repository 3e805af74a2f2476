package mongodb

import (
	"context"
	"time"

	"eventboard/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type userDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Name      string        `bson:"name"`
	Password  string        `bson:"password"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository backed by the users collection
// of the given store.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

// Create inserts the user. The unique email index turns a concurrent
// duplicate registration into ErrDuplicateEmail here.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDocument{
		ID:        bson.NewObjectID(),
		Email:     user.Email,
		Name:      user.Name,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
	if _, err := r.store.col(ColUsers).InsertOne(ctx, doc); err != nil {
		return wrapError(err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc, err := findOne[userDocument](ctx, r.store.col(ColUsers), bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[userDocument](ctx, r.store.col(ColUsers), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}
