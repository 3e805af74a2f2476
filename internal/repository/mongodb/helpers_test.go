package mongodb

import (
	"testing"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestObjectIDFromHex(t *testing.T) {
	t.Run("valid id round-trips", func(t *testing.T) {
		id := bson.NewObjectID()
		parsed, err := objectIDFromHex(id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("syntactically invalid id is NotFound, not a distinct error", func(t *testing.T) {
		for _, id := range []string{"", "abc", "not-a-hex-object-id", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
			_, err := objectIDFromHex(id)
			assert.ErrorIs(t, err, domain.ErrNotFound, id)
		}
	})
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(mongo.ErrNoDocuments), domain.ErrNotFound)

	other := assert.AnError
	assert.Equal(t, other, wrapError(other))
}
