package mongodb

import (
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func mustTime(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestBuildEventQuery_Empty(t *testing.T) {
	query := BuildEventQuery(domain.EventFilter{})
	assert.Empty(t, query, "empty filter must match all records")
}

func TestBuildEventQuery_Equality(t *testing.T) {
	query := BuildEventQuery(domain.EventFilter{
		Category: domain.CategoryWorkshop,
		Status:   domain.StatusConfirmed,
	})

	require.Len(t, query, 2)
	assert.Equal(t, bson.E{Key: "category", Value: domain.CategoryWorkshop}, query[0])
	assert.Equal(t, bson.E{Key: "status", Value: domain.StatusConfirmed}, query[1])
}

func TestBuildEventQuery_DateRange(t *testing.T) {
	start := mustTime(t, "2026-01-01")
	end := mustTime(t, "2026-12-31")

	tests := []struct {
		name   string
		filter domain.EventFilter
		want   bson.D
	}{
		{
			name:   "start only",
			filter: domain.EventFilter{StartDate: start},
			want:   bson.D{{Key: "$gte", Value: *start}},
		},
		{
			name:   "end only",
			filter: domain.EventFilter{EndDate: end},
			want:   bson.D{{Key: "$lte", Value: *end}},
		},
		{
			name:   "both bounds",
			filter: domain.EventFilter{StartDate: start, EndDate: end},
			want:   bson.D{{Key: "$gte", Value: *start}, {Key: "$lte", Value: *end}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := BuildEventQuery(tt.filter)
			require.Len(t, query, 1)
			assert.Equal(t, "date", query[0].Key)
			assert.Equal(t, tt.want, query[0].Value)
		})
	}
}

func TestBuildEventQuery_Search(t *testing.T) {
	query := BuildEventQuery(domain.EventFilter{Search: "workshop"})

	require.Len(t, query, 1)
	require.Equal(t, "$or", query[0].Key)

	branches, ok := query[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 3)

	fields := make([]string, 0, 3)
	for _, branch := range branches {
		doc, ok := branch.(bson.D)
		require.True(t, ok)
		require.Len(t, doc, 1)
		fields = append(fields, doc[0].Key)

		match, ok := doc[0].Value.(bson.D)
		require.True(t, ok)
		assert.Equal(t, bson.E{Key: "$regex", Value: "workshop"}, match[0])
		assert.Equal(t, bson.E{Key: "$options", Value: "i"}, match[1])
	}
	assert.Equal(t, []string{"title", "description", "organizer"}, fields)
}

func TestBuildEventQuery_SearchQuotesMetacharacters(t *testing.T) {
	query := BuildEventQuery(domain.EventFilter{Search: "c++ (intro)"})

	branches := query[0].Value.(bson.A)
	match := branches[0].(bson.D)[0].Value.(bson.D)
	assert.Equal(t, `c\+\+ \(intro\)`, match[0].Value)
}

func TestBuildEventQuery_AllConstraintsCombine(t *testing.T) {
	start := mustTime(t, "2026-06-01")
	query := BuildEventQuery(domain.EventFilter{
		Category:  domain.CategoryMeetup,
		Status:    domain.StatusDraft,
		StartDate: start,
		Search:    "go",
	})

	require.Len(t, query, 4)
	keys := make([]string, len(query))
	for i, e := range query {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"category", "status", "date", "$or"}, keys)
}

func TestBuildEventQuery_Deterministic(t *testing.T) {
	filter := domain.EventFilter{
		Category: domain.CategoryTalk,
		Search:   "lightning",
	}
	assert.Equal(t, BuildEventQuery(filter), BuildEventQuery(filter))
}
