package mongodb

import (
	"regexp"

	"eventboard/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BuildEventQuery translates a filter into a store predicate. It is pure:
// the same filter always yields an equivalent document, and an empty filter
// yields an empty document that matches every event. Provided constraints
// are combined with AND; absence of a field means no constraint.
//
// Result ordering is not part of the predicate; the repository sorts by
// date ascending when it runs the query.
func BuildEventQuery(filter domain.EventFilter) bson.D {
	query := bson.D{}

	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}

	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.D{}
		if filter.StartDate != nil {
			dateRange = append(dateRange, bson.E{Key: "$gte", Value: *filter.StartDate})
		}
		if filter.EndDate != nil {
			dateRange = append(dateRange, bson.E{Key: "$lte", Value: *filter.EndDate})
		}
		query = append(query, bson.E{Key: "date", Value: dateRange})
	}

	if filter.Search != "" {
		// QuoteMeta keeps this a literal substring match even when the
		// term contains regex metacharacters.
		pattern := regexp.QuoteMeta(filter.Search)
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "description", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "organizer", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
		}})
	}

	return query
}
