// Package store translates typed query filters into MongoDB queries. Filters
// are built and validated by the services before they ever touch bson, instead
// of growing an untyped bag of optional keys.
package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter is one typed query condition.
type Filter interface {
	apply(q bson.M)
}

// TextSearch matches the collection's text index.
type TextSearch struct {
	Query string
}

func (f TextSearch) apply(q bson.M) {
	q["$text"] = bson.M{"$search": f.Query}
}

// Regex is a case-insensitive substring match on one field.
type Regex struct {
	Field string
	Value string
}

func (f Regex) apply(q bson.M) {
	q[f.Field] = bson.M{"$regex": f.Value, "$options": "i"}
}

// Exact matches a field verbatim.
type Exact struct {
	Field string
	Value interface{}
}

func (f Exact) apply(q bson.M) {
	q[f.Field] = f.Value
}

// DateRange matches an inclusive [From, To] window; either bound may be zero.
type DateRange struct {
	Field string
	From  time.Time
	To    time.Time
}

func (f DateRange) apply(q bson.M) {
	bounds := bson.M{}
	if !f.From.IsZero() {
		bounds["$gte"] = f.From
	}
	if !f.To.IsZero() {
		bounds["$lte"] = f.To
	}
	if len(bounds) > 0 {
		q[f.Field] = bounds
	}
}

// OwnerQuery builds the bson query for an owner-scoped listing. Every filter
// is applied on top of the mandatory userId condition.
func OwnerQuery(ownerID primitive.ObjectID, filters ...Filter) bson.M {
	q := bson.M{"userId": ownerID}
	for _, f := range filters {
		if f != nil {
			f.apply(q)
		}
	}
	return q
}

// Query builds an unscoped bson query (public collections such as bookings).
func Query(filters ...Filter) bson.M {
	q := bson.M{}
	for _, f := range filters {
		if f != nil {
			f.apply(q)
		}
	}
	return q
}
