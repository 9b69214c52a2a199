package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOwnerQueryAlwaysScopes(t *testing.T) {
	owner := primitive.NewObjectID()

	q := OwnerQuery(owner)
	assert.Equal(t, bson.M{"userId": owner}, q)

	q = OwnerQuery(owner, Regex{Field: "vehicleNumber", Value: "ka 01"})
	assert.Equal(t, owner, q["userId"])
	assert.Equal(t, bson.M{"$regex": "ka 01", "$options": "i"}, q["vehicleNumber"])
}

func TestTextSearch(t *testing.T) {
	q := Query(TextSearch{Query: "acme"})
	assert.Equal(t, bson.M{"$search": "acme"}, q["$text"])
}

func TestExact(t *testing.T) {
	q := Query(Exact{Field: "isCompleted", Value: true})
	assert.Equal(t, true, q["isCompleted"])
}

func TestDateRange(t *testing.T) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)

	q := Query(DateRange{Field: "billingDate", From: from, To: to})
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, q["billingDate"])

	// Open-ended bounds.
	q = Query(DateRange{Field: "billingDate", From: from})
	assert.Equal(t, bson.M{"$gte": from}, q["billingDate"])

	q = Query(DateRange{Field: "billingDate", To: to})
	assert.Equal(t, bson.M{"$lte": to}, q["billingDate"])

	// Both bounds zero leaves the field out entirely.
	q = Query(DateRange{Field: "billingDate"})
	_, present := q["billingDate"]
	assert.False(t, present)
}

func TestQueryCombinesFilters(t *testing.T) {
	id := primitive.NewObjectID()
	q := OwnerQuery(id,
		Exact{Field: "vehicleIds", Value: id},
		Regex{Field: "companyName", Value: "acme"},
		Exact{Field: "isCompleted", Value: false},
	)
	assert.Len(t, q, 4)
}
