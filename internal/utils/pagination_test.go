package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-2", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"2", "50", 2, 50},
		{"2", "51", 2, 50},
		{"2", "500", 2, 50},
		{"1", "1", 1, 1},
	}
	for _, tc := range cases {
		page, limit := ParsePage(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, "page=%q limit=%q", tc.page, tc.limit)
		assert.Equal(t, tc.wantLimit, limit, "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(25), p.TotalCount)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPagination(3, 10, 25)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPagination(1, 10, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
}
