package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit values", "3", "25", 3, 25},
		{"garbage falls back", "abc", "-1", 1, 10},
		{"zero page falls back", "0", "5", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage))
	}
}

func TestBounds(t *testing.T) {
	t.Run("last page keeps the remainder", func(t *testing.T) {
		lo, hi := Page{Number: 3, PerPage: 10}.Bounds(25)
		assert.Equal(t, 20, lo)
		assert.Equal(t, 25, hi)
	})

	t.Run("page beyond the end is empty, not an error", func(t *testing.T) {
		lo, hi := Page{Number: 4, PerPage: 10}.Bounds(25)
		assert.Equal(t, lo, hi)
	})

	t.Run("offset", func(t *testing.T) {
		assert.Equal(t, 20, Page{Number: 3, PerPage: 10}.Offset())
	})
}
