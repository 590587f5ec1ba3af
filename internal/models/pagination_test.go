package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("first page", func(t *testing.T) {
		resp := Paginate(items, 1, 20)
		assert.Len(t, resp.Data, 20)
		assert.Equal(t, 1, resp.Data[0])
		assert.Equal(t, 45, resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		resp := Paginate(items, 3, 20)
		assert.Len(t, resp.Data, 5)
		assert.Equal(t, 41, resp.Data[0])
		assert.Equal(t, 45, resp.Data[4])
	})

	t.Run("page past the end", func(t *testing.T) {
		resp := Paginate(items, 9, 20)
		assert.Empty(t, resp.Data)
		assert.NotNil(t, resp.Data)
		assert.Equal(t, 45, resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("exact multiple", func(t *testing.T) {
		resp := Paginate(items[:40], 2, 20)
		assert.Len(t, resp.Data, 20)
		assert.Equal(t, 2, resp.TotalPages)
	})

	t.Run("empty input", func(t *testing.T) {
		resp := Paginate([]int{}, 1, 20)
		assert.Empty(t, resp.Data)
		assert.Equal(t, 0, resp.Total)
		assert.Equal(t, 0, resp.TotalPages)
	})
}

func TestClampPageArgs(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative page", -5, 10, 1, 10},
		{"oversized page size", 2, 500, 2, 20},
		{"valid passthrough", 3, 50, 3, 50},
		{"max page size kept", 1, 100, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ClampPageArgs(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}
