package utils

import (
	"souk/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeVariants(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Variant
		want []models.Variant
	}{
		{
			name: "valid entries pass through trimmed",
			in: []models.Variant{
				{Color: " Red ", Size: "M", Stock: 2},
				{Color: "", Size: "L", Stock: 0},
			},
			want: []models.Variant{
				{Color: "Red", Size: "M", Stock: 2},
				{Color: "", Size: "L", Stock: 0},
			},
		},
		{
			name: "entries without color and size are dropped",
			in: []models.Variant{
				{Color: "  ", Size: "", Stock: 5},
				{Color: "Blue", Size: "", Stock: 1},
			},
			want: []models.Variant{
				{Color: "Blue", Size: "", Stock: 1},
			},
		},
		{
			name: "negative stock is dropped",
			in: []models.Variant{
				{Color: "Green", Size: "S", Stock: -1},
			},
			want: []models.Variant{},
		},
		{
			name: "empty input stays empty",
			in:   []models.Variant{},
			want: []models.Variant{},
		},
		{
			name: "all bad entries reduce to empty, not an error",
			in: []models.Variant{
				{Stock: 3},
				{Color: "", Size: " ", Stock: -2},
			},
			want: []models.Variant{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeVariants(tt.in))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 24))
	assert.Equal(t, int64(1), TotalPages(1, 24))
	assert.Equal(t, int64(1), TotalPages(24, 24))
	assert.Equal(t, int64(2), TotalPages(25, 24))
	assert.Equal(t, int64(5), TotalPages(100, 20))
	assert.Equal(t, int64(0), TotalPages(10, 0))
}
