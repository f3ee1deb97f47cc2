package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Shirt", "shirt"},
		{"spaces", "Linen Summer Shirt", "linen-summer-shirt"},
		{"surrounding whitespace", "  Oversized Tee  ", "oversized-tee"},
		{"punctuation dropped", "Khit's \"Best\" Tee!", "khits-best-tee"},
		{"collapses separators", "a  --  b", "a-b"},
		{"digits kept", "Tee 2024", "tee-2024"},
		{"nothing survives", "???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestRandomSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{6}$`)
	for range 20 {
		assert.Regexp(t, pattern, RandomSuffix())
	}
}

func TestClampStock(t *testing.T) {
	assert.Equal(t, 5, ClampStock(5.5))
	assert.Equal(t, 5, ClampStock(5))
	assert.Equal(t, 0, ClampStock(0))
	assert.Equal(t, 0, ClampStock(-3))
	assert.Equal(t, 0, ClampStock(-0.5))
	assert.Equal(t, 12, ClampStock(12.999))
}

func TestProductOnSale(t *testing.T) {
	assert.True(t, Product{BasePrice: 100, SalePrice: 80}.OnSale())
	assert.False(t, Product{BasePrice: 100, SalePrice: 100}.OnSale())
	assert.False(t, Product{BasePrice: 100}.OnSale())
	assert.False(t, Product{SalePrice: 80}.OnSale())
}
