package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Classic Aviator", expected: "classic-aviator"},
		{name: "special characters stripped", input: "Ray-Ban® Wayfarer!", expected: "ray-ban-wayfarer"},
		{name: "runs of separators collapse", input: "Anti   Radiasi__Blue", expected: "anti-radiasi-blue"},
		{name: "surrounding whitespace trimmed", input: "  Sport  ", expected: "sport"},
		{name: "leading and trailing hyphens trimmed", input: "-- Promo --", expected: "promo"},
		{name: "already a slug", input: "kacamata-anak", expected: "kacamata-anak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}
