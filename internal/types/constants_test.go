package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect-dev/campusconnect/internal/config"
)

func TestInitAllowedOrigins(t *testing.T) {
	t.Cleanup(func() { InitAllowedOrigins(&config.Config{}) })

	InitAllowedOrigins(&config.Config{
		ClientURL:      "https://events.college.edu",
		AllowedOrigins: "https://staging.college.edu, https://preview.college.edu",
	})

	assert.Contains(t, AllowedOrigins, "http://localhost:3000")
	assert.Contains(t, AllowedOrigins, "http://localhost:5173")
	assert.Contains(t, AllowedOrigins, "https://events.college.edu")
	assert.Contains(t, AllowedOrigins, "https://staging.college.edu")
	assert.Contains(t, AllowedOrigins, "https://preview.college.edu")
}

func TestInitAllowedOriginsEmptyConfig(t *testing.T) {
	t.Cleanup(func() { InitAllowedOrigins(&config.Config{}) })

	InitAllowedOrigins(&config.Config{})

	assert.Equal(t, defaultOrigins, AllowedOrigins)
}
