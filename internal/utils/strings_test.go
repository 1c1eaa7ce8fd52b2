package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"anna@example.com",
		"jan.kowalski@poczta.example.pl",
		"user+tag@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"user@",
		"user@domain",
		".user@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "an**@example.com", MaskEmail("anna@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
