package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("  user.name+tag@mail.example.org "))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  maria  ")
	assert.True(t, ok)
	assert.Equal(t, "maria", trimmed)

	trimmed, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.Empty(t, trimmed)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Buenos Aires", "aires"))
	assert.True(t, ContainsFold("São Paulo", "SÃO"))
	assert.True(t, ContainsFold("Madrid", ""))
	assert.False(t, ContainsFold("Madrid", "rome"))
}
