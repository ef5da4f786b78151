package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePassword(t *testing.T) {
	assert.True(t, ComparePassword("123456", "123456"))
	assert.False(t, ComparePassword("123456", "654321"))
	assert.False(t, ComparePassword("123456", ""))
	assert.False(t, ComparePassword("", "123456"))
	assert.True(t, ComparePassword("", ""))
	assert.False(t, ComparePassword("123456", "1234567"))
}
