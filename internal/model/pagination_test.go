package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultPostPageSize, ClampLimit(0))
	assert.Equal(t, DefaultPostPageSize, ClampLimit(-1))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 50, ClampLimit(50))
	assert.Equal(t, MaxPageSize, ClampLimit(MaxPageSize))
	assert.Equal(t, MaxPageSize, ClampLimit(MaxPageSize+1))
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(-10))
	assert.Equal(t, 0, ClampOffset(0))
	assert.Equal(t, 250, ClampOffset(250))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(-1))
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(1))
	assert.Equal(t, 9, ClampPage(9))
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, DefaultDirectoryPageSize, ClampCount(0))
	assert.Equal(t, DefaultDirectoryPageSize, ClampCount(-5))
	assert.Equal(t, 1, ClampCount(1))
	assert.Equal(t, MaxPageSize, ClampCount(101))
}
