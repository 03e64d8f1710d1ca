package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDirectoryRepository(t *testing.T) {
	db := &Connection{}
	repo := NewDirectoryRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "alice", escapeLike("alice"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}
