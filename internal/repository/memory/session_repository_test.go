package memory

import (
	"testing"

	"property-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("session-1")
	require.NotNil(t, s)
	assert.Equal(t, store.StageStart, s.Stage)

	s.Stage = store.StageChooseIntent
	repo.Save(s)

	again := repo.GetOrCreate("session-1")
	assert.Equal(t, store.StageChooseIntent, again.Stage, "existing session must be reused")
}

func TestGetMissing(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("nope")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository()

	repo.GetOrCreate("session-1")
	repo.Delete("session-1")

	_, found := repo.Get("session-1")
	assert.False(t, found)
}
