package database

import (
	"testing"
	"time"

	"familiaconnect/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, Up, dir)

	dir, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, Down, dir)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestConnect_GivesUpAfterAttempts(t *testing.T) {
	policy := RetryPolicy{Attempts: 2, Delay: time.Millisecond}

	db, err := Connect("host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1", policy, testutil.NewTestLogger())
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
