package handler

import (
	"strings"
	"testing"

	"familiaconnect/internal/service"
	"familiaconnect/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Interactive(t *testing.T) {
	env := newTestEnv()

	c := testutil.NewFakeCallback(1, "")
	require.NoError(t, env.h.handleInteractive(c))

	for _, a := range service.Activities {
		assert.Contains(t, c.LastText(), a.Title)
	}
	assert.NotNil(t, findButton(c.LastMarkup(), "act_start_1"))
}

func TestHandler_SessionFlow(t *testing.T) {
	env := newTestEnv()
	env.members.On("GetMember", int64(1)).Return(testutil.NewTestMember(1, "Anna", "Mom"), nil)
	env.members.On("GetMember", int64(2)).Return(testutil.NewTestMember(2, "Sarah", ""), nil)
	env.members.On("AddPoints", []int64{1, 2}, service.ActivityPoints).Return(nil)

	c := testutil.NewFakeCallback(1, "\fact_start_1")
	require.NoError(t, env.h.handleCallback(c))
	assert.Contains(t, c.LastText(), "🎲 Family Quiz Night")
	assert.Contains(t, c.LastText(), "Started by Mom")

	assertCallbackDataFits(t, c.LastMarkup())
	join := findButtonWithPrefix(c.LastMarkup(), prefixSessionJoin)
	require.NotNil(t, join)
	sessionID := strings.TrimPrefix(join.Unique, prefixSessionJoin)

	c = testutil.NewFakeCallback(2, "\f"+prefixSessionJoin+sessionID)
	require.NoError(t, env.h.handleCallback(c))
	assert.Contains(t, c.LastText(), "• Sarah")

	c = testutil.NewFakeCallback(1, "\f"+prefixSessionFinish+sessionID)
	require.NoError(t, env.h.handleCallback(c))
	assert.Contains(t, c.LastText(), "Finished! +50 points each")
	assert.Nil(t, findButtonWithPrefix(c.LastMarkup(), prefixSessionJoin))

	c = testutil.NewFakeCallback(1, "\f"+prefixSessionFinish+sessionID)
	require.NoError(t, env.h.handleCallback(c))
	assert.Equal(t, []string{"This activity has already finished"}, c.ResponseTexts())

	c = testutil.NewFakeCallback(1, "\f"+prefixSessionView+"missing")
	require.NoError(t, env.h.handleCallback(c))
	assert.Equal(t, []string{"This activity is no longer running"}, c.ResponseTexts())

	env.members.AssertExpectations(t)
}

func TestHandler_UnknownActivity(t *testing.T) {
	env := newTestEnv()
	env.members.On("GetMember", int64(1)).Return(testutil.NewTestMember(1, "Anna", "Mom"), nil)

	c := testutil.NewFakeCallback(1, "\fact_start_99")
	require.NoError(t, env.h.handleCallback(c))
	assert.Equal(t, []string{"Unknown activity"}, c.ResponseTexts())
}
