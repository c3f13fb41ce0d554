package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSwipe_LikeWithoutReciprocal(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	result, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.True(t, result.IsNewSwipe)
	assert.False(t, result.IsMatch)
}

func TestRecordSwipe_MutualLikeCreatesMatch(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	first, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.True(t, first.IsNewSwipe)
	assert.False(t, first.IsMatch)

	second, err := fx.swipes.RecordSwipe(context.Background(), "bob", "alice", true)
	require.NoError(t, err)
	assert.True(t, second.IsNewSwipe)
	assert.True(t, second.IsMatch)

	assert.Equal(t, 1, fx.notifier.count())
}

func TestRecordSwipe_IdempotentLike(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	first, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.True(t, first.IsNewSwipe)

	second, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.False(t, second.IsNewSwipe)
	assert.False(t, second.IsMatch)

	swipes, err := fx.store.ListSwipesByActor(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, swipes, 1)
}

func TestRecordSwipe_IdempotentPass(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	first, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", false)
	require.NoError(t, err)
	assert.True(t, first.IsNewSwipe)
	assert.False(t, first.IsMatch)

	second, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", false)
	require.NoError(t, err)
	assert.False(t, second.IsNewSwipe)
	assert.False(t, second.IsMatch)

	swipes, err := fx.store.ListSwipesByActor(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, swipes, 1)
}

func TestRecordSwipe_FlipBeforeMatchOverwrites(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	_, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", false)
	require.NoError(t, err)

	// Bob likes Alice; no match yet because Alice passed.
	result, err := fx.swipes.RecordSwipe(context.Background(), "bob", "alice", true)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	// Alice changes her mind. The overwritten pass completes the match.
	result, err = fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.False(t, result.IsNewSwipe)
	assert.True(t, result.IsMatch)

	swipes, err := fx.store.ListSwipesByActor(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.True(t, swipes[0].Liked)
}

func TestRecordSwipe_FlipAfterMatchFails(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")
	fx.seedProfile(t, "bob")

	_, err := fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	result, err := fx.swipes.RecordSwipe(context.Background(), "bob", "alice", true)
	require.NoError(t, err)
	require.True(t, result.IsMatch)

	_, err = fx.swipes.RecordSwipe(context.Background(), "alice", "bob", false)
	require.ErrorIs(t, err, ErrMatchImmutable)

	// Neither the match nor the underlying swipe changed.
	match, err := fx.store.GetMatch(context.Background(), "alice#bob")
	require.NoError(t, err)
	require.NotNil(t, match)

	swipe, err := fx.store.GetSwipe(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, swipe)
	assert.True(t, swipe.Liked)
}

func TestRecordSwipe_Validation(t *testing.T) {
	fx := newEngineFixtures()
	fx.seedProfile(t, "alice")

	_, err := fx.swipes.RecordSwipe(context.Background(), "alice", "alice", true)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = fx.swipes.RecordSwipe(context.Background(), "", "alice", true)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = fx.swipes.RecordSwipe(context.Background(), "alice", "ghost", true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fx.swipes.RecordSwipe(context.Background(), "ghost", "alice", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordSwipe_ConcurrentMutualLikes(t *testing.T) {
	for i := 0; i < 25; i++ {
		fx := newEngineFixtures()
		fx.seedProfile(t, "alice")
		fx.seedProfile(t, "bob")

		var wg sync.WaitGroup
		var aliceResult, bobResult *SwipeResult
		var aliceErr, bobErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			aliceResult, aliceErr = fx.swipes.RecordSwipe(context.Background(), "alice", "bob", true)
		}()
		go func() {
			defer wg.Done()
			bobResult, bobErr = fx.swipes.RecordSwipe(context.Background(), "bob", "alice", true)
		}()
		wg.Wait()

		require.NoError(t, aliceErr)
		require.NoError(t, bobErr)

		// Whatever the interleaving, exactly one match row exists, at
		// most one notification fired, and at least one side observed
		// the match at return time.
		match, err := fx.store.GetMatch(context.Background(), "alice#bob")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.True(t, aliceResult.IsMatch || bobResult.IsMatch)
		assert.Equal(t, 1, fx.notifier.count())

		matches, err := fx.store.ListMatchesByUser(context.Background(), "alice")
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	}
}
