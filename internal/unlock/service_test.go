package unlock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T, password string, ttl time.Duration) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, password, ttl), mr
}

func TestUnlockIssuesSessionToken(t *testing.T) {
	svc, _ := setupService(t, "carter2025", time.Hour)
	ctx := context.Background()

	token, err := svc.Unlock(ctx, "carter2025")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Unlocked(ctx, token))
	assert.False(t, svc.Unlocked(ctx, "some-other-token"))

	second, err := svc.Unlock(ctx, "carter2025")
	require.NoError(t, err)
	assert.NotEqual(t, token, second, "each unlock issues its own session")
}

func TestUnlockRejectsWrongPassword(t *testing.T) {
	svc, _ := setupService(t, "carter2025", time.Hour)
	ctx := context.Background()

	for _, attempt := range []string{"", "wrong", "CARTER2025", "carter2025 "} {
		_, err := svc.Unlock(ctx, attempt)
		assert.ErrorIs(t, err, ErrWrongPassword, "attempt %q", attempt)
	}
}

func TestUnlockWithoutConfiguredPassword(t *testing.T) {
	svc, _ := setupService(t, "", time.Hour)

	_, err := svc.Unlock(context.Background(), "")
	assert.ErrorIs(t, err, ErrWrongPassword, "no password configured means nothing unlocks")
	assert.False(t, svc.Configured())
}

func TestUnlockSessionExpires(t *testing.T) {
	svc, mr := setupService(t, "carter2025", time.Hour)
	ctx := context.Background()

	token, err := svc.Unlock(ctx, "carter2025")
	require.NoError(t, err)
	require.True(t, svc.Unlocked(ctx, token))

	mr.FastForward(2 * time.Hour)
	assert.False(t, svc.Unlocked(ctx, token))
}

func TestUnlockFailsClosedWithoutStore(t *testing.T) {
	svc := New(nil, "carter2025", time.Hour)
	ctx := context.Background()

	_, err := svc.Unlock(ctx, "carter2025")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, svc.Unlocked(ctx, "anything"))
}
