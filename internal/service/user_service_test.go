package service_test

import (
	"context"
	"testing"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository/memory"
	"character-chat-demo/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, models.UpsertUserRequest{
		Username:   "alice",
		Age:        intPtr(30),
		TrustScore: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, 10, first.TrustScore)

	second, err := svc.Upsert(ctx, models.UpsertUserRequest{
		Username:   "alice",
		Age:        intPtr(31),
		TrustScore: 42,
	})
	require.NoError(t, err)

	// Still one record, reflecting the second call's values
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 42, second.TrustScore)
	require.NotNil(t, second.Age)
	assert.Equal(t, 31, *second.Age)
}

func TestUpsertMergesNilAge(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, models.UpsertUserRequest{Username: "bob", Age: intPtr(25)})
	require.NoError(t, err)

	// Second upsert omits age; the merge still applies every input field
	out, err := svc.Upsert(ctx, models.UpsertUserRequest{Username: "bob", TrustScore: 5})
	require.NoError(t, err)
	assert.Nil(t, out.Age)
	assert.Equal(t, 5, out.TrustScore)
}

func TestGetUnknownUserReturnsNotFound(t *testing.T) {
	svc := service.NewUserService(memory.NewUserRepository())

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestGetReturnsStoredProjection(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, models.UpsertUserRequest{Username: "carol", TrustScore: 77})
	require.NoError(t, err)

	out, err := svc.Get(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, models.UserProfileOut{Username: "carol", TrustScore: 77}, out)
}
