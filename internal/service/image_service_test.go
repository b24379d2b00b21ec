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

type imageFixture struct {
	images *service.ImageService
	charID string
}

func newImageFixture(t *testing.T, trustScore int) *imageFixture {
	t.Helper()
	ctx := context.Background()

	characters := memory.NewCharacterRepository()
	users := memory.NewUserRepository()

	char, err := service.NewCharacterService(characters).Create(ctx, models.CreateCharacterRequest{
		Name:            "Luna",
		Personality:     "mysterious and witty",
		CreatorUsername: "alice",
	})
	require.NoError(t, err)

	_, err = service.NewUserService(users).Upsert(ctx, models.UpsertUserRequest{
		Username:   "alice",
		TrustScore: trustScore,
	})
	require.NoError(t, err)

	return &imageFixture{
		images: service.NewImageService(characters, users),
		charID: char.ID,
	}
}

func TestGenerateUnknownCharacter(t *testing.T) {
	f := newImageFixture(t, 0)

	_, err := f.images.Generate(context.Background(), models.ImageRequest{
		CharacterID: "missing-id", Username: "alice", Prompt: "portrait", Rating: models.RatingSFW,
	})
	assert.ErrorIs(t, err, service.ErrCharacterNotFound)
}

func TestGenerateUnknownUser(t *testing.T) {
	f := newImageFixture(t, 0)

	_, err := f.images.Generate(context.Background(), models.ImageRequest{
		CharacterID: f.charID, Username: "nobody", Prompt: "portrait", Rating: models.RatingSFW,
	})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestGenerateNSFWAlwaysBlocked(t *testing.T) {
	// A maximal trust score changes nothing: the gate is rating-only
	f := newImageFixture(t, 100)

	out, err := f.images.Generate(context.Background(), models.ImageRequest{
		CharacterID: f.charID, Username: "alice", Prompt: "portrait", Rating: models.RatingNSFW,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ImageStatusBlocked, out.Status)
	assert.Nil(t, out.ImageURL)
	assert.NotEmpty(t, out.ID)
	assert.Contains(t, out.Message, "gated and disabled")
}

func TestGenerateSFWDeterministicURL(t *testing.T) {
	f := newImageFixture(t, 0)
	ctx := context.Background()
	req := models.ImageRequest{
		CharacterID: f.charID, Username: "alice", Prompt: "stargazing at dusk", Rating: models.RatingSFW,
	}

	first, err := f.images.Generate(ctx, req)
	require.NoError(t, err)
	second, err := f.images.Generate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, models.ImageStatusCompleted, first.Status)
	require.NotNil(t, first.ImageURL)
	require.NotNil(t, second.ImageURL)
	assert.Equal(t, *first.ImageURL, *second.ImageURL)
	assert.Contains(t, *first.ImageURL, "https://picsum.photos/seed/")
	assert.Contains(t, *first.ImageURL, "/768/512")

	// Fresh response id per call even when the URL repeats
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateSFWPromptChangesSeed(t *testing.T) {
	f := newImageFixture(t, 0)
	ctx := context.Background()

	base, err := f.images.Generate(ctx, models.ImageRequest{
		CharacterID: f.charID, Username: "alice", Prompt: "prompt zero", Rating: models.RatingSFW,
	})
	require.NoError(t, err)

	varied := false
	for _, prompt := range []string{"prompt one", "prompt two", "prompt three"} {
		out, err := f.images.Generate(ctx, models.ImageRequest{
			CharacterID: f.charID, Username: "alice", Prompt: prompt, Rating: models.RatingSFW,
		})
		require.NoError(t, err)
		if *out.ImageURL != *base.ImageURL {
			varied = true
			break
		}
	}
	assert.True(t, varied, "expected a different prompt to change the placeholder URL")
}
