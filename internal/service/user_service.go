package service

import (
	"context"
	"errors"
	"time"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository"
)

// UserService owns the user profile lifecycle. Profiles are keyed by
// username and upserted: first write creates the record, later writes merge
// into it. Profiles are never deleted.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Upsert creates or updates the profile for req.Username and returns the
// stored projection. All input fields are merged on update, including a nil
// age, so the second caller's values always win.
func (s *UserService) Upsert(ctx context.Context, req models.UpsertUserRequest) (models.UserProfileOut, error) {
	now := time.Now().UTC()

	existing, err := s.repo.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		existing.Age = req.Age
		existing.TrustScore = req.TrustScore
		existing.UpdatedAt = now
		if err := s.repo.Update(ctx, existing); err != nil {
			return models.UserProfileOut{}, err
		}
		stored, err := s.repo.FindByUsername(ctx, req.Username)
		if err != nil {
			return models.UserProfileOut{}, err
		}
		return models.NewUserProfileOut(*stored), nil

	case errors.Is(err, repository.ErrNotFound):
		user := &models.UserProfile{
			DocID:      req.Username, // readable primary key
			Username:   req.Username,
			Age:        req.Age,
			TrustScore: req.TrustScore,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Insert(ctx, user); err != nil {
			return models.UserProfileOut{}, err
		}
		return models.NewUserProfileOut(*user), nil

	default:
		return models.UserProfileOut{}, err
	}
}

// Get returns the projection for username or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (models.UserProfileOut, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return models.UserProfileOut{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserProfileOut{}, err
	}
	return models.NewUserProfileOut(*user), nil
}
