package service

import (
	"context"

	"photorank/internal/middleware"
	"photorank/internal/models"
	"photorank/internal/repository"
)

const (
	MinScore = 1
	MaxScore = 5
)

// RatingService handles scoring photos and the point transfer that goes
// with it.
type RatingService struct {
	photoRepo repository.PhotoRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(photoRepo repository.PhotoRepository) *RatingService {
	return &RatingService{photoRepo: photoRepo}
}

// RateInput carries a rating request into the service.
type RateInput struct {
	RaterID uint
	PhotoID uint
	Gender  string
	Age     string
	Score   int
}

// Rate records a score against a photo and transfers one point from the
// photo's owner to the rater. A user cannot rate their own photo or the
// same photo twice.
func (s *RatingService) Rate(ctx context.Context, in RateInput) (*models.Rating, error) {
	if in.Score < MinScore || in.Score > MaxScore {
		return nil, models.NewValidationError("Score must be between 1 and 5")
	}
	if !models.ValidGender(in.Gender) {
		return nil, models.NewValidationError("Invalid gender")
	}
	if !models.ValidAgeBucket(in.Age) {
		return nil, models.NewValidationError("Invalid age range")
	}

	photo, err := s.photoRepo.GetByID(ctx, in.PhotoID)
	if err != nil {
		return nil, err
	}
	if photo.OwnerID == in.RaterID {
		return nil, models.NewSelfRatingError()
	}

	rating := &models.Rating{
		PhotoID: in.PhotoID,
		UserID:  in.RaterID,
		Gender:  in.Gender,
		Age:     in.Age,
		Score:   in.Score,
	}
	// The unique index on (photo_id, user_id) turns concurrent duplicates
	// into a DuplicateRating error inside the transaction.
	if err := s.photoRepo.AddRating(ctx, rating, photo.OwnerID); err != nil {
		return nil, err
	}

	middleware.RatingsRecorded.Inc()
	return rating, nil
}
