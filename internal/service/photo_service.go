package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photorank/internal/config"
	"photorank/internal/middleware"
	"photorank/internal/models"
	"photorank/internal/repository"
)

const (
	DefaultUploadDir    = "uploads"
	MaxUploadSizeBytes  = 10 * 1024 * 1024
	PhotosToRateDefault = 10
)

// PhotoService handles photo upload, listing, and visibility.
type PhotoService struct {
	photoRepo repository.PhotoRepository
	uploadDir string
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(photoRepo repository.PhotoRepository, cfg *config.Config) *PhotoService {
	uploadDir := DefaultUploadDir
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}
	return &PhotoService{photoRepo: photoRepo, uploadDir: uploadDir}
}

// UploadDir returns the directory uploaded files are written to.
func (s *PhotoService) UploadDir() string {
	return s.uploadDir
}

// UploadPhotoInput carries an upload request into the service.
type UploadPhotoInput struct {
	OwnerID      uint
	Filename     string
	Content      []byte
	GenderFilter string
	AgeFilter    string
}

// Upload validates the image and targeting filters, writes the file to disk,
// and records the photo. Absent filters default to "any".
func (s *PhotoService) Upload(ctx context.Context, in UploadPhotoInput) (*models.Photo, error) {
	if in.OwnerID == 0 {
		return nil, models.NewValidationError("Invalid user")
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > MaxUploadSizeBytes {
		return nil, models.NewValidationError("File too large (max 10MB)")
	}

	detectedType := http.DetectContentType(in.Content)
	if !strings.HasPrefix(detectedType, "image/") {
		return nil, models.NewValidationError("Invalid image type")
	}

	genderFilter := in.GenderFilter
	if genderFilter == "" {
		genderFilter = models.FilterAny
	}
	ageFilter := in.AgeFilter
	if ageFilter == "" {
		ageFilter = models.FilterAny
	}
	if !models.ValidGenderFilter(genderFilter) {
		return nil, models.NewValidationError("Invalid gender filter")
	}
	if !models.ValidAgeFilter(ageFilter) {
		return nil, models.NewValidationError("Invalid age filter")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Timestamp-derived name keeps the original extension but never the
	// original filename.
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(in.Filename))
	path := filepath.Join(s.uploadDir, filename)
	if err := os.WriteFile(path, in.Content, 0o644); err != nil {
		return nil, models.NewInternalError(err)
	}

	photo := &models.Photo{
		OwnerID:      in.OwnerID,
		ImageURL:     "/uploads/" + filename,
		IsActive:     true,
		GenderFilter: genderFilter,
		AgeFilter:    ageFilter,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		os.Remove(path)
		return nil, err
	}

	middleware.PhotosUploaded.Inc()
	return photo, nil
}

// PhotosToRate returns up to ten photos the viewer is eligible to rate,
// filtered by the viewer's declared demographics. An absent or "any"
// demographic applies no targeting filter.
func (s *PhotoService) PhotosToRate(ctx context.Context, viewerID uint, gender, age string) ([]models.Photo, error) {
	if gender == models.FilterAny {
		gender = ""
	}
	if age == models.FilterAny {
		age = ""
	}
	return s.photoRepo.ListToRate(ctx, viewerID, gender, age, PhotosToRateDefault)
}

// PhotoWithStats pairs a photo with its aggregated rating breakdown. The
// stats fields sit directly on the photo object on the wire.
type PhotoWithStats struct {
	models.Photo
	models.PhotoStats
}

// MyPhotos returns the owner's photos with per-photo rating statistics,
// recomputed from the stored ratings on every call.
func (s *PhotoService) MyPhotos(ctx context.Context, ownerID uint) ([]PhotoWithStats, error) {
	photos, err := s.photoRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]PhotoWithStats, 0, len(photos))
	for _, photo := range photos {
		out = append(out, PhotoWithStats{
			Photo:      photo,
			PhotoStats: models.ComputeStats(photo.Ratings),
		})
	}
	return out, nil
}

// ToggleActive flips a photo's visibility for its owner, charging one point.
// Ownership is checked before affordability so a non-owner never learns
// whether they could afford the toggle.
func (s *PhotoService) ToggleActive(ctx context.Context, userID, photoID uint) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo.OwnerID != userID {
		return nil, models.NewForbiddenError("You do not own this photo")
	}
	if err := s.photoRepo.ToggleActive(ctx, photo); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photoID)
}
