package repository

import (
	"context"
	"errors"

	"photorank/internal/models"

	"gorm.io/gorm"
)

// PhotoRepository defines persistence operations for photos and ratings.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uint) (*models.Photo, error)
	GetByIDWithRatings(ctx context.Context, id uint) (*models.Photo, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Photo, error)
	ListToRate(ctx context.Context, viewerID uint, gender, age string, limit int) ([]models.Photo, error)
	AddRating(ctx context.Context, rating *models.Rating, ownerID uint) error
	ToggleActive(ctx context.Context, photo *models.Photo) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository returns a new PhotoRepository implementation.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Photo", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

func (r *photoRepository) GetByIDWithRatings(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).Preload("Ratings").First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Photo", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

func (r *photoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).Preload("Ratings").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// ListToRate returns active photos the viewer may rate: not their own, not
// already rated by them, and whose demographic targeting admits the viewer.
// A photo filter of "any" matches every viewer value; an empty viewer value
// applies no targeting filter at all.
func (r *photoRepository) ListToRate(ctx context.Context, viewerID uint, gender, age string, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("owner_id <> ?", viewerID).
		Where("NOT EXISTS (SELECT 1 FROM ratings WHERE ratings.photo_id = photos.id AND ratings.user_id = ?)", viewerID)
	if gender != "" {
		q = q.Where("gender_filter IN (?, ?)", gender, models.FilterAny)
	}
	if age != "" {
		q = q.Where("age_filter IN (?, ?)", age, models.FilterAny)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// AddRating inserts the rating and moves one point from the photo owner to
// the rater in a single transaction. The owner's balance may go negative;
// only the toggle action is points-gated.
func (r *photoRepository) AddRating(ctx context.Context, rating *models.Rating, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewDuplicateRatingError()
			}
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", rating.UserID).
			Update("points", gorm.Expr("points + 1")).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", ownerID).
			Update("points", gorm.Expr("points - 1")).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

// ToggleActive flips the photo's visibility and debits one point from the
// owner. The debit's WHERE clause requires points >= 1 so the charge and the
// balance check are one atomic statement.
func (r *photoRepository) ToggleActive(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", photo.OwnerID, 1).
			Update("points", gorm.Expr("points - 1"))
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewInsufficientPointsError()
		}
		// Relative flip, like the points expressions above: a stale
		// in-memory photo can never write back an old value.
		if err := tx.Model(&models.Photo{}).
			Where("id = ?", photo.ID).
			Update("is_active", gorm.Expr("NOT is_active")).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}
