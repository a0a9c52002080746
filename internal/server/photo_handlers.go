package server

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"photorank/internal/models"
	"photorank/internal/service"
)

// UploadPhoto handles POST /api/upload-photo (multipart form).
// Form fields: photo (file), genderFilter, ageFilter.
func (s *Server) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, service.MaxUploadSizeBytes+1))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	photo, err := s.photoService.Upload(c.Context(), service.UploadPhotoInput{
		OwnerID:      currentUserID(c),
		Filename:     fileHeader.Filename,
		Content:      content,
		GenderFilter: c.FormValue("genderFilter"),
		AgeFilter:    c.FormValue("ageFilter"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"photoId": photo.ID,
	})
}

// PhotosToRate handles GET /api/photos-to-rate?gender=...&age=...
func (s *Server) PhotosToRate(c *fiber.Ctx) error {
	photos, err := s.photoService.PhotosToRate(
		c.Context(), currentUserID(c), c.Query("gender"), c.Query("age"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"photos": photos,
	})
}

// RatePhoto handles POST /api/rate-photo/:id
func (s *Server) RatePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Score  int    `json:"score"`
		Gender string `json:"gender"`
		Age    string `json:"age"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rating, err := s.ratingService.Rate(c.Context(), service.RateInput{
		RaterID: currentUserID(c),
		PhotoID: photoID,
		Gender:  req.Gender,
		Age:     req.Age,
		Score:   req.Score,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"rating": rating,
	})
}

// MyPhotos handles GET /api/my-photos
func (s *Server) MyPhotos(c *fiber.Ctx) error {
	photos, err := s.photoService.MyPhotos(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"photos": photos,
	})
}

// TogglePhotoActive handles PATCH /api/photo/:id/toggle-active
func (s *Server) TogglePhotoActive(c *fiber.Ctx) error {
	photoID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	photo, err := s.photoService.ToggleActive(c.Context(), currentUserID(c), photoID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"isActive": photo.IsActive,
	})
}
