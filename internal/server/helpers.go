package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chirp/internal/models"
	"chirp/internal/observability"
)

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}

// respondError maps an application error to an HTTP response. Anything that is
// not an AppError is treated as an internal failure.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		observability.Logger.Error("unhandled error", "path", c.Path(), "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "UNAUTHORIZED":
		status = fiber.StatusUnauthorized
	case "FORBIDDEN":
		status = fiber.StatusForbidden
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		observability.Logger.Error("internal error", "path", c.Path(), "error", err)
	}
	return models.RespondWithError(c, status, appErr)
}
