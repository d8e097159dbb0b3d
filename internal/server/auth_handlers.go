package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /users/login. Credentials arrive as HTTP Basic auth; a
// successful login opens or refreshes the caller's session server-side and
// returns a confirmation without any token material.
func (s *Server) Login(c *fiber.Ctx) error {
	userID, password, ok := basicAuthCredentials(c)
	if !ok {
		return respondError(c, models.NewNotAuthenticatedError("Basic auth credentials required"))
	}

	if err := s.sessionService.Login(c.Context(), userID, password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Login successful"})
}

// Logout handles POST /users/logout, also authenticated with Basic auth.
func (s *Server) Logout(c *fiber.Ctx) error {
	userID, password, ok := basicAuthCredentials(c)
	if !ok {
		return respondError(c, models.NewNotAuthenticatedError("Basic auth credentials required"))
	}

	if err := s.sessionService.Logout(c.Context(), userID, password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Logout successful"})
}
