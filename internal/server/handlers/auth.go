package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/services"
)

func Login(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	token, err := services.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"token": token})
}

// Me confirms a valid token; the middleware already did the work.
func Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Token valid"})
}
