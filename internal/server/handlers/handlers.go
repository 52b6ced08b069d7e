package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/assets"
	"github.com/DeckDev-RC/hubapps/internal/repository"
)

// httpError maps repository and asset errors onto the response taxonomy:
// validation 400, unknown id 404, oversized payload 413, anything else 500.
func httpError(err error, notFoundMsg string) error {
	var verr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, assets.ErrTooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &verr):
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	default:
		log.Error("request failed on storage", "err", err)
		return fiber.ErrInternalServerError
	}
}

// formPtr reports a form field as present-or-absent so partial updates can
// tell "not sent" apart from "sent empty".
func formPtr(form *multipart.Form, key string) *string {
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	if fs, ok := form.File[key]; ok && len(fs) > 0 {
		return fs[0]
	}
	return nil
}
