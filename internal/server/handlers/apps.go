package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/repository"
)

const appNotFound = "App not found"

type AppHandler struct {
	repo *repository.Apps
}

func NewAppHandler(repo *repository.Apps) *AppHandler {
	return &AppHandler{repo: repo}
}

func (h *AppHandler) List(c *fiber.Ctx) error {
	apps, err := h.repo.List()
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(apps)
}

func (h *AppHandler) Get(c *fiber.Ctx) error {
	app, err := h.repo.Get(c.Params("id"))
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(app)
}

func (h *AppHandler) Create(c *fiber.Ctx) error {
	in := repository.AppInput{
		Name:             c.FormValue("name"),
		Version:          c.FormValue("version"),
		Category:         c.FormValue("category"),
		ShortDescription: c.FormValue("shortDescription"),
		FullDescription:  c.FormValue("fullDescription"),
		Changelog:        c.FormValue("changelog"),
		Requirements:     c.FormValue("requirements"),
	}
	logo, _ := c.FormFile("logo")
	installer, _ := c.FormFile("installer")

	app, err := h.repo.Create(in, logo, installer)
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *AppHandler) Update(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expecting multipart form")
	}
	in := repository.AppUpdate{
		Name:             formPtr(form, "name"),
		Version:          formPtr(form, "version"),
		Category:         formPtr(form, "category"),
		ShortDescription: formPtr(form, "shortDescription"),
		FullDescription:  formPtr(form, "fullDescription"),
		Changelog:        formPtr(form, "changelog"),
		Requirements:     formPtr(form, "requirements"),
	}
	app, err := h.repo.Update(c.Params("id"), in, formFile(form, "logo"), formFile(form, "installer"))
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(app)
}

func (h *AppHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(fiber.Map{"message": "App deleted"})
}

func (h *AppHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.repo.StatsSummary()
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(stats)
}

// Download bumps the public download counter. No auth: the portal's public
// page calls it.
func (h *AppHandler) Download(c *fiber.Ctx) error {
	if err := h.repo.IncrementDownload(c.Params("id")); err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(fiber.Map{"success": true})
}
