package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/models"
	"github.com/DeckDev-RC/hubapps/internal/repository"
)

const docNotFound = "Doc not found"

type DocHandler struct {
	repo *repository.Docs
}

func NewDocHandler(repo *repository.Docs) *DocHandler {
	return &DocHandler{repo: repo}
}

func (h *DocHandler) List(c *fiber.Ctx) error {
	docs, err := h.repo.List()
	if err != nil {
		return httpError(err, docNotFound)
	}
	return c.JSON(docs)
}

func (h *DocHandler) Get(c *fiber.Ctx) error {
	doc, err := h.repo.Get(c.Params("id"))
	if err != nil {
		return httpError(err, docNotFound)
	}
	return c.JSON(doc)
}

func (h *DocHandler) Create(c *fiber.Ctx) error {
	in := repository.DocInput{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Type:        models.DocType(c.FormValue("type")),
		Content:     c.FormValue("content"),
	}
	file, _ := c.FormFile("file")

	doc, err := h.repo.Create(in, file)
	if err != nil {
		return httpError(err, docNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocHandler) Update(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expecting multipart form")
	}
	in := repository.DocUpdate{
		Title:       formPtr(form, "title"),
		Category:    formPtr(form, "category"),
		Description: formPtr(form, "description"),
		Content:     formPtr(form, "content"),
	}
	doc, err := h.repo.Update(c.Params("id"), in, formFile(form, "file"))
	if err != nil {
		return httpError(err, docNotFound)
	}
	return c.JSON(doc)
}

func (h *DocHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return httpError(err, docNotFound)
	}
	return c.JSON(fiber.Map{"message": "Doc deleted"})
}
