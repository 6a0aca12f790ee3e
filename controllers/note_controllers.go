package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"rooftop-server/models"
	"rooftop-server/repository"
	"rooftop-server/utils"

	"github.com/gofiber/fiber/v2"
)

const maxImagesPerNote = 9

type NoteController struct {
	repo  repository.NoteRepositoryInterface
	cache repository.FeedCacheInterface
}

func NewNoteController(repo repository.NoteRepositoryInterface, cache repository.FeedCacheInterface) *NoteController {
	return &NoteController{repo: repo, cache: cache}
}

type createNoteRequest struct {
	Content string          `json:"content"`
	Images  json.RawMessage `json:"images"`
}

// normalizeImages keeps string entries only, trims them, drops empties
// and silently truncates to the first 9. Anything that is not an array
// counts as no images at all.
func normalizeImages(raw json.RawMessage) []string {
	urls := []string{}
	var items []any
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return urls
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		urls = append(urls, s)
		if len(urls) == maxImagesPerNote {
			break
		}
	}
	return urls
}

func (nc *NoteController) GetNotes(c *fiber.Ctx) error {
	if nc.cache != nil {
		if notes, ok := nc.cache.GetFeed(); ok {
			return c.Status(fiber.StatusOK).JSON(notes)
		}
	}

	notes, err := nc.repo.FindNotes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notes"})
	}

	if nc.cache != nil {
		nc.cache.SetFeed(notes)
	}
	return c.Status(fiber.StatusOK).JSON(notes)
}

func (nc *NoteController) GetNoteByID(c *fiber.Ctx) error {
	id := c.Params("id")
	note, err := nc.repo.FindNoteByID(id)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch note"})
	}
	return c.Status(fiber.StatusOK).JSON(note)
}

func (nc *NoteController) CreateNote(c *fiber.Ctx) error {
	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	now := time.Now().UTC()
	note := models.Note{
		ID:        utils.NewID(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		Images:    []models.NoteImage{},
	}
	for i, url := range normalizeImages(req.Images) {
		note.Images = append(note.Images, models.NoteImage{
			ID:    utils.NewID(),
			URL:   url,
			Order: i,
		})
	}

	if err := nc.repo.SaveNote(note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create note"})
	}

	if nc.cache != nil {
		nc.cache.Invalidate()
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (nc *NoteController) DeleteNoteByID(c *fiber.Ctx) error {
	id := c.Params("id")

	// Check existence first so a missing note reports 404 instead of a
	// generic failure.
	if _, err := nc.repo.FindNoteByID(id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}

	if err := nc.repo.DeleteNoteByID(id); err != nil && !errors.Is(err, repository.ErrNoteNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}

	if nc.cache != nil {
		nc.cache.Invalidate()
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "id": id})
}
