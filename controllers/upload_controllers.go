package controllers

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"rooftop-server/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	maxUploadFiles    = 9
	maxUploadFileSize = 5 * 1024 * 1024
)

var mimeToExtension = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
}

type UploadController struct {
	uploadDir string
}

func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{uploadDir: uploadDir}
}

// pickExtension derives the stored file extension from the declared MIME
// type, falling back to the uploaded filename (jpeg normalized to jpg)
// and finally to a generic binary extension.
func pickExtension(file *multipart.FileHeader) string {
	if ext, ok := mimeToExtension[file.Header.Get("Content-Type")]; ok {
		return ext
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if imageExtensions[ext] {
		return ext
	}
	return "bin"
}

func (uc *UploadController) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid multipart form"})
	}

	// Both field names are accepted and merged into one candidate list.
	files := append([]*multipart.FileHeader{}, form.File["files"]...)
	files = append(files, form.File["file"]...)

	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files uploaded"})
	}
	if len(files) > maxUploadFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Too many files (max 9)"})
	}

	// Every file is validated before anything is written so a rejected
	// request never leaves files behind.
	for _, file := range files {
		if _, ok := mimeToExtension[file.Header.Get("Content-Type")]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file type"})
		}
		if file.Size > maxUploadFileSize {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File too large (max 5MB)"})
		}
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload files"})
	}

	urls := []string{}
	for _, file := range files {
		filename := utils.NewID() + "." + pickExtension(file)
		if err := c.SaveFile(file, filepath.Join(uc.uploadDir, filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload files"})
		}
		urls = append(urls, "/uploads/"+filename)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"urls": urls})
}
