package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadJobDescription handles POST /uploads/job-description. The
// extracted text is returned for the client to attach to interview setup.
func (h *UploadHandler) HandleUploadJobDescription(c *fiber.Ctx) error {
	file, err := c.FormFile("job_description")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No 'job_description' file uploaded. Please upload a PDF file.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveJobDescription(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save file: %v", err),
		})
	}

	text, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		// A file we cannot parse is useless, remove it
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from PDF: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadJobDescriptionResponse{
		Filename:     filename,
		OriginalName: file.Filename,
		Text:         text,
	})
}
