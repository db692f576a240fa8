package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10MB

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageUploader is satisfied by *utils.CloudinaryUploader.
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

type UploadHandler struct {
	Uploader ImageUploader
}

func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{Uploader: uploader}
}

// UploadImage stores an image and returns a URL that can be used as the
// image of a category or subcategory.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse(utils.ErrUploadsDisabled.Error()))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("No file provided or file too large (Max 10MB)"))
		return
	}
	defer file.Close()

	// Sniff the real type from the first 512 bytes rather than trusting the header.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to read file for validation"))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to read file for validation"))
		return
	}

	contentType := http.DetectContentType(buffer[:n])
	fallbackExt, allowed := imageExtensions[contentType]
	if !allowed {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unsupported file type. Please upload JPG, PNG, WEBP, or GIF"))
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = fallbackExt
	}
	safeFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	imageURL, err := h.Uploader.Upload(ctx, file, safeFilename)
	if err != nil {
		respondError(c, err, "image", "failed to upload image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":  imageURL,
		"size": header.Size,
		"type": contentType,
	})
}
