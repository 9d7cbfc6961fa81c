package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/JoWinner/car-rental/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxImageSize = 4 << 20  // 4MB
	maxVideoSize = 32 << 20 // 32MB
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UploadHandler struct {
	uploader *s3.Uploader
}

func NewUploadHandler(uploader *s3.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadImage handles POST /admin/uploads/image.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 4MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("cars/images/%s%s", uuid.NewString(), ext)
	url, err := h.uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadVideo handles POST /admin/uploads/video.
func (h *UploadHandler) UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > maxVideoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video exceeds the 32MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".mp4" && ext != ".webm" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported video type"})
		return
	}
	contentType := "video/mp4"
	if ext == ".webm" {
		contentType = "video/webm"
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("cars/videos/%s%s", uuid.NewString(), ext)
	url, err := h.uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
