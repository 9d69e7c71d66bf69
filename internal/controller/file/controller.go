// Package file provides HTTP handlers for file upload and listing.
package file

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"datadrop-backend/internal/service"
	"datadrop-backend/internal/storage"
	"datadrop-backend/internal/utilities"
)

// FileController handles file related endpoints
type FileController struct {
	Storage storage.ObjectStorage
	Urls    *service.UrlService
}

// NewFileController creates a new instance of FileController
func NewFileController(store storage.ObjectStorage, urls *service.UrlService) *FileController {
	return &FileController{
		Storage: store,
		Urls:    urls,
	}
}

type uploadResponse struct {
	UploadedFile string   `json:"uploadedFile"`
	Bucket       string   `json:"bucket"`
	AllFiles     []string `json:"allFiles"`
	Message      string   `json:"message"`
}

// Upload validates the uploaded file's extension against the whitelist,
// streams it to the object store under its original filename, and returns the
// updated listing. An existing object with the same name is overwritten.
// @Summary Upload a file to the object store
// @Description The filename's extension must match a whitelisted file type
// @Tags File
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} uploadResponse "Successfully uploaded"
// @Failure 400 {object} utilities.ErrorResponse "Empty payload or disallowed extension"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 500 {object} utilities.ErrorResponse "Store or database failure"
// @Router /files/upload [post]
func (fc *FileController) Upload(c *gin.Context) {
	rawFile, err := c.FormFile("file")

	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	if err != nil || rawFile.Size == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "No file uploaded",
		})
		return
	}

	extension := extensionOf(rawFile.Filename)

	allowed, err := fc.Urls.IsExtensionAllowed(extension)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to load allowed file types: %v", err),
		})
		return
	}
	if !allowed {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid file type: %s", extension),
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	if err := fc.Storage.Upload(c.Request.Context(), rawFile.Filename, f); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("File upload failed: %v", err),
		})
		return
	}

	objects, err := fc.Storage.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to list files: %v", err),
		})
		return
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}

	c.JSON(http.StatusOK, uploadResponse{
		UploadedFile: rawFile.Filename,
		Bucket:       fc.Storage.Bucket(),
		AllFiles:     keys,
		Message:      "File uploaded successfully",
	})
}

// List enumerates the bucket and returns key, size, last-modified time and
// storage class per object.
// @Summary List stored objects
// @Tags File
// @Produce json
// @Success 200 {array} storage.ObjectInfo "Listing of the bucket"
// @Failure 500 {object} utilities.ErrorResponse "Store failure"
// @Router /files [get]
func (fc *FileController) List(c *gin.Context) {
	objects, err := fc.Storage.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to list files: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, objects)
}

// extensionOf returns the substring after the last '.' in name, empty when
// there is none. The dot itself is not part of the token stored in the
// whitelist.
func extensionOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}
