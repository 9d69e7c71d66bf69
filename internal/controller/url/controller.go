// Package url provides HTTP handlers for the extension whitelist.
package url

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"datadrop-backend/internal/repository"
	"datadrop-backend/internal/service"
	"datadrop-backend/internal/utilities"
)

// UrlController handles whitelist endpoints.
type UrlController struct {
	Service *service.UrlService
}

// NewUrlController creates a new instance of UrlController
func NewUrlController(svc *service.UrlService) *UrlController {
	return &UrlController{Service: svc}
}

type urlRequest struct {
	URL      string `json:"url" binding:"required"`
	FileType string `json:"file_type" binding:"required"`
}

// GetAll returns every whitelist record.
// @Summary List allowed file types
// @Tags Url
// @Produce json
// @Success 200 {array} model.AllowedFileType
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /url [get]
func (uc *UrlController) GetAll(c *gin.Context) {
	records, err := uc.Service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByID returns one whitelist record by id.
// @Summary Get one allowed file type
// @Tags Url
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} model.AllowedFileType
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "Unknown id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /url/{id} [get]
func (uc *UrlController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid id: %s", c.Param("id")),
		})
		return
	}

	record, err := uc.Service.GetByID(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: fmt.Sprintf("No file type with id %d", id),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Create stores a new whitelist record.
// @Summary Create an allowed file type
// @Tags Url
// @Accept json
// @Produce json
// @Param record body urlRequest true "Label and extension"
// @Success 201 {object} model.AllowedFileType
// @Failure 400 {object} utilities.ErrorResponse "Missing url or file_type"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /url [post]
func (uc *UrlController) Create(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Both url and file_type must be provided",
		})
		return
	}

	record, err := uc.Service.Create(req.URL, req.FileType)
	switch {
	case errors.Is(err, service.ErrEmptyField):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, record)
}
