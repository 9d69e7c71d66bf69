package url

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadrop-backend/internal/model"
	"datadrop-backend/internal/repository"
	"datadrop-backend/internal/service"
	"datadrop-backend/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUrlRepository struct {
	records []model.AllowedFileType
	nextID  int
}

func (f *fakeUrlRepository) GetAll() ([]model.AllowedFileType, error) { return f.records, nil }

func (f *fakeUrlRepository) GetByID(id int) (model.AllowedFileType, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.AllowedFileType{}, repository.ErrNotFound
}

func (f *fakeUrlRepository) Create(record *model.AllowedFileType) error {
	if f.nextID == 0 {
		f.nextID = len(f.records) + 1
	}
	record.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *record)
	return nil
}

func newTestEngine(repo *fakeUrlRepository) *gin.Engine {
	ctrl := NewUrlController(service.NewUrlService(repo))

	r := gin.New()
	r.GET("/api/v1/url", ctrl.GetAll)
	r.GET("/api/v1/url/:id", ctrl.GetByID)
	r.POST("/api/v1/url", ctrl.Create)
	return r
}

func TestGetAll(t *testing.T) {
	repo := &fakeUrlRepository{records: []model.AllowedFileType{
		{ID: 1, BaseURL: "https://example.com/csv", FileType: "csv"},
		{ID: 2, BaseURL: "https://example.com/pdf", FileType: "pdf"},
	}}
	r := newTestEngine(repo)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/url", nil)
	rec := testutil.ServeRaw(r, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "https://example.com/csv", records[0]["baseUrl"])
	assert.Equal(t, "csv", records[0]["file_type"])
}

func TestGetByID(t *testing.T) {
	repo := &fakeUrlRepository{records: []model.AllowedFileType{
		{ID: 7, BaseURL: "https://example.com/png", FileType: "png"},
	}}
	r := newTestEngine(repo)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/url/7", nil)
	rec := testutil.ServeRaw(r, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, float64(7), record["id"])
	assert.Equal(t, "png", record["file_type"])
}

func TestGetByID_Missing(t *testing.T) {
	r := newTestEngine(&fakeUrlRepository{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/url/42", nil)
	rec := testutil.ServeRaw(r, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetByID_NonNumeric(t *testing.T) {
	r := newTestEngine(&fakeUrlRepository{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/url/abc", nil)
	rec := testutil.ServeRaw(r, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate(t *testing.T) {
	repo := &fakeUrlRepository{}
	r := newTestEngine(repo)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"url":       "https://example.com/docx",
		"file_type": "docx",
	}, r, "/api/v1/url", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "https://example.com/docx", resp["baseUrl"])
	assert.Equal(t, "docx", resp["file_type"])
	assert.NotZero(t, resp["id"])

	// Created record shows up in the listing
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/url", nil)
	listRec := testutil.ServeRaw(r, req)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestCreate_MissingFields(t *testing.T) {
	r := newTestEngine(&fakeUrlRepository{})

	rec, resp := testutil.MakeJSONRequest(gin.H{"url": "https://example.com/docx"}, r, "/api/v1/url", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "url and file_type")

	rec, _ = testutil.MakeJSONRequest(gin.H{"file_type": "docx"}, r, "/api/v1/url", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
