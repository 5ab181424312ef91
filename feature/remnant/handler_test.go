package remnant

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandleAnalyze(t *testing.T) {
	svc, _ := newTestService(t, nil)
	app := newTestApp(svc)

	t.Run("Remnant View", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/remnant/analyze?view=apo", strings.NewReader(sampleLog))
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var rep Report
		decode(t, resp.Body, &rep)
		assert.Equal(t, ViewRemnant, rep.View)
		assert.Equal(t, StatusAbnormal, rep.KPI.Status)
		require.Len(t, rep.Sites, 1)
		assert.Equal(t, "Jasmine", rep.Sites[0].Name)
		assert.Equal(t, []string{flaggedRow}, rep.Sites[0].HighlightedInventory)
		assert.Contains(t, rep.Summary, "Jasmine (30.10.10.6) → SNI-POI (30.10.50.6)")
	})

	t.Run("Bad View", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/remnant/analyze?view=bogus", strings.NewReader(sampleLog))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Save Without Database", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/remnant/analyze?save=true", strings.NewReader(sampleLog))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Empty Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/remnant/analyze", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var rep Report
		decode(t, resp.Body, &rep)
		assert.Equal(t, StatusNoData, rep.KPI.Status)
		assert.Empty(t, rep.Sites)
	})
}

func TestHandleSites(t *testing.T) {
	svc, _ := newTestService(t, nil)
	resp, err := newTestApp(svc).Test(httptest.NewRequest("GET", "/remnant/sites", nil))
	require.NoError(t, err)

	var table map[string]string
	decode(t, resp.Body, &table)
	assert.Equal(t, "HYI-4", table["30.10.90.6"])
}

func TestHandleUploadFlow(t *testing.T) {
	db := setupSQLite(t)
	svc, client := newTestService(t, db)
	svc.now = fixedNow
	app := newTestApp(svc)

	client.On("PutObject", mock.Anything, "apo-logs", uploadKey("apo.log"), mock.Anything, int64(len(sampleLog)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "apo.log")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/remnant/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var up struct {
		ID         uint   `json:"id"`
		StoredPath string `json:"stored_path"`
	}
	decode(t, resp.Body, &up)
	require.NotZero(t, up.ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/remnant/uploads?date=2026-10-17", nil))
	require.NoError(t, err)
	var list []map[string]any
	decode(t, resp.Body, &list)
	assert.Len(t, list, 1)

	client.On("GetObject", mock.Anything, "apo-logs", up.StoredPath, mock.Anything).
		Return(io.NopCloser(strings.NewReader(sampleLog)), nil).Once()

	resp, err = app.Test(httptest.NewRequest("POST", "/remnant/uploads/1/analyze?save=true", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var rep Report
	decode(t, resp.Body, &rep)
	assert.NotZero(t, rep.RunID)
	assert.Equal(t, 1, rep.KPI.RemnantSites)

	resp, err = app.Test(httptest.NewRequest("GET", "/remnant/runs", nil))
	require.NoError(t, err)
	var runs []map[string]any
	decode(t, resp.Body, &runs)
	assert.Len(t, runs, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/remnant/runs/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/remnant/runs/42", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	client.On("RemoveObject", mock.Anything, "apo-logs", up.StoredPath, mock.Anything).Return(nil)
	resp, err = app.Test(httptest.NewRequest("DELETE", "/remnant/uploads/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/remnant/uploads/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleUpload_MissingFile(t *testing.T) {
	svc, _ := newTestService(t, nil)
	req := httptest.NewRequest("POST", "/remnant/uploads", strings.NewReader("raw"))
	resp, err := newTestApp(svc).Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleInvalidID(t *testing.T) {
	svc, _ := newTestService(t, nil)
	resp, err := newTestApp(svc).Test(httptest.NewRequest("GET", "/remnant/runs/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
