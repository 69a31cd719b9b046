package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	osshelper "evisa_backend/internals/helpers/oss"
)

func newUploadApp(blob osshelper.BlobService) *fiber.App {
	app := fiber.New()
	ctl := NewEditorImageController(blob)
	app.Post("/api/uploads/editor-images", ctl.Upload)
	return app
}

func multipartImage(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestEditorImageUpload(t *testing.T) {
	t.Run("stores and returns the public url", func(t *testing.T) {
		mock := &osshelper.MockBlobService{
			UploadImageToDirFn: func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
				assert.Equal(t, "editor", dir)
				return "https://cdn.example.com/editor/pic.webp", "editor/pic.webp", nil
			},
		}
		app := newUploadApp(mock)

		body, ct := multipartImage(t, "image", "pic.png", []byte("fake-png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/editor-images", body)
		req.Header.Set("Content-Type", ct)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var out struct {
			Success bool `json:"success"`
			Data    struct {
				URL string `json:"url"`
			} `json:"data"`
		}
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.True(t, out.Success)
		assert.Equal(t, "https://cdn.example.com/editor/pic.webp", out.Data.URL)
	})

	t.Run("missing file is a validation error", func(t *testing.T) {
		app := newUploadApp(&osshelper.MockBlobService{})

		req := httptest.NewRequest(http.MethodPost, "/api/uploads/editor-images", bytes.NewReader(nil))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("wrong extension is rejected before upload", func(t *testing.T) {
		called := false
		mock := &osshelper.MockBlobService{
			UploadImageToDirFn: func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
				called = true
				return "", "", nil
			},
		}
		app := newUploadApp(mock)

		body, ct := multipartImage(t, "image", "clip.mp4", []byte("not-an-image"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/editor-images", body)
		req.Header.Set("Content-Type", ct)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.False(t, called)
	})

	t.Run("storage failure surfaces as bad gateway", func(t *testing.T) {
		mock := &osshelper.MockBlobService{
			UploadImageToDirFn: func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
				return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object storage failed")
			},
		}
		app := newUploadApp(mock)

		body, ct := multipartImage(t, "image", "pic.jpg", []byte("fake"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/editor-images", body)
		req.Header.Set("Content-Type", ct)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}
