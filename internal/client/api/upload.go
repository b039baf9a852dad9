package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type UploadAPI struct {
	c *transport.Client
}

// File uploads r as multipart field "file" and returns the stored file URL.
func (a *UploadAPI) File(ctx context.Context, name string, r io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			FileURL string `json:"fileUrl"`
		} `json:"data"`
	}
	err = a.c.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		Path:        "/api/upload",
		RawBody:     &body,
		ContentType: mw.FormDataContentType(),
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Data.FileURL, nil
}

// Upload satisfies blob.Uploader; contentType is decided by the backend.
func (a *UploadAPI) Upload(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	return a.File(ctx, name, r)
}
