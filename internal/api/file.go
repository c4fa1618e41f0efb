package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// FileUpload names one file to be sent in a multipart request.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader) (*models.UploadResult, error) {
	body, contentType, err := multipartBody("file", []FileUpload{{Name: name, Reader: r}})
	if err != nil {
		return nil, err
	}
	var res models.UploadResult
	if err := c.send(ctx, http.MethodPost, "/files/upload", nil, body, contentType, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UploadFiles(ctx context.Context, files []FileUpload) ([]models.UploadResult, error) {
	body, contentType, err := multipartBody("files", files)
	if err != nil {
		return nil, err
	}
	var res []models.UploadResult
	if err := c.send(ctx, http.MethodPost, "/files/upload/batch", nil, body, contentType, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) FileInfo(ctx context.Context, id string) (*models.UploadResult, error) {
	var res models.UploadResult
	if err := c.do(ctx, http.MethodGet, "/files/"+id+"/info", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/files/"+id, nil, nil, nil)
}

// PresignedURL returns a temporary direct-download URL minted by the file
// service. The URL is opaque to the client.
func (c *Client) PresignedURL(ctx context.Context, id string, expiresInSeconds int) (string, error) {
	q := url.Values{}
	if expiresInSeconds > 0 {
		q.Set("expiresInSeconds", strconv.Itoa(expiresInSeconds))
	}
	var u string
	if err := c.do(ctx, http.MethodGet, "/files/"+id+"/presigned-url", q, nil, &u); err != nil {
		return "", err
	}
	return u, nil
}

// multipartBody renders the files into a multipart form under the given
// field name and returns the body together with its content type.
func multipartBody(field string, files []FileUpload) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("copy file %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
