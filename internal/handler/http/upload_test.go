// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// buildMultipartBody assembles a multipart body with the given file parts and
// one plain text field, returning the body and its content type.
func buildMultipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, content := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		header.Set("Content-Type", "application/octet-stream")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.WriteField("note", "not a file"))
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler_StoresEveryFilePart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockFiles, _, _ := newTestHandler(t, ctrl)

	body, contentType := buildMultipartBody(t, map[string]string{
		"a.bin": "first",
		"b.bin": "second",
	})

	mockFiles.EXPECT().
		StoreUpload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error) {
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			file.ID = file.FileName + "-id"
			file.SizeBytes = int64(len(data))
			return file, nil
		}).
		Times(2)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Len(t, response.Files, 2)
	for _, file := range response.Files {
		assert.Equal(t, "file", file.Field)
		assert.NotEmpty(t, file.ID)
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"not":"multipart"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_NoFileParts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "text only"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockFiles, _, _ := newTestHandler(t, ctrl)

	body, contentType := buildMultipartBody(t, map[string]string{"a.bin": "content"})

	mockFiles.EXPECT().
		StoreUpload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.StoredFile{}, errors.New("disk full"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
