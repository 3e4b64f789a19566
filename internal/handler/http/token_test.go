package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockAuth, _ := newTestHandler(t, ctrl)

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	issued := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SignedString: "signed-token",
	}

	mockAuth.EXPECT().
		IssueToken(gomock.Any(), models.TokenRequest{Secret: "test-secret"}).
		Return(issued, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"secret":"test-secret"}`))
	rec := httptest.NewRecorder()

	h.issueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.Token)
	assert.WithinDuration(t, expiresAt, response.ExpiresAt, time.Second)
}

func TestIssueToken_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{secret`))
	rec := httptest.NewRecorder()

	h.issueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssueToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		IssueToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, service.ErrWrongSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"secret":"nope"}`))
	rec := httptest.NewRecorder()

	h.issueToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		IssueToken(gomock.Any(), models.TokenRequest{}).
		Return(models.Token{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.issueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
