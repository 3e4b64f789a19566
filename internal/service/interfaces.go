package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-media-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FileService is the receiver-side application logic over stored files:
// accepting uploaded parts, serving the admin listing surface and pruning
// aged records.
type FileService interface {
	StoreUpload(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error)
	GetFile(ctx context.Context, id string) (models.StoredFile, error)
	ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	DeleteFile(ctx context.Context, id string) error
	PruneOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// AuthService exchanges the receiver's shared API secret for admin bearer
// tokens and validates them on protected routes.
type AuthService interface {
	IssueToken(ctx context.Context, request models.TokenRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information on the open version route.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
