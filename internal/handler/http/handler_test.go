package http

import (
	"testing"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/mock"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"go.uber.org/mock/gomock"
)

// newTestHandler — хелпер для создания Handler с моками сервисов
func newTestHandler(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*Handler,
	*mock.MockFileService,
	*mock.MockAuthService,
	*mock.MockAppInfoService,
) {
	t.Helper()
	mockFiles := mock.NewMockFileService(ctrl)
	mockAuth := mock.NewMockAuthService(ctrl)
	mockInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		FileService:    mockFiles,
		AuthService:    mockAuth,
		AppInfoService: mockInfo,
	}, logger.Nop())

	return h, mockFiles, mockAuth, mockInfo
}
