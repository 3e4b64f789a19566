package service

import (
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/internal/store"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
)

type ClientServices struct {
	MediaService   MediaService
	HistoryService HistoryService
}

func NewClientServices(provider *picker.Provider, upl uploader.Uploader, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	historySvc := NewHistoryService(storages.HistoryRepository, logger)

	return &ClientServices{
		MediaService:   NewMediaService(provider, upl, historySvc, logger),
		HistoryService: historySvc,
	}
}
