package uploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/internal/validators"
	"github.com/MKhiriev/go-media-kit/models"
	"golang.org/x/sync/errgroup"
)

// Multipart field names derived from the asset MIME type.
const (
	// FieldImage is used for assets whose MIME type mentions "image".
	FieldImage = "image"

	// FieldFile is used for every other asset.
	FieldFile = "file"
)

// openFunc resolves an asset URI into a readable content stream. The
// orchestrator owns and closes the returned reader.
type openFunc func(uri string) (io.ReadCloser, error)

// httpUploader is the HTTP implementation of [Uploader]. Each request body is
// a multipart form with exactly one field: the asset's content under the name
// derived by [FormFieldName], carrying the asset's file name and MIME type.
type httpUploader struct {
	client    *utils.HTTPClient
	validator validators.Validator
	open      openFunc

	logger *logger.Logger
}

// NewHTTPUploader constructs an [Uploader] issuing multipart POSTs through
// the given HTTP client. Items failing validation are folded into the batch
// outcome as that item's rejection; their requests never reach the network.
func NewHTTPUploader(client *utils.HTTPClient, validator validators.Validator, logger *logger.Logger) Uploader {
	logger.Debug().Msg("creating http uploader")
	return &httpUploader{
		client:    client,
		validator: validator,
		open:      openAssetURI,
		logger:    logger,
	}
}

// FormFieldName derives the multipart field name from an asset MIME type:
// any type mentioning "image" maps to [FieldImage], everything else to
// [FieldFile].
func FormFieldName(mimeType string) string {
	if strings.Contains(mimeType, "image") {
		return FieldImage
	}
	return FieldFile
}

// Upload implements [Uploader]. All requests are launched back-to-back
// without waiting on one another; the method blocks exactly once, at the
// combined completion of the batch.
func (u *httpUploader) Upload(ctx context.Context, items []models.UploadItem, strict bool) models.UploadResult {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		// no request is outstanding, so the batch is complete already
		return models.AllUploaded()
	}

	log.Debug().
		Str("func", "*httpUploader.Upload").
		Int("items", len(items)).
		Bool("strict", strict).
		Msg("upload batch started")

	if strict {
		return u.uploadFailFast(ctx, items)
	}
	return u.uploadBestEffort(ctx, items)
}

// uploadFailFast joins all requests and resolves on the collective outcome:
// every success yields the all-uploaded result, any rejection yields the
// fail-fast result carrying the first encountered error. The remaining
// requests still run to completion but their statuses are not surfaced.
func (u *httpUploader) uploadFailFast(ctx context.Context, items []models.UploadItem) models.UploadResult {
	// A plain group, not WithContext: issued requests cannot be aborted.
	var g errgroup.Group

	for _, item := range items {
		item := item
		g.Go(func() error {
			return u.post(ctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpUploader.uploadFailFast").Msg("upload batch failed fast")
		return models.UploadFailedFast(err)
	}

	return models.AllUploaded()
}

// uploadBestEffort settles all requests regardless of individual outcomes and
// partitions them into succeeded and failed. Each goroutine writes into its
// own slice index, so no locking is needed.
func (u *httpUploader) uploadBestEffort(ctx context.Context, items []models.UploadItem) models.UploadResult {
	outcomes := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item models.UploadItem) {
			defer wg.Done()
			outcomes[i] = u.post(ctx, item)
		}(i, item)
	}
	wg.Wait()

	failed := make([]models.FailedUpload, 0, len(items))
	for i, err := range outcomes {
		if err != nil {
			failed = append(failed, models.NewFailedUpload(items[i], err))
		}
	}

	if len(failed) == len(items) {
		logger.FromContext(ctx).Error().Str("func", "*httpUploader.uploadBestEffort").Int("failed", len(failed)).Msg("every upload in batch failed")
		return models.AllUploadsFailed(failed)
	}

	return models.UploadsPartiallyFailed(failed)
}

// post builds the single-field multipart body for one item and issues its
// request. A returned error means this item's upload is rejected; the cause
// travels wrapped so callers can match sentinels with errors.Is.
func (u *httpUploader) post(ctx context.Context, item models.UploadItem) error {
	if err := u.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("invalid upload item %q: %w", item.Asset.FileName, err)
	}

	content, err := u.open(item.Asset.URI)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOpenAsset, item.Asset.URI, err)
	}
	defer content.Close()

	resp, err := u.client.R().
		SetContext(ctx).
		SetMultipartField(FormFieldName(item.Asset.MIMEType), item.Asset.FileName, item.Asset.MIMEType, content).
		Post(item.Destination)
	if err != nil {
		return fmt.Errorf("upload %q to %s: %w", item.Asset.FileName, item.Destination, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s answered %s", ErrUploadRejected, item.Destination, resp.Status())
	}

	return nil
}

// openAssetURI is the default content resolver: it accepts plain filesystem
// paths and file:// URIs.
func openAssetURI(uri string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(uri, "file://"))
}
