// Command demo is the headless example: it acquires assets through the
// filesystem-backed pickers, uploads them with the chosen completion policy,
// and prints the batch outcome as JSON. The exit code follows the outcome's
// ok flag.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/internal/validators"
	"github.com/MKhiriev/go-media-kit/models"
)

func main() {
	var (
		mode        = flag.String("mode", "images", "acquisition mode: camera, images or documents")
		dir         = flag.String("dir", ".", "directory the pickers read from")
		destination = flag.String("dest", "", "upload destination URL (required)")
		strict      = flag.Bool("strict", false, "fail-fast completion policy instead of best-effort")
		limit       = flag.Int("limit", 0, "selection limit for the images mode, 0 means no limit")
		timeout     = flag.Duration("timeout", 30*time.Second, "per-request upload timeout")
	)
	flag.Parse()

	if *destination == "" {
		fmt.Fprintln(os.Stderr, "demo: -dest is required")
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewClientLogger("media-demo")

	provider, err := picker.NewProvider(
		picker.NewDirCamera(*dir, log),
		picker.NewFSGallery(*dir, log),
		picker.NewFSDocuments(*dir, log),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: create picker provider: %v\n", err)
		os.Exit(2)
	}

	httpClient := utils.NewHTTPClient()
	httpClient.SetTimeout(*timeout)

	media := service.NewMediaService(
		provider,
		uploader.NewHTTPUploader(httpClient, validators.NewUploadItemValidator(), log),
		nil, // headless run keeps no history
		log,
	)

	ctx := log.WithContext(context.Background())

	var result models.UploadResult
	switch *mode {
	case "camera":
		result, err = media.CaptureAndUpload(ctx, models.CameraOptions{}, *destination, *strict)
	case "images":
		result, err = media.PickImagesAndUpload(ctx, models.LibraryOptions{SelectionLimit: *limit}, *destination, *strict)
	case "documents":
		result, err = media.PickDocumentsAndUpload(ctx, models.DocumentOptions{}, true, *destination, *strict)
	default:
		fmt.Fprintf(os.Stderr, "demo: unknown mode %q\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(2)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: encode outcome: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(payload))

	if !result.OK {
		os.Exit(1)
	}
}
