package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
)

var historyColumns = []string{"id", "batch_id", "destination", "file_name", "mime_type", "field", "size_bytes", "status", "ok", "reason", "uploaded_at"}

func newTestHistoryRepo(t *testing.T) (HistoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewClientLogger("test")
	repo := NewLocalHistoryRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

func TestSaveBatch_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	now := time.Now()
	entries := []models.HistoryEntry{
		{BatchID: "batch-1", Destination: "http://dest/upload", FileName: "a.jpg", MIMEType: "image/jpeg", Field: "image", Status: models.UploadStatusAllUploaded, OK: true, UploadedAt: now},
		{BatchID: "batch-1", Destination: "http://dest/upload", FileName: "b.pdf", MIMEType: "application/pdf", Field: "file", Status: models.UploadStatusAllUploaded, OK: true, UploadedAt: now},
	}

	mock.ExpectBegin()
	for _, entry := range entries {
		mock.ExpectExec("INSERT INTO history").
			WithArgs(entry.BatchID, entry.Destination, entry.FileName, entry.MIMEType, entry.Field, entry.SizeBytes, string(entry.Status), entry.OK, entry.Reason, entry.UploadedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	if err := repo.SaveBatch(context.Background(), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveBatch_EmptyBatchIsNoop(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	if err := repo.SaveBatch(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no DB calls for empty batch: %v", err)
	}
}

func TestSaveBatch_InsertFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO history").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SaveBatch(context.Background(), []models.HistoryEntry{{BatchID: "batch-1"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListRecent_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(historyColumns).
		AddRow(int64(2), "batch-2", "http://dest/upload", "b.pdf", "application/pdf", "file", int64(0), string(models.UploadStatusPartiallyFailed), false, "destination rejected upload", now).
		AddRow(int64(1), "batch-1", "http://dest/upload", "a.jpg", "image/jpeg", "image", int64(0), string(models.UploadStatusAllUploaded), true, "", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM history").
		WithArgs(10).
		WillReturnRows(rows)

	entries, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 2 {
		t.Errorf("expected newest entry first, got id %d", entries[0].ID)
	}
	if entries[0].OK {
		t.Error("expected failed entry to keep ok=false")
	}
	if entries[1].Status != models.UploadStatusAllUploaded {
		t.Errorf("unexpected status: %s", entries[1].Status)
	}
}

func TestListRecent_NonPositiveLimitUsesDefault(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM history").
		WithArgs(defaultListLimit).
		WillReturnRows(sqlmock.NewRows(historyColumns))

	entries, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
