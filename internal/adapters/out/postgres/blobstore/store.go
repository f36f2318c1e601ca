// Package blobstore stores evidence photos in the database alongside the
// aggregates they belong to. References handed out by the store are opaque to
// callers and stable across re-reads.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlobDTO represents one stored binary object.
type BlobDTO struct {
	Ref         string `gorm:"primaryKey"`
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "blobs".
func (BlobDTO) TableName() string {
	return "blobs"
}

// GormBlobStore implements BlobStore on top of a GORM connection. Uploads run
// outside any unit of work: a photo written for a command that later fails is
// orphaned, never half-written.
type GormBlobStore struct {
	db *gorm.DB
}

// NewGormBlobStore creates a blob store bound to the given connection.
func NewGormBlobStore(db *gorm.DB) *GormBlobStore {
	return &GormBlobStore{db: db}
}

// Upload stores the payload and returns its reference.
func (s *GormBlobStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errs.NewValueIsRequiredError("data")
	}
	if contentType == "" {
		return "", errs.NewValueIsRequiredError("contentType")
	}

	dto := BlobDTO{
		Ref:         fmt.Sprintf("blobs/%s", uuid.New().String()),
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", errs.NewStoreUnavailableError("upload blob", err)
	}

	return dto.Ref, nil
}

// Get retrieves a stored payload and its content type by reference.
func (s *GormBlobStore) Get(ctx context.Context, ref string) ([]byte, string, error) {
	if ref == "" {
		return nil, "", errs.NewValueIsRequiredError("ref")
	}

	var dto BlobDTO
	if err := s.db.WithContext(ctx).First(&dto, "ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errs.NewObjectNotFoundError("blob", ref)
		}
		return nil, "", errs.NewStoreUnavailableError("get blob", err)
	}

	return dto.Data, dto.ContentType, nil
}
