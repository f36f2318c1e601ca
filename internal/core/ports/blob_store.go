package ports

import "context"

// BlobStore defines the contract for storing opaque binary evidence, such as
// packing photos and batch group photos. Uploads happen before any aggregate
// mutation so a failed upload leaves no state behind.
type BlobStore interface {
	// Upload stores the blob and returns an opaque reference that can be kept
	// on an aggregate and later resolved through Get.
	Upload(ctx context.Context, data []byte, contentType string) (string, error)

	// Get resolves a reference produced by Upload.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown references.
	Get(ctx context.Context, ref string) ([]byte, string, error)
}
