package libs

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage is the backend-agnostic object store for image blobs. Exactly
// one backend is compiled into the binary.
type Storage interface {
	// Upload stores data under folder with a generated key and returns
	// the public (proxied) URL.
	Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*UploadResult, error)

	// Fetch returns the object for key, or nil when it does not exist.
	Fetch(ctx context.Context, key string) (*Object, error)

	// Delete removes the object for key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type Object struct {
	Data        []byte
	ContentType string
	Size        int64
}

// ObjectKey builds a collision-resistant key from a millisecond
// timestamp, a random suffix, and the original file extension.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, ext)
}

// PublicURL maps an object key to the image proxy path serving its bytes.
func PublicURL(key string) string {
	return "/api/images/" + path.Base(key)
}
