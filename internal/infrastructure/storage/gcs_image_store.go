package storage

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/recetario-api/pkg/helpers"
)

// GCSImageStore keeps recipe photos in a Google Cloud Storage bucket.
type GCSImageStore struct {
	Client *gcs.Client
	Bucket string
	newID  func() string
}

func NewGCSImageStore(client *gcs.Client, bucket string) *GCSImageStore {
	return &GCSImageStore{Client: client, Bucket: bucket, newID: uuid.NewString}
}

// objectPath returns recetas/<recipeID>/<id><ext>, keeping only the
// lowercased extension of the uploaded filename.
func (s *GCSImageStore) objectPath(recipeID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 8 || strings.ContainsAny(ext, "/\\ ") {
		ext = ""
	}
	return path.Join("recetas", recipeID, s.newID()+ext)
}

func (s *GCSImageStore) Upload(ctx context.Context, recipeID, filename, contentType string, r io.Reader) (string, error) {
	return helpers.UploadObject(ctx, s.Client, s.Bucket, s.objectPath(recipeID, filename), contentType, r)
}

// Delete removes the object behind url. URLs outside the bucket are ignored.
func (s *GCSImageStore) Delete(ctx context.Context, url string) error {
	obj, ok := helpers.ObjectPathFromURL(s.Bucket, url)
	if !ok {
		return nil
	}
	return helpers.DeleteObject(ctx, s.Client, s.Bucket, obj)
}
