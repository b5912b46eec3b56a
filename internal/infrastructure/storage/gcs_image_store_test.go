package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCSImageStore_ObjectPath(t *testing.T) {
	s := &GCSImageStore{Bucket: "fotos", newID: func() string { return "fixed" }}

	tests := []struct {
		filename string
		want     string
	}{
		{"tortilla.JPG", "recetas/r1/fixed.jpg"},
		{"foto.png", "recetas/r1/fixed.png"},
		{"noext", "recetas/r1/fixed"},
		{"weird.extensionlong", "recetas/r1/fixed"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.objectPath("r1", tc.filename), tc.filename)
	}
}

func TestGCSImageStore_DeleteIgnoresForeignURL(t *testing.T) {
	s := NewGCSImageStore(nil, "fotos")
	assert.NoError(t, s.Delete(context.Background(), "https://example.com/elsewhere.png"))
	assert.NoError(t, s.Delete(context.Background(), ""))
}
