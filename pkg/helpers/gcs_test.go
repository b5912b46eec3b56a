package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPathFromURL(t *testing.T) {
	url := PublicURL("photos", "recetas/abc/1.jpg")
	assert.Equal(t, "https://storage.googleapis.com/photos/recetas/abc/1.jpg", url)

	path, ok := ObjectPathFromURL("photos", url)
	assert.True(t, ok)
	assert.Equal(t, "recetas/abc/1.jpg", path)

	_, ok = ObjectPathFromURL("other", url)
	assert.False(t, ok)
	_, ok = ObjectPathFromURL("photos", "")
	assert.False(t, ok)
}
