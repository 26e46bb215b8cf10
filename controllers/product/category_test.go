package productcontroller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateCategoryImageCopiesFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	require.NoError(t, os.MkdirAll(categoryUploadDir, 0755))
	src := filepath.Join(categoryUploadDir, "cake.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0644))

	url, err := duplicateCategoryImage(categoryPublicPath + "/cake.png")
	require.NoError(t, err)
	assert.NotEqual(t, categoryPublicPath+"/cake.png", url)

	copied := filepath.Join(categoryUploadDir, filepath.Base(url))
	data, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	// Removing the original leaves the copy intact
	require.NoError(t, os.Remove(src))
	_, err = os.Stat(copied)
	assert.NoError(t, err)
}

func TestDuplicateCategoryImageMissingSource(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	_, err = duplicateCategoryImage(categoryPublicPath + "/gone.png")
	assert.Error(t, err)
}
