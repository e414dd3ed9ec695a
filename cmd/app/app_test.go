package app

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/service"
)

func TestNewImageStore(t *testing.T) {
	local, err := newImageStore(&config.ImagesConfig{UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &service.LocalImageStore{}, local)

	token := base64.StdEncoding.EncodeToString([]byte(`{"apiKey":"sk_test","appId":"app1"}`))
	hosted, err := newImageStore(&config.ImagesConfig{UploadDir: t.TempDir(), UploadThingToken: token})
	require.NoError(t, err)
	assert.IsType(t, &service.UploadThingImageStore{}, hosted)

	_, err = newImageStore(&config.ImagesConfig{UploadThingToken: "%%%"})
	assert.Error(t, err)
}
