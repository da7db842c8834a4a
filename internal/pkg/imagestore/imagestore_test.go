package imagestore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudinaryUpload(t *testing.T) {
	var gotPath string
	var gotFile, gotPreset, gotFolder string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotFile = r.PostFormValue("file")
		gotPreset = r.PostFormValue("upload_preset")
		gotFolder = r.PostFormValue("folder")

		_ = json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.example.com/image/upload/v1/att/abc.jpg",
			"public_id":  "att/abc",
		})
	}))
	defer server.Close()

	store := NewCloudinaryStore(CloudinaryConfig{
		CloudName:    "demo",
		UploadPreset: "unsigned-preset",
		Folder:       "att",
		Endpoint:     server.URL,
	})

	result, err := store.Upload(context.Background(), "aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "/demo/image/upload", gotPath)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", gotFile)
	assert.Equal(t, "unsigned-preset", gotPreset)
	assert.Equal(t, "att", gotFolder)
	assert.Equal(t, "https://res.example.com/image/upload/v1/att/abc.jpg", result.URL)
	assert.Equal(t, "att/abc", result.PublicID)
}

func TestCloudinaryUploadKeepsDataURI(t *testing.T) {
	var gotFile string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotFile = r.PostFormValue("file")
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "u", "public_id": "p"})
	}))
	defer server.Close()

	store := NewCloudinaryStore(CloudinaryConfig{
		CloudName:    "demo",
		UploadPreset: "unsigned-preset",
		Endpoint:     server.URL,
	})

	_, err := store.Upload(context.Background(), "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", gotFile)
}

func TestCloudinaryUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	store := NewCloudinaryStore(CloudinaryConfig{
		CloudName:    "demo",
		UploadPreset: "unsigned-preset",
		Endpoint:     server.URL,
	})

	_, err := store.Upload(context.Background(), "aGVsbG8=")
	assert.Error(t, err)
}

func TestLocalStoreUpload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	payload := base64.StdEncoding.EncodeToString([]byte("image-bytes"))
	result, err := store.Upload(context.Background(), "data:image/jpeg;base64,"+payload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "http://localhost:8080/uploads/"))
	require.NotEmpty(t, result.PublicID)

	written, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(result.PublicID)))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), written)
}

func TestLocalStoreUploadRejectsBadBase64(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "not-base64!!!")
	assert.Error(t, err)
}
