package handlers

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"dejavu_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRouter(t *testing.T) (*gin.Engine, storage.Storage) {
	t.Helper()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/media"})
	require.NoError(t, err)

	handler := NewFileHandler(newTestBase(), st)
	router := newTestRouter(func(r *gin.RouterGroup) { handler.RegisterRoutes(r) })
	return router, st
}

func TestServeFile(t *testing.T) {
	router, st := newFileRouter(t)

	payload := []byte("jpeg bytes")
	require.NoError(t, st.Save(context.Background(), "profpics/a.jpg", bytes.NewReader(payload), "image/jpeg"))

	rec := doJSON(t, router, http.MethodGet, "/media/profpics/a.jpg", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.Bytes())
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}

func TestServeFile_Missing(t *testing.T) {
	router, _ := newFileRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/media/profpics/none.jpg", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeFile_TraversalRejected(t *testing.T) {
	router, _ := newFileRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/media/../go.mod", "", nil)
	// Gin нормализует путь, но явный .. в остатке режется до обращения к диску
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
