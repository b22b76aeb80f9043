package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"dejavu_backend/internal/storage"
	"dejavu_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveImageUpload кладет multipart-файл в хранилище и возвращает путь,
// который сущность хранит как ссылку. Имя генерируется, исходное
// имя файла сохраняет только расширение.
func saveImageUpload(c *gin.Context, st storage.Storage, header *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := dir + "/" + uuid.NewString() + ext

	file, err := header.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Cannot read uploaded file: " + err.Error())
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := st.Save(c.Request.Context(), path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return path, nil
}

// isMultipart проверяет, пришел ли запрос формой (файл), а не JSON.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
