package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-match-connect/internal/delivery/http/middleware"
	"ai-match-connect/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resumeSinkUC records the text handed to SaveResumeText; the embedded
// interface covers the methods the upload path never touches.
type resumeSinkUC struct {
	domain.CandidateUsecase
	saved string
	calls int
}

func (s *resumeSinkUC) SaveResumeText(ctx context.Context, text string) error {
	s.saved = text
	s.calls++
	return nil
}

func uploadEngine(h *CandidateHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	engine.POST("/resumes/upload", h.UploadResume)
	return engine
}

func multipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func postUpload(engine *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestUploadResumeReturnsFilenameAndLength(t *testing.T) {
	sink := &resumeSinkUC{}
	h := &CandidateHandler{
		candidateUC: sink,
		extract:     func([]byte) (string, error) { return "ten years of Go", nil },
	}
	engine := uploadEngine(h)

	body, contentType := multipartFile(t, "resume.pdf", []byte("%PDF-1.7 payload"))
	rec := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ten years of Go", sink.saved)

	var env struct {
		Data struct {
			Filename   string `json:"filename"`
			TextLength int    `json:"text_length"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "resume.pdf", env.Data.Filename)
	assert.Equal(t, len("ten years of Go"), env.Data.TextLength)
}

func TestUploadResumeRejectsNonPDF(t *testing.T) {
	sink := &resumeSinkUC{}
	h := &CandidateHandler{
		candidateUC: sink,
		extract:     func([]byte) (string, error) { return "never reached", nil },
	}
	engine := uploadEngine(h)

	t.Run("wrong extension", func(t *testing.T) {
		body, contentType := multipartFile(t, "resume.txt", []byte("%PDF-1.7 payload"))
		rec := postUpload(engine, body, contentType)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pdf extension but wrong magic bytes", func(t *testing.T) {
		body, contentType := multipartFile(t, "resume.pdf", []byte("plain text dressed up"))
		rec := postUpload(engine, body, contentType)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Zero(t, sink.calls)
}
