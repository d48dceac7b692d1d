package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpCtrl "github.com/secmon-lab/caredash/pkg/controller/http"
)

func TestSPAHandler(t *testing.T) {
	mockFS := http.Dir("testdata/spa")

	t.Run("serve existing static file", func(t *testing.T) {
		handler, err := httpCtrl.NewSPAHandler(mockFS)
		gt.NoError(t, err).Required()

		req := httptest.NewRequest("GET", "/static/app.js", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "application/javascript; charset=utf-8")
		gt.Equal(t, w.Header().Get("Cache-Control"), "public, max-age=3600")
		gt.S(t, w.Body.String()).Contains("console.log")
	})

	t.Run("serve index.html for dashboard pages", func(t *testing.T) {
		handler, err := httpCtrl.NewSPAHandler(mockFS)
		gt.NoError(t, err).Required()

		for _, path := range []string{
			"/",
			"/local-authority",
			"/regional-analysis",
			"/unknown/deep/path",
		} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			gt.Equal(t, w.Code, http.StatusOK)
			gt.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
			gt.S(t, w.Body.String()).Contains("<div id=\"root\">")
		}
	})

	t.Run("directory traversal stays inside the filesystem", func(t *testing.T) {
		handler, err := httpCtrl.NewSPAHandler(mockFS)
		gt.NoError(t, err).Required()

		req := httptest.NewRequest("GET", "/static/../../spa_handler_test.go", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains("<html")
		gt.S(t, w.Body.String()).NotContains("package http_test")
	})

	t.Run("reject non-GET methods", func(t *testing.T) {
		handler, err := httpCtrl.NewSPAHandler(mockFS)
		gt.NoError(t, err).Required()

		req := httptest.NewRequest("POST", "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusMethodNotAllowed)
	})
}

func TestSPAHandlerContentTypes(t *testing.T) {
	handler, err := httpCtrl.NewSPAHandler(http.Dir("testdata/spa"))
	gt.NoError(t, err).Required()

	testCases := []struct {
		path        string
		contentType string
	}{
		{"/static/app.js", "application/javascript; charset=utf-8"},
		{"/static/style.css", "text/css; charset=utf-8"},
		{"/static/data.json", "application/json; charset=utf-8"},
		{"/static/favicon.ico", "image/x-icon"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			gt.Equal(t, w.Code, http.StatusOK)
			gt.Equal(t, w.Header().Get("Content-Type"), tc.contentType)
		})
	}
}

func TestNewSPAHandlerError(t *testing.T) {
	_, err := httpCtrl.NewSPAHandler(http.Dir("testdata/empty"))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to open index.html")
}
