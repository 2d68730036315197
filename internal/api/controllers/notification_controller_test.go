package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/api/controllers"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/middleware"
)

type stubNotificationService struct {
	triggered chan struct{}
	err       error
}

func (s *stubNotificationService) FetchPostsAndUpdate(ctx context.Context) error {
	s.triggered <- struct{}{}
	return s.err
}

func newTestRouter(svc *stubNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	ctrl := controllers.NewNotificationController(svc)
	r.GET("/fetchPostsAndUpdate", ctrl.FetchPostsAndUpdate)
	r.GET("/health", ctrl.Health)
	return r
}

func TestFetchPostsAndUpdateSchedulesPass(t *testing.T) {
	svc := &stubNotificationService{triggered: make(chan struct{}, 1)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fetchPostsAndUpdate", nil)
	r.ServeHTTP(w, req)

	// empty 200 regardless of per-post outcomes
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	select {
	case <-svc.triggered:
	case <-time.After(time.Second):
		t.Fatal("expected a notification pass to be scheduled")
	}
}

func TestFetchPostsAndUpdateReportsSuccessEvenWhenPassFails(t *testing.T) {
	svc := &stubNotificationService{triggered: make(chan struct{}, 1), err: context.DeadlineExceeded}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fetchPostsAndUpdate", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-svc.triggered:
	case <-time.After(time.Second):
		t.Fatal("expected a notification pass to be scheduled")
	}
}

func TestHealth(t *testing.T) {
	svc := &stubNotificationService{triggered: make(chan struct{}, 1)}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}
