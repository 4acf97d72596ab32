package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	adapterHTTP "github.com/taskhawk/taskhawk-api/internal/adapters/handler/http"
	"github.com/taskhawk/taskhawk-api/internal/adapters/handler/http/middleware"
	"github.com/taskhawk/taskhawk-api/internal/adapters/repository"
	"github.com/taskhawk/taskhawk-api/internal/core/domain"
	"github.com/taskhawk/taskhawk-api/internal/core/services"
)

func setupTaskRouter() (*gin.Engine, *repository.InMemoryTaskRepository) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewInMemoryTaskRepository()
	svc := services.NewTaskService(repo, nil)
	handler := adapterHTTP.NewTaskHandler(svc)

	r := gin.New()

	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r, repo
}

func TestCreateTask(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router, _ := setupTaskRouter()

		body := `{"title": "Write report", "category": "work", "priority": "high"}`

		req, _ := http.NewRequest("POST", "/api/v1/tasks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Write report"`)
		assert.Contains(t, w.Body.String(), `"category":"work"`)
		assert.Contains(t, w.Body.String(), `"id":`)
	})

	t.Run("Success: Unknown category falls back to other", func(t *testing.T) {
		router, _ := setupTaskRouter()

		body := `{"title": "Mystery", "category": "gardening"}`

		req, _ := http.NewRequest("POST", "/api/v1/tasks", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"category":"other"`)
	})

	t.Run("Fail: 400 Bad Request (Missing Title)", func(t *testing.T) {
		router, _ := setupTaskRouter()

		body := `{"description": "no title"}`

		req, _ := http.NewRequest("POST", "/api/v1/tasks", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Invalid Priority)", func(t *testing.T) {
		router, _ := setupTaskRouter()

		body := `{"title": "Valid", "priority": "urgent"}`

		req, _ := http.NewRequest("POST", "/api/v1/tasks", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTasks(t *testing.T) {
	t.Run("Success: 200 OK with List", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "Morning run", "", "health", "", nil, 0)
		repo.Create(context.Background(), task)

		req, _ := http.NewRequest("GET", "/api/v1/tasks", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Morning run")
	})

	t.Run("Success: Other users' tasks stay hidden", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-2", "Private work", "", "", "", nil, 0)
		repo.Create(context.Background(), task)

		req, _ := http.NewRequest("GET", "/api/v1/tasks", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Private work")
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("Success: 200 OK Mark Completed", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "Finish draft", "", "work", "", nil, 0)
		repo.Create(context.Background(), task)

		body := `{"completed": true}`

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID, bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		updated, _ := repo.GetByID(context.Background(), task.ID)
		assert.True(t, updated.Completed)
		assert.Equal(t, "Finish draft", updated.Title)
	})

	t.Run("Success: 200 OK Partial Update keeps other fields", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "Old title", "keep me", "education", "high", nil, 0)
		repo.Create(context.Background(), task)

		body := `{"title": "New title"}`

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID, bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		updated, _ := repo.GetByID(context.Background(), task.ID)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "keep me", updated.Description)
		assert.Equal(t, "education", updated.Category)
		assert.Equal(t, "high", updated.Priority)
	})

	t.Run("Fail: 404 Not Found (IDOR Protection)", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "Secret", "", "", "", nil, 0)
		repo.Create(context.Background(), task)

		body := `{"title": "Hacked"}`

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID, bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-2")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 404 Not Found (Unknown ID)", func(t *testing.T) {
		router, _ := setupTaskRouter()

		body := `{"title": "Ghost"}`

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/nope", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("Success: 200 OK with confirmation", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "To delete", "", "", "", nil, 0)
		repo.Create(context.Background(), task)

		req, _ := http.NewRequest("DELETE", "/api/v1/tasks/"+task.ID, nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "task removed")

		_, err := repo.GetByID(context.Background(), task.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("Fail: 404 Not Found (IDOR Protection)", func(t *testing.T) {
		router, repo := setupTaskRouter()

		task, _ := domain.NewTask("user-1", "Secret", "", "", "", nil, 0)
		repo.Create(context.Background(), task)

		req, _ := http.NewRequest("DELETE", "/api/v1/tasks/"+task.ID, nil)
		req.Header.Set("X-User-ID", "user-2")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateTaskWithDeadline(t *testing.T) {
	t.Run("Success: Deadline round trips", func(t *testing.T) {
		router, repo := setupTaskRouter()

		deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
		body := `{"title": "Deadline task", "deadline": "` + deadline + `", "estimated_time": 45}`

		req, _ := http.NewRequest("POST", "/api/v1/tasks", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		tasks, _ := repo.ListByUserID(context.Background(), "user-1")
		assert.Len(t, tasks, 1)
		assert.NotNil(t, tasks[0].Deadline)
		assert.Equal(t, 45, tasks[0].EstimatedMinutes)
	})
}
