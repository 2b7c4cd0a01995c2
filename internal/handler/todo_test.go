package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/todoboard/backend/internal/errs"
	"github.com/todoboard/backend/internal/model"
	"github.com/todoboard/backend/internal/service"
	"github.com/todoboard/backend/internal/token"
)

type memTodoRepo struct {
	nextID int64
	todos  map[int64]*model.Todo
	// calls counts repository method invocations, used to assert that
	// unauthenticated requests never reach storage.
	calls int
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{nextID: 1, todos: make(map[int64]*model.Todo)}
}

func (m *memTodoRepo) InsertTodo(ctx context.Context, ownerUUID uuid.UUID, title string, description *string) (*model.Todo, error) {
	m.calls++
	now := time.Now()
	t := &model.Todo{ID: m.nextID, UserUUID: ownerUUID, Title: title, Description: description, CreatedAt: now, UpdatedAt: now}
	m.todos[t.ID] = t
	m.nextID++
	copied := *t
	return &copied, nil
}

func (m *memTodoRepo) ListTodosByOwner(ctx context.Context, ownerUUID uuid.UUID) ([]model.Todo, error) {
	m.calls++
	list := []model.Todo{}
	for id := m.nextID - 1; id >= 1; id-- {
		if t, ok := m.todos[id]; ok && t.UserUUID == ownerUUID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (m *memTodoRepo) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	m.calls++
	t, ok := m.todos[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *memTodoRepo) UpdateTodo(ctx context.Context, id int64, ownerUUID uuid.UUID, patch model.TodoPatch) (*model.Todo, error) {
	m.calls++
	t, ok := m.todos[id]
	if !ok || t.UserUUID != ownerUUID || patch.Empty() {
		return nil, errs.ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now()
	copied := *t
	return &copied, nil
}

func (m *memTodoRepo) DeleteTodo(ctx context.Context, id int64, ownerUUID uuid.UUID) error {
	m.calls++
	t, ok := m.todos[id]
	if !ok || t.UserUUID != ownerUUID {
		return errs.ErrNotFound
	}
	delete(m.todos, id)
	return nil
}

func newTodoRouter(repo service.TodoRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTodoHandler(service.NewTodoService(repo), zap.NewNop())

	r := gin.New()
	todos := r.Group("/api/todos", AuthMiddleware(token.NewVerifier("test-secret")))
	todos.POST("", h.Create)
	todos.GET("", h.List)
	todos.PUT("/:id", h.Update)
	todos.DELETE("/:id", h.Delete)
	return r
}

func bearerFor(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	signed, err := token.NewIssuer("test-secret", token.AccessTTL).Sign(userID, email)
	require.NoError(t, err)
	return signed
}

func TestTodoEndpointsRequireAuth(t *testing.T) {
	repo := newMemTodoRepo()
	r := newTodoRouter(repo)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/todos"},
		{http.MethodGet, "/api/todos"},
		{http.MethodPut, "/api/todos/1"},
		{http.MethodDelete, "/api/todos/1"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, `{}`, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}

	// the repository was never touched
	require.Zero(t, repo.calls)
}

func TestTodoEndpointsRejectBadTokens(t *testing.T) {
	repo := newMemTodoRepo()
	r := newTodoRouter(repo)

	expired, err := token.NewIssuer("test-secret", -time.Minute).Sign(uuid.New(), "a@example.com")
	require.NoError(t, err)

	for _, tok := range []string{"garbage", expired} {
		w := doJSON(t, r, http.MethodGet, "/api/todos", "", tok)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}
	require.Zero(t, repo.calls)
}

func TestCreateAndListTodos(t *testing.T) {
	r := newTodoRouter(newMemTodoRepo())
	owner := uuid.New()
	bearer := bearerFor(t, owner, "a@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Buy milk","description":"2%"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Buy milk", created.Todo.Title)
	require.False(t, created.Todo.Completed)

	w = doJSON(t, r, http.MethodGet, "/api/todos", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)

	var list model.TodoListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Todos, 1)
	require.Equal(t, "Buy milk", list.Todos[0].Title)
	require.Equal(t, "2%", *list.Todos[0].Description)
	require.False(t, list.Todos[0].Completed)
}

func TestListNeverShowsOtherOwners(t *testing.T) {
	r := newTodoRouter(newMemTodoRepo())
	bearerA := bearerFor(t, uuid.New(), "a@example.com")
	bearerB := bearerFor(t, uuid.New(), "b@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"mine"}`, bearerA)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/todos", "", bearerB)
	require.Equal(t, http.StatusOK, w.Code)

	var list model.TodoListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list.Todos)
}

func TestUpdateTodoEndpoint(t *testing.T) {
	r := newTodoRouter(newMemTodoRepo())
	owner := uuid.New()
	bearer := bearerFor(t, owner, "a@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Buy milk","description":"2%"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/todos/%d", created.Todo.ID)
	w = doJSON(t, r, http.MethodPut, path, `{"completed":true}`, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.True(t, updated.Todo.Completed)
	require.Equal(t, "Buy milk", updated.Todo.Title)
	require.Equal(t, "2%", *updated.Todo.Description)
}

func TestUpdateTodoEndpointErrors(t *testing.T) {
	r := newTodoRouter(newMemTodoRepo())
	owner := uuid.New()
	bearer := bearerFor(t, owner, "a@example.com")
	intruder := bearerFor(t, uuid.New(), "b@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/todos/%d", created.Todo.ID)

	// someone else's valid token: existence is confirmed first, so 403
	w = doJSON(t, r, http.MethodPut, path, `{"completed":true}`, intruder)
	require.Equal(t, http.StatusForbidden, w.Code)

	// missing item: 404 regardless of caller
	w = doJSON(t, r, http.MethodPut, "/api/todos/999", `{"completed":true}`, intruder)
	require.Equal(t, http.StatusNotFound, w.Code)

	// empty patch on an owned item: 404 per the zero-row contract
	w = doJSON(t, r, http.MethodPut, path, `{}`, bearer)
	require.Equal(t, http.StatusNotFound, w.Code)

	// non-numeric id
	w = doJSON(t, r, http.MethodPut, "/api/todos/abc", `{"completed":true}`, bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTodoEndpoint(t *testing.T) {
	r := newTodoRouter(newMemTodoRepo())
	owner := uuid.New()
	bearer := bearerFor(t, owner, "a@example.com")
	intruder := bearerFor(t, uuid.New(), "b@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/todos/%d", created.Todo.ID)

	w = doJSON(t, r, http.MethodDelete, path, "", intruder)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, "", bearer)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, path, "", bearer)
	require.Equal(t, http.StatusNotFound, w.Code)
}
