package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/swilenhq/swilen"
)

// Todo is an in-memory example entity.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// createTodo is the request payload for creating and updating todos.
type createTodo struct {
	Title string `form:"title" json:"title" validate:"required|min:3|max:120" sanitize:"trim,strip"`
	Done  bool   `form:"done" json:"done"`
}

// Todos serves a small CRUD API backed by an in-memory map.
type Todos struct {
	mu     sync.Mutex
	items  map[int64]*Todo
	nextID int64
}

// NewTodos creates the example handler.
func NewTodos() *Todos {
	return &Todos{items: make(map[int64]*Todo), nextID: 1}
}

func (h *Todos) Routes(r swilen.Router) {
	r.Route("/todos", func(r swilen.Router) {
		r.GET("/", h.list)
		r.POST("/", h.create)
		r.GET("/{id}", h.show)
		r.PUT("/{id}", h.update)
		r.DELETE("/{id}", h.delete)
	})
}

func (h *Todos) list(c swilen.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	todos := make([]*Todo, 0, len(h.items))
	for _, t := range h.items {
		todos = append(todos, t)
	}
	return c.JSON(http.StatusOK, todos)
}

func (h *Todos) create(c swilen.Context) error {
	var in createTodo
	bag, err := c.Bind(&in)
	if err != nil {
		return swilen.ErrBadRequest("malformed request", swilen.WithError(err))
	}
	if bag != nil {
		return c.JSON(http.StatusUnprocessableEntity, bag)
	}

	h.mu.Lock()
	todo := &Todo{ID: h.nextID, Title: in.Title, Done: in.Done}
	h.items[todo.ID] = todo
	h.nextID++
	h.mu.Unlock()

	return c.JSON(http.StatusCreated, todo)
}

func (h *Todos) show(c swilen.Context) error {
	todo, err := h.find(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *Todos) update(c swilen.Context) error {
	var in createTodo
	bag, err := c.Bind(&in)
	if err != nil {
		return swilen.ErrBadRequest("malformed request", swilen.WithError(err))
	}
	if bag != nil {
		return c.JSON(http.StatusUnprocessableEntity, bag)
	}

	todo, findErr := h.find(c)
	if findErr != nil {
		return findErr
	}

	h.mu.Lock()
	todo.Title = in.Title
	todo.Done = in.Done
	h.mu.Unlock()

	return c.JSON(http.StatusOK, todo)
}

func (h *Todos) delete(c swilen.Context) error {
	todo, err := h.find(c)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.items, todo.ID)
	h.mu.Unlock()

	return c.NoContent(http.StatusNoContent)
}

func (h *Todos) find(c swilen.Context) (*Todo, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, swilen.ErrBadRequest("invalid todo id")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	todo, ok := h.items[id]
	if !ok {
		return nil, swilen.ErrNotFound("todo not found")
	}
	return todo, nil
}
