package services

import (
	"context"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityTodo = "Todo"

type TodoService struct {
	todos store.TodoRepository
}

func NewTodoService(s *store.Store) *TodoService {
	return &TodoService{todos: s.Todos}
}

func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.todos.List(ctx)
}

func (s *TodoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	t, err := s.todos.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityTodo)
	}
	return t, nil
}

func (s *TodoService) Create(ctx context.Context, t *models.Todo) error {
	t.ID = ""
	if err := requireFields([2]string{"title", t.Title}); err != nil {
		return err
	}
	return s.todos.Create(ctx, t)
}

func (s *TodoService) Update(ctx context.Context, id string, u models.TodoUpdate) (*models.Todo, error) {
	if err := notBlank("title", u.Title); err != nil {
		return nil, err
	}
	t, err := s.todos.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityTodo)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return notFound(s.todos.Delete(ctx, id), entityTodo)
}
