package repository

import (
	"context"

	"github.com/shopfleet/shopfleet/internal/comment/domain"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// List returns comments, optionally filtered by order item id
	// (orderItemID == 0 lists everything).
	List(ctx context.Context, orderItemID uint64) ([]domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
