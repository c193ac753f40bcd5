package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/comment/domain"
	"github.com/shopfleet/shopfleet/internal/comment/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

// Author is the resolved display identity attached to a comment at read
// time. Lookups that fail fall back to a placeholder username so a broken
// user service never breaks comment listing.
type Author struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type CommentView struct {
	ID          string    `json:"id"`
	OrderItemID uint64    `json:"order_item_id"`
	Content     string    `json:"content"`
	Author      Author    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentService struct {
	repo       repository.CommentRepository
	userClient clients.UserClientInterface
}

func NewCommentService(repo repository.CommentRepository, userClient clients.UserClientInterface) *CommentService {
	return &CommentService{repo: repo, userClient: userClient}
}

func (s *CommentService) Create(ctx context.Context, userID, orderItemID uint64, content string) (string, error) {
	comment := &domain.Comment{
		UserID:      userID,
		OrderItemID: orderItemID,
		Content:     content,
	}
	id, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return "", fmt.Errorf("insert comment: %w", err)
	}
	return id, nil
}

func (s *CommentService) List(ctx context.Context, orderItemID uint64, token string) ([]CommentView, error) {
	comments, err := s.repo.List(ctx, orderItemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	views := make([]CommentView, 0, len(comments))
	authors := make(map[uint64]Author)
	for _, c := range comments {
		author, ok := authors[c.UserID]
		if !ok {
			author = s.resolveAuthor(ctx, c.UserID, token)
			authors[c.UserID] = author
		}
		views = append(views, CommentView{
			ID:          c.ID.Hex(),
			OrderItemID: c.OrderItemID,
			Content:     c.Content,
			Author:      author,
			CreatedAt:   c.CreatedAt,
		})
	}
	return views, nil
}

func (s *CommentService) Update(ctx context.Context, id, content string) error {
	err := s.repo.UpdateContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) resolveAuthor(ctx context.Context, userID uint64, token string) Author {
	user, err := s.userClient.GetUserByID(ctx, token, userID)
	if err != nil || user == nil {
		if err != nil {
			slog.Warn("comment author lookup failed", "user_id", userID, "error", err)
		}
		return Author{ID: userID, Username: "unknown"}
	}
	return Author{ID: user.ID, Username: user.Username}
}
