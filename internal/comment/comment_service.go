package comment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type CommentPage struct {
	Comments   []dbmongo.CommentWithOwner `json:"comments"`
	Pagination common.PageInfo            `json:"pagination"`
}

//go:generate mockgen -source=comment_service.go -destination=mock_comment_service_test.go -package=comment

type CommentService interface {
	ListComments(ctx context.Context, videoID string, page common.Page) (*CommentPage, error)
	AddComment(ctx context.Context, owner primitive.ObjectID, videoID, content string) (*dbmongo.Comment, error)
	UpdateComment(ctx context.Context, caller primitive.ObjectID, commentID, content string) (*dbmongo.Comment, error)
	DeleteComment(ctx context.Context, caller primitive.ObjectID, commentID string) error
}

type commentService struct {
	commentRepo CommentRepository
}

func NewCommentService(commentRepo CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListComments(ctx context.Context, videoID string, page common.Page) (*CommentPage, error) {
	id, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	comments, total, err := s.commentRepo.ListByVideo(ctx, id, page)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch comments")
	}
	return &CommentPage{Comments: comments, Pagination: common.NewPageInfo(page, total)}, nil
}

func (s *commentService) AddComment(ctx context.Context, owner primitive.ObjectID, videoID, content string) (*dbmongo.Comment, error) {
	id, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	content, err = common.RequireText("content", content)
	if err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.VideoExists(ctx, id)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to add comment")
	}
	if !exists {
		return nil, common.NotFound("video not found")
	}

	comment := &dbmongo.Comment{Content: content, Video: id, Owner: owner}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, common.Internal(ctx, err, "failed to add comment")
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, caller primitive.ObjectID, commentID, content string) (*dbmongo.Comment, error) {
	comment, err := s.ownedComment(ctx, caller, commentID, "edit this comment")
	if err != nil {
		return nil, err
	}
	content, err = common.RequireText("content", content)
	if err != nil {
		return nil, err
	}
	updated, err := s.commentRepo.UpdateContent(ctx, comment.ID, content)
	if err != nil {
		return nil, mapCommentErr(ctx, err, "failed to update comment")
	}
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, caller primitive.ObjectID, commentID string) error {
	comment, err := s.ownedComment(ctx, caller, commentID, "delete this comment")
	if err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return mapCommentErr(ctx, err, "failed to delete comment")
	}
	return nil
}

func (s *commentService) ownedComment(ctx context.Context, caller primitive.ObjectID, commentID, action string) (*dbmongo.Comment, error) {
	id, err := common.ParseID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapCommentErr(ctx, err, "failed to fetch comment")
	}
	if err := common.RequireOwner(comment.Owner, caller, action); err != nil {
		return nil, err
	}
	return comment, nil
}

func mapCommentErr(ctx context.Context, err error, msg string) error {
	if errors.Is(err, ErrCommentNotFound) {
		return common.NotFound("comment not found")
	}
	return common.Internal(ctx, err, msg)
}
