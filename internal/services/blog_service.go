package services

import (
	"time"

	"heptabet_backend/internal/access"
	"heptabet_backend/internal/models"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"
)

type BlogService interface {
	List(viewerID string) ([]dto.BlogPostResponse, error)
	Create(req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	Delete(id string) error
}

type BlogServiceImpl struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
}

func NewBlogService(
	blogRepo repositories.BlogRepository,
	userRepo repositories.UserRepository,
) BlogService {
	return &BlogServiceImpl{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

func (s *BlogServiceImpl) List(viewerID string) ([]dto.BlogPostResponse, error) {
	var viewer *models.User
	if viewerID != "" {
		u, err := s.userRepo.FindByID(viewerID)
		if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if err == nil {
			if err := access.EnforceExpiry(s.userRepo, u); err != nil {
				return nil, apperrors.InternalError(err)
			}
			viewer = u
		}
	}

	posts, err := s.blogRepo.FindAllOrdered()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.BlogPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *buildBlogPostResponse(&posts[i], viewer))
	}
	return responses, nil
}

func (s *BlogServiceImpl) Create(req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	post := &models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     date,
		ImageURL: req.ImageURL,
		MinTier:  req.Tier,
	}

	if err := s.blogRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildBlogPostResponse(post, adminViewer()), nil
}

func (s *BlogServiceImpl) Delete(id string) error {
	if err := s.blogRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildBlogPostResponse(post *models.BlogPost, viewer *models.User) *dto.BlogPostResponse {
	resp := &dto.BlogPostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Content:  post.Content,
		Author:   post.Author,
		Date:     post.Date,
		ImageURL: post.ImageURL,
		Tier:     post.MinTier,
	}

	// Title and excerpt stay visible as the teaser; the article body is
	// the gated product.
	if !access.CanView(viewer, post) {
		resp.Content = ""
		resp.Locked = true
	}
	return resp
}
