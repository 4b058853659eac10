package dto

import "heptabet_backend/internal/models"

type CreateBlogPostRequest struct {
	Title    string                  `json:"title" validate:"required,max=200"`
	Excerpt  string                  `json:"excerpt" validate:"omitempty,max=500"`
	Content  string                  `json:"content" validate:"required"`
	Author   string                  `json:"author" validate:"omitempty,max=64"`
	Date     string                  `json:"date" validate:"omitempty,len=10"`
	ImageURL string                  `json:"imageUrl" validate:"omitempty,url"`
	Tier     models.SubscriptionTier `json:"tier" validate:"required,oneof=Free Basic Standard Premium"`
}

type BlogPostResponse struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Excerpt  string                  `json:"excerpt"`
	Content  string                  `json:"content"`
	Author   string                  `json:"author"`
	Date     string                  `json:"date"`
	ImageURL string                  `json:"imageUrl"`
	Tier     models.SubscriptionTier `json:"tier"`
	Locked   bool                    `json:"locked"`
}
