package services

import (
	"fmt"

	"blogapi/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) CreatePost(title, content string, userID uint) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

// GetAllPosts loads every post with its owning user so callers can expose
// the author's username alongside the post.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("User").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
