package services

import (
	"errors"
	"fmt"

	"blogapi/models"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(username string) (*models.User, error) {
	user := &models.User{Username: username}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// GetPostsByUser is the user-to-posts direction of the relation, kept as a
// plain foreign-key lookup rather than a preloaded object graph.
func (s *UserService) GetPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts for user %d: %w", userID, err)
	}
	return posts, nil
}
