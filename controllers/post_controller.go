package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
	userService *services.UserService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
		userService: services.NewUserService(db),
	}
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.postService.GetAllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	response := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		response = append(response, models.PostResponse{
			ID:       post.ID,
			Title:    post.Title,
			Content:  post.Content,
			UserID:   post.UserID,
			Username: post.User.Username,
		})
	}

	c.JSON(http.StatusOK, response)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if req.Title == "" || req.Content == "" || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, content, and user_id are required"})
		return
	}

	if _, err := pc.userService.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	post, err := pc.postService.CreatePost(req.Title, req.Content, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, models.PostCreatedResponse{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		UserID:  post.UserID,
	})
}
