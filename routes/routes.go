package routes

import (
	"net/http"

	"blogapi/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userController *controllers.UserController, postController *controllers.PostController) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the blog API"})
	})

	users := r.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.POST("", userController.CreateUser)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		posts.POST("", postController.CreatePost)
	}
}
