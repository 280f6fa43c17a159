package routes

import (
	"net/http"

	"TaskerGo/controllers"
	"TaskerGo/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authController := controllers.AuthController{}
	taskController := controllers.TaskController{}
	userController := controllers.UserController{}

	// Public routes (no session required)
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	})
	r.GET("/signup", authController.ShowSignup)
	r.POST("/signup", authController.Signup)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)

	// Session-gated routes
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", taskController.List)
		tasks.GET("/new", taskController.ShowCreate)
		tasks.POST("/new", taskController.Create)
		tasks.GET("/:id/edit", taskController.ShowEdit)
		tasks.POST("/:id/edit", taskController.Edit)
		tasks.GET("/:id/delete", taskController.ShowDelete)
		tasks.POST("/:id/delete", taskController.Delete)
		tasks.POST("/:id/toggle", taskController.Toggle)
	}

	r.GET("/profile", middleware.AuthMiddleware(), userController.Profile)

	// Internal routes (server-side callers only)
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/users/:id/delete", userController.DeleteUser)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
