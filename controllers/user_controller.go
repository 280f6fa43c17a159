package controllers

import (
	"net/http"

	"TaskerGo/config"
	"TaskerGo/models"

	"github.com/gin-gonic/gin"
)

// UserController handles the profile page and internal account removal.
type UserController struct{}

// Profile renders the session account's own attributes.
func (uc *UserController) Profile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.GetString("uid")).Error; err != nil {
		renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{"user": &user})
}

// DeleteUser removes an account and all its tasks. Internal route only,
// account deletion is never exposed to browsers.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	// Explicit two-step cascade: tasks first, then the account.
	if err := config.DB.Where("user_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		config.Logger.Errorw("task cascade failed", "error", err, "userID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		config.Logger.Errorw("user delete failed", "error", err, "userID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	config.Logger.Infow("user deleted", "userID", id, "username", user.Username)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
