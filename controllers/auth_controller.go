package controllers

import (
	"net/http"
	"time"

	"TaskerGo/config"
	"TaskerGo/middleware"
	"TaskerGo/models"
	"TaskerGo/utils"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * time.Hour * 30

// AuthController handles signup, login and logout.
type AuthController struct{}

// ShowSignup renders the empty signup form.
func (ac *AuthController) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form":   models.SignupForm{},
		"errors": models.FieldErrors{},
	})
}

// Signup validates the submission and creates the account. Success
// redirects to the login page, it does not authenticate.
func (ac *AuthController) Signup(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"form":   form,
			"errors": models.FieldErrors{"form": "Invalid submission."},
		})
		return
	}

	user, errs := form.Validate()
	if errs == nil {
		errs = models.FieldErrors{}
	}

	if form.Username != "" {
		var count int64
		if err := config.DB.Model(&models.User{}).Where("username = ?", form.Username).Count(&count).Error; err != nil {
			config.Logger.Errorw("username lookup failed", "error", err)
			renderServerError(c)
			return
		}
		if count > 0 {
			errs["username"] = "Username is already taken."
		}
	}

	if len(errs) > 0 {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"form":   form,
			"errors": errs,
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		config.Logger.Errorw("password hashing failed", "error", err)
		renderServerError(c)
		return
	}

	user.ID = utils.GenerateID()
	user.PasswordHash = hash
	user.CreatedAt = time.Now()

	if err := config.DB.Create(user).Error; err != nil {
		config.Logger.Errorw("user creation failed",
			"error", err,
			"username", user.Username,
		)
		renderServerError(c)
		return
	}

	config.Logger.Infow("user signed up",
		"userID", user.ID,
		"username", user.Username,
	)

	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies credentials and starts a session.
func (ac *AuthController) Login(c *gin.Context) {
	var form struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Invalid submission."})
		return
	}

	// One non-specific message for both unknown user and bad password.
	var user models.User
	err := config.DB.Where("username = ?", form.Username).First(&user).Error
	if err != nil || !utils.CheckPassword(form.Password, user.PasswordHash) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"username": form.Username,
			"error":    "Invalid username or password.",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "userID", user.ID)
		renderServerError(c)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(sessionMaxAge.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/tasks")
}

// Logout revokes the session and clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if tokenString, err := c.Cookie(middleware.SessionCookie); err == nil && tokenString != "" {
		if claims, err := utils.ParseToken(tokenString); err == nil {
			var expiresAt time.Time
			if claims.ExpiresAt != nil {
				expiresAt = claims.ExpiresAt.Time
			}
			if err := utils.RevokeSession(claims.ID, expiresAt); err != nil {
				config.Logger.Warnw("session revocation failed", "error", err)
			}
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
