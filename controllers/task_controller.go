package controllers

import (
	"errors"
	"net/http"
	"time"

	"TaskerGo/config"
	"TaskerGo/models"
	"TaskerGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaskController handles the task list and its CRUD operations. Every
// route behind it is owner-scoped through the session uid.
type TaskController struct{}

// List renders the account's tasks, optionally filtered.
func (tc *TaskController) List(c *gin.Context) {
	uid := c.GetString("uid")
	filter := c.DefaultQuery("filter", "all")

	query := config.DB.Where("user_id = ?", uid)
	switch filter {
	case models.TaskStatusPending, models.TaskStatusCompleted:
		query = query.Where("status = ?", filter)
	case "due_today":
		query = query.Where("due_date = ?", today())
	default:
		// Unknown filter values fall through to the full list.
		filter = "all"
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC, id").Find(&tasks).Error; err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "task_list.html", gin.H{
		"tasks":  tasks,
		"filter": filter,
	})
}

// ShowCreate renders the empty task form.
func (tc *TaskController) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"form":   models.TaskForm{Status: models.TaskStatusPending},
		"errors": models.FieldErrors{},
	})
}

// Create validates the submission and stores a task owned by the
// session account.
func (tc *TaskController) Create(c *gin.Context) {
	var form models.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "task_form.html", gin.H{
			"form":   form,
			"errors": models.FieldErrors{"form": "Invalid submission."},
		})
		return
	}

	task, errs := form.Validate()
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "task_form.html", gin.H{
			"form":   form,
			"errors": errs,
		})
		return
	}

	task.ID = utils.GenerateID()
	task.UserID = c.GetString("uid")
	task.CreatedAt = time.Now()

	if err := config.DB.Create(task).Error; err != nil {
		config.Logger.Errorw("task creation failed", "error", err, "userID", task.UserID)
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

// ShowEdit prefills the task form.
func (tc *TaskController) ShowEdit(c *gin.Context) {
	task, ok := tc.findOwnedTask(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"task": task,
		"form": models.TaskForm{
			Title:       task.Title,
			Description: task.Description,
			DueDate:     task.DueDate.Format(models.DateLayout),
			Status:      task.Status,
		},
		"errors": models.FieldErrors{},
	})
}

// Edit overwrites title, description, due date and status in place.
// Owner and creation timestamp never change.
func (tc *TaskController) Edit(c *gin.Context) {
	task, ok := tc.findOwnedTask(c)
	if !ok {
		return
	}

	var form models.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "task_form.html", gin.H{
			"task":   task,
			"form":   form,
			"errors": models.FieldErrors{"form": "Invalid submission."},
		})
		return
	}

	updated, errs := form.Validate()
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "task_form.html", gin.H{
			"task":   task,
			"form":   form,
			"errors": errs,
		})
		return
	}

	err := config.DB.Model(task).Updates(map[string]interface{}{
		"title":       updated.Title,
		"description": updated.Description,
		"due_date":    updated.DueDate,
		"status":      updated.Status,
	}).Error
	if err != nil {
		config.Logger.Errorw("task update failed", "error", err, "taskID", task.ID)
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

// ShowDelete renders the delete confirmation page.
func (tc *TaskController) ShowDelete(c *gin.Context) {
	task, ok := tc.findOwnedTask(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "task_confirm_delete.html", gin.H{"task": task})
}

// Delete removes the task after confirmation. No soft-delete.
func (tc *TaskController) Delete(c *gin.Context) {
	task, ok := tc.findOwnedTask(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(task).Error; err != nil {
		config.Logger.Errorw("task delete failed", "error", err, "taskID", task.ID)
		renderServerError(c)
		return
	}

	config.Logger.Infow("task deleted", "taskID", task.ID, "userID", task.UserID)
	c.Redirect(http.StatusFound, "/tasks")
}

// Toggle flips the task status and persists immediately.
func (tc *TaskController) Toggle(c *gin.Context) {
	task, ok := tc.findOwnedTask(c)
	if !ok {
		return
	}

	task.ToggleStatus()
	if err := config.DB.Model(task).Update("status", task.Status).Error; err != nil {
		config.Logger.Errorw("task toggle failed", "error", err, "taskID", task.ID)
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

// findOwnedTask loads the task scoped by (id, session account). A miss
// renders the not-found page whether the id is unknown or belongs to
// someone else.
func (tc *TaskController) findOwnedTask(c *gin.Context) (*models.Task, bool) {
	var task models.Task
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), c.GetString("uid")).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
		} else {
			config.Logger.Errorw("task lookup failed", "error", err, "taskID", c.Param("id"))
			renderServerError(c)
		}
		return nil, false
	}
	return &task, true
}

// today is the current calendar date at request time, normalized the
// same way parsed form dates are.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
