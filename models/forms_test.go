package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignupForm() SignupForm {
	return SignupForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
		DateOfBirth:     "1990-04-15",
		Gender:          "female",
	}
}

func TestSignupForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SignupForm)
		wantErrs []string
	}{
		{
			name:   "valid form",
			mutate: func(f *SignupForm) {},
		},
		{
			name:     "missing username",
			mutate:   func(f *SignupForm) { f.Username = "" },
			wantErrs: []string{"username"},
		},
		{
			name:     "malformed email",
			mutate:   func(f *SignupForm) { f.Email = "not-an-email" },
			wantErrs: []string{"email"},
		},
		{
			name:     "missing email",
			mutate:   func(f *SignupForm) { f.Email = "" },
			wantErrs: []string{"email"},
		},
		{
			name: "password confirmation mismatch",
			mutate: func(f *SignupForm) {
				f.PasswordConfirm = "something-else"
			},
			wantErrs: []string{"password_confirm"},
		},
		{
			name: "password too short",
			mutate: func(f *SignupForm) {
				f.Password = "short"
				f.PasswordConfirm = "short"
			},
			wantErrs: []string{"password"},
		},
		{
			name: "password entirely numeric",
			mutate: func(f *SignupForm) {
				f.Password = "1234567890"
				f.PasswordConfirm = "1234567890"
			},
			wantErrs: []string{"password"},
		},
		{
			name:     "missing date of birth",
			mutate:   func(f *SignupForm) { f.DateOfBirth = "" },
			wantErrs: []string{"date_of_birth"},
		},
		{
			name:     "unparseable date of birth",
			mutate:   func(f *SignupForm) { f.DateOfBirth = "15/04/1990" },
			wantErrs: []string{"date_of_birth"},
		},
		{
			name:     "unknown gender",
			mutate:   func(f *SignupForm) { f.Gender = "robot" },
			wantErrs: []string{"gender"},
		},
		{
			name:     "missing gender",
			mutate:   func(f *SignupForm) { f.Gender = "" },
			wantErrs: []string{"gender"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignupForm()
			tt.mutate(&form)

			user, errs := form.Validate()
			if len(tt.wantErrs) == 0 {
				require.Empty(t, errs)
				require.NotNil(t, user)
				assert.Equal(t, form.Username, user.Username)
				assert.Equal(t, form.Email, user.Email)
				return
			}

			require.Nil(t, user)
			for _, field := range tt.wantErrs {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestSignupForm_ValidateParsesDateOfBirth(t *testing.T) {
	form := validSignupForm()

	user, errs := form.Validate()
	require.Empty(t, errs)
	require.NotNil(t, user.DateOfBirth)
	assert.Equal(t, time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC), *user.DateOfBirth)
}

func TestTaskForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		form     TaskForm
		wantErrs []string
	}{
		{
			name: "valid form",
			form: TaskForm{Title: "buy milk", DueDate: "2026-09-05", Status: "pending"},
		},
		{
			name:     "empty title",
			form:     TaskForm{DueDate: "2026-09-05", Status: "pending"},
			wantErrs: []string{"title"},
		},
		{
			name:     "missing due date",
			form:     TaskForm{Title: "buy milk", Status: "pending"},
			wantErrs: []string{"due_date"},
		},
		{
			name:     "unparseable due date",
			form:     TaskForm{Title: "buy milk", DueDate: "next tuesday"},
			wantErrs: []string{"due_date"},
		},
		{
			name:     "unknown status",
			form:     TaskForm{Title: "buy milk", DueDate: "2026-09-05", Status: "archived"},
			wantErrs: []string{"status"},
		},
		{
			name:     "missing status",
			form:     TaskForm{Title: "buy milk", DueDate: "2026-09-05"},
			wantErrs: []string{"status"},
		},
		{
			name:     "everything wrong at once",
			form:     TaskForm{Status: "archived"},
			wantErrs: []string{"title", "due_date", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, errs := tt.form.Validate()
			if len(tt.wantErrs) == 0 {
				require.Empty(t, errs)
				require.NotNil(t, task)
				assert.Equal(t, tt.form.Title, task.Title)
				return
			}

			require.Nil(t, task)
			require.Len(t, errs, len(tt.wantErrs))
			for _, field := range tt.wantErrs {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestTask_ToggleStatus(t *testing.T) {
	task := Task{Status: TaskStatusPending}

	task.ToggleStatus()
	assert.Equal(t, TaskStatusCompleted, task.Status)

	task.ToggleStatus()
	assert.Equal(t, TaskStatusPending, task.Status)

	// Any non-pending value falls back to pending.
	task.Status = "archived"
	task.ToggleStatus()
	assert.Equal(t, TaskStatusPending, task.Status)
}
