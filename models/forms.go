package models

import (
	"net/mail"
	"time"
	"unicode"
)

// DateLayout is the calendar date format used by the HTML date inputs.
const DateLayout = "2006-01-02"

// MinPasswordLength is the configured signup password policy. main
// overrides it from config at startup.
var MinPasswordLength = 8

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// SignupForm carries the raw signup submission.
type SignupForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
	DateOfBirth     string `form:"date_of_birth"`
	Gender          string `form:"gender"`
}

// Validate maps the raw submission to a User (without credentials) or a
// set of field errors. Username uniqueness is checked by the handler
// against the database.
func (f *SignupForm) Validate() (*User, FieldErrors) {
	errs := FieldErrors{}

	if f.Username == "" {
		errs["username"] = "Username is required."
	}

	if f.Email == "" {
		errs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "Enter a valid email address."
	}

	if len(f.Password) < MinPasswordLength {
		errs["password"] = "Password is too short."
	} else if isAllDigits(f.Password) {
		errs["password"] = "Password cannot be entirely numeric."
	}
	if f.Password != f.PasswordConfirm {
		errs["password_confirm"] = "Passwords do not match."
	}

	var dob *time.Time
	if f.DateOfBirth == "" {
		errs["date_of_birth"] = "Date of birth is required."
	} else if d, err := time.Parse(DateLayout, f.DateOfBirth); err != nil {
		errs["date_of_birth"] = "Enter a valid date."
	} else {
		dob = &d
	}

	switch f.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		errs["gender"] = "Select a valid gender."
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &User{
		Username:    f.Username,
		Email:       f.Email,
		DateOfBirth: dob,
		Gender:      f.Gender,
	}, nil
}

// TaskForm carries a raw task create/edit submission. The owning account
// never comes from the form.
type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Status      string `form:"status"`
}

// Validate maps the raw submission to a Task without an owner, or a set
// of field errors.
func (f *TaskForm) Validate() (*Task, FieldErrors) {
	errs := FieldErrors{}

	if f.Title == "" {
		errs["title"] = "Title is required."
	}

	var due time.Time
	if f.DueDate == "" {
		errs["due_date"] = "Due date is required."
	} else {
		d, err := time.Parse(DateLayout, f.DueDate)
		if err != nil {
			errs["due_date"] = "Enter a valid date."
		}
		due = d
	}

	// The entity-level pending default applies only at creation; a
	// submission must pick one of the enumerated choices.
	switch f.Status {
	case TaskStatusPending, TaskStatusCompleted:
	default:
		errs["status"] = "Select a valid status."
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Task{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     due,
		Status:      f.Status,
	}, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
