// Package models defines the civicwatch domain records and the structured
// result type returned by store operations.
package models

import "time"

// Role classifies a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status is the lifecycle state of a reported problem.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// ValidStatus reports whether s is one of the known problem states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// StatusColor maps problem states to marker colors for the map widget.
// The widget consumes plain data only.
var StatusColor = map[Status]string{
	StatusNew:        "red",
	StatusInProgress: "yellow",
	StatusResolved:   "green",
}

// User is an identity record. Password is plaintext in the seed dataset and
// must never leave the roster: session copies carry an empty Password.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// WithoutPassword returns a copy of u with the password stripped.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// Coordinates is a geographic point consumed by the map widget.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Problem is a reported issue. Timestamps serialize as RFC 3339 text;
// UpdatedAt never precedes CreatedAt and every mutation refreshes it.
type Problem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	ImageID     string      `json:"imageId,omitempty"`
}

// Comment belongs to exactly one problem; comment lists are persisted per
// parent problem id.
type Comment struct {
	ID        string    `json:"id"`
	ProblemID string    `json:"problemId"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Result is the outcome of a store operation. Failures carry a short
// user-facing message; nothing in the client core panics for control flow.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK() Result { return Result{Success: true} }

func Fail(msg string) Result { return Result{Success: false, Message: msg} }
