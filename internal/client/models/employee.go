// Package models holds the API payloads the CLI sends and receives.
package models

import (
	"strconv"
	"time"
)

// Employee mirrors the server's employee JSON.
type Employee struct {
	ID             string    `json:"_id"`
	EmployeeID     string    `json:"employeeId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            int       `json:"age"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	DateOfJoining  string    `json:"dateOfJoining"`
	ContactNumber  string    `json:"contactNumber"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EmployeeInput is what the CLI collects for a new employee.
type EmployeeInput struct {
	EmployeeID    string `json:"employeeId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Age           int    `json:"age"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"dateOfJoining"`
	ContactNumber string `json:"contactNumber"`
	Status        string `json:"status,omitempty"`
	Location      string `json:"location"`
}

// FormFields returns the input as multipart form values. An empty status is
// left out so the server default applies.
func (in *EmployeeInput) FormFields() map[string]string {
	f := map[string]string{
		"employeeId":    in.EmployeeID,
		"name":          in.Name,
		"email":         in.Email,
		"age":           strconv.Itoa(in.Age),
		"department":    in.Department,
		"designation":   in.Designation,
		"dateOfJoining": in.DateOfJoining,
		"contactNumber": in.ContactNumber,
		"location":      in.Location,
	}
	if in.Status != "" {
		f["status"] = in.Status
	}
	return f
}

// Identity is the account a token belongs to.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
