package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// DateLayout is the wire format of DateOfJoining.
const DateLayout = "2006-01-02"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// MinEmployeeAge matches the add-employee form's lower bound.
const MinEmployeeAge = 18

// Departments lists the accepted department names.
var Departments = []string{"HR", "IT", "Sales", "Marketing"}

// Employee is a directory record. PictureKey is the blob-store key of the
// profile picture, empty when none was uploaded.
type Employee struct {
	ID            string
	EmployeeID    string
	Name          string
	Email         string
	Age           int
	Department    string
	Designation   string
	DateOfJoining time.Time
	ContactNumber string
	Status        string
	Location      string
	PictureKey    string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployeeInput is the create/update payload, bound from JSON or from
// multipart form fields.
type EmployeeInput struct {
	EmployeeID    string `json:"employeeId" form:"employeeId"`
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Age           int    `json:"age" form:"age"`
	Department    string `json:"department" form:"department"`
	Designation   string `json:"designation" form:"designation"`
	DateOfJoining string `json:"dateOfJoining" form:"dateOfJoining"`
	ContactNumber string `json:"contactNumber" form:"contactNumber"`
	Status        string `json:"status" form:"status"`
	Location      string `json:"location" form:"location"`
}

func departmentRule() validation.Rule {
	in := make([]interface{}, len(Departments))
	for i, d := range Departments {
		in[i] = d
	}
	return validation.In(in...).Error("must be one of HR, IT, Sales, Marketing")
}

func (in *EmployeeInput) fieldRules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Age, validation.Required, validation.Min(MinEmployeeAge)),
		validation.Field(&in.Department, validation.Required, departmentRule()),
		validation.Field(&in.Designation, validation.Required),
		validation.Field(&in.DateOfJoining, validation.Required, validation.Date(DateLayout)),
		validation.Field(&in.ContactNumber, validation.Required),
		validation.Field(&in.Status, validation.In(StatusActive, StatusInactive)),
		validation.Field(&in.Location, validation.Required),
	}
}

// ValidateCreate checks every field, including the employee number.
func (in *EmployeeInput) ValidateCreate() error {
	rules := append(in.fieldRules(), validation.Field(&in.EmployeeID, validation.Required))
	return wrapValidation(validation.ValidateStruct(in, rules...))
}

// ValidateUpdate checks the editable fields; the employee number is fixed
// at creation and ignored on update.
func (in *EmployeeInput) ValidateUpdate() error {
	return wrapValidation(validation.ValidateStruct(in, in.fieldRules()...))
}

// ApplyTo copies the input onto e. An empty status keeps e's current status,
// or Active when e has none yet. The input must have been validated.
func (in *EmployeeInput) ApplyTo(e *Employee) error {
	doj, err := time.Parse(DateLayout, in.DateOfJoining)
	if err != nil {
		return fmt.Errorf("%w: dateOfJoining: %v", common.ErrorValidation, err)
	}

	e.Name = in.Name
	e.Email = in.Email
	e.Age = in.Age
	e.Department = in.Department
	e.Designation = in.Designation
	e.DateOfJoining = doj
	e.ContactNumber = in.ContactNumber
	switch {
	case in.Status != "":
		e.Status = in.Status
	case e.Status == "":
		e.Status = StatusActive
	}
	e.Location = in.Location
	return nil
}

// SignupInput is the body of POST /auth/signup.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *SignupInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	))
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}
