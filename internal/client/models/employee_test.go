package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeInput_FormFields(t *testing.T) {
	in := &EmployeeInput{EmployeeID: "E1", Name: "Ada", Age: 36, Department: "IT"}

	f := in.FormFields()
	assert.Equal(t, "36", f["age"])
	assert.Equal(t, "E1", f["employeeId"])
	assert.NotContains(t, f, "status")

	in.Status = "Inactive"
	assert.Equal(t, "Inactive", in.FormFields()["status"])
}
