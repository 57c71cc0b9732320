package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/dmitrijs2005/employeehub/internal/server/services"
	"github.com/labstack/echo/v4"
)

const pictureField = "profilePicture"

// employeeView is the wire form of an employee. ProfilePicture is a
// presigned URL, not the storage key.
type employeeView struct {
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

type employeeResponse struct {
	Message  string       `json:"message"`
	Employee employeeView `json:"employee"`
}

func (s *Server) view(c echo.Context, e *models.Employee) employeeView {
	return employeeView{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		Email:          e.Email,
		Age:            e.Age,
		Department:     e.Department,
		Designation:    e.Designation,
		DateOfJoining:  e.DateOfJoining.Format(models.DateLayout),
		ContactNumber:  e.ContactNumber,
		Status:         e.Status,
		Location:       e.Location,
		ProfilePicture: s.employees.PictureURL(c.Request().Context(), e),
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func employeeError(c echo.Context, err error) error {
	code, msg := statusFor(err, msgEmpNotFound, msgEmpExists)
	return c.JSON(code, message(msg))
}

// bindEmployee reads the payload from JSON or multipart form fields. The
// returned close func releases the uploaded file, if any.
func bindEmployee(c echo.Context) (*models.EmployeeInput, *services.Picture, func(), error) {
	in := new(models.EmployeeInput)
	if err := c.Bind(in); err != nil {
		return nil, nil, nil, err
	}

	noop := func() {}
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return in, nil, noop, nil
	}

	fh, err := c.FormFile(pictureField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil, noop, nil
		}
		return nil, nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, nil, err
	}

	pic := &services.Picture{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}
	return in, pic, func() { _ = f.Close() }, nil
}

func (s *Server) handleCreateEmployee(c echo.Context) error {
	in, pic, closeFn, err := bindEmployee(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, message(msgBadRequest))
	}
	defer closeFn()

	id, _ := identity(c)
	e, err := s.employees.Create(c.Request().Context(), id.ID, in, pic)
	if err != nil {
		return employeeError(c, err)
	}

	return c.JSON(http.StatusCreated, employeeResponse{Message: "Employee created successfully", Employee: s.view(c, e)})
}

func (s *Server) handleListEmployees(c echo.Context) error {
	list, err := s.employees.List(c.Request().Context())
	if err != nil {
		return employeeError(c, err)
	}

	views := make([]employeeView, 0, len(list))
	for _, e := range list {
		views = append(views, s.view(c, e))
	}
	return c.JSON(http.StatusOK, views)
}

func (s *Server) handleGetEmployee(c echo.Context) error {
	e, err := s.employees.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return employeeError(c, err)
	}
	return c.JSON(http.StatusOK, s.view(c, e))
}

func (s *Server) handleUpdateEmployee(c echo.Context) error {
	in, pic, closeFn, err := bindEmployee(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, message(msgBadRequest))
	}
	defer closeFn()

	e, err := s.employees.Update(c.Request().Context(), c.Param("id"), in, pic)
	if err != nil {
		return employeeError(c, err)
	}

	return c.JSON(http.StatusOK, employeeResponse{Message: "Employee updated successfully", Employee: s.view(c, e)})
}

func (s *Server) handleDeleteEmployee(c echo.Context) error {
	if err := s.employees.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return employeeError(c, err)
	}
	return c.JSON(http.StatusOK, message("Employee deleted successfully"))
}
