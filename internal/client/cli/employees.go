package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/employeehub/internal/client/client"
	"github.com/dmitrijs2005/employeehub/internal/client/models"
	"github.com/dmitrijs2005/employeehub/internal/filex"
)

// openPicture is a test seam for filex.OpenRegular.
var openPicture = filex.OpenRegular

// List prints all employees as a table.
func (a *App) List(ctx context.Context) error {
	list, err := a.client.ListEmployees(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No employees")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMPLOYEE ID\tNAME\tDEPARTMENT\tDESIGNATION\tSTATUS")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.EmployeeID, e.Name, e.Department, e.Designation, e.Status)
	}
	return tw.Flush()
}

// Show prints one employee.
func (a *App) Show(ctx context.Context, id string) error {
	e, err := a.client.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			log.Printf("Employee %s not found", id)
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}
	printEmployee(a, e)
	return nil
}

func printEmployee(a *App, e *models.Employee) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"ID", e.ID},
		{"Employee ID", e.EmployeeID},
		{"Name", e.Name},
		{"Email", e.Email},
		{"Age", strconv.Itoa(e.Age)},
		{"Department", e.Department},
		{"Designation", e.Designation},
		{"Date of joining", e.DateOfJoining},
		{"Contact number", e.ContactNumber},
		{"Status", e.Status},
		{"Location", e.Location},
	}
	if e.ProfilePicture != "" {
		rows = append(rows, [2]string{"Profile picture", e.ProfilePicture})
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	tw.Flush()
}

// Add prompts for the employee fields and an optional picture path, then
// creates the employee.
func (a *App) Add(ctx context.Context) error {
	in, err := a.inputEmployee()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := GetOptionalText(a.reader, "Profile picture path", a.out)
	if err != nil {
		return err
	}

	var pic *client.Picture
	if path != "" {
		f, _, ctype, err := openPicture(path)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		defer f.Close()
		pic = &client.Picture{Filename: filepath.Base(path), ContentType: ctype, Body: f}
	}

	e, err := a.client.CreateEmployee(ctx, in, pic)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Fprintf(a.out, "Employee created, id: %s\n", e.ID)
	return nil
}

func (a *App) inputEmployee() (*models.EmployeeInput, error) {
	in := &models.EmployeeInput{}

	prompts := []struct {
		prompt string
		dst    *string
	}{
		{"Enter employee ID", &in.EmployeeID},
		{"Enter name", &in.Name},
		{"Enter email", &in.Email},
		{"Enter department (HR, IT, Sales, Marketing)", &in.Department},
		{"Enter designation", &in.Designation},
		{"Enter date of joining (YYYY-MM-DD)", &in.DateOfJoining},
		{"Enter contact number", &in.ContactNumber},
		{"Enter location", &in.Location},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.prompt, a.out)
		if err != nil {
			return nil, err
		}
		*p.dst = v
	}

	age, err := getSimpleText(a.reader, "Enter age", a.out)
	if err != nil {
		return nil, err
	}
	in.Age, err = strconv.Atoi(age)
	if err != nil {
		return nil, fmt.Errorf("invalid age %q", age)
	}

	status, err := GetOptionalText(a.reader, "Enter status (Active, Inactive)", a.out)
	if err != nil {
		return nil, err
	}
	in.Status = status

	return in, nil
}

// Delete removes one employee.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.client.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			log.Printf("Employee %s not found", id)
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
