// Package menu implements the interactive text menu over an employee service.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpggio/rollcall/internal/domain/employee"
)

const menuText = "\nMenu:\n" +
	"1. Add Employee\n" +
	"2. Display All Employees\n" +
	"3. Search Employee\n" +
	"4. Update Employee\n" +
	"5. Remove Employee\n" +
	"6. Exit\n" +
	"Enter your choice: "

// EmployeeService defines the employee operations the menu drives.
type EmployeeService interface {
	Add(ctx context.Context, e employee.Employee)
	Remove(ctx context.Context, id int) int
	Find(ctx context.Context, id int) (employee.Employee, error)
	Rename(ctx context.Context, id int, name string) error
	List(ctx context.Context) []string
}

var errExit = errors.New("exit")

type command func(ctx context.Context) error

// Console reads menu selections from in and writes prompts and results to out.
type Console struct {
	svc      EmployeeService
	in       *bufio.Scanner
	out      io.Writer
	commands map[int]command
}

// NewConsole creates a console bound to svc.
func NewConsole(svc EmployeeService, in io.Reader, out io.Writer) *Console {
	c := &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
	c.commands = map[int]command{
		1: c.add,
		2: c.displayAll,
		3: c.search,
		4: c.update,
		5: c.remove,
		6: c.exit,
	}
	return c
}

// Run loops over menu selections until the user exits, the input ends, or ctx
// is canceled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(menuText)
		line, err := c.readLine()
		if err != nil {
			return eofOK(err)
		}

		choice, convErr := strconv.Atoi(line)
		cmd, ok := c.commands[choice]
		if convErr != nil || !ok {
			c.print("Invalid choice. Please try again.\n")
			continue
		}

		if err := cmd(ctx); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return eofOK(err)
		}
	}
}

func (c *Console) add(ctx context.Context) error {
	c.print("Enter employee details:\n")
	id, ok, err := c.promptID("ID: ")
	if err != nil || !ok {
		return err
	}
	name, err := c.prompt("Name: ")
	if err != nil {
		return err
	}
	typ, err := c.prompt("Enter employee type (1 for Manager, 2 for Engineer): ")
	if err != nil {
		return err
	}

	var kind employee.Kind
	var label string
	switch typ {
	case "1":
		kind, label = employee.KindManager, "Department: "
	case "2":
		kind, label = employee.KindEngineer, "Specialty: "
	default:
		c.print("Invalid employee type.\n")
		return nil
	}

	attribute, err := c.prompt(label)
	if err != nil {
		return err
	}
	e, _ := employee.New(kind, id, name, attribute)
	c.svc.Add(ctx, e)
	return nil
}

func (c *Console) displayAll(ctx context.Context) error {
	c.print("All Employees:\n")
	for _, line := range c.svc.List(ctx) {
		c.print(line + "\n")
	}
	return nil
}

func (c *Console) search(ctx context.Context) error {
	id, ok, err := c.promptID("Enter employee ID to search: ")
	if err != nil || !ok {
		return err
	}
	e, err := c.svc.Find(ctx, id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		c.notFound(id)
		return nil
	}
	if err != nil {
		return err
	}
	c.print("Employee found: " + e.Render() + "\n")
	return nil
}

func (c *Console) update(ctx context.Context) error {
	id, ok, err := c.promptID("Enter employee ID to update: ")
	if err != nil || !ok {
		return err
	}
	name, err := c.prompt("Enter new name: ")
	if err != nil {
		return err
	}
	err = c.svc.Rename(ctx, id, name)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		c.notFound(id)
		return nil
	}
	return err
}

func (c *Console) remove(ctx context.Context) error {
	id, ok, err := c.promptID("Enter employee ID to remove: ")
	if err != nil || !ok {
		return err
	}
	c.svc.Remove(ctx, id)
	return nil
}

func (c *Console) exit(context.Context) error {
	c.print("Exiting the program.\n")
	return errExit
}

func (c *Console) notFound(id int) {
	c.print(fmt.Sprintf("Employee with ID %d not found.\n", id))
}

func (c *Console) prompt(label string) (string, error) {
	c.print(label)
	return c.readLine()
}

// promptID reads an integer identifier. ok is false when the input is not a
// number; the user has already been told.
func (c *Console) promptID(label string) (id int, ok bool, err error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(line)
	if convErr != nil {
		c.print("Invalid ID.\n")
		return 0, false, nil
	}
	return id, true, nil
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
