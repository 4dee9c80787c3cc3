package employee

import "fmt"

// Kind identifies an employee variant.
type Kind string

const (
	KindManager  Kind = "manager"
	KindEngineer Kind = "engineer"
)

// Employee is a single record held by a Store. Only *Manager and *Engineer
// implement it.
type Employee interface {
	ID() int
	Name() string
	Kind() Kind
	Render() string

	rename(name string)
	clone() Employee
}

// base holds the fields shared by every variant.
type base struct {
	id   int
	name string
}

func (b *base) ID() int { return b.id }

func (b *base) Name() string { return b.name }

func (b *base) rename(name string) { b.name = name }

func (b *base) render() string {
	return fmt.Sprintf("ID: %d, Name: %s", b.id, b.name)
}

// Manager is an employee attached to a department.
type Manager struct {
	base
	department string
}

// NewManager creates a manager record.
func NewManager(id int, name, department string) *Manager {
	return &Manager{base: base{id: id, name: name}, department: department}
}

func (m *Manager) Kind() Kind { return KindManager }

// Department returns the manager's department.
func (m *Manager) Department() string { return m.department }

// Render formats the manager as "ID: <id>, Name: <name>, Department: <department>".
func (m *Manager) Render() string {
	return m.base.render() + ", Department: " + m.department
}

func (m *Manager) clone() Employee {
	c := *m
	return &c
}

// Engineer is an employee with a technical specialty.
type Engineer struct {
	base
	specialty string
}

// NewEngineer creates an engineer record.
func NewEngineer(id int, name, specialty string) *Engineer {
	return &Engineer{base: base{id: id, name: name}, specialty: specialty}
}

func (e *Engineer) Kind() Kind { return KindEngineer }

// Specialty returns the engineer's specialty.
func (e *Engineer) Specialty() string { return e.specialty }

// Render formats the engineer as "ID: <id>, Name: <name>, Specialty: <specialty>".
func (e *Engineer) Render() string {
	return e.base.render() + ", Specialty: " + e.specialty
}

func (e *Engineer) clone() Employee {
	c := *e
	return &c
}

// New creates an employee of the given kind. attribute is the department for
// managers and the specialty for engineers. It reports false for an unknown kind.
func New(kind Kind, id int, name, attribute string) (Employee, bool) {
	switch kind {
	case KindManager:
		return NewManager(id, name, attribute), true
	case KindEngineer:
		return NewEngineer(id, name, attribute), true
	default:
		return nil, false
	}
}

// Attribute returns the variant-specific field of e.
func Attribute(e Employee) string {
	switch v := e.(type) {
	case *Manager:
		return v.department
	case *Engineer:
		return v.specialty
	default:
		return ""
	}
}
