package employee

import "strings"

type Assignment struct {
	Field Field
	Value any
}

// Update is a typed partial write of an employee row.
type Update struct {
	assignments []Assignment
}

// ParseUpdate keeps the whitelisted keys of values, coerced to their column
// types. Keys outside the whitelist are ignored.
func ParseUpdate(values map[string]string) (Update, error) {
	var u Update
	for _, field := range formFields {
		raw, ok := values[field.Key()]
		if !ok {
			continue
		}
		value, err := field.coerce(raw)
		if err != nil {
			return Update{}, err
		}
		u.set(field, value)
	}
	return u, nil
}

func (u Update) Assignments() []Assignment {
	out := make([]Assignment, len(u.assignments))
	copy(out, u.assignments)
	return out
}

func (u Update) Len() int    { return len(u.assignments) }
func (u Update) Empty() bool { return len(u.assignments) == 0 }

func (u Update) Has(field Field) bool {
	_, ok := u.Get(field)
	return ok
}

func (u Update) Get(field Field) (any, bool) {
	for _, a := range u.assignments {
		if a.Field == field {
			return a.Value, true
		}
	}
	return nil, false
}

// WithImage returns a copy of u that also sets the stored image name.
func (u Update) WithImage(name string) Update {
	out := Update{assignments: u.Assignments()}
	out.set(FieldImage, name)
	return out
}

func (u *Update) set(field Field, value any) {
	for i := range u.assignments {
		if u.assignments[i].Field == field {
			u.assignments[i].Value = value
			return
		}
	}
	u.assignments = append(u.assignments, Assignment{Field: field, Value: value})
}

// NewEmployee is a validated create request.
type NewEmployee struct {
	Password string
	Fields   Update
}

func ParseNewEmployee(values map[string]string) (NewEmployee, error) {
	for _, key := range []string{"name", "email", "password"} {
		if strings.TrimSpace(values[key]) == "" {
			return NewEmployee{}, &ValidationError{Field: key, Reason: "is required"}
		}
	}
	fields, err := ParseUpdate(values)
	if err != nil {
		return NewEmployee{}, err
	}
	return NewEmployee{Password: values["password"], Fields: fields}, nil
}
