package auth

import (
	"encoding/json"
	"fmt"
)

// Role is resolved once at login and carried in the session token.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleHR
	RoleEmployee
)

var roleNames = map[Role]string{
	RoleAdmin:    "admin",
	RoleHR:       "HR",
	RoleEmployee: "employee",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func ParseRole(value string) (Role, error) {
	for role, name := range roleNames {
		if name == value {
			return role, nil
		}
	}
	return RoleUnknown, fmt.Errorf("auth: unknown role %q", value)
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("auth: cannot encode role %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseRole(value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
