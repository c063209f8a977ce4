package employee

import (
	"errors"
	"testing"
)

func TestParseUpdateKeepsWhitelistedSubset(t *testing.T) {
	u, err := ParseUpdate(map[string]string{
		"salary":     "50000",
		"name":       "Asha",
		"password":   "ignored",
		"is_admin":   "true",
		"id":         "99",
		"gradepoint": "8.25",
		"dept_id":    "3",
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if u.Len() != 4 {
		t.Fatalf("expected 4 assignments, got %d", u.Len())
	}
	if v, _ := u.Get(FieldSalary); v != float64(50000) {
		t.Fatalf("expected salary 50000, got %#v", v)
	}
	if v, _ := u.Get(FieldDeptID); v != int64(3) {
		t.Fatalf("expected dept_id 3, got %#v", v)
	}
	if v, _ := u.Get(FieldName); v != "Asha" {
		t.Fatalf("expected name Asha, got %#v", v)
	}
	if u.Has(FieldImage) {
		t.Fatalf("image must only come from an upload")
	}
}

func TestParseUpdateIgnoresImageKey(t *testing.T) {
	u, err := ParseUpdate(map[string]string{"image": "../../etc/passwd"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !u.Empty() {
		t.Fatalf("expected empty update, got %d assignments", u.Len())
	}
}

func TestParseUpdateRejectsBadNumbers(t *testing.T) {
	cases := map[string]string{
		"salary":     "abc",
		"gradepoint": "NaN",
		"age":        "4.5",
		"yop":        "",
		"dept_id":    "Inf",
	}
	for key, raw := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := ParseUpdate(map[string]string{key: raw})
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validation.Field != key {
				t.Fatalf("expected field %s, got %s", key, validation.Field)
			}
		})
	}
	if _, err := ParseUpdate(map[string]string{"salary": "+Inf"}); err == nil {
		t.Fatalf("expected infinite salary to be rejected")
	}
}

func TestParseUpdateAllowsEmptyText(t *testing.T) {
	u, err := ParseUpdate(map[string]string{"address": ""})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if v, ok := u.Get(FieldAddress); !ok || v != "" {
		t.Fatalf("expected empty address assignment")
	}
}

func TestWithImageDoesNotMutate(t *testing.T) {
	u, _ := ParseUpdate(map[string]string{"name": "A"})
	withImage := u.WithImage("image_1.png")
	if u.Has(FieldImage) {
		t.Fatalf("original update was mutated")
	}
	if v, _ := withImage.Get(FieldImage); v != "image_1.png" {
		t.Fatalf("expected image assignment")
	}
}

func TestEveryFieldHasColumn(t *testing.T) {
	for _, field := range append(formFields, FieldImage) {
		if field.Column() == "" || field.Key() == "" {
			t.Fatalf("field %d has no column", int(field))
		}
	}
}

func TestParseNewEmployeeRequiresCredentials(t *testing.T) {
	_, err := ParseNewEmployee(map[string]string{"name": "A", "email": "a@example.local"})
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}

	req, err := ParseNewEmployee(map[string]string{"name": "A", "email": "a@example.local", "password": "pw", "age": "30"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if req.Password != "pw" || req.Fields.Len() != 3 {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestParseUpdateRejectsOutOfRangeNumbers(t *testing.T) {
	cases := map[string]string{
		"age":        "99999999999",
		"yop":        "-3000000000",
		"dept_id":    "99999999999999999999",
		"salary":     "10000000000",
		"gradepoint": "999.999",
	}
	for key, raw := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := ParseUpdate(map[string]string{key: raw})
			var validation *ValidationError
			if !errors.As(err, &validation) || validation.Field != key || validation.Reason != "out of range" {
				t.Fatalf("expected out of range for %s, got %v", key, err)
			}
		})
	}

	u, err := ParseUpdate(map[string]string{"age": "2147483647", "salary": "9999999999.99", "gradepoint": "999.99"})
	if err != nil {
		t.Fatalf("expected column maximums to be accepted, got %v", err)
	}
	if u.Len() != 3 {
		t.Fatalf("expected 3 assignments, got %d", u.Len())
	}
}

func TestParseUpdateRejectsBlankRequiredText(t *testing.T) {
	for _, key := range []string{"name", "email"} {
		_, err := ParseUpdate(map[string]string{key: " "})
		var validation *ValidationError
		if !errors.As(err, &validation) || validation.Field != key {
			t.Fatalf("expected %s validation error, got %v", key, err)
		}
	}
}

func TestIsFormKey(t *testing.T) {
	if !IsFormKey("salary") || !IsFormKey("edu_branch") {
		t.Fatalf("expected whitelisted keys to be recognised")
	}
	for _, key := range []string{"image", "password", "id", "unexpected_field"} {
		if IsFormKey(key) {
			t.Fatalf("%s must not be a form key", key)
		}
	}
}
