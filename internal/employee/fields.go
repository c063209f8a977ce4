package employee

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field enumerates the employee columns a client is allowed to write.
type Field int

const (
	FieldName Field = iota + 1
	FieldEmail
	FieldSalary
	FieldAddress
	FieldDeptID
	FieldAge
	FieldGender
	FieldAccountNo
	FieldBankName
	FieldBranch
	FieldUniversity
	FieldYOP
	FieldFatherName
	FieldMotherName
	FieldDesignation
	FieldExperience
	FieldEmergencyContact
	FieldAlternateContact
	FieldAadharNumber
	FieldPANNumber
	FieldDegree
	FieldEduBranch
	FieldGradepoint
	FieldImage
)

type kind int

const (
	kindText kind = iota
	kindInt
	kindDecimal
)

type fieldSpec struct {
	key      string
	column   string
	kind     kind
	// bits bounds kindInt columns; limit bounds the rounded magnitude of
	// kindDecimal columns (NUMERIC precision minus scale).
	bits     int
	limit    float64
	required bool
}

var fieldSpecs = map[Field]fieldSpec{
	FieldName:             {key: "name", column: "name", kind: kindText, required: true},
	FieldEmail:            {key: "email", column: "email", kind: kindText, required: true},
	FieldSalary:           {key: "salary", column: "salary", kind: kindDecimal, limit: 1e10},
	FieldAddress:          {key: "address", column: "address", kind: kindText},
	FieldDeptID:           {key: "dept_id", column: "dept_id", kind: kindInt, bits: 64},
	FieldAge:              {key: "age", column: "age", kind: kindInt, bits: 32},
	FieldGender:           {key: "gender", column: "gender", kind: kindText},
	FieldAccountNo:        {key: "account_no", column: "account_no", kind: kindText},
	FieldBankName:         {key: "bank_name", column: "bank_name", kind: kindText},
	FieldBranch:           {key: "branch", column: "branch", kind: kindText},
	FieldUniversity:       {key: "university", column: "university", kind: kindText},
	FieldYOP:              {key: "yop", column: "yop", kind: kindInt, bits: 32},
	FieldFatherName:       {key: "father_name", column: "father_name", kind: kindText},
	FieldMotherName:       {key: "mother_name", column: "mother_name", kind: kindText},
	FieldDesignation:      {key: "designation", column: "designation", kind: kindText},
	FieldExperience:       {key: "experience", column: "experience", kind: kindText},
	FieldEmergencyContact: {key: "emergency_contact", column: "emergency_contact", kind: kindText},
	FieldAlternateContact: {key: "alternate_contact", column: "alternate_contact", kind: kindText},
	FieldAadharNumber:     {key: "aadhar_number", column: "aadhar_number", kind: kindText},
	FieldPANNumber:        {key: "pan_number", column: "pan_number", kind: kindText},
	FieldDegree:           {key: "degree", column: "degree", kind: kindText},
	FieldEduBranch:        {key: "edu_branch", column: "edu_branch", kind: kindText},
	FieldGradepoint:       {key: "gradepoint", column: "gradepoint", kind: kindDecimal, limit: 1e3},
	FieldImage:            {key: "image", column: "image", kind: kindText},
}

// formFields is the order request values are read in. FieldImage is absent:
// it is only ever set from an uploaded file.
var formFields = []Field{
	FieldName, FieldEmail, FieldSalary, FieldAddress, FieldDeptID, FieldAge,
	FieldGender, FieldAccountNo, FieldBankName, FieldBranch, FieldUniversity,
	FieldYOP, FieldFatherName, FieldMotherName, FieldDesignation, FieldExperience,
	FieldEmergencyContact, FieldAlternateContact, FieldAadharNumber, FieldPANNumber,
	FieldDegree, FieldEduBranch, FieldGradepoint,
}

// IsFormKey reports whether key names a field a request may write.
func IsFormKey(key string) bool {
	for _, field := range formFields {
		if field.Key() == key {
			return true
		}
	}
	return false
}

func (f Field) Key() string    { return fieldSpecs[f].key }
func (f Field) Column() string { return fieldSpecs[f].column }

func (f Field) String() string {
	if spec, ok := fieldSpecs[f]; ok {
		return spec.key
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

func (f Field) coerce(raw string) (any, error) {
	spec := fieldSpecs[f]
	switch spec.kind {
	case kindInt:
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, spec.bits)
		if errors.Is(err, strconv.ErrRange) {
			return nil, &ValidationError{Field: spec.key, Reason: "out of range"}
		}
		if err != nil {
			return nil, &ValidationError{Field: spec.key, Reason: "must be a whole number"}
		}
		return value, nil
	case kindDecimal:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, &ValidationError{Field: spec.key, Reason: "must be a number"}
		}
		if spec.limit > 0 && math.Abs(math.Round(value*100)/100) >= spec.limit {
			return nil, &ValidationError{Field: spec.key, Reason: "out of range"}
		}
		return value, nil
	default:
		if spec.required && strings.TrimSpace(raw) == "" {
			return nil, &ValidationError{Field: spec.key, Reason: "must not be empty"}
		}
		return raw, nil
	}
}
