// Package validation validates user-supplied profile and ticket input before
// any store mutation. Struct-level validation uses go-playground/validator;
// the free-form formats (group codes, full names) use explicit checks.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"unibot/internal/shared/errors"
)

const (
	MinFullNameLen    = 5
	MaxFullNameLen    = 200
	MinSubjectLen     = 5
	MaxSubjectLen     = 200
	MinDescriptionLen = 10
	MaxDescriptionLen = 5000
	MinStudentIDLen   = 4
	MaxStudentIDLen   = 20
	MinCourse         = 1
	MaxCourse         = 6
)

var (
	fullNamePattern     = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z\s\-\.]+$`)
	numericGroupPattern = regexp.MustCompile(`^\d{3}-\d{3}$`)
	letterGroupPattern  = regexp.MustCompile(`^[А-ЯA-Z]{2,5}\d{2}-\d{2,3}$`)
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs go-playground/validator tag validation and converts the first
// failure into a typed validation error.
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if ok := errorsAs(err, &verrs); ok && len(verrs) > 0 {
			f := verrs[0]
			return errors.NewValidationError("invalid field "+f.Field(), f.Tag())
		}
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	if v, ok := err.(validator.ValidationErrors); ok {
		*target = v
		return true
	}
	return false
}

// FullName validates a person's full name: length bounds, letters only,
// at least two words.
func FullName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < MinFullNameLen {
		return errors.NewValidationError("full name is too short")
	}
	if len([]rune(name)) > MaxFullNameLen {
		return errors.NewValidationError("full name is too long")
	}
	if !fullNamePattern.MatchString(name) {
		return errors.NewValidationError("full name may contain only letters, spaces and hyphens")
	}
	if len(strings.Fields(name)) < 2 {
		return errors.NewValidationError("full name must contain at least first and last name")
	}
	return nil
}

// GroupCode validates a study group code. Accepted formats: "201-361",
// "ИБ20-01".
func GroupCode(group string) error {
	group = strings.ToUpper(strings.TrimSpace(group))
	if numericGroupPattern.MatchString(group) {
		return nil
	}
	if letterGroupPattern.MatchString(group) {
		return nil
	}
	return errors.NewValidationError("invalid group code format", "examples: 201-361, ИБ20-01")
}

// Course validates a course year (1-6).
func Course(course int) error {
	if course < MinCourse || course > MaxCourse {
		return errors.NewValidationError("course must be between 1 and 6")
	}
	return nil
}

// StudentID validates a student card number: length bounds, must contain a digit.
func StudentID(studentID string) error {
	studentID = strings.TrimSpace(studentID)
	if len(studentID) < MinStudentIDLen {
		return errors.NewValidationError("student ID is too short")
	}
	if len(studentID) > MaxStudentIDLen {
		return errors.NewValidationError("student ID is too long")
	}
	for _, r := range studentID {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return errors.NewValidationError("student ID must contain digits")
}

// TicketSubject validates a ticket subject (5-200 runes).
func TicketSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if len([]rune(subject)) < MinSubjectLen {
		return errors.NewValidationError("subject is too short")
	}
	if len([]rune(subject)) > MaxSubjectLen {
		return errors.NewValidationError("subject is too long")
	}
	return nil
}

// TicketDescription validates a ticket description (10-5000 runes).
func TicketDescription(description string) error {
	description = strings.TrimSpace(description)
	if len([]rune(description)) < MinDescriptionLen {
		return errors.NewValidationError("description is too short")
	}
	if len([]rune(description)) > MaxDescriptionLen {
		return errors.NewValidationError("description is too long")
	}
	return nil
}
