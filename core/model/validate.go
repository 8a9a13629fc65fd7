package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTasks checks that tasks is non-empty, that ids are unique and that
// every field is within range.
func ValidateTasks(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: task list is empty", ErrConfiguration)
	}
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if err := validate.Struct(t); err != nil {
			return fieldError(fmt.Sprintf("task %d", t.ID), err)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task id %d", ErrConfiguration, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// ValidateEmployees checks that employees is non-empty, that ids are unique
// and that every field is within range.
func ValidateEmployees(employees []Employee) error {
	if len(employees) == 0 {
		return fmt.Errorf("%w: employee list is empty", ErrConfiguration)
	}
	seen := make(map[int]struct{}, len(employees))
	for _, e := range employees {
		if err := validate.Struct(e); err != nil {
			return fieldError(fmt.Sprintf("employee %d", e.ID), err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate employee id %d", ErrConfiguration, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

func fieldError(subject string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s: field %s fails %s=%s (got %v)",
			ErrConfiguration, subject, fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%w: %s: %v", ErrConfiguration, subject, err)
}
