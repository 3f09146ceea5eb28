package repository

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"task-tracker/internal/model"
	pkgerrors "task-tracker/pkg/errors"
)

// ── Validator ──

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("text", validateText); err != nil {
		panic(err)
	}
	return v
}

// validateText implements the `text=N` tag: a normalized text field holding
// between 1 and N characters.
func validateText(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	n := utf8.RuneCountInString(fl.Field().String())
	return n >= 1 && n <= limit
}

// validateStruct runs the tag rules of entity and records one violation per
// failing field. The returned error is non-nil only when entity cannot be
// validated at all.
func validateStruct(label string, entity any, verr *pkgerrors.ValidationError) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), violationMessage(label, fe))
	}
	return nil
}

func violationMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "text":
		return fmt.Sprintf("%s %s must be between 1 and %s characters.", label, fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fieldTitle(fe.Field()), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required.", fieldTitle(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid.", fieldTitle(fe.Field()))
	}
}

// fieldTitle turns a column name into a message label: department_id → Department ID.
func fieldTitle(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		switch {
		case p == "id":
			parts[i] = "ID"
		case p != "":
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ── Salary ──

var (
	minSalary = decimal.NewFromInt(1)
	maxSalary = decimal.RequireFromString("99999999.99")
)

// checkSalary compares exactly; no float rounding is involved.
func checkSalary(e *model.Employee, verr *pkgerrors.ValidationError) {
	if e.Salary.LessThan(minSalary) || e.Salary.GreaterThan(maxSalary) {
		verr.Add("salary", "Salary must be between 1 and 99999999.99.")
	}
}
