// Package forms holds the submitted-form types for the catalog's create and
// update views, their validation rules, and the selection reconciliation used
// to re-display multi-select fields.
//
// Validation never aborts on the first failure: every rule for every field
// runs, and the result is an ordered list of field violations. An empty list
// means the submission is valid. Invalid input is an expected outcome, not an
// error condition.
package forms

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the submitted field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is a single validation violation, scoped to one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthorForm carries a submitted author create/update form.
type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required,max=100,alphanum"`
	FamilyName  string `form:"family_name" validate:"required,max=100,alphanum"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `form:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

var authorMessages = map[string]string{
	"first_name.required":    "First name required",
	"first_name.max":         "First name too long",
	"first_name.alphanum":    "First name has non-alphanumeric characters",
	"family_name.required":   "Family name required",
	"family_name.max":        "Family name too long",
	"family_name.alphanum":   "Family name has non-alphanumeric characters",
	"date_of_birth.datetime": "Invalid date of birth",
	"date_of_death.datetime": "Invalid date of death",
}

// Validate trims the submitted values and returns the ordered violation
// list, empty when the form is valid.
func (f *AuthorForm) Validate() []FieldError {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.FamilyName = strings.TrimSpace(f.FamilyName)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.DateOfDeath = strings.TrimSpace(f.DateOfDeath)
	return run(f, authorMessages)
}

// BirthDate returns the parsed date of birth, nil when absent.
// Only meaningful after a successful Validate.
func (f AuthorForm) BirthDate() *time.Time {
	return parseDate(f.DateOfBirth)
}

// DeathDate returns the parsed date of death, nil when absent.
func (f AuthorForm) DeathDate() *time.Time {
	return parseDate(f.DateOfDeath)
}

// BookForm carries a submitted book create/update form. An omitted genre
// multi-select binds as nil, which downstream treats as an empty selection.
type BookForm struct {
	Title    string `form:"title" validate:"required"`
	AuthorID uint   `form:"author" validate:"required"`
	Summary  string `form:"summary" validate:"required"`
	ISBN     string `form:"isbn" validate:"required"`
	Genres   []uint `form:"genre"`
}

var bookMessages = map[string]string{
	"title.required":   "Title is required",
	"author.required":  "Author is required",
	"summary.required": "Summary is required",
	"isbn.required":    "ISBN is required",
}

func (f *BookForm) Validate() []FieldError {
	f.Title = strings.TrimSpace(f.Title)
	f.Summary = strings.TrimSpace(f.Summary)
	f.ISBN = strings.TrimSpace(f.ISBN)
	return run(f, bookMessages)
}

// GenreIDs returns the selected genre ids, never nil.
func (f BookForm) GenreIDs() []uint {
	if f.Genres == nil {
		return []uint{}
	}
	return f.Genres
}

// BookInstanceForm carries a submitted copy create/update form.
type BookInstanceForm struct {
	BookID  uint   `form:"book" validate:"required"`
	Imprint string `form:"imprint" validate:"required"`
	Status  string `form:"status" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `form:"due_back" validate:"omitempty,datetime=2006-01-02"`
}

var instanceMessages = map[string]string{
	"book.required":     "Book is required",
	"imprint.required":  "Imprint required",
	"status.required":   "Status is required",
	"status.oneof":      "Unknown status",
	"due_back.datetime": "Proper date required",
}

func (f *BookInstanceForm) Validate() []FieldError {
	f.Imprint = strings.TrimSpace(f.Imprint)
	f.Status = strings.TrimSpace(f.Status)
	f.DueBack = strings.TrimSpace(f.DueBack)
	return run(f, instanceMessages)
}

// DueDate returns the parsed due-back date, nil when absent.
func (f BookInstanceForm) DueDate() *time.Time {
	return parseDate(f.DueBack)
}

// GenreForm carries a submitted genre create form.
type GenreForm struct {
	Name string `form:"name" validate:"required,min=3,max=100"`
}

var genreMessages = map[string]string{
	"name.required": "Genre name required",
	"name.min":      "Genre name must contain at least 3 characters",
	"name.max":      "Genre name too long",
}

func (f *GenreForm) Validate() []FieldError {
	f.Name = strings.TrimSpace(f.Name)
	return run(f, genreMessages)
}

// run validates the whole form and translates the violations, preserving
// field declaration order.
func run(form any, messages map[string]string) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		message, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			message = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: message})
	}
	return out
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}
