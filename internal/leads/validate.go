package leads

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is a syntactic check only; no MX or DNS lookups happen.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactForm is the trimmed form as the validator sees it. Tags run in
// order and validator stops at the first failing tag of each field.
type contactForm struct {
	Name     string `form:"name" validate:"min=2"`
	Email    string `form:"email" validate:"leademail,min=5"`
	Phone    string `form:"phone"`
	Service  string `form:"service"`
	Timeline string `form:"timeline"`
	Message  string `form:"message" validate:"min=10"`
}

var fieldMessages = map[string]map[string]string{
	FieldName: {
		"min": "Please enter your name.",
	},
	FieldEmail: {
		"leademail": "Please enter a valid email address.",
		"min":       "Your email looks too short.",
	},
	FieldMessage: {
		"min": "Add a few more details about your project.",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	})
	if err := v.RegisterValidation("leademail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate trims every field of raw and checks it against the contact form
// rules. On success it returns the normalized Lead and nil; otherwise it
// returns the zero Lead and one message per failing field.
func Validate(raw RawSubmission) (Lead, FieldErrors) {
	form := contactForm{
		Name:     strings.TrimSpace(raw[FieldName]),
		Email:    strings.TrimSpace(raw[FieldEmail]),
		Phone:    strings.TrimSpace(raw[FieldPhone]),
		Service:  strings.TrimSpace(raw[FieldService]),
		Timeline: strings.TrimSpace(raw[FieldTimeline]),
		Message:  strings.TrimSpace(raw[FieldMessage]),
	}

	if err := validate.Struct(form); err != nil {
		return Lead{}, fieldErrorsFrom(err)
	}

	return Lead{
		name:      form.Name,
		email:     form.Email,
		phone:     form.Phone,
		service:   form.Service,
		timeline:  form.Timeline,
		message:   form.Message,
		validated: true,
	}, nil
}

func fieldErrorsFrom(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if the struct itself is unusable; blame the whole form.
		return FieldErrors{"form": MessageInvalidFields}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag())
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return "Invalid value"
}
