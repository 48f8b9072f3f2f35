package viewstate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// ReviewForm is the review submission form, validated exactly as the server does.
type ReviewForm = domain.ReviewInput

// FieldErrors maps a form field (JSON name) to its message.
type FieldErrors map[string]string

func (e FieldErrors) with(field, message string) FieldErrors {
	next := make(FieldErrors, len(e)+1)
	for k, v := range e {
		next[k] = v
	}
	if message == "" {
		delete(next, field)
	} else {
		next[field] = message
	}
	if len(next) == 0 {
		return nil
	}
	return next
}

var reviewFields = []string{"authorName", "rating", "content", "password"}

var (
	validateOnce sync.Once
	formValidate *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		formValidate = validator.New()
		formValidate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			return name
		})
	})
	return formValidate
}

// ValidateReviewForm returns nil when form is acceptable.
func ValidateReviewForm(form ReviewForm) FieldErrors {
	err := formValidator().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		msg, ok := domain.ReviewInputMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " 값이 올바르지 않습니다."
		}
		out[fe.Field()] = msg
	}
	return out
}
