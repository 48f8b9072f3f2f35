package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// エラーメッセージのキーに JSON 名を使う。
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Messages maps "field.tag" (JSON field name plus validator tag) to a user facing message.
type Messages map[string]string

// Validate runs struct tag validation and reports the first failure as VALIDATION_FAILED.
func Validate(v any, messages Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ValidationError("요청 형식이 올바르지 않습니다.")
	}
	first := verrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return domain.ValidationError(msg)
	}
	return domain.ValidationError(fmt.Sprintf("%s 값이 올바르지 않습니다.", first.Field()))
}

// ValidateVar validates a single value against a tag such as "uuid".
func ValidateVar(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// DecodeJSON reads a size-limited JSON body into dst, rejecting unknown fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBody)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.ValidationError("요청 본문이 너무 큽니다.")
		}
		return domain.ValidationError("요청 본문 형식이 올바르지 않습니다.")
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.ValidationError("요청 본문 형식이 올바르지 않습니다.")
	}
	return nil
}
