package kit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// DecodeJSON reads the request body into v: bounded size, unknown fields
// rejected, exactly one JSON value.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}

// DecodeValid decodes like DecodeJSON and then checks the struct's
// validate tags.
func DecodeValid(w http.ResponseWriter, r *http.Request, v any) error {
	if err := DecodeJSON(w, r, v); err != nil {
		return err
	}
	return validate.Struct(v)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteDecodeError maps a DecodeValid failure to a 400 response, with
// per-field details when the failure came from validation.
func WriteDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		WriteError(w, r, http.StatusBadRequest, "validation failed", map[string]any{"fields": fields})
		return
	}
	WriteError(w, r, http.StatusBadRequest, "bad json", nil)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return "value is too short"
	case "gt":
		return "value must be greater than " + fe.Param()
	case "gte":
		return "value must be at least " + fe.Param()
	case "oneof":
		return "value must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}
