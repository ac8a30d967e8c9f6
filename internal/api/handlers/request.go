package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/LodgeBookingService/pkg/types"
)

// ErrEmptyBody возвращается, когда у запроса нет тела
var ErrEmptyBody = errors.New("handlers: empty request body")

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON декодирует тело запроса и проверяет теги validate
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	return validate.Struct(v)
}

// ValidationMessage превращает ошибки validator в читаемое сообщение.
// Для остальных ошибок возвращает fallback.
func ValidationMessage(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fallback
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("поле %s обязательно", fe.Namespace()))
		case "min", "gte":
			parts = append(parts, fmt.Sprintf("поле %s должно быть не меньше %s", fe.Namespace(), fe.Param()))
		case "max", "lte":
			parts = append(parts, fmt.Sprintf("поле %s должно быть не больше %s", fe.Namespace(), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("поле %s должно быть одним из: %s", fe.Namespace(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("поле %s не прошло проверку %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// QueryDate читает необязательный параметр даты YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*types.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// QueryInt64 читает необязательный целочисленный параметр
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &v, nil
}

// QueryBool читает необязательный булев параметр, по умолчанию false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
