package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/raddit-dev/raddit/internal/domain"
	"github.com/raddit-dev/raddit/internal/errors"
	"github.com/raddit-dev/raddit/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	if errors.Is[*errors.ValidationError](err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err == errors.NotFound {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Warn("decoding body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Warn("validating body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

type ThreadValidator struct{}

func (e *ThreadValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return &errors.ValidationError{Message: "Title cannot be empty"}
	}
	if utf8.RuneCountInString(title) > 300 {
		return &errors.ValidationError{Message: "Title is too long"}
	}
	return nil
}

func (e *ThreadValidator) Description(description string) error {
	if strings.TrimSpace(description) == "" {
		return &errors.ValidationError{Message: "Description cannot be empty"}
	}
	return nil
}

func (e *ThreadValidator) Category(category domain.ThreadCategory) error {
	if !category.Valid() {
		return &errors.ValidationError{Message: "Unknown category"}
	}
	return nil
}

type CommentValidator struct{}

func (e *CommentValidator) Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return &errors.ValidationError{Message: "Comment cannot be empty"}
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return &errors.ValidationError{Message: "Comment is too long"}
	}
	return nil
}
