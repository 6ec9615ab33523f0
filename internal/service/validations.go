package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

const (
	nicknameMinLen = 2
	nicknameMaxLen = 20
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
			return validNickname(fl.Field().String())
		})
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return entity.Category(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseWeekday(fl.Field().String())
			return err == nil
		})
	})
}

func validNickname(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < nicknameMinLen || n > nicknameMaxLen {
		return false
	}
	for i, char := range value {
		// Cannot be started with a digit or underscore
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		// Digits, letters (any script) or underscore
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(fields, ", "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}
