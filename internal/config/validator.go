package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	lwerrors "github.com/alexisbeaulieu97/lapwatch/pkg/errors"
)

const (
	minFrameInterval = time.Millisecond
	maxFrameInterval = time.Second
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themes = map[string]struct{}{ThemeAuto: {}, ThemeLight: {}, ThemeDark: {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := themes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("frame_interval", func(fl validator.FieldLevel) bool {
			d := time.Duration(fl.Field().Int())
			return d >= minFrameInterval && d <= maxFrameInterval
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration against its schema.
func Validate(cfg *Config) error {
	if cfg == nil {
		return lwerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "frame_interval" {
			msg = fmt.Sprintf("%s must be between %s and %s", field, minFrameInterval, maxFrameInterval)
		}
		return lwerrors.NewValidationError(field, msg, err)
	}

	return lwerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace so errors
// point at the key a user would write, e.g. "log.level".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
