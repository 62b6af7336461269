package configuration

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/desertwitch/handoff/internal/security"
	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance.
//
//nolint:gochecknoglobals
var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("abspath", isAbsPath); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("glob", isGlob); err != nil {
		panic(err)
	}
}

func isAbsPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()

	return filepath.IsAbs(path) && !strings.ContainsRune(path, 0)
}

func isGlob(fl validator.FieldLevel) bool {
	return doublestar.ValidatePattern(fl.Field().String())
}

// Validate validates the configuration using struct tags and custom rules.
// The download and completed base must not be nested in one another.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if security.Within(cfg.DownloadBase, cfg.CompletedBase) || security.Within(cfg.CompletedBase, cfg.DownloadBase) {
		return fmt.Errorf("%w: %s and %s must not be nested in one another",
			ErrInvalidConfig, KeyDownloadBase, KeyCompletedBase)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]

		return fmt.Errorf("%w: %s: validation failed on '%s' tag (value: %v)",
			ErrInvalidConfig, e.Namespace(), e.Tag(), e.Value())
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
