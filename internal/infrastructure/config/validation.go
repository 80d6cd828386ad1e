package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bnema/pagestate/internal/infrastructure/dom"
)

var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("css_selector", func(fl validator.FieldLevel) bool {
		return dom.ValidSelector(fl.Field().String())
	})
	_ = v.RegisterValidation("profile_name", func(fl validator.FieldLevel) bool {
		return profileNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// validateConfig checks every tagged field and reports all failures at once.
func validateConfig(config *Config) error {
	err := newValidator().Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

func describe(fe validator.FieldError) string {
	// Namespace is "Config.dom.item_selector"; drop the root type name.
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "css_selector":
		return fmt.Sprintf("%s is not a valid CSS selector: %q", field, fe.Value())
	case "profile_name":
		return fmt.Sprintf("%s may only contain letters, digits, '.', '_' and '-': %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// normalizeConfig trims and lowercases values the validator compares literally.
func normalizeConfig(config *Config) {
	config.Profile = strings.TrimSpace(config.Profile)
	config.Database.Path = strings.TrimSpace(config.Database.Path)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Preferences.DefaultLanguage = strings.TrimSpace(config.Preferences.DefaultLanguage)
}
