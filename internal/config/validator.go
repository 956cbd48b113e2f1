package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tonal/internal/export"
	"github.com/alexisbeaulieu97/tonal/pkg/color"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	familyNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// family names end up in CSS custom property names
		_ = v.RegisterValidation("family_name", func(fl validator.FieldLevel) bool {
			return familyNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := color.ParseHex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
			_, err := export.ParseFormat(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tonalerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Families))
	for i, family := range cfg.Families {
		if first, exists := seen[family.Name]; exists {
			return tonalerrors.NewValidationError(fieldForFamily(i, "name"), fmt.Sprintf("duplicate family %q (first declared at families[%d])", family.Name, first), nil)
		}
		seen[family.Name] = i

		if err := ValidateFamily(family, i); err != nil {
			return err
		}
	}

	return nil
}

// ValidateFamily checks that a family declares exactly one base color.
func ValidateFamily(family Family, index int) error {
	hasBase := strings.TrimSpace(family.Base) != ""
	hasRGB := family.RGB != nil

	switch {
	case hasBase && hasRGB:
		return tonalerrors.NewValidationError(fieldForFamily(index, "base"), "base and rgb are mutually exclusive", nil)
	case !hasBase && !hasRGB:
		return tonalerrors.NewValidationError(fieldForFamily(index, "base"), "either base or rgb is required", nil)
	case hasRGB:
		if _, err := color.Parse(family.RGB); err != nil {
			return tonalerrors.NewValidationError(fieldForFamily(index, "rgb"), err.Error(), err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into tonal validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tonalerrors.NewValidationError(field, msg, err)
	}

	return tonalerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Families[0].Name" into "families[0].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForFamily(index int, field string) string {
	return fmt.Sprintf("families[%d].%s", index, field)
}
