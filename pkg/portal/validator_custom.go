package portal

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

var CronParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

var hexColourPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	if err := v.RegisterValidation("cron", validateCronExpression); err != nil {
		panic("portal: failed to register cron validation: " + err.Error())
	}

	if err := v.RegisterValidation("hexcolour", validateHexColour); err != nil {
		panic("portal: failed to register hexcolour validation: " + err.Error())
	}

	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		panic("portal: failed to register slug validation: " + err.Error())
	}
}

func validateCronExpression(fl validator.FieldLevel) bool {
	expr := strings.TrimSpace(fl.Field().String())
	if expr == "" {
		return false
	}

	_, err := CronParser.Parse(expr)

	return err == nil
}

func validateHexColour(fl validator.FieldLevel) bool {
	return hexColourPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateSlug leaves blank values to the required rule.
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return value == "" || slugPattern.MatchString(value)
}
