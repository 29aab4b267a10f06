package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// "cell" accepts a "{row}{col}" keyboard token.
	if err := v.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		return entity.IsToken(fl.Field().String())
	}); err != nil {
		panic(fmt.Errorf("failed to register cell validation: %w", err))
	}

	return v
}

// validationDetails renders validator errors as one readable line.
func validationDetails(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	var details strings.Builder
	for _, fieldErr := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}

		switch fieldErr.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fieldErr.Field()))
		case "cell":
			details.WriteString(fmt.Sprintf("%s must be a \"{row}{col}\" cell token", fieldErr.Field()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return details.String()
}
