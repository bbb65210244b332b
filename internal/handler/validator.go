package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/resolution"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("predicted_winner", func(fl validator.FieldLevel) bool {
		return domain.PredictedWinner(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("fight_winner", func(fl validator.FieldLevel) bool {
		return domain.FightWinner(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("win_method", func(fl validator.FieldLevel) bool {
		return domain.WinMethod(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("card_type", func(fl validator.FieldLevel) bool {
		return domain.CardType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return domain.ValidClock(fl.Field().String())
	})
	_ = v.RegisterValidation("finish_time", func(fl validator.FieldLevel) bool {
		return resolution.ValidFinishTime(fl.Field().String())
	})

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// enumChoices lists the accepted values for the custom enum tags
var enumChoices = map[string]string{
	"predicted_winner": "fighter1, fighter2",
	"fight_winner":     "fighter1, fighter2, draw, no_contest",
	"win_method":       "ko_tko, submission, decision, dq",
	"card_type":        "main, prelim",
}

// FormatValidationError formats validation errors into a field -> message map.
// Nested fields keep their path, e.g. "round_scores[1].fighter1_score".
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["body"] = ErrMsgInvalidRequest
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		isList := e.Kind() == reflect.Slice
		switch e.Tag() {
		case "required":
			errs[field] = FieldMsgRequired
		case "min":
			if isList {
				errs[field] = fmt.Sprintf(FieldMsgMinItems, e.Param())
			} else {
				errs[field] = fmt.Sprintf(FieldMsgMin, e.Param())
			}
		case "max":
			if isList {
				errs[field] = fmt.Sprintf(FieldMsgMaxItems, e.Param())
			} else {
				errs[field] = fmt.Sprintf(FieldMsgMax, e.Param())
			}
		case "predicted_winner", "fight_winner", "win_method", "card_type":
			errs[field] = fmt.Sprintf(FieldMsgOneOf, enumChoices[e.Tag()])
		case "clock":
			errs[field] = FieldMsgClock
		case "finish_time":
			errs[field] = FieldMsgFinish
		default:
			errs[field] = FieldMsgInvalid
		}
	}

	return errs
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(e validator.FieldError) string {
	if _, rest, ok := strings.Cut(e.Namespace(), "."); ok {
		return rest
	}
	return e.Field()
}
