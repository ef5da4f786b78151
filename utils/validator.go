package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("level", validateLevel)
	v.RegisterValidation("errortype", validateErrorType)
}

func validateLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "beginner", "intermediate", "advanced":
		return true
	}
	return false
}

func validateErrorType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "repeated", "previous":
		return true
	}
	return false
}

func TranslateValidationError(err error) string {
	lang := strings.ToUpper(strings.TrimSpace(os.Getenv("APP_API_RETURN_LANG")))
	if lang == "" {
		lang = "AR"
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch lang {
			case "AR":
				switch fe.Tag() {
				case "required":
					messages = append(messages, "الحقل "+field+" مطلوب")
				case "min":
					messages = append(messages, "الحقل "+field+" يجب ألا يقل عن "+fe.Param())
				case "max":
					messages = append(messages, "الحقل "+field+" يجب ألا يزيد عن "+fe.Param())
				case "gt":
					messages = append(messages, "الحقل "+field+" يجب أن يكون أكبر من "+fe.Param())
				case "email":
					messages = append(messages, "صيغة البريد الإلكتروني غير صحيحة")
				case "level":
					messages = append(messages, "المستوى يجب أن يكون beginner أو intermediate أو advanced")
				case "errortype":
					messages = append(messages, "نوع الخطأ يجب أن يكون repeated أو previous")
				case "oneof":
					messages = append(messages, "الحقل "+field+" يجب أن يكون أحد: "+fe.Param())
				default:
					messages = append(messages, "الحقل "+field+" غير صالح")
				}

			default: // English
				switch fe.Tag() {
				case "required":
					messages = append(messages, field+" is required")
				case "min":
					messages = append(messages, field+" must be at least "+fe.Param())
				case "max":
					messages = append(messages, field+" must be at most "+fe.Param())
				case "gt":
					messages = append(messages, field+" must be greater than "+fe.Param())
				case "email":
					messages = append(messages, "invalid email format")
				case "level":
					messages = append(messages, field+" must be one of beginner, intermediate, advanced")
				case "errortype":
					messages = append(messages, field+" must be repeated or previous")
				case "oneof":
					messages = append(messages, field+" must be one of: "+fe.Param())
				default:
					messages = append(messages, field+" is invalid")
				}
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
