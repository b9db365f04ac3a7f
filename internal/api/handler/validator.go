package handler

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

const (
	campusRoleTag  = "campusrole"
	campusRoleText = "{0} must be one of: student, faculty, staff, admin, transport"

	pwdPolicyTag  = "pwdpolicy"
	pwdPolicyText = "{0} must be at least 8 characters, contain no spaces and not be entirely numeric"

	requiredText = "this field is required"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures come back as *domain.ValidationError keyed by JSON field name.
type echoValidator struct {
	v  *validator.Validate
	tr ut.Translator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	eng := en.New()
	uni := ut.New(eng, eng)
	tr, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, tr)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(campusRoleTag, func(fl validator.FieldLevel) bool {
		return domain.ValidRole(fl.Field().String())
	})
	_ = v.RegisterValidation(pwdPolicyTag, passwordShape)

	registerTranslation(v, tr, campusRoleTag, campusRoleText, false)
	registerTranslation(v, tr, pwdPolicyTag, pwdPolicyText, false)
	registerTranslation(v, tr, "required", requiredText, true)
	registerTranslation(v, tr, "required_if", requiredText, true)

	return &echoValidator{v: v, tr: tr}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &domain.ValidationError{Fields: make(map[string]string, len(ve))}
	for _, fe := range ve {
		out.Fields[fe.Field()] = fe.Translate(ev.tr)
	}
	return out
}

func registerTranslation(v *validator.Validate, tr ut.Translator, tag, text string, override bool) {
	_ = v.RegisterTranslation(
		tag, tr,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// passwordShape checks the context-free part of the password policy.
// Similarity to the account's name and email is checked by the auth service.
func passwordShape(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()
	if len([]rune(pwd)) < 8 {
		return false
	}
	numeric := true
	for _, r := range pwd {
		if unicode.IsSpace(r) {
			return false
		}
		if !unicode.IsDigit(r) {
			numeric = false
		}
	}
	return !numeric
}
