package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

const (
	pwdMinLen = 8
	pwdMaxSim = 0.7
)

// checkPassword applies the password policy:
//   - at least pwdMinLen characters
//   - no whitespace
//   - not entirely numeric
//   - not too similar to the user's name or email local part
func checkPassword(pwd, name, email string) error {
	reject := func(msg string) error {
		return domain.NewValidationError("password", msg)
	}

	if len([]rune(pwd)) < pwdMinLen {
		return reject(fmt.Sprintf("password must contain at least %d characters", pwdMinLen))
	}

	digits := 0
	for _, r := range pwd {
		if unicode.IsSpace(r) {
			return reject("password must not contain whitespace")
		}
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits == len([]rune(pwd)) {
		return reject("password cannot be entirely numeric")
	}

	local, _, _ := strings.Cut(email, "@")
	lower := strings.ToLower(pwd)
	if similarity(lower, strings.ToLower(name)) >= pwdMaxSim || similarity(lower, strings.ToLower(local)) >= pwdMaxSim {
		return reject("password cannot be similar to user attributes")
	}
	return nil
}

func similarity(pwd, attr string) float64 {
	if attr == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(pwd, ""), strings.Split(attr, "")).QuickRatio()
}
