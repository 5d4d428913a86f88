package api

import "regexp"

var (
	emailRegex          = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
	passwordUpperRegex  = regexp.MustCompile(`\p{Lu}`)
	passwordLowerRegex  = regexp.MustCompile(`\p{Ll}`)
	passwordDigitRegex  = regexp.MustCompile(`\d`)
	recoveryCodeRegex   = regexp.MustCompile(`^ASC-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
)

func validatePassword(password string) string {
	if !passwordLengthRegex.MatchString(password) {
		return "password must be at least 8 characters"
	}
	if !passwordUpperRegex.MatchString(password) || !passwordLowerRegex.MatchString(password) || !passwordDigitRegex.MatchString(password) {
		return "password must contain upper and lower case letters and a digit"
	}
	return ""
}

func validateRegistration(email string, password string, confirm string) string {
	if !emailRegex.MatchString(email) {
		return "invalid email"
	}
	if message := validatePassword(password); message != "" {
		return message
	}
	if password != confirm {
		return "passwords do not match"
	}
	return ""
}
