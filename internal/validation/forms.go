// Package validation contains pure form validators. Each validator checks a
// submitted form and returns a field→message error map plus a validity flag;
// none of them touch the store.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Errors maps a form field name to its validation message.
type Errors map[string]string

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isEmpty reports whether a field is missing or blank after trimming.
func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// Register validates a registration form.
func Register(name, email, password, password2 string) (Errors, bool) {
	errs := Errors{}

	if !lengthBetween(name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}
	if isEmpty(name) {
		errs["name"] = "Name field is required"
	}

	if !emailRegex.MatchString(email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(email) {
		errs["email"] = "Email field is required"
	}

	if !lengthBetween(password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}
	if isEmpty(password) {
		errs["password"] = "Password field is required"
	}

	if password != password2 {
		errs["password2"] = "Passwords must match"
	}
	if isEmpty(password2) {
		errs["password2"] = "Confirm Password field is required"
	}

	return errs, len(errs) == 0
}

// Login validates a login form.
func Login(email, password string) (Errors, bool) {
	errs := Errors{}

	if !emailRegex.MatchString(email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(email) {
		errs["email"] = "Email field is required"
	}

	if isEmpty(password) {
		errs["password"] = "Password field is required"
	}

	return errs, len(errs) == 0
}

// Post validates a post or comment body. The length check runs first and the
// required check second, so on an empty body the required message overwrites
// the length message. Both checks have always fired in that order and
// consumers key off the final message.
func Post(text string) (Errors, bool) {
	errs := Errors{}

	if !lengthBetween(text, 10, 300) {
		errs["text"] = "Post must be between 10 and 300 characters"
	}
	if isEmpty(text) {
		errs["text"] = "Text field is required"
	}

	return errs, len(errs) == 0
}

// Profile validates the create-or-update profile form. Skills arrive as a
// comma-separated string and are only checked for presence here.
func Profile(handle, status, skills string) (Errors, bool) {
	errs := Errors{}

	if !lengthBetween(handle, 2, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if isEmpty(handle) {
		errs["handle"] = "Profile handle is required"
	}

	if isEmpty(status) {
		errs["status"] = "Status field is required"
	}

	if isEmpty(skills) {
		errs["skills"] = "Skills field is required"
	}

	return errs, len(errs) == 0
}

// Experience validates a work history entry.
func Experience(title, company, from string) (Errors, bool) {
	errs := Errors{}

	if isEmpty(title) {
		errs["title"] = "Job title is required"
	}
	if isEmpty(company) {
		errs["company"] = "Company field is required"
	}
	if isEmpty(from) {
		errs["from"] = "From date is required"
	}

	return errs, len(errs) == 0
}

// Education validates a schooling entry.
func Education(school, degree, fieldOfStudy, from string) (Errors, bool) {
	errs := Errors{}

	if isEmpty(school) {
		errs["school"] = "School field is required"
	}
	if isEmpty(degree) {
		errs["degree"] = "Degree field is required"
	}
	if isEmpty(fieldOfStudy) {
		errs["fieldofstudy"] = "Field of study is required"
	}
	if isEmpty(from) {
		errs["from"] = "From date is required"
	}

	return errs, len(errs) == 0
}
