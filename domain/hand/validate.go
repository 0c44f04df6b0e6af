package hand

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation errors. The messages are shown to users verbatim.
var (
	ErrBlank          = errors.New("card input can't be blank")
	ErrTooMany        = errors.New("is more than five cards")
	ErrTooFew         = errors.New("is less than five cards")
	ErrUnknownSuits   = errors.New("contains unknown suits")
	ErrUnknownFaces   = errors.New("contains unknown faces")
	ErrDuplicateCards = errors.New("contains duplicate cards")
	ErrSameFace       = errors.New("can't have five cards of the same type")
)

// ValidationError lists every reason an input is not a well-formed hand.
type ValidationError struct {
	errs []error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.errs
}

// Messages returns the reasons in the order they were found.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return msgs
}

var validate = validator.New()

type presence struct {
	CardInput string `validate:"required"`
}

// check is a single, independent validation rule.
type check struct {
	err    error
	failed func(input string, tokens []token) bool
}

var checks = []check{
	{ErrBlank, blank},
	{ErrTooMany, func(_ string, tokens []token) bool { return len(tokens) > Size }},
	{ErrTooFew, func(_ string, tokens []token) bool { return len(tokens) < Size }},
	{ErrUnknownSuits, func(_ string, tokens []token) bool {
		return anyToken(tokens, func(t token) bool { return !t.suitOK })
	}},
	{ErrUnknownFaces, func(_ string, tokens []token) bool {
		return anyToken(tokens, func(t token) bool { return !t.faceOK })
	}},
	{ErrDuplicateCards, duplicates},
	{ErrSameFace, sameFace},
}

// validateTokens runs every check; it never stops at the first failure.
func validateTokens(input string, tokens []token) []error {
	var errs []error
	for _, c := range checks {
		if c.failed(input, tokens) {
			errs = append(errs, c.err)
		}
	}
	return errs
}

func blank(input string, _ []token) bool {
	err := validate.Struct(presence{CardInput: strings.TrimSpace(input)})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

func anyToken(tokens []token, pred func(token) bool) bool {
	for _, t := range tokens {
		if pred(t) {
			return true
		}
	}
	return false
}

func duplicates(_ string, tokens []token) bool {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t.text]; ok {
			return true
		}
		seen[t.text] = struct{}{}
	}
	return false
}

func sameFace(_ string, tokens []token) bool {
	if len(tokens) != Size {
		return false
	}
	for _, t := range tokens[1:] {
		if t.face != tokens[0].face {
			return false
		}
	}
	return true
}
