package hand

import "strings"

// token is one whitespace-separated element of the input. The card is only
// meaningful when both faceOK and suitOK are set.
type token struct {
	text   string
	face   string
	card   Card
	faceOK bool
	suitOK bool
}

func (t token) valid() bool {
	return t.faceOK && t.suitOK
}

// tokenize splits the input on runs of whitespace and parses every token.
// It never fails: domain violations are recorded on the token and reported
// by the validator.
func tokenize(input string) []token {
	fields := strings.Fields(input)
	tokens := make([]token, len(fields))
	for i, field := range fields {
		faceCode, suitCode := splitToken(field)
		face, faceOK := faceCodes[faceCode]
		suit, suitOK := suitCodes[suitCode]
		tokens[i] = token{
			text:   field,
			face:   faceCode,
			card:   Card{face: face, suit: suit},
			faceOK: faceOK,
			suitOK: suitOK,
		}
	}
	return tokens
}
