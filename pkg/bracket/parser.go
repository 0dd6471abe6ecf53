/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Bracket string tokenizer for the Concept wire protocol. Parses strings
with square bracket [] delimited tokens, including arbitrarily nested bracket strings
([A][[B1][B2]]), operating one nesting depth at a time.
*/

package bracket

import (
	"strings"

	"github.com/kleascm/concept-client/pkg/protocol"
)

// StartTag and EndTag are the token delimiters of the wire format.
const (
	StartTag = "["
	EndTag   = "]"
)

// Parser walks the top-level tokens of a bracket string.
// Typically you will just want to call Parse(s).
type Parser struct {
	parseString string
	position    int
}

// NewParser initializes a Parser at the start of the given string.
func NewParser(parseString string) *Parser {
	return &Parser{parseString: parseString}
}

// HasNext determines if there is another token to be parsed.
// It returns a ParseError if the parse position is not sitting at a start tag,
// or if the token that starts there has no matching end tag.
func (p *Parser) HasNext() (bool, error) {
	if len(p.parseString)-p.position == 0 {
		return false, nil
	}

	if strings.Index(p.parseString[p.position:], StartTag) != 0 {
		return false, &protocol.ParseError{Message: "unexpected state in bracket string (not at a start tag)"}
	}

	if MatchingEndTagIndex(p.parseString, p.position) == -1 {
		return false, &protocol.ParseError{Message: "unexpected state in bracket string (missing end tag)"}
	}

	return true, nil
}

// Next returns the next token of the parse string and advances past it.
// HasNext should have returned true before calling this method.
// Note that the returned token can itself be a nested bracket string.
func (p *Parser) Next() (string, error) {
	startTagIndex := p.position

	endTagIndex := MatchingEndTagIndex(p.parseString, startTagIndex)
	if endTagIndex == -1 {
		return "", &protocol.ParseError{Message: "unexpected state in bracket string (missing end tag)"}
	}

	token := p.parseString[startTagIndex+len(StartTag) : endTagIndex]
	p.position = endTagIndex + len(EndTag)

	return token, nil
}

// Skip advances past the next token without extracting it.
// It reports whether a token was successfully skipped.
func (p *Parser) Skip() bool {
	endTagIndex := MatchingEndTagIndex(p.parseString, p.position)
	if endTagIndex <= -1 {
		return false
	}

	p.position = endTagIndex + len(EndTag)
	return true
}

// CountRemaining determines the number of tokens remaining without consuming them.
func (p *Parser) CountRemaining() (int, error) {
	savedPosition := p.position

	count := 0
	for {
		ok, err := p.HasNext()
		if err != nil {
			p.position = savedPosition
			return 0, err
		}
		if !ok {
			break
		}
		count++
		p.Skip()
	}

	p.position = savedPosition
	return count, nil
}

// IsValid determines if the given string is a valid bracket parse string:
// empty, or a sequence of tokens where every token starts exactly where the
// previous token's end tag ended, with no gaps or trailing characters.
func IsValid(parseString string) bool {
	if len(parseString) == 0 {
		return true
	}

	if strings.Index(parseString, StartTag) != 0 {
		return false
	}

	startTagIndex := 0
	for {
		endTagIndex := MatchingEndTagIndex(parseString, startTagIndex)
		if endTagIndex == -1 {
			return false
		}

		expectedStartTagIndex := endTagIndex + len(EndTag)

		if expectedStartTagIndex >= len(parseString) {
			return true
		}

		next := strings.Index(parseString[expectedStartTagIndex:], StartTag)
		if next != 0 {
			return false
		}
		startTagIndex = expectedStartTagIndex
	}
}

// MatchingEndTagIndex finds the index of the end tag that matches the start tag
// at startTagIndex, or -1 if there is no match.
//
// The scan starts just after the start tag with a nesting level of one. Each
// start tag encountered increments the nesting level, each end tag decrements
// it, and the end tag that brings the level to zero is the match. A missing
// start tag is treated as one at infinity so that only end tags drive the scan
// in that branch.
func MatchingEndTagIndex(parseString string, startTagIndex int) int {
	currentIndex := startTagIndex + len(StartTag)
	nestingLevel := 1

	for {
		startTagIndex := indexFrom(parseString, StartTag, currentIndex)
		endTagIndex := indexFrom(parseString, EndTag, currentIndex)

		// without an end tag there can be no match
		if endTagIndex == -1 {
			return -1
		}

		if startTagIndex == -1 {
			startTagIndex = int(^uint(0) >> 1) // max int
		}

		if startTagIndex < endTagIndex {
			currentIndex = startTagIndex + len(StartTag)
			nestingLevel++
		} else {
			currentIndex = endTagIndex + len(EndTag)
			nestingLevel--
			if nestingLevel == 0 {
				return endTagIndex
			}
		}
	}
}

// indexFrom is strings.Index starting at the given offset, returning an
// absolute index (or -1).
func indexFrom(s string, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}

// Parse validates the given string and extracts its ordered top-level tokens.
// It returns a FormatError if the string is not a valid bracket string.
func Parse(stringToParse string) ([]string, error) {
	if !IsValid(stringToParse) {
		return nil, &protocol.FormatError{Message: "'" + stringToParse + "' is not a valid bracket string"}
	}

	parser := NewParser(stringToParse)
	tokens := []string{}
	for {
		ok, err := parser.HasNext()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		token, err := parser.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// ParseFloats parses the given string into a list of floats.
// "infinite" values coming from the Concept process are handled.
func ParseFloats(stringToParse string) ([]float64, error) {
	tokens, err := Parse(stringToParse)
	if err != nil {
		return nil, err
	}

	floats := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		value, err := UserStrToFloat(token)
		if err != nil {
			return nil, err
		}
		floats = append(floats, value)
	}

	return floats, nil
}

// Encode is the structural inverse of Parse: it wraps each token in a
// bracket pair and concatenates them.
func Encode(tokens []string) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(StartTag)
		b.WriteString(token)
		b.WriteString(EndTag)
	}
	return b.String()
}
