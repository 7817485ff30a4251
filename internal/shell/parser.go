package shell

import (
	"io"
	"strings"
	"unicode"
)

type Parser interface {
	Parse(line string) ([]string, error)
}

// DefaultParser splits a line on runs of whitespace. Quotes, backslashes and
// operators are ordinary characters.
type DefaultParser struct {
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultParser() *DefaultParser {
	d := &DefaultParser{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	return &tokenBuffer{builder: builder}
}

func (tokenBuffer *tokenBuffer) isEmpty() bool {
	return tokenBuffer.builder.Len() == 0
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flushIfNotEmpty(tokens []string) []string {
	if !tokenBuffer.isEmpty() {
		tokens = append(tokens, tokenBuffer.builder.String())
		tokenBuffer.builder.Reset()
	}

	return tokens
}

func (p *DefaultParser) Parse(line string) ([]string, error) {
	runeReader := p.newReader(line)
	tokenBuffer := newTokenBuffer(p.newBuilder())

	tokens := []string{}

	for {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if unicode.IsSpace(ch) {
			tokens = tokenBuffer.flushIfNotEmpty(tokens)
			continue
		}

		tokenBuffer.appendRune(ch)
	}

	return tokenBuffer.flushIfNotEmpty(tokens), nil
}
