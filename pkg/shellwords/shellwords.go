// Package shellwords provides utilities for splitting and escaping shell command strings.
package shellwords

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"

	"github.com/norio-nomura/lazyseq/pkg/accum"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

var (
	wordRe   = regexp.MustCompile(`\s*(?:([^\s\\\'\"]+)|'([^\']*)'|"((?:[^\"\\]|\\.)*)"|(\\.?)|(\S))(\s|$)?`)
	dqEscRe  = regexp.MustCompile("\\\\([$`\"\\\\\n])")
	escRe    = regexp.MustCompile(`\\(.)`)
	unsafeRe = regexp.MustCompile("[^-A-Za-z0-9_.,:+/@\n]")
)

// token is one match of wordRe: the text it contributes to the current word,
// whether it ends the word, and whether it is an unmatched quote.
type token struct {
	text    string
	sep     bool
	garbage bool
}

// tokens scans input into tokens, in order.
func tokens(input string) iter.Seq[token] {
	matches := wordRe.FindAllStringSubmatchIndex(input, -1)
	return xiter.Map(slices.Values(matches), func(match []int, _ int) token {
		group := func(j int) (string, bool) {
			if match[2*j] < 0 {
				return "", false
			}
			return input[match[2*j]:match[2*j+1]], true
		}
		var tok token
		_, tok.sep = group(6)
		if _, tok.garbage = group(5); tok.garbage {
			return tok
		}
		if word, ok := group(1); ok {
			tok.text = word
		} else if sq, ok := group(2); ok {
			tok.text = sq
		} else if dq, ok := group(3); ok {
			tok.text = dqEscRe.ReplaceAllString(dq, `$1`)
		} else if esc, ok := group(4); ok {
			tok.text = escRe.ReplaceAllString(esc, `$1`)
		}
		return tok
	})
}

// Split splits a string into an array of tokens in the same way the UNIX Bourne shell does.
// It returns an error if quotes are unmatched.
func Split(input string) ([]string, error) {
	var words []string
	field := ""
	for tok := range tokens(input) {
		if tok.garbage {
			return nil, fmt.Errorf("unmatched quote: `%s`", input)
		}
		field += tok.text
		if tok.sep {
			words = append(words, field)
			field = ""
		}
	}
	return words, nil
}

// Escape escapes a string so that it can be safely used in a Bourne shell command line.
func Escape(input string) string {
	if input == "" {
		return "''"
	}
	escaped := unsafeRe.ReplaceAllString(input, `\$0`)
	return strings.ReplaceAll(escaped, "\n", "'\n'")
}

// Join builds a command line string from an argument list.
func Join(inputs []string) string {
	escaped := xiter.Map(slices.Values(inputs), func(input string, _ int) string { return Escape(input) })
	return accum.Join(escaped, " ")
}
