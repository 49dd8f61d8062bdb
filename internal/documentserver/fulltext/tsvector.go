package fulltext

import (
	"fmt"
	"regexp"

	"github.com/doka-one/doka/pkg/security/crypto"
)

// lexemePattern matches one 'lexeme':pos[,pos...] entry in a tsvector's
// text representation, e.g. 'cat':1 'sat':2,5. Lexemes containing a quote
// are doubled ('') by Postgres, mirrored here so they still match.
var lexemePattern = regexp.MustCompile(`'((?:[^']|'')*)':([0-9]+(?:,[0-9]+)*)`)

// EncryptTsvector replaces every lexeme in tsv with its customer-key
// ciphertext, keeping positions untouched (spec.md §4.5 step 4). This lets
// full-text search match encrypted queries without the index ever holding
// plaintext lexemes.
func EncryptTsvector(tsv string, keyString string) (string, error) {
	var encErr error
	out := lexemePattern.ReplaceAllStringFunc(tsv, func(match string) string {
		sub := lexemePattern.FindStringSubmatch(match)
		lexeme, positions := sub[1], sub[2]

		sealed, err := crypto.SealToString([]byte(lexeme), keyString)
		if err != nil {
			encErr = err
			return match
		}
		return fmt.Sprintf("'%s':%s", sealed, positions)
	})
	if encErr != nil {
		return "", fmt.Errorf("fulltext: encrypt tsvector lexeme: %w", encErr)
	}
	return out, nil
}
