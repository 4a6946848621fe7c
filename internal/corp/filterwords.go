//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var wordfinder = regexp.MustCompile(`\w+`)

// FilterWords - break a raw document body into lowercased tokens with the stopwords removed
func FilterWords(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("document needs to be a text string for stopwords to work")
	}

	text = norm.NFC.String(strings.ToLower(text))
	tokens := wordfinder.FindAllString(text, -1)

	stops := getenglishstops()
	var kept []string
	for _, t := range tokens {
		if _, skip := stops[t]; !skip {
			kept = append(kept, t)
		}
	}
	return kept, nil
}
