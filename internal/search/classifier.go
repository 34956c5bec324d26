// Package search turns free-text queries into structured item filters and
// runs both the classified and the field-based searches.
package search

import (
	"context"
	"regexp"
	"strings"
)

var stopWords = regexp.MustCompile(`\b(i|my|like|lost|a|the|or|to|of|for|in|and|find)\b`)

// colourPalette is the fixed set of colour names the classifier recognizes.
var colourPalette = map[string]struct{}{
	"white": {}, "black": {}, "red": {}, "green": {}, "blue": {},
	"yellow": {}, "cyan": {}, "magenta": {}, "gray": {}, "orange": {}, "pink": {},
}

// CategoryLookup answers whether a candidate string names a known category.
type CategoryLookup interface {
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// Criteria is the classified form of a free-text query. Nil fields are
// unconstrained.
type Criteria struct {
	ItemName *string
	Colour   *string
	Category *string
}

// Classify splits a query into item-name, colour and category terms.
//
// Stop words are removed, then tokens are consumed left to right. The first
// colour token becomes the colour filter and later colour tokens are
// dropped. Non-colour tokens build up a category candidate; the first
// candidate that names a known category wins, discarding any leftover
// tokens. If no category ever matches, the accumulated tokens become the
// item-name filter instead.
func Classify(ctx context.Context, categories CategoryLookup, query string) (Criteria, error) {
	cleaned := stopWords.ReplaceAllString(strings.ToLower(query), " ")
	tokens := strings.Fields(cleaned)

	var criteria Criteria
	var candidate strings.Builder
	for _, token := range tokens {
		if _, isColour := colourPalette[token]; isColour {
			if criteria.Colour == nil {
				colour := token
				criteria.Colour = &colour
			}
			continue
		}

		if candidate.Len() > 0 {
			candidate.WriteByte(' ')
		}
		candidate.WriteString(token)

		name := strings.TrimSpace(candidate.String())
		known, err := categories.CategoryExists(ctx, name)
		if err != nil {
			return Criteria{}, err
		}
		if known {
			criteria.Category = &name
			return criteria, nil
		}
	}

	if candidate.Len() > 0 {
		name := strings.TrimSpace(candidate.String())
		criteria.ItemName = &name
	}
	return criteria, nil
}
