package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Selection score weights. Tuned against the catalog keyword banks;
// changing them changes which cards surface for a given question.
const (
	bonusSuitPreference  = 15
	bonusKeywordExact    = 15
	bonusKeywordPartial  = 10
	bonusKeywordGroup    = 8
	bonusLocalizedName   = 20
	bonusCanonicalName   = 15
	bonusCategoryCard    = 12
	bonusMajorRichQuery  = 5
	minCandidatePoolSize = 15
)

// SelectCards picks count cards from the catalog without duplicates.
// Results are deterministic for a given (question, category) pair: the
// same question always produces the same ordered sequence.
//
// Mode depends on what the caller provides: question+category runs the
// full relevance scoring, question alone filters by keyword overlap, and
// with neither the draw is seeded from the wall clock.
//
// count <= 0 is a precondition error; count beyond the catalog size is
// clamped to the catalog size.
func SelectCards(catalog []Card, count int, question, category string) ([]Card, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if count > len(catalog) {
		count = len(catalog)
	}

	switch {
	case question != "" && category != "":
		return selectByMeaning(catalog, count, question, ParseCategory(category)), nil
	case question != "":
		return selectByKeywords(catalog, count, question), nil
	default:
		return DrawFromPool(catalog, count, int(time.Now().UnixMilli())), nil
	}
}

type scoredCard struct {
	card  Card
	score int
}

// selectByMeaning scores every card for relevance against the question
// and category, keeps a diversity window of top candidates, then draws
// from that pool with the question-derived seed.
func selectByMeaning(catalog []Card, count int, question string, cat Category) []Card {
	keywords := ExtractKeywords(question)

	scored := make([]scoredCard, len(catalog))
	for i, c := range catalog {
		scored[i] = scoredCard{card: c, score: relevanceScore(c, question, keywords, cat)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	poolSize := count * 3
	if poolSize < minCandidatePoolSize {
		poolSize = minCandidatePoolSize
	}
	if poolSize > len(scored) {
		poolSize = len(scored)
	}

	pool := make([]Card, poolSize)
	for i := range pool {
		pool[i] = scored[i].card
	}

	return DrawFromPool(pool, count, HashString(question))
}

func relevanceScore(c Card, question string, keywords []string, cat Category) int {
	score := 0

	if CategoryPrefersSuit(cat, c.Suit) {
		score += bonusSuitPreference
	}

	cardKeywords := append(append([]string{}, c.UprightKeywords...), c.ReversedKeywords...)
	for _, qk := range keywords {
		score += bestKeywordMatch(qk, cardKeywords)
	}

	if c.LocalizedName != "" && strings.Contains(question, c.LocalizedName) {
		score += bonusLocalizedName
	}
	if strings.Contains(strings.ToLower(question), strings.ToLower(c.Name)) {
		score += bonusCanonicalName
	}

	if categoryFavorsCard(cat, c) {
		score += bonusCategoryCard
	}

	if c.IsMajor() && len(keywords) > 3 {
		score += bonusMajorRichQuery
	}

	return score
}

// bestKeywordMatch returns the strongest single bonus the question
// keyword earns against the card's keyword bank.
func bestKeywordMatch(qk string, cardKeywords []string) int {
	best := 0
	for _, ck := range cardKeywords {
		var b int
		switch {
		case qk == ck:
			b = bonusKeywordExact
		case substringMatch(qk, ck):
			b = bonusKeywordPartial
		case SameSemanticGroup(qk, ck):
			b = bonusKeywordGroup
		}
		if b > best {
			best = b
		}
	}
	return best
}

// substringMatch requires the contained side to be at least 3 runes so
// short syllable fragments cannot pair everything with everything.
func substringMatch(a, b string) bool {
	if utf8.RuneCountInString(a) >= 3 && strings.Contains(b, a) {
		return true
	}
	return utf8.RuneCountInString(b) >= 3 && strings.Contains(a, b)
}

// selectByKeywords filters the catalog to cards sharing any keyword
// overlap with the question, falling back to the whole catalog when the
// filtered set is too small to fill the request.
func selectByKeywords(catalog []Card, count int, question string) []Card {
	keywords := ExtractKeywords(question)

	var filtered []Card
	for _, c := range catalog {
		if cardMatchesAny(c, keywords) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) < count {
		filtered = catalog
	}

	return DrawFromPool(filtered, count, HashString(question))
}

func cardMatchesAny(c Card, keywords []string) bool {
	for _, qk := range keywords {
		for _, ck := range append(append([]string{}, c.UprightKeywords...), c.ReversedKeywords...) {
			if qk == ck || substringMatch(qk, ck) {
				return true
			}
		}
	}
	return false
}

// SelectSpread draws the cards for a spread and assigns positions and
// orientations. Orientation hashing mixes in the position index so one
// reading is not all-upright or all-reversed by construction.
func SelectSpread(catalog []Card, count int, question, category string) ([]SelectedCard, error) {
	cards, err := SelectCards(catalog, count, question, category)
	if err != nil {
		return nil, err
	}
	out := make([]SelectedCard, len(cards))
	for i, c := range cards {
		out[i] = SelectedCard{
			Card:       c,
			Position:   i,
			IsReversed: IsReversed(OrientationInput(question, i), c.ID),
		}
	}
	return out, nil
}
