package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

func major(id int) domain.Card {
	return domain.Card{ID: id, Suit: domain.SuitMajor, LocalizedName: "메이저"}
}

func minor(id int, suit domain.Suit, number int) domain.Card {
	return domain.Card{ID: id, Suit: suit, Number: number, LocalizedName: "마이너"}
}

func TestCombinationStrength_Thresholds(t *testing.T) {
	cases := []struct {
		name  string
		cards []domain.Card
		want  domain.CombinationStrength
	}{
		{
			// No majors, mixed suits, no numbers: nothing scores.
			"weak",
			[]domain.Card{minor(30, domain.SuitWands, 0), minor(40, domain.SuitCups, 0)},
			domain.StrengthWeak,
		},
		{
			// One major among unrelated minors: 3 points.
			"moderate",
			[]domain.Card{major(0), minor(30, domain.SuitWands, 0), minor(40, domain.SuitCups, 0)},
			domain.StrengthModerate,
		},
		{
			// Two same-suit minors (2*2) plus one major (3): 7 points.
			"strong",
			[]domain.Card{major(0), minor(23, domain.SuitWands, 0), minor(24, domain.SuitWands, 0)},
			domain.StrengthStrong,
		},
		{
			// All aces across suits: 10 points.
			"very strong all aces",
			[]domain.Card{
				minor(36, domain.SuitCups, 1),
				minor(22, domain.SuitWands, 1),
				minor(50, domain.SuitSwords, 1),
			},
			domain.StrengthVeryStrong,
		},
		{
			// Mixed-suit consecutive run with a major: 3 + 5 + suit pair 0 = 8?
			// wands2/cups3/swords4 + major: 3 (major) + 5 (run) = 8 -> strong.
			"strong sequence with major",
			[]domain.Card{
				major(0),
				minor(23, domain.SuitWands, 2),
				minor(38, domain.SuitCups, 3),
				minor(52, domain.SuitSwords, 4),
			},
			domain.StrengthStrong,
		},
		{
			// Same-suit consecutive run: suit 3*2 + run 5 + same-suit 3 = 14.
			"extremely strong same suit run",
			[]domain.Card{
				minor(23, domain.SuitWands, 2),
				minor(24, domain.SuitWands, 3),
				minor(25, domain.SuitWands, 4),
			},
			domain.StrengthExtremelyStrong,
		},
		{
			// All majors: 3*3 + suit 3*2 + all-major 8 + same-suit 3 = 26.
			"maximum all major",
			[]domain.Card{major(0), major(1), major(2)},
			domain.StrengthMaximum,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CombinationStrengthOf(tc.cards))
		})
	}
}

// Replacing a non-major card with a major card never lowers the
// classification, everything else held constant.
func TestCombinationStrength_MajorMonotonic(t *testing.T) {
	withMajor := []domain.Card{major(0), major(1), major(2)}
	oneSwapped := []domain.Card{major(0), major(1), minor(30, domain.SuitWands, 0)}

	order := map[domain.CombinationStrength]int{
		domain.StrengthWeak:            0,
		domain.StrengthModerate:        1,
		domain.StrengthStrong:          2,
		domain.StrengthVeryStrong:      3,
		domain.StrengthExtremelyStrong: 4,
		domain.StrengthMaximum:         5,
	}

	all := order[domain.CombinationStrengthOf(withMajor)]
	swapped := order[domain.CombinationStrengthOf(oneSwapped)]
	assert.GreaterOrEqual(t, all, swapped)
}

func TestDetectSpecialPattern(t *testing.T) {
	cases := []struct {
		name  string
		cards []domain.Card
		want  domain.SpecialPattern
	}{
		{
			"all aces",
			[]domain.Card{
				minor(36, domain.SuitCups, 1),
				minor(22, domain.SuitWands, 1),
				minor(50, domain.SuitSwords, 1),
			},
			domain.PatternAllAces,
		},
		{
			"all major",
			[]domain.Card{major(0), major(5), major(13)},
			domain.PatternAllMajor,
		},
		{
			"same suit",
			[]domain.Card{minor(23, domain.SuitWands, 2), minor(27, domain.SuitWands, 6)},
			domain.PatternSameSuit,
		},
		{
			"sequence",
			[]domain.Card{
				minor(23, domain.SuitWands, 2),
				minor(38, domain.SuitCups, 3),
				minor(52, domain.SuitSwords, 4),
			},
			domain.PatternSequence,
		},
		{
			"mirror",
			[]domain.Card{
				minor(23, domain.SuitWands, 2),
				major(0),
				minor(37, domain.SuitCups, 2),
			},
			domain.PatternMirror,
		},
		{
			"none",
			[]domain.Card{
				minor(23, domain.SuitWands, 2),
				minor(40, domain.SuitCups, 5),
				major(0),
			},
			domain.PatternNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.DetectSpecialPattern(tc.cards))
		})
	}
}

// All-aces hands are also all-number-1 sequences of other kinds; the
// fixed check order means all_aces always wins.
func TestDetectSpecialPattern_Precedence(t *testing.T) {
	aces := []domain.Card{
		minor(22, domain.SuitWands, 1),
		minor(36, domain.SuitCups, 1),
		minor(50, domain.SuitSwords, 1),
	}
	assert.Equal(t, domain.PatternAllAces, domain.DetectSpecialPattern(aces))

	// Same-suit aces: all_aces still outranks same_suit.
	sameSuitAces := []domain.Card{
		minor(22, domain.SuitWands, 1),
		minor(22, domain.SuitWands, 1),
	}
	assert.Equal(t, domain.PatternAllAces, domain.DetectSpecialPattern(sameSuitAces))
}

func TestPairCombinations(t *testing.T) {
	sel := func(c domain.Card, pos int) domain.SelectedCard {
		return domain.SelectedCard{Card: c, Position: pos}
	}

	// Two majors pair to maximum; the weak court pair is dropped.
	cards := []domain.SelectedCard{
		sel(major(0), 0),
		sel(major(1), 1),
		sel(minor(33, domain.SuitWands, 0), 2),
		sel(minor(47, domain.SuitCups, 0), 3),
	}

	combos := domain.PairCombinations(cards)
	assert.NotEmpty(t, combos)
	assert.LessOrEqual(t, len(combos), 3)

	for _, cb := range combos {
		assert.NotEqual(t, domain.StrengthWeak, cb.Strength)
		assert.NotEmpty(t, cb.Interpretation)
	}

	// First pair produced is the major/major pair.
	assert.Equal(t, [2]int{0, 1}, combos[0].CardIDs)
	assert.Equal(t, domain.StrengthMaximum, combos[0].Strength)
}

func TestPairCombinations_CapAtThree(t *testing.T) {
	sel := func(c domain.Card, pos int) domain.SelectedCard {
		return domain.SelectedCard{Card: c, Position: pos}
	}
	// Five majors give ten non-weak pairs; only three survive.
	var cards []domain.SelectedCard
	for i := 0; i < 5; i++ {
		cards = append(cards, sel(major(i), i))
	}
	combos := domain.PairCombinations(cards)
	assert.Len(t, combos, 3)
}
