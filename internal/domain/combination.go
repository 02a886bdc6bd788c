package domain

import (
	"fmt"
	"sort"
)

// CombinationStrength is the discrete potency class of a card set.
type CombinationStrength string

const (
	StrengthWeak            CombinationStrength = "weak"
	StrengthModerate        CombinationStrength = "moderate"
	StrengthStrong          CombinationStrength = "strong"
	StrengthVeryStrong      CombinationStrength = "very_strong"
	StrengthExtremelyStrong CombinationStrength = "extremely_strong"
	StrengthMaximum         CombinationStrength = "maximum"
)

// SpecialPattern names a recognized structural pattern in a card set.
type SpecialPattern string

const (
	PatternNone     SpecialPattern = "none"
	PatternAllAces  SpecialPattern = "all_aces"
	PatternAllMajor SpecialPattern = "all_major"
	PatternSameSuit SpecialPattern = "same_suit"
	PatternSequence SpecialPattern = "sequence"
	PatternMirror   SpecialPattern = "mirror"
)

// CombinationStrengthOf classifies a card set by its additive pattern
// score: majors, suit clustering, numeric runs, and the special-pattern
// bonuses all stack.
func CombinationStrengthOf(cards []Card) CombinationStrength {
	score := combinationScore(cards)
	switch {
	case score >= 15:
		return StrengthMaximum
	case score >= 12:
		return StrengthExtremelyStrong
	case score >= 9:
		return StrengthVeryStrong
	case score >= 6:
		return StrengthStrong
	case score >= 3:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

func combinationScore(cards []Card) int {
	score := 0

	for _, c := range cards {
		if c.IsMajor() {
			score += 3
		}
	}

	if n := largestSuitCount(cards); n >= 2 {
		score += 2 * n
	}

	if isConsecutiveRun(cards) {
		score += 5
	}

	if allAces(cards) {
		score += 10
	}
	if allMajor(cards) {
		score += 8
	}
	if len(cards) > 1 && sameSuit(cards) {
		score += 3
	}

	return score
}

// DetectSpecialPattern returns the first matching structural pattern.
// Order matters: all-aces outranks all-major, which outranks the rest.
func DetectSpecialPattern(cards []Card) SpecialPattern {
	switch {
	case allAces(cards):
		return PatternAllAces
	case allMajor(cards):
		return PatternAllMajor
	case len(cards) > 1 && sameSuit(cards):
		return PatternSameSuit
	case isConsecutiveRun(cards):
		return PatternSequence
	case len(cards) == 3 && cards[0].Numbered() && cards[0].Number == cards[2].Number:
		return PatternMirror
	default:
		return PatternNone
	}
}

func allAces(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c.Number != 1 {
			return false
		}
	}
	return true
}

func allMajor(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if !c.IsMajor() {
			return false
		}
	}
	return true
}

func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

func largestSuitCount(cards []Card) int {
	counts := make(map[Suit]int)
	max := 0
	for _, c := range cards {
		counts[c.Suit]++
		if counts[c.Suit] > max {
			max = counts[c.Suit]
		}
	}
	return max
}

// isConsecutiveRun checks whether the numbered cards form a strictly
// consecutive ascending run once sorted. Sets with fewer than two
// numbered cards do not count.
func isConsecutiveRun(cards []Card) bool {
	var nums []int
	for _, c := range cards {
		if c.Numbered() {
			nums = append(nums, c.Number)
		}
	}
	if len(nums) < 2 {
		return false
	}
	sort.Ints(nums)
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[i-1]+1 {
			return false
		}
	}
	return true
}

// patternLabels feeds the narrative and pair summaries.
var patternLabels = map[SpecialPattern]string{
	PatternAllAces:  "모든 카드가 에이스로, 강력한 새 시작의 기운이 모여 있습니다.",
	PatternAllMajor: "모든 카드가 메이저 아르카나로, 인생의 큰 흐름이 움직이고 있습니다.",
	PatternSameSuit: "모든 카드가 같은 슈트로, 하나의 주제에 에너지가 집중되어 있습니다.",
	PatternSequence: "카드의 숫자가 이어지는 흐름으로, 단계적인 전개를 암시합니다.",
	PatternMirror:   "처음과 끝 카드가 같은 숫자로 마주 보아, 순환과 회귀를 암시합니다.",
}

var strengthLabels = map[CombinationStrength]string{
	StrengthWeak:            "약한",
	StrengthModerate:        "보통의",
	StrengthStrong:          "강한",
	StrengthVeryStrong:      "매우 강한",
	StrengthExtremelyStrong: "극도로 강한",
	StrengthMaximum:         "최고조의",
}

var elementLabels = map[Element]string{
	ElementFire:  "불",
	ElementWater: "물",
	ElementAir:   "바람",
	ElementEarth: "땅",
}

var suitLabels = map[Suit]string{
	SuitMajor:     "메이저 아르카나",
	SuitWands:     "완드",
	SuitCups:      "컵",
	SuitSwords:    "소드",
	SuitPentacles: "펜타클",
}

// PairCombinations builds pairwise summaries for a drawn set: every
// unordered pair is scored on its own, weak pairs are discarded, and at
// most the first three survivors are kept in production order.
func PairCombinations(cards []SelectedCard) []CardCombination {
	var out []CardCombination
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			pair := []Card{cards[i].Card, cards[j].Card}
			strength := CombinationStrengthOf(pair)
			if strength == StrengthWeak {
				continue
			}
			out = append(out, CardCombination{
				CardIDs:        [2]int{cards[i].Card.ID, cards[j].Card.ID},
				Strength:       strength,
				Interpretation: pairInterpretation(cards[i].Card, cards[j].Card, strength),
			})
			if len(out) == 3 {
				return out
			}
		}
	}
	return out
}

func pairInterpretation(a, b Card, strength CombinationStrength) string {
	theme := dominantTheme(a, b)
	return fmt.Sprintf("%s와(과) %s의 조합은 %s 에너지를 띠며, %s 기운을 중심으로 흐릅니다.",
		a.LocalizedName, b.LocalizedName, strengthLabels[strength], theme)
}

// dominantTheme picks the element or suit the pair leans on.
func dominantTheme(a, b Card) string {
	if a.Element != "" && a.Element == b.Element {
		return elementLabels[a.Element] + "의"
	}
	if a.Suit == b.Suit {
		return suitLabels[a.Suit] + "의"
	}
	if a.IsMajor() || b.IsMajor() {
		return "운명적인"
	}
	return "서로 다른"
}
