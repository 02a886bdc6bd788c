package domain

import "strings"

// keywordGroup maps trigger terms found in a question to the abstract
// keywords that group contributes to relevance scoring.
type keywordGroup struct {
	name     string
	triggers []string
	keywords []string
}

var keywordGroups = []keywordGroup{
	{
		name:     "love",
		triggers: []string{"사랑", "연애", "짝사랑", "고백", "애인", "남자친구", "여자친구", "결혼", "이별", "재회", "썸"},
		keywords: []string{"사랑", "감정", "인연", "연결"},
	},
	{
		name:     "career",
		triggers: []string{"직장", "취업", "이직", "회사", "커리어", "승진", "면접", "사업", "업무"},
		keywords: []string{"일", "성취", "야망", "경력"},
	},
	{
		name:     "money",
		triggers: []string{"돈", "금전", "재물", "투자", "주식", "월급", "재정", "대출", "부자"},
		keywords: []string{"재물", "풍요", "안정", "물질"},
	},
	{
		name:     "health",
		triggers: []string{"건강", "몸", "병원", "치료", "운동", "스트레스", "피로"},
		keywords: []string{"건강", "회복", "활력", "균형"},
	},
	{
		name:     "time",
		triggers: []string{"미래", "앞으로", "올해", "내년", "언제", "곧", "나중"},
		keywords: []string{"미래", "변화", "흐름", "시간"},
	},
	{
		name:     "decision",
		triggers: []string{"결정", "선택", "고민", "할까", "말까", "망설"},
		keywords: []string{"선택", "결단", "방향", "판단"},
	},
	{
		name:     "emotion",
		triggers: []string{"마음", "기분", "감정", "불안", "걱정", "행복", "우울"},
		keywords: []string{"감정", "마음", "위로", "평화"},
	},
	{
		name:     "relationship",
		triggers: []string{"관계", "친구", "가족", "동료", "사이", "갈등", "화해"},
		keywords: []string{"관계", "소통", "이해", "조화"},
	},
	{
		name:     "growth",
		triggers: []string{"성장", "발전", "공부", "배움", "시험", "합격", "목표"},
		keywords: []string{"성장", "배움", "노력", "발전"},
	},
	{
		name:     "challenge",
		triggers: []string{"도전", "시작", "새로운", "변화", "극복", "용기"},
		keywords: []string{"도전", "용기", "시작", "기회"},
	},
}

// keywordToGroup indexes every abstract keyword back to its group name,
// used for the same-semantic-group bonus.
var keywordToGroup = func() map[string]string {
	m := make(map[string]string)
	for _, g := range keywordGroups {
		for _, k := range g.keywords {
			m[k] = g.name
		}
	}
	return m
}()

// meaningfulSuffixes mark a Hangul token as a plausible content word in
// the fallback extractor.
var meaningfulSuffixes = []string{"까요", "나요", "을까", "할까", "는지", "에서", "에게", "하고"}

// ExtractKeywords derives abstract keywords from a question. Matched
// keyword groups contribute their associated keywords (not the trigger
// itself); with no group match it falls back to Hangul tokens that look
// like content words, capped at 5.
func ExtractKeywords(question string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	for _, g := range keywordGroups {
		for _, trigger := range g.triggers {
			if strings.Contains(question, trigger) {
				for _, k := range g.keywords {
					add(k)
				}
				break
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, token := range hangulTokens(question, 2) {
		if len(out) >= 5 {
			break
		}
		if isMeaningfulToken(token) {
			add(token)
		}
	}
	return out
}

func isMeaningfulToken(token string) bool {
	for _, p := range semanticPrefixes {
		if strings.Contains(token, p) {
			return true
		}
	}
	for _, s := range meaningfulSuffixes {
		if strings.HasSuffix(token, s) {
			return true
		}
	}
	return false
}

// SameSemanticGroup reports whether two abstract keywords belong to the
// same keyword group.
func SameSemanticGroup(a, b string) bool {
	ga, ok := keywordToGroup[a]
	if !ok {
		return false
	}
	gb, ok := keywordToGroup[b]
	return ok && ga == gb
}

// categorySuits lists the suits a category prefers during selection.
var categorySuits = map[Category][]Suit{
	CategoryGeneral: {SuitMajor},
	CategoryLove:    {SuitCups},
	CategoryCareer:  {SuitWands, SuitPentacles},
	CategoryMoney:   {SuitPentacles},
	CategoryHealth:  {SuitSwords},
}

// categoryCards lists curated card IDs with special affinity per
// category: e.g. The Lovers and Two of Cups for love questions.
var categoryCards = map[Category][]int{
	CategoryLove:    {6, 37, 41, 45, 2},   // Lovers, Two/Six/Ten of Cups, High Priestess
	CategoryCareer:  {1, 22, 24, 66, 71},  // Magician, Ace/Three of Wands, Three/Eight of Pentacles
	CategoryMoney:   {10, 64, 72, 73, 3},  // Wheel, Ace/Nine/Ten of Pentacles, Empress
	CategoryHealth:  {14, 17, 19, 8, 53},  // Temperance, Star, Sun, Strength, Four of Swords
	CategoryGeneral: {0, 10, 19, 21},      // Fool, Wheel, Sun, World
}

// CategoryPrefersSuit reports whether suit is preferred for cat.
func CategoryPrefersSuit(cat Category, suit Suit) bool {
	for _, s := range categorySuits[cat] {
		if s == suit {
			return true
		}
	}
	return false
}

func categoryFavorsCard(cat Category, c Card) bool {
	for _, id := range categoryCards[cat] {
		if id == c.ID {
			return true
		}
	}
	return false
}
