package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReasonCode classifies why a question was rejected.
type ReasonCode string

const (
	ReasonEmpty             ReasonCode = "empty"
	ReasonTooShort          ReasonCode = "too_short"
	ReasonMeaningless       ReasonCode = "meaningless"
	ReasonSequentialFiller  ReasonCode = "sequential_filler"
	ReasonRandomInput       ReasonCode = "random_input"
	ReasonTooManyJamo       ReasonCode = "too_many_consonants_vowels"
	ReasonWeirdCombination  ReasonCode = "weird_combination"
	ReasonNoSemanticMeaning ReasonCode = "no_semantic_meaning"
	ReasonTestInput         ReasonCode = "test_input"
)

// ValidationResult is the outcome of question validation. Suggestion is a
// user-facing hint, present only when the question is rejected.
type ValidationResult struct {
	IsValid    bool       `json:"is_valid"`
	Reason     ReasonCode `json:"reason,omitempty"`
	Suggestion string     `json:"suggestion,omitempty"`
}

// suggestions maps each reason code to its fixed user-facing hint.
var suggestions = map[ReasonCode]string{
	ReasonEmpty:             "질문을 입력해 주세요.",
	ReasonTooShort:          "질문이 너무 짧아요. 조금 더 구체적으로 적어주세요.",
	ReasonMeaningless:       "의미를 알 수 없는 입력이에요. 궁금한 점을 문장으로 적어주세요.",
	ReasonSequentialFiller:  "단순 나열된 글자는 해석할 수 없어요. 고민을 문장으로 적어주세요.",
	ReasonRandomInput:       "무작위 입력으로 보여요. 질문을 다시 작성해 주세요.",
	ReasonTooManyJamo:       "자음이나 모음만으로는 질문을 이해할 수 없어요.",
	ReasonWeirdCombination:  "문자 조합이 올바르지 않아요. 자연스러운 문장으로 적어주세요.",
	ReasonNoSemanticMeaning: "질문의 의미를 파악하기 어려워요. 상황을 조금 더 설명해 주세요.",
	ReasonTestInput:         "테스트 입력 같아요. 진짜 궁금한 질문을 적어주세요.",
}

// Suggestion returns the fixed hint text for a reason code.
func Suggestion(code ReasonCode) string { return suggestions[code] }

// meaninglessPatterns reject inputs with no interpretable content.
// Same-rune runs are handled separately; RE2 has no backreferences.
var meaninglessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[.,!?~\-]{2,}$`),
	regexp.MustCompile(`^[0-9.,!?\s]*[0-9][0-9.,!?\s]*$`),
	regexp.MustCompile(`^[ㄱ-ㅎㅏ-ㅣ\s]+$`),
	regexp.MustCompile(`^[가-힣]{1,4}\.{2,}$`),
	regexp.MustCompile(`^[a-zA-Z]{1,3}\.{2,}$`),
	regexp.MustCompile(`^[^0-9A-Za-z가-힣ㄱ-ㅎㅏ-ㅣ\s]{3,}$`),
}

// sequentialFillers are rote character sequences and laughter runs that
// show up when users mash the keyboard instead of asking something.
var sequentialFillers = []string{
	"가나다라", "아야어여", "라마바사", "하하하하",
	"ㅋㅋㅋ", "ㅎㅎㅎ", "ㅇㅇㅇ", "ㅠㅠㅠ",
	"123456", "abcdef", "qwerty",
}

var randomInputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[ㄱ-ㅎㅏ-ㅣ]{3,}`),
	regexp.MustCompile(`[;,]{2,}`),
	regexp.MustCompile(`[ㄱ-ㅎㅏ-ㅣ][가-힣][ㄱ-ㅎㅏ-ㅣ]`),
}

var weirdCombinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[0-9]+[가-힣a-zA-Z]+[0-9]+`),
	regexp.MustCompile(`[a-zA-Z][가-힣]`),
	regexp.MustCompile(`^[가-힣]{1,2}\.{3,}`),
	regexp.MustCompile(`^![^!]+!$`),
	regexp.MustCompile(`일이삼|이삼사|삼사오|하나둘셋`),
	regexp.MustCompile(`qwer|asdf|zxcv|ㅂㅈㄷㄱ|ㅁㄴㅇㄹ`),
	regexp.MustCompile(`^(.\.){2,}.?$`),
}

// semanticPrefixes are domain words a real question tends to contain.
var semanticPrefixes = []string{
	"사랑", "연애", "짝사랑", "고백", "이별", "재회", "결혼", "애인",
	"직장", "취업", "이직", "회사", "사업", "승진", "면접", "커리어",
	"돈", "금전", "재물", "투자", "재정", "월급",
	"건강", "치료", "운동", "다이어트",
	"미래", "앞으로", "올해", "내년", "운세", "인생",
	"고민", "결정", "선택", "걱정", "불안", "마음",
	"관계", "친구", "가족", "동료", "사이",
	"공부", "시험", "합격", "성공", "성장", "목표", "꿈",
}

// questionSuffixes are sentence endings that mark an actual question.
var questionSuffixes = []string{
	"까요", "나요", "가요", "ㄹ까", "을까", "할까", "될까",
	"인가요", "은가요", "는지", "을지", "할지", "어떨까", "어때요",
}

var testInputPattern = regexp.MustCompile(`(?i)^(test|테스트|시험용|테스트용)$`)

var laughterPattern = regexp.MustCompile(`^(ㅋ|ㅎ|ㅠ|ㅜ|h+a+)+$`)

// ValidateQuestion classifies a raw question string. Rules are checked in
// a fixed order and the first match wins, so an input matching several
// rules always reports the earliest one.
func ValidateQuestion(question string) ValidationResult {
	trimmed := strings.TrimSpace(question)

	for _, rule := range validationRules {
		if rule.match(trimmed) {
			return ValidationResult{
				IsValid:    false,
				Reason:     rule.code,
				Suggestion: suggestions[rule.code],
			}
		}
	}
	return ValidationResult{IsValid: true}
}

type validationRule struct {
	code  ReasonCode
	match func(trimmed string) bool
}

// validationRules is the full rejection chain in precedence order.
var validationRules = []validationRule{
	{ReasonEmpty, func(s string) bool { return s == "" }},
	{ReasonTooShort, func(s string) bool { return utf8.RuneCountInString(s) <= 2 }},
	{ReasonMeaningless, matchesMeaningless},
	{ReasonSequentialFiller, matchesSequentialFiller},
	{ReasonRandomInput, matchesRandomInput},
	{ReasonTooManyJamo, tooManyJamo},
	{ReasonWeirdCombination, matchesWeirdCombination},
	{ReasonNoSemanticMeaning, lacksSemanticMeaning},
	{ReasonTestInput, matchesTestInput},
}

func matchesMeaningless(s string) bool {
	for _, p := range meaninglessPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return sameRuneRun(s, 5)
}

func matchesSequentialFiller(s string) bool {
	for _, f := range sequentialFillers {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func matchesRandomInput(s string) bool {
	for _, p := range randomInputPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// tooManyJamo rejects inputs dominated by standalone consonant/vowel
// jamo. Ratio is over non-space runes, threshold 0.25, length gate > 4.
func tooManyJamo(s string) bool {
	if utf8.RuneCountInString(s) <= 4 {
		return false
	}
	var total, jamo int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isStandaloneJamo(r) {
			jamo++
		}
	}
	if total == 0 {
		return false
	}
	return float64(jamo)/float64(total) > 0.25
}

func matchesWeirdCombination(s string) bool {
	for _, p := range weirdCombinationPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// lacksSemanticMeaning fires when a longer input contains stray jamo and
// none of its Hangul tokens look like a known topic or question ending.
func lacksSemanticMeaning(s string) bool {
	if utf8.RuneCountInString(s) <= 5 {
		return false
	}
	if !containsStandaloneJamo(s) {
		return false
	}
	for _, token := range hangulTokens(s, 2) {
		for _, prefix := range semanticPrefixes {
			if strings.HasPrefix(token, prefix) || strings.Contains(token, prefix) {
				return false
			}
		}
		for _, suffix := range questionSuffixes {
			if strings.HasSuffix(token, suffix) {
				return false
			}
		}
	}
	return true
}

func matchesTestInput(s string) bool {
	if testInputPattern.MatchString(s) {
		return true
	}
	if laughterPattern.MatchString(strings.ToLower(s)) {
		return true
	}
	// Whole input is one rune repeated, e.g. "aaa" or "111".
	return sameRuneRun(s, 3) && allSameRune(s)
}

// sameRuneRun reports whether s contains n or more identical consecutive
// runes anywhere.
func sameRuneRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

func allSameRune(s string) bool {
	var first rune
	for i, r := range s {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return s != ""
}

func isStandaloneJamo(r rune) bool {
	return r >= 'ㄱ' && r <= 'ㅣ'
}

func containsStandaloneJamo(s string) bool {
	for _, r := range s {
		if isStandaloneJamo(r) {
			return true
		}
	}
	return false
}

// hangulTokens extracts maximal runs of Hangul syllables of at least
// minLen runes.
func hangulTokens(s string, minLen int) []string {
	var tokens []string
	var current []rune
	flush := func() {
		if len(current) >= minLen {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}
	for _, r := range s {
		if r >= '가' && r <= '힣' {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
