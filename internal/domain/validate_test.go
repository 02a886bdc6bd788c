package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

func TestValidateQuestion_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		question string
		reason   domain.ReasonCode
	}{
		{"empty string", "", domain.ReasonEmpty},
		{"whitespace only", "   \t ", domain.ReasonEmpty},
		{"single dot", ".", domain.ReasonTooShort},
		{"two chars", "어떻", domain.ReasonTooShort},
		{"jamo only run", "ㅋㅋㅋ", domain.ReasonMeaningless},
		{"digits and dots", "123..", domain.ReasonMeaningless},
		{"short hangul plus dots", "가나다라..", domain.ReasonMeaningless},
		{"short latin plus dots", "abc...", domain.ReasonMeaningless},
		{"repeated punctuation", "?!?!", domain.ReasonMeaningless},
		{"same char repeated five times", "머머머머머요즘", domain.ReasonMeaningless},
		{"filler sequence", "가나다라 마바사 이렇게", domain.ReasonSequentialFiller},
		{"laughter filler", "진짜 ㅋㅋㅋ 어떡해요", domain.ReasonSequentialFiller},
		{"jamo sandwich", "ㅁ나ㅇ 이게 뭐냐면요", domain.ReasonRandomInput},
		{"repeated semicolons", "그래서;; 어떻게 되나요", domain.ReasonRandomInput},
		{"jamo heavy", "ㅇ ㅁ 가 나 ㅂ 다", domain.ReasonTooManyJamo},
		{"digit text digit", "1질문2 입니다 알려주세요", domain.ReasonWeirdCombination},
		{"latin glued to hangul", "my사랑 이야기 궁금해요", domain.ReasonWeirdCombination},
		{"exclamation wrapped", "!사랑운세!", domain.ReasonWeirdCombination},
		{"spelled out numbers", "일이삼 사오육 어떤가요", domain.ReasonWeirdCombination},
		{"keyboard literal", "asdf 그리고 내일", domain.ReasonWeirdCombination},
		{"dot separated chars", "가.나.다.", domain.ReasonWeirdCombination},
		{"test literal", "test", domain.ReasonTestInput},
		{"test korean", "테스트", domain.ReasonTestInput},
		{"repeated letter", "aaa", domain.ReasonTestInput},
		// Digits-only input hits the meaningless rule before test_input.
		{"repeated digit", "1111", domain.ReasonMeaningless},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ValidateQuestion(tc.question)
			assert.False(t, got.IsValid, "expected rejection")
			assert.Equal(t, tc.reason, got.Reason)
			assert.NotEmpty(t, got.Suggestion, "every rejection carries a suggestion")
		})
	}
}

func TestValidateQuestion_Valid(t *testing.T) {
	questions := []string{
		"새로운 직장에서 성공할 수 있을까요?",
		"지금 만나는 사람과의 관계가 앞으로 어떻게 될까요?",
		"이직을 해야 할지 고민이 많아요",
		"올해 금전운은 어떤가요?",
		"건강이 계속 걱정되는데 괜찮을까요?",
	}
	for _, q := range questions {
		got := domain.ValidateQuestion(q)
		assert.True(t, got.IsValid, "expected %q to be valid, rejected as %s", q, got.Reason)
		assert.Empty(t, got.Reason)
		assert.Empty(t, got.Suggestion)
	}
}

// The rule order is part of the contract: an input matching several
// rules must report the earliest one.
func TestValidateQuestion_FirstMatchWins(t *testing.T) {
	// "가나다라.." matches both the meaningless short-hangul-plus-dots
	// pattern and the sequential filler list; meaningless comes first.
	got := domain.ValidateQuestion("가나다라..")
	assert.Equal(t, domain.ReasonMeaningless, got.Reason)

	// "ㅋㅋㅋ" matches the jamo-only meaningless pattern before the
	// laughter filler entry.
	got = domain.ValidateQuestion("ㅋㅋㅋ")
	assert.Equal(t, domain.ReasonMeaningless, got.Reason)
}

func TestSuggestion_CoversAllReasonCodes(t *testing.T) {
	codes := []domain.ReasonCode{
		domain.ReasonEmpty, domain.ReasonTooShort, domain.ReasonMeaningless,
		domain.ReasonSequentialFiller, domain.ReasonRandomInput,
		domain.ReasonTooManyJamo, domain.ReasonWeirdCombination,
		domain.ReasonNoSemanticMeaning, domain.ReasonTestInput,
	}
	for _, code := range codes {
		assert.NotEmpty(t, domain.Suggestion(code), "missing suggestion for %s", code)
	}
}
