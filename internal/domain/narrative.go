package domain

import (
	"fmt"
	"strings"
)

var orientationLabels = map[Orientation]string{
	Upright:  "정방향",
	Reversed: "역방향",
}

var categoryLabels = map[Category]string{
	CategoryGeneral: "전반적인 흐름",
	CategoryLove:    "사랑과 관계",
	CategoryCareer:  "일과 커리어",
	CategoryMoney:   "금전과 재물",
	CategoryHealth:  "건강과 컨디션",
}

var strengthNarratives = map[CombinationStrength]string{
	StrengthWeak:            "카드들이 각자의 이야기를 들려주고 있습니다. 하나하나의 메시지에 귀를 기울여 보세요.",
	StrengthModerate:        "카드들 사이에 잔잔한 연결이 흐르고 있습니다.",
	StrengthStrong:          "카드들이 뚜렷하게 하나의 방향을 가리키고 있습니다.",
	StrengthVeryStrong:      "카드들의 에너지가 강하게 공명하고 있습니다. 지금의 흐름을 신뢰해도 좋습니다.",
	StrengthExtremelyStrong: "보기 드물게 강렬한 조합입니다. 이 시기의 선택이 오래 영향을 미칠 수 있습니다.",
	StrengthMaximum:         "카드가 낼 수 있는 가장 강한 조합입니다. 운명적인 전환점에 서 있습니다.",
}

// ComposeNarrative assembles the template interpretation for a reading:
// a per-position section for each card, an overall section from the
// combination strength and pattern, and a closing advice section.
// It always returns non-empty text for a non-empty card set.
func ComposeNarrative(st SpreadType, cards []SelectedCard, cat Category, question string) string {
	if len(cards) == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "「%s」에 대한 %s 리딩입니다.\n\n", question, categoryLabels[cat])

	for _, sc := range cards {
		o := sc.Orientation()
		fmt.Fprintf(&b, "[%s] %s (%s)\n", PositionLabel(st, sc.Position), sc.Card.LocalizedName, orientationLabels[o])
		if text := sc.Card.Interpretation(o, cat); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("[전체 흐름]\n")
	b.WriteString(overallSection(cards))
	b.WriteString("\n\n[조언]\n")
	b.WriteString(adviceSection(cards))

	return b.String()
}

func overallSection(cards []SelectedCard) string {
	raw := make([]Card, len(cards))
	for i, sc := range cards {
		raw[i] = sc.Card
	}

	var b strings.Builder
	b.WriteString(strengthNarratives[CombinationStrengthOf(raw)])

	if p := DetectSpecialPattern(raw); p != PatternNone {
		b.WriteString(" ")
		b.WriteString(patternLabels[p])
	}
	return b.String()
}

// adviceSection merges per-card advice: actions from every card, the
// focus of the final card, and the first card's caution.
func adviceSection(cards []SelectedCard) string {
	var b strings.Builder

	for _, sc := range cards {
		adv := sc.Card.AdviceByOrient[sc.Orientation()]
		if adv.Action == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", adv.Action)
	}

	first := cards[0]
	last := cards[len(cards)-1]
	if avoid := first.Card.AdviceByOrient[first.Orientation()].Avoid; avoid != "" {
		fmt.Fprintf(&b, "피해야 할 것: %s\n", avoid)
	}
	if focus := last.Card.AdviceByOrient[last.Orientation()].Focus; focus != "" {
		fmt.Fprintf(&b, "집중할 것: %s", focus)
	}
	return b.String()
}

// RejectionNarrative is the interpretation text for a rejected question.
func RejectionNarrative(v ValidationResult) string {
	if v.Suggestion != "" {
		return v.Suggestion
	}
	return suggestions[ReasonNoSemanticMeaning]
}
