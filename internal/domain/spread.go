package domain

// spreadSizes fixes the card count per spread type.
var spreadSizes = map[SpreadType]int{
	SpreadSingle:       1,
	SpreadThreeCard:    3,
	SpreadRelationship: 5,
	SpreadCelticCross:  10,
}

// spreadPositions names each position in reading order.
var spreadPositions = map[SpreadType][]string{
	SpreadSingle: {"현재 상황"},
	SpreadThreeCard: {
		"과거", "현재", "미래",
	},
	SpreadRelationship: {
		"나의 마음", "상대의 마음", "관계의 현재", "넘어야 할 벽", "관계의 방향",
	},
	SpreadCelticCross: {
		"현재 상황", "당면한 과제", "무의식의 기반", "지나간 과거",
		"가능한 미래", "다가올 흐름", "나 자신", "주변의 영향",
		"희망과 두려움", "최종 결과",
	},
}

// SpreadSize returns the number of cards a spread draws.
// Unknown spread types are treated as single-card readings.
func SpreadSize(st SpreadType) int {
	if n, ok := spreadSizes[st]; ok {
		return n
	}
	return 1
}

// PositionLabel names a 0-based position within a spread.
func PositionLabel(st SpreadType, position int) string {
	labels, ok := spreadPositions[st]
	if !ok || position < 0 || position >= len(labels) {
		return "카드"
	}
	return labels[position]
}

// ResolveSpreadType maps a raw request string to a spread type,
// defaulting to the three-card spread.
func ResolveSpreadType(raw string) SpreadType {
	switch SpreadType(raw) {
	case SpreadSingle, SpreadThreeCard, SpreadRelationship, SpreadCelticCross:
		return SpreadType(raw)
	case "":
		return SpreadThreeCard
	default:
		return SpreadThreeCard
	}
}
