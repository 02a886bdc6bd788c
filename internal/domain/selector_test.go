package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

const careerQuestion = "새로운 직장에서 성공할 수 있을까요?"

func TestSelectCards_Deterministic(t *testing.T) {
	catalog := testCatalog()

	first, err := domain.SelectCards(catalog, 1, careerQuestion, "career")
	require.NoError(t, err)
	require.Len(t, first, 1)

	for i := 0; i < 20; i++ {
		again, err := domain.SelectCards(catalog, 1, careerQuestion, "career")
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.Equal(t, first[0].ID, again[0].ID, "same question must return the same card")
	}
}

func TestSelectCards_DeterministicSequence(t *testing.T) {
	catalog := testCatalog()

	first, err := domain.SelectCards(catalog, 10, careerQuestion, "career")
	require.NoError(t, err)

	again, err := domain.SelectCards(catalog, 10, careerQuestion, "career")
	require.NoError(t, err)

	require.Len(t, again, 10)
	for i := range first {
		assert.Equal(t, first[i].ID, again[i].ID, "position %d diverged", i)
	}
}

func TestSelectCards_NoDuplicates(t *testing.T) {
	catalog := testCatalog()

	for _, count := range []int{1, 3, 5, 10, 78} {
		cards, err := domain.SelectCards(catalog, count, careerQuestion, "career")
		require.NoError(t, err)
		require.Len(t, cards, count)

		seen := make(map[int]bool)
		for _, c := range cards {
			assert.False(t, seen[c.ID], "count=%d: duplicate card id %d", count, c.ID)
			seen[c.ID] = true
		}
	}
}

func TestSelectCards_CountBounds(t *testing.T) {
	catalog := testCatalog()

	_, err := domain.SelectCards(catalog, 0, careerQuestion, "career")
	assert.True(t, errors.Is(err, domain.ErrInvalidCount))

	_, err = domain.SelectCards(catalog, -3, careerQuestion, "career")
	assert.True(t, errors.Is(err, domain.ErrInvalidCount))

	// Requests beyond the catalog clamp rather than fail.
	cards, err := domain.SelectCards(catalog, 500, careerQuestion, "career")
	require.NoError(t, err)
	assert.Len(t, cards, len(catalog))

	_, err = domain.SelectCards(nil, 3, careerQuestion, "career")
	assert.True(t, errors.Is(err, domain.ErrEmptyCatalog))
}

func TestSelectCards_KeywordOnlyMode(t *testing.T) {
	catalog := testCatalog()

	first, err := domain.SelectCards(catalog, 3, "사랑이 이루어질까요?", "")
	require.NoError(t, err)
	require.Len(t, first, 3)

	again, err := domain.SelectCards(catalog, 3, "사랑이 이루어질까요?", "")
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].ID, again[i].ID)
	}
}

func TestSelectCards_TimeBasedMode(t *testing.T) {
	catalog := testCatalog()

	cards, err := domain.SelectCards(catalog, 5, "", "")
	require.NoError(t, err)
	require.Len(t, cards, 5)

	seen := make(map[int]bool)
	for _, c := range cards {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

func TestSelectCards_DifferentQuestionsDiverge(t *testing.T) {
	catalog := testCatalog()

	a, err := domain.SelectCards(catalog, 10, "이직을 하는 게 좋을까요?", "career")
	require.NoError(t, err)
	b, err := domain.SelectCards(catalog, 10, "올해 재물운이 궁금합니다", "money")
	require.NoError(t, err)

	same := true
	for i := range a {
		if a[i].ID != b[i].ID {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct questions should not produce identical ten-card sequences")
}

func TestSelectSpread_PositionsAndOrientations(t *testing.T) {
	catalog := testCatalog()

	cards, err := domain.SelectSpread(catalog, 10, careerQuestion, "career")
	require.NoError(t, err)
	require.Len(t, cards, 10)

	for i, sc := range cards {
		assert.Equal(t, i, sc.Position)
	}

	// Orientations are stable across repeated draws.
	again, err := domain.SelectSpread(catalog, 10, careerQuestion, "career")
	require.NoError(t, err)
	for i := range cards {
		assert.Equal(t, cards[i].IsReversed, again[i].IsReversed, "orientation at position %d diverged", i)
	}
}

func TestExtractKeywords(t *testing.T) {
	// A career trigger maps to the group's abstract keywords, not the
	// trigger itself.
	kws := domain.ExtractKeywords("직장에서 승진할 수 있을까요?")
	assert.NotEmpty(t, kws)
	assert.Contains(t, kws, "일")
	assert.NotContains(t, kws, "직장")

	// Multiple groups can contribute, deduplicated.
	kws = domain.ExtractKeywords("사랑과 직장 중 어떤 선택을 해야 할까요?")
	assert.Contains(t, kws, "사랑")
	assert.Contains(t, kws, "일")
	seen := make(map[string]bool)
	for _, k := range kws {
		assert.False(t, seen[k], "duplicate keyword %s", k)
		seen[k] = true
	}

	// No group match falls back to Hangul tokens, capped at 5.
	kws = domain.ExtractKeywords("달리기와 모자와 바람개비와 안개꽃")
	assert.LessOrEqual(t, len(kws), 5)
}
