package domain_test

import (
	"fmt"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

// makeCards builds a minimal card slice with sequential ids for draw
// mechanics tests.
func makeCards(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{
			ID:            i,
			Suit:          domain.SuitWands,
			Name:          fmt.Sprintf("Card %d", i),
			LocalizedName: fmt.Sprintf("카드 %d", i),
		}
	}
	return cards
}

var fixtureKeywordBank = [][]string{
	{"사랑", "감정", "연결"},
	{"일", "성취", "도전"},
	{"재물", "안정", "풍요"},
	{"건강", "회복", "균형"},
	{"변화", "흐름", "미래"},
	{"선택", "결단", "방향"},
	{"관계", "소통", "조화"},
	{"성장", "배움", "노력"},
}

// testCatalog mirrors the real deck layout: 22 majors then four suits of
// ace-to-ten plus four courts, with keyword banks that overlap the
// selector's abstract keyword groups.
func testCatalog() []domain.Card {
	interpretations := func() map[domain.Orientation]map[domain.Category]string {
		m := make(map[domain.Orientation]map[domain.Category]string)
		for _, o := range []domain.Orientation{domain.Upright, domain.Reversed} {
			byCat := make(map[domain.Category]string)
			for _, cat := range domain.Categories {
				byCat[cat] = fmt.Sprintf("%s/%s 해석 텍스트입니다.", o, cat)
			}
			m[o] = byCat
		}
		return m
	}

	advice := map[domain.Orientation]domain.Advice{
		domain.Upright:  {Action: "한 걸음 나아가세요.", Avoid: "주저함", Focus: "지금 이 순간"},
		domain.Reversed: {Action: "잠시 멈추세요.", Avoid: "조급함", Focus: "회복"},
	}

	var cards []domain.Card
	for i := 0; i < 22; i++ {
		kw := fixtureKeywordBank[i%len(fixtureKeywordBank)]
		cards = append(cards, domain.Card{
			ID:               i,
			Suit:             domain.SuitMajor,
			Name:             fmt.Sprintf("Major %d", i),
			LocalizedName:    fmt.Sprintf("메이저 %d", i),
			UprightKeywords:  kw,
			ReversedKeywords: fixtureKeywordBank[(i+1)%len(fixtureKeywordBank)],
			Interpretations:  interpretations(),
			AdviceByOrient:   advice,
		})
	}

	suits := []struct {
		suit domain.Suit
		elem domain.Element
	}{
		{domain.SuitWands, domain.ElementFire},
		{domain.SuitCups, domain.ElementWater},
		{domain.SuitSwords, domain.ElementAir},
		{domain.SuitPentacles, domain.ElementEarth},
	}

	id := 22
	for _, s := range suits {
		for rank := 1; rank <= 14; rank++ {
			number := rank
			if rank > 10 {
				number = 0
			}
			kw := fixtureKeywordBank[id%len(fixtureKeywordBank)]
			cards = append(cards, domain.Card{
				ID:               id,
				Suit:             s.suit,
				Number:           number,
				Element:          s.elem,
				Name:             fmt.Sprintf("%s %d", s.suit, rank),
				LocalizedName:    fmt.Sprintf("%s %d번", s.suit, rank),
				UprightKeywords:  kw,
				ReversedKeywords: fixtureKeywordBank[(id+3)%len(fixtureKeywordBank)],
				Interpretations:  interpretations(),
				AdviceByOrient:   advice,
			})
			id++
		}
	}
	return cards
}
