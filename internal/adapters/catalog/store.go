package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

//go:embed data/cards.json
var catalogFS embed.FS

const catalogPath = "data/cards.json"

// DeckSize is the full Rider-Waite deck: 22 major + 4 suits of 14.
const DeckSize = 78

// cardRecord is the embedded JSON shape. Per-category interpretation
// texts are expanded from the base meanings at load time.
type cardRecord struct {
	ID               int                                  `json:"id"`
	Suit             domain.Suit                          `json:"suit"`
	Number           int                                  `json:"number,omitempty"`
	Element          domain.Element                       `json:"element,omitempty"`
	Name             string                               `json:"name"`
	LocalizedName    string                               `json:"localized_name"`
	UprightKeywords  []string                             `json:"upright_keywords"`
	ReversedKeywords []string                             `json:"reversed_keywords"`
	Meanings         map[domain.Orientation]string        `json:"meanings"`
	Advice           map[domain.Orientation]domain.Advice `json:"advice"`
}

// EmbeddedStore loads and validates the card catalog from embedded JSON.
type EmbeddedStore struct {
	once  sync.Once
	cards []domain.Card
	err   error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

// Catalog returns the full validated catalog, loading it on first use.
func (s *EmbeddedStore) Catalog(_ context.Context) ([]domain.Card, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

func (s *EmbeddedStore) load() {
	raw, err := catalogFS.ReadFile(catalogPath)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}

	var records []cardRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.err = fmt.Errorf("parse embedded catalog: %w", err)
		return
	}

	cards := make([]domain.Card, 0, len(records))
	for _, r := range records {
		card, err := buildCard(r)
		if err != nil {
			s.err = fmt.Errorf("catalog card %d (%s): %w", r.ID, r.Name, err)
			return
		}
		cards = append(cards, card)
	}

	if err := validateCatalog(cards); err != nil {
		s.err = fmt.Errorf("catalog validation: %w", err)
		return
	}

	s.cards = cards
}

// categoryClauses flavor the base meaning per question category.
var categoryClauses = map[domain.Category]string{
	domain.CategoryGeneral: "지금의 전반적인 흐름 속에서 이 메시지를 받아들여 보세요.",
	domain.CategoryLove:    "사랑과 관계의 영역에서 이 기운이 마음의 움직임으로 나타납니다.",
	domain.CategoryCareer:  "일과 커리어의 영역에서 이 기운은 당신의 선택과 성취에 닿아 있습니다.",
	domain.CategoryMoney:   "금전과 재물의 영역에서 이 기운은 흐름의 방향을 일러줍니다.",
	domain.CategoryHealth:  "건강과 컨디션의 영역에서 이 기운은 몸과 마음의 균형을 비춥니다.",
}

func buildCard(r cardRecord) (domain.Card, error) {
	for _, o := range []domain.Orientation{domain.Upright, domain.Reversed} {
		if r.Meanings[o] == "" {
			return domain.Card{}, fmt.Errorf("missing %s meaning", o)
		}
		adv := r.Advice[o]
		if adv.Action == "" || adv.Avoid == "" || adv.Focus == "" {
			return domain.Card{}, fmt.Errorf("incomplete %s advice", o)
		}
	}
	if len(r.UprightKeywords) == 0 || len(r.ReversedKeywords) == 0 {
		return domain.Card{}, fmt.Errorf("missing keywords")
	}

	interpretations := make(map[domain.Orientation]map[domain.Category]string, 2)
	for _, o := range []domain.Orientation{domain.Upright, domain.Reversed} {
		byCat := make(map[domain.Category]string, len(domain.Categories))
		for _, cat := range domain.Categories {
			byCat[cat] = r.Meanings[o] + " " + categoryClauses[cat]
		}
		interpretations[o] = byCat
	}

	return domain.Card{
		ID:               r.ID,
		Suit:             r.Suit,
		Number:           r.Number,
		Element:          r.Element,
		Name:             r.Name,
		LocalizedName:    r.LocalizedName,
		UprightKeywords:  r.UprightKeywords,
		ReversedKeywords: r.ReversedKeywords,
		Interpretations:  interpretations,
		AdviceByOrient:   r.Advice,
	}, nil
}

// validateCatalog guarantees the invariants the domain layer relies on:
// exactly 78 cards, dense unique ids, and full interpretation coverage
// for every orientation and category. A hole here is a startup failure,
// never a runtime blank.
func validateCatalog(cards []domain.Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("expected %d cards, got %d", DeckSize, len(cards))
	}

	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if c.ID < 0 || c.ID >= DeckSize {
			return fmt.Errorf("card id %d out of range", c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = true

		for _, o := range []domain.Orientation{domain.Upright, domain.Reversed} {
			for _, cat := range domain.Categories {
				if c.Interpretations[o][cat] == "" {
					return fmt.Errorf("card %d missing %s/%s interpretation", c.ID, o, cat)
				}
			}
		}
	}
	return nil
}
