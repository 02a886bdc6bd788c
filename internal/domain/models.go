package domain

import "time"

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Suit identifies one of the five card groups.
type Suit string

const (
	SuitMajor     Suit = "major"
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Element is the classical element associated with a suit or major card.
type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
)

// Category is the question domain a reading is interpreted against.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryLove    Category = "love"
	CategoryCareer  Category = "career"
	CategoryMoney   Category = "money"
	CategoryHealth  Category = "health"
)

// Categories lists every category the catalog must cover.
var Categories = []Category{CategoryGeneral, CategoryLove, CategoryCareer, CategoryMoney, CategoryHealth}

// ParseCategory maps a raw request string to a known category,
// falling back to general.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryLove, CategoryCareer, CategoryMoney, CategoryHealth:
		return Category(raw)
	default:
		return CategoryGeneral
	}
}

// Advice is the action/avoid/focus triple attached to a card orientation.
type Advice struct {
	Action string `json:"action"`
	Avoid  string `json:"avoid"`
	Focus  string `json:"focus"`
}

// Card is an immutable catalog entry. Number is 0 for cards without a
// numeric value (major arcana and court cards).
type Card struct {
	ID               int                                 `json:"id"`
	Suit             Suit                                `json:"suit"`
	Number           int                                 `json:"number,omitempty"`
	Element          Element                             `json:"element,omitempty"`
	Name             string                              `json:"name"`
	LocalizedName    string                              `json:"localized_name"`
	UprightKeywords  []string                            `json:"upright_keywords"`
	ReversedKeywords []string                            `json:"reversed_keywords"`
	Interpretations  map[Orientation]map[Category]string `json:"interpretations"`
	AdviceByOrient   map[Orientation]Advice              `json:"advice"`
}

// Numbered reports whether the card carries a numeric value.
func (c Card) Numbered() bool { return c.Number > 0 }

// IsMajor reports whether the card belongs to the major arcana.
func (c Card) IsMajor() bool { return c.Suit == SuitMajor }

// Keywords returns the keywords for the given orientation.
func (c Card) Keywords(o Orientation) []string {
	if o == Reversed {
		return c.ReversedKeywords
	}
	return c.UprightKeywords
}

// Interpretation looks up the meaning text for an orientation and category.
func (c Card) Interpretation(o Orientation, cat Category) string {
	return c.Interpretations[o][cat]
}

// SelectedCard is a card drawn into a spread position.
type SelectedCard struct {
	Card       Card `json:"card"`
	Position   int  `json:"position"`
	IsReversed bool `json:"is_reversed"`
}

// Orientation returns the drawn orientation of the card.
func (s SelectedCard) Orientation() Orientation {
	if s.IsReversed {
		return Reversed
	}
	return Upright
}

// SpreadType identifies the layout of a reading.
type SpreadType string

const (
	SpreadSingle       SpreadType = "single"
	SpreadThreeCard    SpreadType = "three_card"
	SpreadRelationship SpreadType = "relationship"
	SpreadCelticCross  SpreadType = "celtic_cross"
)

// CardCombination summarizes the interaction of a card pair in a reading.
type CardCombination struct {
	CardIDs        [2]int              `json:"card_ids"`
	Strength       CombinationStrength `json:"strength"`
	Interpretation string              `json:"interpretation"`
}

// Reading is the request/response aggregate for one reading.
// When the question is rejected by validation, Cards is empty,
// Interpretation holds the rejection suggestion and Combinations is nil.
type Reading struct {
	ID             string            `json:"id"`
	Question       string            `json:"question"`
	Category       Category          `json:"category"`
	SpreadType     SpreadType        `json:"spread_type"`
	Cards          []SelectedCard    `json:"cards"`
	Interpretation string            `json:"interpretation"`
	Combinations   []CardCombination `json:"combinations,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
