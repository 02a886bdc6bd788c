package http

import (
	"time"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

// ReadingRequestBody is the JSON body of POST /v1/readings.
type ReadingRequestBody struct {
	Question string `json:"question"`
	Category string `json:"category,omitempty"`
	Spread   string `json:"spread,omitempty"`
}

// ReadingEnvelope is the JSON shape returned by POST /v1/readings.
// Rejected questions still succeed: the reading inside carries no cards
// and an explanatory interpretation.
type ReadingEnvelope struct {
	Success    bool            `json:"success"`
	Type       string          `json:"type"`
	Question   string          `json:"question"`
	Reading    ReadingResp     `json:"reading"`
	Validation *ValidationResp `json:"validation,omitempty"`
	Meta       MetaResp        `json:"meta"`
	Timestamp  time.Time       `json:"timestamp"`
}

type ReadingResp struct {
	ID             string            `json:"id"`
	Category       domain.Category   `json:"category"`
	SpreadType     domain.SpreadType `json:"spread_type"`
	Cards          []CardResp        `json:"cards"`
	Interpretation string            `json:"interpretation"`
	Combinations   []CombinationResp `json:"combinations,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type CardResp struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	LocalizedName string             `json:"localized_name"`
	Suit          domain.Suit        `json:"suit"`
	Number        int                `json:"number,omitempty"`
	Position      int                `json:"position"`
	PositionLabel string             `json:"position_label"`
	Orientation   domain.Orientation `json:"orientation"`
	Keywords      []string           `json:"keywords"`
}

type CombinationResp struct {
	CardIDs        [2]int `json:"card_ids"`
	Strength       string `json:"strength"`
	Interpretation string `json:"interpretation"`
}

type ValidationResp struct {
	Reason     domain.ReasonCode `json:"reason"`
	Suggestion string            `json:"suggestion"`
}

type MetaResp struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// HistoryResponse is the JSON shape returned by GET /v1/readings/recent.
type HistoryResponse struct {
	Count    int           `json:"count"`
	Readings []ReadingResp `json:"readings"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
