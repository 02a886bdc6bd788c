package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/app"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

const maxQuestionLength = 500

type Handler struct {
	svc     *app.ReadingService
	history *app.History
}

func NewHandler(svc *app.ReadingService, history *app.History) *Handler {
	return &Handler{svc: svc, history: history}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/readings", h.CreateReading)
	e.GET("/v1/readings/recent", h.RecentReadings)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateReading performs a full reading. Question rejection is a normal
// 200 response with an empty-card reading, not an error.
func (h *Handler) CreateReading(c echo.Context) error {
	var body ReadingRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if len([]rune(body.Question)) > maxQuestionLength {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	resp, err := h.svc.PerformReading(c.Request().Context(), app.ReadingRequest{
		Question:   body.Question,
		Category:   body.Category,
		SpreadType: body.Spread,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusOK, toEnvelope(resp, requestID))
}

// RecentReadings returns the bounded in-memory history, newest first.
func (h *Handler) RecentReadings(c echo.Context) error {
	recent := h.history.Recent()
	readings := make([]ReadingResp, len(recent))
	for i, r := range recent {
		readings[i] = toReadingResp(r)
	}
	return c.JSON(http.StatusOK, HistoryResponse{Count: len(readings), Readings: readings})
}

func toEnvelope(r app.ReadingResponse, requestID string) ReadingEnvelope {
	env := ReadingEnvelope{
		Success:  true,
		Type:     string(r.Reading.SpreadType),
		Question: r.Reading.Question,
		Reading:  toReadingResp(r.Reading),
		Meta: MetaResp{
			Model:     r.Model,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
		Timestamp: time.Now(),
	}
	if !r.Validation.IsValid {
		env.Validation = &ValidationResp{
			Reason:     r.Validation.Reason,
			Suggestion: r.Validation.Suggestion,
		}
	}
	return env
}

func toReadingResp(r domain.Reading) ReadingResp {
	cards := make([]CardResp, len(r.Cards))
	for i, sc := range r.Cards {
		o := sc.Orientation()
		cards[i] = CardResp{
			ID:            sc.Card.ID,
			Name:          sc.Card.Name,
			LocalizedName: sc.Card.LocalizedName,
			Suit:          sc.Card.Suit,
			Number:        sc.Card.Number,
			Position:      sc.Position,
			PositionLabel: domain.PositionLabel(r.SpreadType, sc.Position),
			Orientation:   o,
			Keywords:      sc.Card.Keywords(o),
		}
	}

	combos := make([]CombinationResp, len(r.Combinations))
	for i, cb := range r.Combinations {
		combos[i] = CombinationResp{
			CardIDs:        cb.CardIDs,
			Strength:       string(cb.Strength),
			Interpretation: cb.Interpretation,
		}
	}

	return ReadingResp{
		ID:             r.ID,
		Category:       r.Category,
		SpreadType:     r.SpreadType,
		Cards:          cards,
		Interpretation: r.Interpretation,
		Combinations:   combos,
		CreatedAt:      r.CreatedAt,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	// Selection preconditions are guarded by spread sizing, so anything
	// reaching here is an infrastructure fault (catalog load included).
	slog.Error("internal error", "request_id", requestID, "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
