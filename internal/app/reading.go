package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/ports"
)

// ReadingRequest is the application-level input (no HTTP types).
// Category and SpreadType may be empty; an empty category switches the
// selector to keyword-only mode.
type ReadingRequest struct {
	Question   string
	Category   string
	SpreadType string
}

// ReadingResponse is the application-level output.
type ReadingResponse struct {
	Reading    domain.Reading
	Validation domain.ValidationResult
	Model      string
	LatencyMS  int64
}

// ReadingService orchestrates validation, card selection, combination
// scoring, narrative composition and optional LLM enrichment.
type ReadingService struct {
	catalog     ports.CatalogStore
	interpreter ports.Interpreter
	history     *History
	logger      *slog.Logger
	now         func() time.Time
}

// NewReadingService wires the service. interpreter may be nil, in which
// case every reading uses the template narrative.
func NewReadingService(catalog ports.CatalogStore, interpreter ports.Interpreter, history *History, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		catalog:     catalog,
		interpreter: interpreter,
		history:     history,
		logger:      logger,
		now:         time.Now,
	}
}

// PerformReading runs the full pipeline for one question. A rejected
// question is not an error: the returned Reading has no cards and
// carries the rejection suggestion as its interpretation.
func (s *ReadingService) PerformReading(ctx context.Context, req ReadingRequest) (ReadingResponse, error) {
	st := domain.ResolveSpreadType(req.SpreadType)
	cat := domain.ParseCategory(req.Category)

	validation := domain.ValidateQuestion(req.Question)
	if !validation.IsValid {
		return ReadingResponse{
			Reading: domain.Reading{
				ID:             uuid.NewString(),
				Question:       req.Question,
				Category:       cat,
				SpreadType:     st,
				Cards:          []domain.SelectedCard{},
				Interpretation: domain.RejectionNarrative(validation),
				CreatedAt:      s.now(),
			},
			Validation: validation,
			Model:      "template",
		}, nil
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("load catalog: %w", err)
	}

	// The raw category drives selection mode: empty means keyword-only.
	cards, err := domain.SelectSpread(catalog, domain.SpreadSize(st), req.Question, req.Category)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("select spread: %w", err)
	}

	draft := domain.ComposeNarrative(st, cards, cat, req.Question)
	combos := domain.PairCombinations(cards)

	interpretation, model, latency := s.enrich(ctx, st, cat, req.Question, cards, draft)

	reading := domain.Reading{
		ID:             uuid.NewString(),
		Question:       req.Question,
		Category:       cat,
		SpreadType:     st,
		Cards:          cards,
		Interpretation: interpretation,
		Combinations:   combos,
		CreatedAt:      s.now(),
	}

	if s.history != nil {
		s.history.Add(reading)
	}

	return ReadingResponse{
		Reading:    reading,
		Validation: validation,
		Model:      model,
		LatencyMS:  latency,
	}, nil
}

// enrich asks the LLM for a richer interpretation and falls back to the
// template draft on any failure. Composition never fails outright.
func (s *ReadingService) enrich(ctx context.Context, st domain.SpreadType, cat domain.Category, question string, cards []domain.SelectedCard, draft string) (text, model string, latencyMS int64) {
	if s.interpreter == nil {
		return draft, "template", 0
	}

	raw := make([]domain.Card, len(cards))
	for i, sc := range cards {
		raw[i] = sc.Card
	}

	in := ports.InterpretInput{
		Spread:    string(st),
		Category:  string(cat),
		Question:  question,
		Strength:  string(domain.CombinationStrengthOf(raw)),
		Pattern:   string(domain.DetectSpecialPattern(raw)),
		Cards:     toCardInputs(st, cards, cat),
		DraftText: draft,
	}

	start := time.Now()
	out, err := s.interpreter.Interpret(ctx, in)
	latencyMS = time.Since(start).Milliseconds()

	if err != nil {
		s.logger.WarnContext(ctx, "LLM enrichment failed, using template narrative", "error", err)
		return draft, "template", latencyMS
	}
	return out.Text, out.Model, latencyMS
}

// PerformSingleCardReading draws one card for the question.
func (s *ReadingService) PerformSingleCardReading(ctx context.Context, question, category string) (ReadingResponse, error) {
	return s.PerformReading(ctx, ReadingRequest{Question: question, Category: category, SpreadType: string(domain.SpreadSingle)})
}

// PerformThreeCardReading draws the past/present/future triple.
func (s *ReadingService) PerformThreeCardReading(ctx context.Context, question, category string) (ReadingResponse, error) {
	return s.PerformReading(ctx, ReadingRequest{Question: question, Category: category, SpreadType: string(domain.SpreadThreeCard)})
}

// PerformRelationshipReading draws the five-card relationship spread.
func (s *ReadingService) PerformRelationshipReading(ctx context.Context, question, category string) (ReadingResponse, error) {
	return s.PerformReading(ctx, ReadingRequest{Question: question, Category: category, SpreadType: string(domain.SpreadRelationship)})
}

// PerformCelticCrossReading draws the full ten-position cross.
func (s *ReadingService) PerformCelticCrossReading(ctx context.Context, question, category string) (ReadingResponse, error) {
	return s.PerformReading(ctx, ReadingRequest{Question: question, Category: category, SpreadType: string(domain.SpreadCelticCross)})
}

func toCardInputs(st domain.SpreadType, cards []domain.SelectedCard, cat domain.Category) []ports.CardInput {
	out := make([]ports.CardInput, len(cards))
	for i, sc := range cards {
		o := sc.Orientation()
		out[i] = ports.CardInput{
			Name:          sc.Card.Name,
			LocalizedName: sc.Card.LocalizedName,
			PositionLabel: domain.PositionLabel(st, sc.Position),
			Orientation:   string(o),
			Keywords:      sc.Card.Keywords(o),
			Meaning:       sc.Card.Interpretation(o, cat),
		}
	}
	return out
}
