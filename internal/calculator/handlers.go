package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"calcd/internal/engine"
	"calcd/internal/handlers"
	"calcd/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Keypress handles POST /calculator/keypress: one keystroke against the
// current display. The editing keys "C" and "DEL" are plain string edits done
// here on the caller side; everything else goes through the sanitizer, which
// absorbs invalid keys as a silent no-op.
func Keypress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.keypress",
		trace.WithAttributes(
			attribute.String("calculator.operation", "keypress"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req KeypressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keypress", CodeInvalidRequest, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	next, err := applyKey(req.Display, req.Key)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keypress", CodeInvalidRequest, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	keystrokeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "keypress")))

	accepted := next != req.Display
	span.SetAttributes(
		attribute.String("calculator.key", req.Key),
		attribute.Bool("calculator.key.accepted", accepted),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("keystroke processed",
		zap.String("key", req.Key),
		zap.Bool("accepted", accepted),
		zap.Int("display_len", len(next)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, KeypressResponse{Display: next, Accepted: accepted})
}

// applyKey performs one keystroke. Editing keys are handled here because the
// sanitizer's contract is append-or-reject only.
func applyKey(display, key string) (string, error) {
	switch key {
	case ClearKey:
		return "", nil
	case DeleteKey:
		if display == "" {
			return "", nil
		}
		return display[:len(display)-1], nil
	}
	if len(key) != 1 {
		return "", fmt.Errorf("key must be a single character, %q or %q", ClearKey, DeleteKey)
	}
	return engine.Sanitize(display, key[0]), nil
}

// Keys handles POST /calculator/keys: replays a whole keystroke sequence
// through the sanitizer, one child span per key. Replaying key by key and
// batching are equivalent because the sanitizer is pure; this endpoint exists
// so clients can rebuild a display without chattering one request per key.
func Keys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.keys",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", CodeInvalidRequest, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if req.Keys == "" {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", CodeInvalidRequest, "no keys provided", errors.New("keys string is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("keys.count", len(req.Keys)),
		attribute.Int("keys.initial_display_len", len(req.Display)),
	)

	display := req.Display
	steps := make([]KeyResult, 0, len(req.Keys))

	for i := 0; i < len(req.Keys); i++ {
		key := req.Keys[i]

		_, keySpan := tracer.Start(ctx, fmt.Sprintf("calculator.keys.%d", i),
			trace.WithAttributes(
				attribute.Int("key.index", i),
				attribute.String("key.char", string(key)),
			),
		)

		next := engine.Sanitize(display, key)
		accepted := next != display
		display = next

		keystrokeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "keys")))

		keySpan.SetAttributes(attribute.Bool("key.accepted", accepted))
		keySpan.SetStatus(codes.Ok, "")
		keySpan.End()

		steps = append(steps, KeyResult{Key: string(key), Display: display, Accepted: accepted})
	}

	span.SetAttributes(attribute.Int("keys.final_display_len", len(display)))
	span.SetStatus(codes.Ok, "")

	logger.Info("keystroke sequence replayed",
		zap.Int("keys", len(req.Keys)),
		zap.String("display", display),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, KeysResponse{Display: display, Steps: steps})
}

// Evaluate handles POST /calculator/evaluate: parses the finished display
// string, computes the left-to-right result, and returns it alongside its
// canonical rendering. Division by zero and malformed input map to distinct
// stable error codes.
func Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("calculator.operation", "evaluate"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", CodeInvalidRequest, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.display", req.Display))

	start := time.Now()
	result, err := engine.Evaluate(req.Display)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		switch {
		case errors.Is(err, engine.ErrDivisionByZero):
			observability.RecordError(ctx, span, logger, errorCounter, "evaluate", CodeDivisionByZero, "division by zero", err, http.StatusUnprocessableEntity, w)
		default:
			observability.RecordError(ctx, span, logger, errorCounter, "evaluate", CodeInvalidExpression, "invalid expression", err, http.StatusBadRequest, w)
		}
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "evaluate"))
	evalCounter.Add(ctx, 1, attrs)
	evalHistogram.Record(ctx, elapsed, attrs)
	lastResultGauge.Record(ctx, result, attrs)

	formatted := engine.Format(result)

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("display evaluated",
		zap.String("display", req.Display),
		zap.Float64("result", result),
		zap.String("formatted", formatted),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Display:   req.Display,
		Result:    result,
		Formatted: formatted,
	})
}
