package pipeline

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"jobportal-backend/internal/analysis"
	"jobportal-backend/internal/extract"
	"jobportal-backend/internal/parse"
	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/telemetry"
)

// Stage names, in execution order.
const (
	StageExtracting           = "extracting"
	StageFieldExtracting      = "field_extracting"
	StageScoring              = "scoring"
	StageSuggestionGenerating = "suggestion_generating"
)

const (
	DefaultExtractTimeout = 30 * time.Second
	DefaultAnalyzeTimeout = 15 * time.Second
	previewLen            = 200
)

// Document is the raw upload handed to a pipeline run. It lives only for
// the duration of one request.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// Result is the typed outcome of a run. Degraded distinguishes placeholder
// output from real extraction without callers inspecting errors.
type Result struct {
	Profile      parse.Profile
	Analysis     analysis.Result
	TextPreview  string
	Degraded     bool
	FailedStages []string
}

// Options bounds per-stage latency. Zero values fall back to the defaults.
type Options struct {
	ExtractTimeout time.Duration
	AnalyzeTimeout time.Duration
}

func (o Options) extractTimeout() time.Duration {
	if o.ExtractTimeout > 0 {
		return o.ExtractTimeout
	}
	return DefaultExtractTimeout
}

func (o Options) analyzeTimeout() time.Duration {
	if o.AnalyzeTimeout > 0 {
		return o.AnalyzeTimeout
	}
	return DefaultAnalyzeTimeout
}

// Run executes the resume pipeline: text extraction, field extraction,
// scoring, suggestion generation. A stage failure or timeout substitutes
// that stage's fallback value and the run continues, so every invocation
// reaches a completed result. Failures are recorded, not raised.
func Run(ctx context.Context, doc Document, opts Options) Result {
	started := time.Now()
	metrics.IncPipelineStarted()

	var res Result
	res.FailedStages = []string{}

	text, err := runStage(ctx, opts.extractTimeout(), func(stageCtx context.Context) (string, error) {
		return extract.Text(stageCtx, doc.Data, doc.MimeType, doc.FileName)
	})
	if err != nil {
		text = extract.Placeholder(doc.FileName)
		res.markFailed(StageExtracting, doc.FileName, err)
	}
	res.TextPreview = preview(text)

	profile, err := runStage(ctx, opts.analyzeTimeout(), func(context.Context) (parse.Profile, error) {
		return parse.Parse(text), nil
	})
	if err != nil {
		profile = parse.EmptyProfile()
		res.markFailed(StageFieldExtracting, doc.FileName, err)
	}
	res.Profile = profile

	scored, err := runStage(ctx, opts.analyzeTimeout(), func(context.Context) (analysis.Result, error) {
		return analysis.Analyze(profile), nil
	})
	if err != nil {
		scored = analysis.Empty()
		res.markFailed(StageScoring, doc.FileName, err)
	}

	suggestions, err := runStage(ctx, opts.analyzeTimeout(), func(context.Context) ([]string, error) {
		return analysis.Suggestions(profile, scored.Completeness, scored.ATSScore), nil
	})
	if err != nil {
		suggestions = []string{}
		res.markFailed(StageSuggestionGenerating, doc.FileName, err)
	}
	scored.Suggestions = suggestions
	res.Analysis = scored

	metrics.IncPipelineCompleted()
	if res.Degraded {
		metrics.IncPipelineDegraded()
	}
	metrics.ObservePipelineDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	return res
}

func (r *Result) markFailed(stage, fileName string, err error) {
	r.Degraded = true
	r.FailedStages = append(r.FailedStages, stage)
	telemetry.Error("pipeline.stage_failed", map[string]any{
		"stage":     stage,
		"file_name": fileName,
		"error":     err.Error(),
	})
}

// runStage executes fn with a timeout, converting panics into errors so a
// misbehaving stage degrades instead of crashing the request.
func runStage[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				var zero T
				done <- outcome{value: zero, err: fmt.Errorf("stage panic: %v", rec)}
			}
		}()
		value, err := fn(stageCtx)
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-stageCtx.Done():
		var zero T
		return zero, stageCtx.Err()
	}
}

func preview(text string) string {
	if len(text) <= previewLen {
		return text
	}
	// Back up to a rune boundary so the cut never leaves an invalid tail.
	cut := previewLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
