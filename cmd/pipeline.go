package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aruiz/qagate/internal/chatbot"
	"github.com/aruiz/qagate/internal/config"
	"github.com/aruiz/qagate/internal/embedding"
	"github.com/aruiz/qagate/internal/quality"
	"github.com/aruiz/qagate/internal/responselog"
	"github.com/aruiz/qagate/internal/safety"
)

// pipeline wires the full evaluation path: transport, scoring engine,
// safety gate, and response log.
type pipeline struct {
	cfg     config.Config
	client  chatbot.Client
	engine  *quality.Engine
	checker *safety.Checker
	store   *responselog.Store
}

// newPipeline builds the pipeline from the environment and command flags.
// Configuration errors abort here, before any scoring.
func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if useMock, _ := cmd.Flags().GetBool("mock"); useMock {
		cfg.Chatbot.UseMock = true
		cfg.Embedding.Provider = "mock"
	}

	scorer := quality.NewScorer(func(ctx context.Context) (embedding.Embedder, error) {
		return embedding.New(ctx, cfg.Embedding)
	})

	engine, err := quality.NewEngine(cfg.Quality, nil, scorer)
	if err != nil {
		return nil, err
	}

	checker, err := safety.NewChecker(safety.DefaultVocabulary())
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve response log path: %w", err)
	}
	store, err := responselog.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open response log: %w", err)
	}

	return &pipeline{
		cfg:     cfg,
		client:  chatbot.New(cfg.Chatbot),
		engine:  engine,
		checker: checker,
		store:   store,
	}, nil
}

func (p *pipeline) Close() {
	p.client.Close()
	p.store.Close()
}

// evaluation is the outcome for one question.
type evaluation struct {
	Response *quality.Response
	Scores   quality.ScoreBreakdown
	Safety   safety.Result
}

// evaluate fetches, scores, safety-checks, and persists one question.
func (p *pipeline) evaluate(ctx context.Context, question string) (*evaluation, error) {
	resp, err := p.client.Ask(ctx, question)
	if err != nil {
		return nil, err
	}

	scores := p.engine.DetailedScores(ctx, resp, question)

	var validator quality.Validator
	answer := validator.AnswerText(resp)
	safetyResult := p.checker.Check(answer)

	rec := &responselog.Record{
		Question:     question,
		Answer:       answer,
		Scores:       &scores,
		Safe:         safetyResult.Safe,
		SafetyReason: safetyResult.Reason,
	}
	if resp.StatusCode != nil {
		rec.StatusCode = *resp.StatusCode
	}
	if resp.ResponseTime != nil {
		rec.ResponseTime = *resp.ResponseTime
	}
	if err := p.store.Save(ctx, rec); err != nil {
		// The verdict is still useful without a log entry.
		fmt.Println(warnStyle.Render("warning: ") + "failed to persist response: " + err.Error())
	}

	return &evaluation{Response: resp, Scores: scores, Safety: safetyResult}, nil
}

// printBreakdown renders one evaluation's full score breakdown.
func printBreakdown(ev *evaluation) {
	s := ev.Scores

	fmt.Printf("  %s %-12s %.3f\n", dimStyle.Render("·"), "structural", s.StructuralScore)
	fmt.Printf("  %s %-12s %.3f\n", dimStyle.Render("·"), "content", s.ContentScore)
	fmt.Printf("  %s %-12s %.3f\n", dimStyle.Render("·"), "semantic", s.SemanticScore)
	fmt.Printf("  %s %-12s %.3f (threshold %.2f)\n", dimStyle.Render("·"), "overall", s.OverallScore, s.Threshold)

	d := s.ContentDetails
	fmt.Printf("  %s code=%v keywords=%d frameworks=%d structure=%v length=%d\n",
		dimStyle.Render("·"),
		d.HasCodeExamples, d.KeywordCount, len(d.FrameworksMentioned), d.HasStructure, d.Length)

	safetyLabel := passStyle.Render("safe")
	if !ev.Safety.Safe {
		safetyLabel = failStyle.Render(ev.Safety.Reason)
	}
	fmt.Printf("  %s %-12s %s\n", dimStyle.Render("·"), "safety", safetyLabel)

	fmt.Printf("  verdict: %s\n", verdict(s.PassesThreshold && ev.Safety.Safe))
}
