package embedding

import (
	"context"
	"errors"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	first, err := m.Embed(ctx, []string{"what is regression testing"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := m.Embed(ctx, []string{"what is regression testing"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if len(first) != 1 || len(first[0]) != mockDim {
		t.Fatalf("unexpected vector shape: %d x %d", len(first), len(first[0]))
	}
	for i := range first[0] {
		if first[0][i] != second[0][i] {
			t.Fatalf("vectors differ at index %d", i)
		}
	}
}

func TestMockEmbedder_CaseInsensitiveTokens(t *testing.T) {
	m := NewMockEmbedder()

	vecs, err := m.Embed(context.Background(), []string{"Unit Testing", "unit testing"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for i := range vecs[0] {
		if vecs[0][i] != vecs[1][i] {
			t.Fatal("expected identical vectors for case-variant texts")
		}
	}
}

func TestMockEmbedder_RecordsCalls(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	m.Embed(ctx, []string{"a"})
	m.Embed(ctx, []string{"b", "c"})

	if m.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", m.CallCount())
	}
	if len(m.Calls[1]) != 2 || m.Calls[1][0] != "b" {
		t.Errorf("unexpected recorded call: %v", m.Calls[1])
	}
}

func TestMockEmbedder_ForcedError(t *testing.T) {
	m := NewMockEmbedder()
	m.Err = errors.New("boom")

	if _, err := m.Embed(context.Background(), []string{"a"}); err == nil {
		t.Error("expected forced error")
	}
	if m.CallCount() != 1 {
		t.Errorf("failed calls must still be recorded, got %d", m.CallCount())
	}
}
