package jsonrepair

import (
	"encoding/json"
	"testing"
)

func TestRepairValidInputUnchanged(t *testing.T) {
	repaired, ok := Repair(`{"ideas":[{"content":"buy milk"}]}`)
	if !ok {
		t.Fatal("expected valid input to pass through")
	}
	if repaired != `{"ideas":[{"content":"buy milk"}]}` {
		t.Fatalf("unexpected repaired output %q", repaired)
	}
}

func TestRepairCodeFence(t *testing.T) {
	repaired, ok := Repair("```json\n{\"multiple_ideas\": false}\n```")
	if !ok {
		t.Fatal("expected code-fenced JSON to be repaired")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		t.Fatalf("repaired output not parseable: %v", err)
	}
}

func TestRepairTrailingComma(t *testing.T) {
	repaired, ok := Repair(`{"tags": ["a", "b",], "sequence": 1,}`)
	if !ok {
		t.Fatal("expected trailing commas to be repaired")
	}
	var payload struct {
		Tags     []string `json:"tags"`
		Sequence int      `json:"sequence"`
	}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		t.Fatalf("repaired output not parseable: %v", err)
	}
	if len(payload.Tags) != 2 || payload.Sequence != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestRepairUnbalancedBraces(t *testing.T) {
	repaired, ok := Repair(`{"ideas": [{"content": "call mom", "sequence": 2`)
	if !ok {
		t.Fatal("expected truncated JSON to be repaired")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		t.Fatalf("repaired output not parseable: %v", err)
	}
}

func TestRepairLeadingProse(t *testing.T) {
	repaired, ok := Repair(`Here is the analysis you asked for: {"multiple_ideas": true}`)
	if !ok {
		t.Fatal("expected leading prose to be stripped")
	}
	if repaired != `{"multiple_ideas": true}` {
		t.Fatalf("unexpected repaired output %q", repaired)
	}
}

func TestRepairTrailingJunk(t *testing.T) {
	repaired, ok := Repair(`{"ok": true} hope that helps!`)
	if !ok {
		t.Fatal("expected trailing junk to be dropped")
	}
	if repaired != `{"ok": true}` {
		t.Fatalf("unexpected repaired output %q", repaired)
	}
}

func TestRepairBeyondRepair(t *testing.T) {
	if _, ok := Repair("the model refused to answer"); ok {
		t.Fatal("expected prose-only input to be unrepairable")
	}
	if _, ok := Repair(""); ok {
		t.Fatal("expected empty input to be unrepairable")
	}
}

func TestRepairUnterminatedString(t *testing.T) {
	repaired, ok := Repair(`{"content": "buy mil`)
	if !ok {
		t.Fatal("expected unterminated string to be closed")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		t.Fatalf("repaired output not parseable: %v", err)
	}
}
