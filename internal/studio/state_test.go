package studio

import (
	"testing"

	"adcraft/internal/engine"
)

func sampleResult() *engine.GenerateResponse {
	return &engine.GenerateResponse{
		AdCopy1:          "A",
		AdCopy2:          "B",
		CreativeBrief:    "C",
		PerformanceScore: 12.5,
	}
}

func TestReduceSubmitLifecycle(t *testing.T) {
	s := State{}

	s = Reduce(s, InputChanged{Inputs: Inputs{ProgramName: "Go Bootcamp", TargetAudience: "working engineers"}})
	if s.Phase != PhaseIdle {
		t.Fatalf("phase after input = %v, want idle", s.Phase)
	}

	s = Reduce(s, SubmitStarted{Seq: 1})
	if s.Phase != PhaseLoading {
		t.Errorf("phase after start = %v, want loading", s.Phase)
	}
	if s.Seq != 1 {
		t.Errorf("seq = %d, want 1", s.Seq)
	}

	s = Reduce(s, SubmitSucceeded{Seq: 1, Result: sampleResult()})
	if s.Phase != PhaseSucceeded {
		t.Errorf("phase after success = %v, want succeeded", s.Phase)
	}
	if s.Result == nil {
		t.Fatal("result is nil after success")
	}
	if s.Result.AdCopy1 != "A" {
		t.Errorf("result ad copy = %q, want %q", s.Result.AdCopy1, "A")
	}
	if s.Err != "" {
		t.Errorf("err = %q, want empty after success", s.Err)
	}
}

func TestReduceSubmitFailed(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitFailed{Seq: 1, Msg: "network down"})

	if s.Phase != PhaseFailed {
		t.Errorf("phase = %v, want failed", s.Phase)
	}
	if s.Err != "network down" {
		t.Errorf("err = %q, want %q", s.Err, "network down")
	}
	if s.Result != nil {
		t.Error("result set alongside error")
	}
}

func TestReduceFailureClearsPreviousResult(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitSucceeded{Seq: 1, Result: sampleResult()})
	s = Reduce(s, SubmitStarted{Seq: 2})
	s = Reduce(s, SubmitFailed{Seq: 2, Msg: "Failed to generate creative."})

	if s.Result != nil {
		t.Error("stale result survived a failed attempt")
	}
	if s.Err != "Failed to generate creative." {
		t.Errorf("err = %q, want %q", s.Err, "Failed to generate creative.")
	}
}

func TestReduceRetryClearsError(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitFailed{Seq: 1, Msg: "network down"})
	s = Reduce(s, SubmitStarted{Seq: 2})

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
	if s.Err != "" {
		t.Errorf("err = %q, want cleared on new attempt", s.Err)
	}
}

func TestReduceEditPreservesResult(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitSucceeded{Seq: 1, Result: sampleResult()})

	s = Reduce(s, InputChanged{Inputs: Inputs{ProgramName: "New Program", TargetAudience: "someone else", Localize: true}})

	if s.Phase != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded after edit", s.Phase)
	}
	if s.Result == nil || s.Result.CreativeBrief != "C" {
		t.Error("result lost after input edit")
	}
	if s.Inputs.ProgramName != "New Program" {
		t.Errorf("program name = %q, want %q", s.Inputs.ProgramName, "New Program")
	}
}

func TestReduceStaleSuccessDiscarded(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitStarted{Seq: 2})

	stale := sampleResult()
	stale.AdCopy1 = "stale"
	s = Reduce(s, SubmitSucceeded{Seq: 1, Result: stale})

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want still loading after stale success", s.Phase)
	}
	if s.Result != nil {
		t.Error("stale result applied")
	}

	s = Reduce(s, SubmitSucceeded{Seq: 2, Result: sampleResult()})
	if s.Phase != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded", s.Phase)
	}
	if s.Result.AdCopy1 != "A" {
		t.Errorf("result ad copy = %q, want the current attempt's", s.Result.AdCopy1)
	}
}

func TestReduceStaleFailureDiscarded(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitStarted{Seq: 2})
	s = Reduce(s, SubmitSucceeded{Seq: 2, Result: sampleResult()})

	s = Reduce(s, SubmitFailed{Seq: 1, Msg: "network down"})

	if s.Phase != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded kept over stale failure", s.Phase)
	}
	if s.Err != "" {
		t.Errorf("err = %q, want empty", s.Err)
	}
	if s.Result == nil {
		t.Error("result cleared by stale failure")
	}
}

func TestReduceDoubleSettleIgnored(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 1})
	s = Reduce(s, SubmitSucceeded{Seq: 1, Result: sampleResult()})

	s = Reduce(s, SubmitFailed{Seq: 1, Msg: "late failure"})

	if s.Phase != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded after duplicate settle", s.Phase)
	}
	if s.Err != "" {
		t.Errorf("err = %q, want empty", s.Err)
	}
}

func TestReduceStaleStartIgnored(t *testing.T) {
	s := State{}
	s = Reduce(s, SubmitStarted{Seq: 3})
	s = Reduce(s, SubmitSucceeded{Seq: 3, Result: sampleResult()})

	s = Reduce(s, SubmitStarted{Seq: 2})

	if s.Phase != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded after stale start", s.Phase)
	}
	if s.Seq != 3 {
		t.Errorf("seq = %d, want 3", s.Seq)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := State{Inputs: Inputs{ProgramName: "Go Bootcamp"}, Phase: PhaseIdle}

	_ = Reduce(before, SubmitStarted{Seq: 1})

	if before.Phase != PhaseIdle || before.Seq != 0 {
		t.Errorf("reduce mutated its input: %+v", before)
	}
}
