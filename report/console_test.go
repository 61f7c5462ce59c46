package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestConsole_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, ColorNever)

	c.CaseFinished(Outcome{Should: "pass quickly", Passed: true})
	c.CaseFinished(Outcome{Should: "pass slowly", Passed: true, TimedOut: true})
	c.CaseFinished(Outcome{Should: "fail loudly", Passed: false, Err: errors.New("boom")})
	c.RunFinished(Summary{Total: 3, Succeeded: 2})

	want := strings.Join([]string{
		"",
		"it pass quickly ✓",
		"",
		"it pass slowly ✓ (timeout)",
		"",
		"it fail loudly ✗",
		"  boom",
		"",
		"total:3 pass:2 fail:1",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
}

func TestConsole_FailureWithoutErrorDetail(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, ColorNever)

	c.CaseFinished(Outcome{Should: "fail silently", Passed: false})

	got := buf.String()
	if !strings.Contains(got, "it fail silently ✗") {
		t.Errorf("missing failure line in %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected exactly the blank separator and the case line, got %q", got)
	}
}

func TestSummary_Failed(t *testing.T) {
	s := Summary{Total: 5, Succeeded: 3}
	if s.Failed() != 2 {
		t.Errorf("expected 2 failed, got %d", s.Failed())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	if _, ok := r.Summary(); ok {
		t.Fatal("summary should not exist before RunFinished")
	}

	r.CaseFinished(Outcome{Should: "a", Passed: true, Duration: time.Millisecond})
	r.CaseFinished(Outcome{Should: "b", Passed: false})
	r.RunFinished(Summary{Total: 2, Succeeded: 1})

	outcomes := r.Outcomes()
	if len(outcomes) != 2 || outcomes[0].Should != "a" || outcomes[1].Should != "b" {
		t.Errorf("unexpected outcomes %v", outcomes)
	}

	sum, ok := r.Summary()
	if !ok || sum.Total != 2 || sum.Succeeded != 1 {
		t.Errorf("unexpected summary %v ok=%v", sum, ok)
	}
}

func TestMulti_FansOutInOrder(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()
	m := Multi{first, second}

	m.CaseFinished(Outcome{Should: "a", Passed: true})
	m.RunFinished(Summary{Total: 1, Succeeded: 1})

	for i, r := range []*Recorder{first, second} {
		if len(r.Outcomes()) != 1 {
			t.Errorf("reporter %d missed the outcome", i)
		}
		if _, ok := r.Summary(); !ok {
			t.Errorf("reporter %d missed the summary", i)
		}
	}
}
