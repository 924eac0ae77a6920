package todo

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, text string) *List {
	t.Helper()
	l, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return l
}

func TestParseRoundTripIdentity(t *testing.T) {
	texts := []string{
		"",
		"pick abc123 First commit\n",
		"pick abc123 First commit\nsquash def456 Second commit\n# Rebase help text\n",
		"# comment only\n\n# another\n",
		"p abc123 short alias spelling kept\n",
		"pick   abc123    odd   spacing preserved\n",
		"frobnicate widget with args\n",
		"exec make test -v ./...\n",
		"break\n",
		"label onto\nreset onto\nmerge -C deadbee topic\nupdate-ref refs/heads/x\n",
		"\n\n\n",
		"pick abc123 no trailing newline",
	}
	for _, text := range texts {
		l := mustParse(t, text)
		if got := l.Serialize(); got != text {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", text, got)
		}
	}
}

func TestParseClassifiesLines(t *testing.T) {
	l := mustParse(t, "# top\npick abc123 First commit\n\nexec echo hi there\n")
	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}
	if l.IsStep(0) || l.IsStep(2) {
		t.Error("comment and blank lines should be filler")
	}
	if !l.IsStep(1) || !l.IsStep(3) {
		t.Error("instruction lines should be steps")
	}

	e, err := l.Entry(1)
	if err != nil {
		t.Fatal(err)
	}
	s := e.Step()
	if s.Token != "pick" || s.Ref != "abc123" || s.Summary != "First commit" {
		t.Errorf("step = %+v", s)
	}

	e, _ = l.Entry(3)
	s = e.Step()
	if s.Token != "exec" || s.Ref != "echo" || s.Summary != "hi there" {
		t.Errorf("exec step = %+v", s)
	}
}

func TestParseUnknownVerbKept(t *testing.T) {
	l := mustParse(t, "frobnicate ref trailing  text\n")
	if !l.IsStep(0) {
		t.Fatal("unknown verb should still parse as a step")
	}
	e, _ := l.Entry(0)
	if _, ok := e.Step().Action(); ok {
		t.Error("frobnicate should not resolve to a known action")
	}
	if got := l.Serialize(); got != "frobnicate ref trailing  text\n" {
		t.Errorf("unknown verb line changed: %q", got)
	}
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, err := Parse("pick abc123 ok\n" + string([]byte{0xff, 0xfe, 0xfd}))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}

func TestLookupAliases(t *testing.T) {
	cases := map[string]Action{
		"p": ActionPick, "pick": ActionPick,
		"r": ActionReword, "e": ActionEdit, "s": ActionSquash,
		"f": ActionFixup, "x": ActionExec, "b": ActionBreak,
		"d": ActionDrop, "l": ActionLabel, "t": ActionReset,
		"m": ActionMerge, "u": ActionUpdateRef, "update-ref": ActionUpdateRef,
	}
	for token, want := range cases {
		got, ok := Lookup(token)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", token, got, ok, want)
		}
	}
	if Known("frobnicate") {
		t.Error("frobnicate should not be a known verb")
	}
}

func TestStepTextAfterEdit(t *testing.T) {
	l := mustParse(t, "p abc123 keep me\n")
	if err := l.SetAction(0, "squash"); err != nil {
		t.Fatal(err)
	}
	if got := l.Serialize(); got != "squash abc123 keep me\n" {
		t.Errorf("serialize after edit = %q", got)
	}
}

func TestSetActionNormalizesAlias(t *testing.T) {
	l := mustParse(t, "pick abc123 msg\n")
	if err := l.SetAction(0, "s"); err != nil {
		t.Fatal(err)
	}
	if got := l.Serialize(); got != "squash abc123 msg\n" {
		t.Errorf("alias should be written canonically, got %q", got)
	}
}

func TestCycleAction(t *testing.T) {
	order := []Action{ActionPick, ActionReword, ActionEdit, ActionSquash, ActionFixup, ActionDrop, ActionPick}
	for i := 0; i < len(order)-1; i++ {
		if got := CycleAction(order[i]); got != order[i+1] {
			t.Errorf("CycleAction(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
	if got := CycleAction(ActionExec); got != ActionPick {
		t.Errorf("CycleAction(exec) = %s, want pick", got)
	}
}

func TestSuggest(t *testing.T) {
	cases := map[string]Action{
		"sqash":  ActionSquash,
		"pik":    ActionPick,
		"fixupp": ActionFixup,
		"zzzzzz": "",
	}
	for token, want := range cases {
		if got := Suggest(token); got != want {
			t.Errorf("Suggest(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestTakesCommit(t *testing.T) {
	l := mustParse(t, "pick abc123 x\nexec make\nlabel onto\n")
	e, _ := l.Entry(0)
	if !e.Step().TakesCommit() {
		t.Error("pick should take a commit")
	}
	for _, i := range []int{1, 2} {
		e, _ := l.Entry(i)
		if e.Step().TakesCommit() {
			t.Errorf("line %d should not take a commit", i)
		}
	}
}
