package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/idilsaglam/happy/internal/command"
	"github.com/idilsaglam/happy/internal/ui"
)

// execLine runs one line and returns what the session printed.
func execLine(t *testing.T, s *Session, out *bytes.Buffer, line string) (string, State, error) {
	t.Helper()
	out.Reset()
	state, err := s.Execute(line)
	return out.String(), state, err
}

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(&out), &out
}

func mustExec(t *testing.T, s *Session, out *bytes.Buffer, line string) string {
	t.Helper()
	got, state, err := execLine(t, s, out, line)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", line, err)
	}
	if state != Running {
		t.Fatalf("%q: expected running, got %v", line, state)
	}
	return got
}

func TestTodoAdds(t *testing.T) {
	s, out := newTestSession()

	got := mustExec(t, s, out, "todo read book")
	want := "Got it. I've added this task:\n\t[✗][T] read book\nNow you have 1 tasks in the list.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if s.store.Len() != 1 {
		t.Errorf("expected 1 task, got %d", s.store.Len())
	}
}

func TestTodoJoinsTokensWithSingleSpaces(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo   read\t\tthe  book ")

	task, err := s.store.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if task.Description != "read the book" {
		t.Errorf("expected %q, got %q", "read the book", task.Description)
	}
}

func TestDeadlineSplitsOnBy(t *testing.T) {
	s, out := newTestSession()

	got := mustExec(t, s, out, "deadline return book /by Sunday")
	if !strings.Contains(got, "\t[✗][D] return book (by: Sunday)\n") {
		t.Errorf("unexpected output %q", got)
	}
	task, _ := s.store.Get(0)
	if task.Description != "return book" || task.When != "Sunday" {
		t.Errorf("unexpected task %#v", task)
	}
}

func TestEventSplitsOnAt(t *testing.T) {
	s, out := newTestSession()

	mustExec(t, s, out, "event project meeting /at Mon 2-4pm")
	task, _ := s.store.Get(0)
	if task.Description != "project meeting" || task.When != "Mon 2-4pm" {
		t.Errorf("unexpected task %#v", task)
	}
}

func TestDatedTaskUsesFirstSeparator(t *testing.T) {
	s, out := newTestSession()

	mustExec(t, s, out, "deadline a /by b /by c")
	task, _ := s.store.Get(0)
	if task.Description != "a" || task.When != "b /by c" {
		t.Errorf("unexpected task %#v", task)
	}
}

func TestAddErrors(t *testing.T) {
	const (
		empty   = "The description of a task cannot be empty.\n"
		keyword = "Invalid argument! It may be resulted from:\n1. No date/time provided\n2. keywords not matching\n"
	)
	tests := []struct {
		line string
		want string
	}{
		{"todo", empty},
		{"deadline", empty},
		{"deadline /by Sunday", empty},
		{"event /at Monday", empty},
		{"deadline return book", keyword},
		{"deadline return book /by", keyword},
		{"deadline return book /at Sunday", keyword},
		{"event party /by Friday", keyword},
		{"event party /at", keyword},
		{"deadline return book /BY Sunday", keyword},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, out := newTestSession()
			got := mustExec(t, s, out, tt.line)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if s.store.Len() != 0 {
				t.Errorf("expected no task added, got %d", s.store.Len())
			}
		})
	}
}

func TestRunningCountIgnoresFailures(t *testing.T) {
	s, out := newTestSession()
	lines := []string{
		"todo a",
		"deadline /by x",
		"deadline b /by x",
		"todo",
		"done 9",
		"event c /at y",
		"list extra",
	}

	added := 0
	for _, line := range lines {
		got := mustExec(t, s, out, line)
		if strings.HasPrefix(got, "Got it.") {
			added++
			want := fmt.Sprintf("Now you have %d tasks in the list.\n", added)
			if !strings.HasSuffix(got, want) {
				t.Errorf("%q: expected count line %q in %q", line, want, got)
			}
		}
	}
	if added != 3 || s.store.Len() != 3 {
		t.Errorf("expected 3 additions, got %d (store %d)", added, s.store.Len())
	}
}

func TestList(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo read book")
	mustExec(t, s, out, "event party /at Friday")
	mustExec(t, s, out, "done 2")

	got := mustExec(t, s, out, "list")
	want := "Here is your task List:\n1. [✗][T] read book\n2. [✓][E] party (at: Friday)\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = mustExec(t, s, out, "list all")
	if got != "Command \"list\" requires no argument. Please try again!\n" {
		t.Errorf("unexpected arity message %q", got)
	}
}

func TestDone(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo read book")

	got := mustExec(t, s, out, "done 1")
	want := "Nice! I've marked this task as done:\n\t[✓][T] read book\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// idempotent
	if got := mustExec(t, s, out, "done 1"); got != want {
		t.Errorf("second done: expected %q, got %q", want, got)
	}

	got = mustExec(t, s, out, "done 5")
	if got != "Invalid input! (Index cannot be out of bounds)\n" {
		t.Errorf("unexpected bounds message %q", got)
	}
	if s.store.Len() != 1 {
		t.Errorf("store changed on bounds error")
	}
}

func TestIndexArgumentErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"done", `Command "done" requires an integer argument. Please try again!`},
		{"done 1 2", `Command "done" requires an integer argument. Please try again!`},
		{"done one", `Command "done" only requires an integer argument. Please try again!`},
		{"delete", `Command "delete" requires an integer argument. Please try again!`},
		{"delete 1.5", `Command "delete" only requires an integer argument. Please try again!`},
		{"delete 0", "Invalid input! (Index cannot be out of bounds)"},
		{"delete -3", "Invalid input! (Index cannot be out of bounds)"},
		{"done 2", "Invalid input! (Index cannot be out of bounds)"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, out := newTestSession()
			mustExec(t, s, out, "todo only task")
			got := mustExec(t, s, out, tt.line)
			if got != tt.want+"\n" {
				t.Errorf("expected %q, got %q", tt.want+"\n", got)
			}
			task, _ := s.store.Get(0)
			if s.store.Len() != 1 || task.Done {
				t.Error("store changed on error")
			}
		})
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo first")
	mustExec(t, s, out, "todo second")

	got := mustExec(t, s, out, "delete 1")
	want := "Noted. I've removed this task:\n\t[✗][T] first\nNow you have 1 tasks in the list.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = mustExec(t, s, out, "list")
	if got != "Here is your task List:\n1. [✗][T] second\n" {
		t.Errorf("unexpected list %q", got)
	}
}

func TestFind(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo read book")
	mustExec(t, s, out, "todo buy milk")
	mustExec(t, s, out, "deadline return book /by Sunday")

	got := mustExec(t, s, out, "find book")
	want := "Here are the matching tasks in your list:\n1. [✗][T] read book\n3. [✗][D] return book (by: Sunday)\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := mustExec(t, s, out, "find tea"); got != "No matching task found.\n" {
		t.Errorf("unexpected empty result %q", got)
	}

	got = mustExec(t, s, out, "find read book")
	if got != "Command \"find\" requires 1 argument as keyword. Please try again!\n" {
		t.Errorf("unexpected arity message %q", got)
	}
	if s.store.Len() != 3 {
		t.Errorf("find mutated store")
	}
}

func TestSearchMatchesExactDate(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "deadline essay /by 2 Dec 2019")
	mustExec(t, s, out, "event party /at 2019")
	mustExec(t, s, out, "todo 2019")

	got := mustExec(t, s, out, "search 2019")
	want := "Here are the tasks on 2019:\n2. [✗][E] party (at: 2019)\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := mustExec(t, s, out, "search Dec"); got != "No task found on Dec.\n" {
		t.Errorf("unexpected empty result %q", got)
	}
	got = mustExec(t, s, out, "search")
	if got != "Command \"search\" requires a date argument. Please try again!\n" {
		t.Errorf("unexpected arity message %q", got)
	}
}

func TestBye(t *testing.T) {
	s, out := newTestSession()

	got, state, err := execLine(t, s, out, "bye extra")
	if err != nil || state != Running {
		t.Fatalf("bye extra: state %v err %v", state, err)
	}
	if got != "Command \"bye\" requires no argument. Please try again!\n" {
		t.Errorf("unexpected message %q", got)
	}

	got, state, err = execLine(t, s, out, "bye")
	if err != nil || state != Stopped {
		t.Fatalf("bye: state %v err %v", state, err)
	}
	if got != "Bye. Hope to see you again soon!\n" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestHelp(t *testing.T) {
	s, out := newTestSession()
	got := mustExec(t, s, out, "help")
	for _, kw := range command.Keywords() {
		if !strings.Contains(got, "\t"+Usage(kw)+"\n") {
			t.Errorf("help missing %q", Usage(kw))
		}
	}
	if got := mustExec(t, s, out, "help me"); got != "Command \"help\" requires no argument. Please try again!\n" {
		t.Errorf("unexpected arity message %q", got)
	}
}

func TestUnrecognizedCommand(t *testing.T) {
	s, out := newTestSession()
	for _, line := range []string{"", "   ", "dummy", "todos read"} {
		got, state, err := execLine(t, s, out, line)
		if !errors.Is(err, ErrUnrecognizedCommand) {
			t.Errorf("%q: expected ErrUnrecognizedCommand, got %v", line, err)
		}
		if state != Running {
			t.Errorf("%q: expected running", line)
		}
		if got != "" {
			t.Errorf("%q: session should print nothing, got %q", line, got)
		}
	}
}

func TestKeywordsIgnoreCase(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "TODO read book")
	if got := mustExec(t, s, out, "List"); !strings.Contains(got, "1. [✗][T] read book") {
		t.Errorf("unexpected list %q", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a, outA := newTestSession()
	b, outB := newTestSession()
	mustExec(t, a, outA, "todo only in a")

	if got := mustExec(t, b, outB, "list"); got != "Here is your task List:\n" {
		t.Errorf("session b sees foreign tasks: %q", got)
	}
}

func TestSessionTheme(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, WithTheme(ui.ThemeByName("mono")), WithColor(false))
	mustExec(t, s, &out, "todo x")
	mustExec(t, s, &out, "done 1")
	if out.String() != "Nice! I've marked this task as done:\n\t[X][T] x\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestStats(t *testing.T) {
	s, out := newTestSession()
	mustExec(t, s, out, "todo a")
	mustExec(t, s, out, "todo b")
	mustExec(t, s, out, "done 2")
	done, pending := s.Stats()
	if done != 1 || pending != 1 {
		t.Errorf("expected 1/1, got %d/%d", done, pending)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExecuteReturnsWriteErrors(t *testing.T) {
	s := NewSession(failingWriter{})
	_, err := s.Execute("list")
	if err == nil || !strings.Contains(err.Error(), "write output: disk full") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestInputErrorString(t *testing.T) {
	err := inputErr(TypeError, command.Done, errors.New("bad"))
	if err.Error() != "done: type error: bad" {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, err.Err) {
		t.Error("expected Unwrap to expose cause")
	}
}
