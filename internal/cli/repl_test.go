package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                    { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error  { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error     { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error    { return s.record("logout") }
func (s *stubExec) Whoami(ctx context.Context) error    { return s.record("whoami") }
func (s *stubExec) List(ctx context.Context) error      { return s.record("list") }
func (s *stubExec) Report(ctx context.Context) error    { return s.record("report") }
func (s *stubExec) Show(ctx context.Context) error      { return s.record("show") }
func (s *stubExec) Status(ctx context.Context) error    { return s.record("status") }
func (s *stubExec) Edit(ctx context.Context) error      { return s.record("edit") }
func (s *stubExec) Delete(ctx context.Context) error    { return s.record("delete") }
func (s *stubExec) Comments(ctx context.Context) error  { return s.record("comments") }
func (s *stubExec) Comment(ctx context.Context) error   { return s.record("comment") }
func (s *stubExec) Uncomment(ctx context.Context) error { return s.record("uncomment") }
func (s *stubExec) Attach(ctx context.Context) error    { return s.record("attach") }
func (s *stubExec) Image(ctx context.Context) error     { return s.record("image") }

func runWithInput(t *testing.T, exec *stubExec, input string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "test" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runWithInput(t, exec, "login\nlist\nreport\ncomment\nattach\nlogout\nexit\n")

	assert.Equal(t, []string{"login", "list", "report", "comment", "attach", "logout"}, exec.calls)
}

func TestRunREPL_ListShortcut(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "l\nexit\n")
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &stubExec{}
	printed := runWithInput(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	joined := strings.Join(printed, "")
	assert.Contains(t, joined, "Unknown command")
	assert.Contains(t, joined, "frobnicate")
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "\n\n   \nwhoami\nexit\n")
	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "list\n") // no exit, scanner runs dry
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_HelpVariesWithLogin(t *testing.T) {
	anon := runWithInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(anon, ""), "register, login")

	authed := runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(authed, ""), "logout")
}
