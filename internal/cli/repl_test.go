package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func (f *fakeExec) Articles(ctx context.Context) error {
	f.calls = append(f.calls, "articles")
	return nil
}

func (f *fakeExec) Article(ctx context.Context, id string) error {
	f.calls = append(f.calls, "article")
	f.args = append(f.args, id)
	return nil
}

func (f *fakeExec) Search(ctx context.Context, keyword string) error {
	f.calls = append(f.calls, "search")
	f.args = append(f.args, keyword)
	return nil
}

func (f *fakeExec) Write(ctx context.Context) error {
	f.calls = append(f.calls, "write")
	return nil
}

func (f *fakeExec) Publish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "publish")
	f.args = append(f.args, id)
	return nil
}

func (f *fakeExec) Bookmarks(ctx context.Context) error {
	f.calls = append(f.calls, "bookmarks")
	return nil
}

func (f *fakeExec) Notifications(ctx context.Context) error {
	f.calls = append(f.calls, "notifications")
	return nil
}

func (f *fakeExec) Read(ctx context.Context, id string) error {
	f.calls = append(f.calls, "read")
	f.args = append(f.args, id)
	return nil
}

func (f *fakeExec) ReadAll(ctx context.Context) error {
	f.calls = append(f.calls, "read-all")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"articles",
		"article a42",
		"search golang concurrency",
		"write",
		"publish a42",
		"notifications",
		"read 7",
		"read-all",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	require.Equal(t, []string{
		"login", "articles", "article", "search", "write",
		"publish", "notifications", "read", "read-all", "logout",
	}, exec.calls)
	require.Equal(t, []string{"a42", "golang concurrency", "a42", "7"}, exec.args)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("articles")))
	require.Equal(t, []string{"articles"}, exec.calls)
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	input := strings.NewReader("\n   \narticles\nquit\n")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))
	require.Equal(t, []string{"articles"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("articles\n")))
	require.Empty(t, exec.calls)
}
