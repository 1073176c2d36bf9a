package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ifrof/IFROF-WP/pkg/seeder"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code:
// 0 on success, 1 for unreadable or malformed datasets, 2 for anything else.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	g := &globals{}
	cmd := newRootCmd(g)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if closeErr := g.close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "blogseed: %v\n", err)
		if seeder.IsInputError(err) {
			return 1
		}
		return 2
	}
	return 0
}
