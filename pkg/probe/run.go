package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// DefaultQueries are the queries checked when none are given.
var DefaultQueries = []string{
	"LED lighting",
	"Cotton textile",
	"CNC machinery parts in Shenzhen",
}

// Searcher runs a single search query.
type Searcher interface {
	Search(ctx context.Context, query string) Result
}

// Run sends each query in order and prints a status block per query to w,
// followed by a summary table. A failed query is reported and the run
// continues; the error is non-nil only when ctx is cancelled.
func Run(ctx context.Context, s Searcher, queries []string, w io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(queries))

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := s.Search(ctx, q)
		results = append(results, res)
		printResult(w, res)

		if res.OK() {
			slog.Debug("search succeeded", "query", q, "status", res.Status, "duration", res.Duration, "requestId", res.RequestID)
		} else {
			slog.Warn("search failed", "query", q, "status", res.Status, "duration", res.Duration, "requestId", res.RequestID, "error", res.Err)
		}
	}

	printSummary(w, results)
	return results, nil
}

func printResult(w io.Writer, res Result) {
	_, _ = fmt.Fprintf(w, "Query: %s\n", res.Query)
	if res.Err != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", res.Err)
	} else {
		_, _ = fmt.Fprintf(w, "Status: %d\n", res.Status)
		_, _ = fmt.Fprintf(w, "Duration: %.2fs\n", res.Duration.Seconds())
		if res.OK() {
			_, _ = fmt.Fprintln(w, "Result: SUCCESS")
		} else {
			_, _ = fmt.Fprintf(w, "Result: FAILED - %s\n", res.Body)
		}
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 20))
}

func printSummary(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Query", "Status", "Duration", "Result"})

	passed := 0
	for _, r := range results {
		status := "-"
		if r.Err == nil {
			status = fmt.Sprint(r.Status)
		}
		outcome := "FAILED"
		if r.OK() {
			outcome = "SUCCESS"
			passed++
		}
		t.AppendRow(table.Row{r.Query, status, fmt.Sprintf("%.2fs", r.Duration.Seconds()), outcome})
	}
	t.AppendFooter(table.Row{"", "", "passed", fmt.Sprintf("%d/%d", passed, len(results))})
	t.Render()
}
