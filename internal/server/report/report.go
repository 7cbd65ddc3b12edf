// Package report holds the ErrorReporter implementations the server wires
// into the access verifier.
package report

import (
	"context"

	"github.com/SteveJRobertson/gatekeeper/internal/logging"
	"github.com/SteveJRobertson/gatekeeper/internal/server/access"
)

// LogReporter writes denial messages to the structured log.
type LogReporter struct {
	logger logging.Logger
}

// NewLogReporter constructs a reporter on the given logger.
func NewLogReporter(logger logging.Logger) *LogReporter {
	return &LogReporter{logger: logger.With("module", "access_reporter")}
}

// Report logs the message at warn level. The message is the whole payload;
// usernames never appear here.
func (r *LogReporter) Report(ctx context.Context, message string) {
	r.logger.Warn(ctx, message)
}

// MultiReporter fans a report out to several reporters in order.
type MultiReporter struct {
	reporters []access.ErrorReporter
}

// NewMultiReporter composes the given reporters.
func NewMultiReporter(reporters ...access.ErrorReporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

// Report forwards the message to every composed reporter.
func (r *MultiReporter) Report(ctx context.Context, message string) {
	for _, rep := range r.reporters {
		rep.Report(ctx, message)
	}
}
