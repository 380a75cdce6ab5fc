package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/authcorp/libs/go/fantasy/codec"
	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
	"github.com/authcorp/libs/go/fantasy/logging"
	"github.com/authcorp/libs/go/fantasy/optics"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitError    = 2
)

// Streams carries the process output streams.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// NewLogger creates the structured logger described by cfg. Records go to
// the error stream so they never mix with command output.
func NewLogger(cfg *Config, streams Streams) *slog.Logger {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Writer: streams.Err,
	})
}

// Runner executes parsed invocations.
type Runner struct {
	cfg     *Config
	logger  *slog.Logger
	tracer  trace.Tracer
	streams Streams
}

// NewRunner creates a Runner.
func NewRunner(cfg *Config, logger *slog.Logger, tracer trace.Tracer, streams Streams) *Runner {
	return &Runner{cfg: cfg, logger: logger, tracer: tracer, streams: streams}
}

// Run executes inv and returns the process exit code. Each run gets its own
// span and a run_id shared by every log record it emits.
func (r *Runner) Run(inv Invocation) int {
	runID := uuid.NewString()
	ctx, span := r.tracer.Start(context.Background(), "docpath."+inv.Command,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("docpath.run_id", runID),
			attribute.String("docpath.path", inv.RawPath),
			attribute.String("docpath.file", inv.File),
		),
	)
	defer span.End()

	logger := r.logger.With("run_id", runID, "command", inv.Command, "path", inv.RawPath, "file", inv.File)
	code, err := r.execute(ctx, inv, logger)
	span.SetAttributes(attribute.Int("docpath.exit_code", code))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fmt.Fprintf(r.streams.Err, "docpath: %v\n", err)
	}
	return code
}

func (r *Runner) execute(ctx context.Context, inv Invocation, logger *slog.Logger) (int, error) {
	doc, format, err := r.load(inv.File)
	if err != nil {
		return ExitError, err
	}
	logger.DebugContext(ctx, "document loaded", "format", format)

	out, err := r.outputCodec(format)
	if err != nil {
		return ExitError, err
	}

	switch inv.Command {
	case CommandGet:
		value := optics.PathOr(inv.Path, doc, inv.Default)
		logger.InfoContext(ctx, "path read", "found", data.Truthy(value))
		return r.print(out, value)

	case CommandSet:
		updated, err := optics.AssocPath(inv.Path, inv.Value, doc)
		if err != nil {
			return ExitError, err
		}
		logger.InfoContext(ctx, "path written")
		return r.print(out, updated)

	case CommandTest:
		if optics.PathEq(inv.Path, doc, inv.Value) {
			logger.InfoContext(ctx, "path matches")
			return ExitOK, nil
		}
		logger.InfoContext(ctx, "path does not match")
		return ExitMismatch, nil
	}
	return ExitError, errors.IncorrectArgs().WithDetail("command", inv.Command)
}

func (r *Runner) load(file string) (any, codec.Format, error) {
	format, err := codec.FormatFromPath(file)
	if err != nil {
		return nil, "", err
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", file)
	}
	c, err := codec.New(format, 0)
	if err != nil {
		return nil, "", err
	}
	doc, err := codec.DecodeEither(c, raw).TryGet()
	if err != nil {
		return nil, "", err
	}
	return doc, format, nil
}

func (r *Runner) outputCodec(input codec.Format) (codec.Codec, error) {
	format := input
	if r.cfg.Output.Format != "" {
		parsed, err := codec.ParseFormat(r.cfg.Output.Format)
		if err != nil {
			return nil, err
		}
		format = parsed
	}
	return codec.New(format, r.cfg.Output.Indent)
}

// print writes strings as they are and encodes everything else.
func (r *Runner) print(c codec.Codec, value any) (int, error) {
	if s, ok := value.(string); ok {
		fmt.Fprintln(r.streams.Out, s)
		return ExitOK, nil
	}

	encoded := codec.EncodeEither(c, value)
	if encoded.IsLeft() {
		return ExitError, encoded.LeftValue()
	}
	raw := encoded.Get()
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		raw = append(raw, '\n')
	}
	if _, err := r.streams.Out.Write(raw); err != nil {
		return ExitError, errors.Wrap(err, "writing result")
	}
	return ExitOK, nil
}
