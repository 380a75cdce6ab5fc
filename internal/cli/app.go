// Package cli implements the docpath command: read, write and test values
// at a path inside a JSON or YAML document.
package cli

import (
	"fmt"

	"go.uber.org/fx"
)

// Run parses args, assembles the application and executes the command,
// returning the process exit code. extra options are applied after the
// defaults, so they can decorate or replace any provided component.
func Run(args []string, streams Streams, extra ...fx.Option) int {
	inv, err := ParseInvocation(args, streams.Err)
	if err != nil {
		fmt.Fprintf(streams.Err, "docpath: %v\n\n%s\n", err, Usage)
		return ExitError
	}

	code := ExitError
	options := []fx.Option{
		fx.NopLogger,
		fx.Supply(inv, streams),
		fx.Provide(
			LoadConfig,
			NewLogger,
			NewTracer,
			NewRunner,
		),
	}
	options = append(options, extra...)
	options = append(options, fx.Invoke(func(r *Runner) {
		code = r.Run(inv)
	}))

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		fmt.Fprintf(streams.Err, "docpath: %v\n", err)
		return ExitError
	}
	return code
}
