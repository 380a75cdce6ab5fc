package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/authcorp/libs/go/fantasy/codec"
	"github.com/authcorp/libs/go/fantasy/errors"
	"github.com/authcorp/libs/go/fantasy/optics"
)

// Commands.
const (
	CommandGet  = "get"
	CommandSet  = "set"
	CommandTest = "test"
)

// Usage is printed for malformed command lines.
const Usage = `usage:
  docpath get  --path a.1.b [--default VALUE] FILE
  docpath set  --path a.1.b --value VALUE FILE
  docpath test --path a.1.b --value VALUE FILE

VALUE is parsed as JSON and taken as a plain string when it is not JSON.
Common flags: --config FILE, --output json|yaml`

// Invocation is a parsed command line.
type Invocation struct {
	Command    string
	RawPath    string
	Path       []any
	Value      any
	HasValue   bool
	Default    any
	File       string
	ConfigFile string
	Flags      *pflag.FlagSet
}

// ParseInvocation parses args (without the program name).
func ParseInvocation(args []string, stderr io.Writer) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, usageError("missing command")
	}

	inv := Invocation{Command: args[0]}
	switch inv.Command {
	case CommandGet, CommandSet, CommandTest:
	default:
		return Invocation{}, usageError(fmt.Sprintf("unknown command %q", inv.Command))
	}

	fs := pflag.NewFlagSet(inv.Command, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "dotted path into the document")
	value := fs.String("value", "", "value to write or compare")
	fallback := fs.String("default", "", "value printed when the path holds a falsy value")
	fs.StringVar(&inv.ConfigFile, "config", "", "configuration file")
	fs.String("output", "", "output format (json or yaml)")

	if err := fs.Parse(args[1:]); err != nil {
		return Invocation{}, usageError(err.Error())
	}
	if fs.NArg() != 1 {
		return Invocation{}, usageError("expected exactly one FILE")
	}
	if !fs.Changed("path") {
		return Invocation{}, usageError("--path is required")
	}

	inv.File = fs.Arg(0)
	inv.RawPath = *path
	inv.Path = optics.ParsePath(*path)
	inv.Flags = fs

	if fs.Changed("value") {
		inv.Value = codec.ParseValue(*value)
		inv.HasValue = true
	}
	if inv.Command != CommandGet && !inv.HasValue {
		return Invocation{}, usageError("--value is required")
	}
	if fs.Changed("default") {
		inv.Default = codec.ParseValue(*fallback)
	}
	return inv, nil
}

func usageError(msg string) error {
	return errors.IncorrectArgs().WithDetail("reason", msg).WithCause(fmt.Errorf("%s", msg))
}
