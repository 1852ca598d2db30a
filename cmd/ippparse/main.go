// Command ippparse reads an IPPcode24 program from standard input and writes
// its XML representation to standard output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/isa"
)

func main() {
	out := bufio.NewWriter(os.Stdout)

	code := run(os.Args[1:], os.LookupEnv, os.Stdin, out, os.Stderr)
	if err := out.Flush(); err != nil && code == core.ExitOK {
		fmt.Fprintln(os.Stderr, "Error:", err)
		code = core.ExitOutput
	}

	atexit.Exit(code)
}

func run(
	args []string,
	lookup func(string) (string, bool),
	stdin io.Reader,
	stdout, stderr io.Writer,
) int {
	cfg, err := config.FromEnv(lookup)
	if err != nil {
		config.Default().Logger(stderr).Error("Bad configuration", "err", err)
		return core.ExitCode(err)
	}

	logger := cfg.Logger(stderr)
	slog.SetDefault(logger)

	cmd := newRootCommand(cfg, stdin, stdout)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Error("Translation failed", "err", err)
		return core.ExitCode(err)
	}

	return core.ExitOK
}

func newRootCommand(cfg config.Config, stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ippparse",
		Short: "Translate IPPcode24 source into its XML representation",
		Long: `Ippparse reads an IPPcode24 program from standard input, checks every
instruction against the instruction set and writes the program as an XML
document to standard output. The first error stops the translation and
nothing is written.

Environment:
  IPPCODE_LOG_LEVEL  trace, debug, info, warn or error (default info)
  IPPCODE_INDENT     tab, none or 0-8 spaces (default tab)`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			driver := cfg.DriverBuilder().Build("Driver")
			return driver.Translate(stdin, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", core.ErrUsage, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeHelp(c.OutOrStdout(), c)
	})

	return cmd
}

// noArgs accepts an empty command line only. A help flag that reaches this
// point was set to false, which counts as an argument too.
func noArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) > 0:
		return fmt.Errorf("%w: unexpected argument %q", core.ErrUsage, args[0])
	case cmd.ArgsLenAtDash() >= 0:
		return fmt.Errorf("%w: unexpected argument \"--\"", core.ErrUsage)
	case cmd.Flags().Changed("help"):
		return fmt.Errorf("%w: help flag set to false", core.ErrUsage)
	}
	return nil
}

func writeHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "Usage: %s [--help] < program > document\n\n", cmd.Name())
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)

	codes := table.NewWriter()
	codes.SetTitle("Exit codes")
	codes.AppendHeader(table.Row{"Code", "Meaning"})
	codes.AppendRows([]table.Row{
		{core.ExitOK, "success or help"},
		{core.ExitUsage, "invalid argument or environment"},
		{core.ExitInput, "empty or unreadable input"},
		{core.ExitOutput, "output cannot be written"},
		{core.ExitHeader, "missing or invalid .IPPcode24 header"},
		{core.ExitUnknownOpcode, "unknown opcode"},
		{core.ExitSyntax, "wrong argument count or malformed argument"},
	})
	fmt.Fprintln(w, codes.Render())
	fmt.Fprintln(w)

	opcodes := table.NewWriter()
	opcodes.SetTitle(isa.IPPcode24.Name() + " instructions")
	opcodes.AppendHeader(table.Row{"Opcode", "Arguments"})
	for _, name := range isa.IPPcode24.Opcodes() {
		sig, _ := isa.IPPcode24.Lookup(name)
		opcodes.AppendRow(table.Row{name, sig.String()})
	}
	fmt.Fprintln(w, opcodes.Render())
}
