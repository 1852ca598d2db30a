// Command ippverify decodes an IPPcode24 XML document from standard input,
// prints its instruction listing and, when given the source program,
// checks that the document is what the translator produces for it.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/document"
	"github.com/sarchlab/ippcode/isa"
	"github.com/sarchlab/ippcode/verify"
)

func main() {
	code := run(os.Args[1:], os.LookupEnv, os.Stdin, os.Stdout, os.Stderr)
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
		logger.Error("Verification failed", "err", err)
		return core.ExitCode(err)
	}

	return core.ExitOK
}

type options struct {
	source string
	report string
}

func newRootCommand(cfg config.Config, stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ippverify [--source program.ipp] [--report file] < document.xml",
		Short: "Check an IPPcode24 XML document",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", core.ErrUsage, args[0])
			}
			return nil
		},

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return verifyDocument(cfg, opts, stdin, stdout)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "",
		"source program the document is expected to translate")
	cmd.Flags().StringVarP(&opts.report, "report", "o", "",
		"also save the report to this file")

	cmd.SetOut(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", core.ErrUsage, err)
	})

	return cmd
}

func verifyDocument(cfg config.Config, opts *options, stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrInput, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return core.ErrEmptyInput
	}

	doc, err := document.Decode(bytes.NewReader(data), isa.IPPcode24)
	if err != nil {
		return err
	}

	var issues []verify.Issue
	if opts.source != "" {
		src, err := os.ReadFile(opts.source)
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrInput, err)
		}

		want, err := cfg.DriverBuilder().Build("Driver").Parse(bytes.NewReader(src))
		if err != nil {
			return fmt.Errorf("%s: %w", opts.source, err)
		}

		issues = verify.RoundTrip(want.Instructions(), data, isa.IPPcode24)
		slog.Debug("Compared with source",
			"source", opts.source, "issues", len(issues))
	}

	report := verify.NewReport(doc, issues)
	report.WriteReport(stdout)

	if opts.report != "" {
		if err := report.SaveReportToFile(opts.report); err != nil {
			return fmt.Errorf("%w: %v", core.ErrOutput, err)
		}
	}

	if !report.OK() {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, issue.Message)
		}
		return fmt.Errorf("%w: %d issues: %s",
			core.ErrStructure, len(issues), strings.Join(msgs, "; "))
	}

	return nil
}
