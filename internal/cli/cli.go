package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
)

const programName = "grailpay"

// usageError is printed as is, without the error prefix, and exits with status 1.
type usageError struct {
	message string
}

func (e *usageError) Error() string {
	return e.message
}

// Execute runs one command and returns the process exit code.
//
// Calls that reached the vendor exit with 0 whatever the vendor answered. Usage errors, transport
// failures and unusable configuration exit with 1.
func Execute(args []string, stdout io.Writer, stderr io.Writer) int {
	root := newRootCommand(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		_, _ = fmt.Fprintln(stdout, uerr.message)
		return 1
	}

	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           programName + " <action> [params]",
		Short:         "Command line client for the GrailPay payments api",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{message: actionList()}
			}
			return &usageError{message: fmt.Sprintf("Unknown action: %s", args[0])}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFilename, "configuration file")

	for _, a := range actions() {
		root.AddCommand(a.command(stdout, &configFile))
	}

	return root
}

func (a action) usage() string {
	if len(a.params) == 0 {
		return a.verb
	}
	return a.verb + " " + strings.Join(a.params, " ")
}

func (a action) command(stdout io.Writer, configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   a.usage(),
		Short: a.short,
		Long:  a.long,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != len(a.params) {
				return &usageError{message: fmt.Sprintf("Usage: %s %s", programName, a.usage())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := a.parse(args)
			if err != nil {
				return err
			}
			parsed.cmd = cmd

			s, err := newSession(*configFile, a.needsVendor)
			if err != nil {
				return err
			}
			defer s.close()

			return a.run(s.context(cmd.Context()), s, parsed, stdout)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{message: fmt.Sprintf("Usage: %s %s", programName, a.usage())}
	})
	if a.flags != nil {
		a.flags(cmd)
	}

	return cmd
}

func actionList() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Usage: %s <action> [params]\n", programName))
	b.WriteString("Actions:")
	for _, a := range actions() {
		b.WriteString("\n  ")
		b.WriteString(a.usage())
	}
	return b.String()
}
