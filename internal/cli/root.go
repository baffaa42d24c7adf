package cli

import (
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/config"
	"github.com/spf13/cobra"
)

const (
	flagVersion = "version"
	flagLicense = "license"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "asimov-account",
		Short: "ASIMOV Account Command-Line Interface (CLI)",
		Long: "asimov-account manages NEAR accounts: it checks, imports, lists,\n" +
			"registers and deletes them, keeping a local record of known accounts.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The root command only prints help, version or license.
			if !cmd.HasParent() {
				return nil
			}
			return a.wire(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.ran = true
			return a.runRoot(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	config.RegisterFlags(root.PersistentFlags())
	root.Flags().BoolP(flagVersion, "V", false, "Print version information and exit")
	root.Flags().Bool(flagLicense, false, "Print license information and exit")

	root.AddCommand(
		newFindCmd(a),
		newImportCmd(a),
		newListCmd(a),
		newRegisterCmd(a),
		newDeleteCmd(a),
	)
	return root
}

func (a *app) runRoot(cmd *cobra.Command) error {
	fs := cmd.Flags()

	if v, _ := fs.GetBool(flagVersion); v {
		verbosity, _ := fs.GetCount(config.FlagVerbose)
		a.printVersion(verbosity)
		return nil
	}
	if l, _ := fs.GetBool(flagLicense); l {
		fmt.Fprint(a.stdout, licenseText)
		return nil
	}

	cmd.SetOut(a.stderr)
	_ = cmd.Help()
	return ErrNoCommand
}

func (a *app) printVersion(verbosity int) {
	fmt.Fprintf(a.stdout, "asimov-account %s\n", a.buildInfo.BuildVersion())
	if verbosity >= 1 {
		fmt.Fprintf(a.stdout, "Build date: %s\n", a.buildInfo.BuildDate())
		fmt.Fprintf(a.stdout, "Build commit: %s\n", a.buildInfo.BuildCommit())
	}
}

// run marks the command as started and runs fn. It wraps every RunE so
// that errors from fn are told apart from argument errors.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.ran = true
		return fn(cmd, args)
	}
}
