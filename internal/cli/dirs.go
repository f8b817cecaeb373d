package cli

import (
	"fmt"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/spf13/cobra"
)

func newMkdirCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path> [relative]",
		Short: "Create a directory and its missing parents",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := rt.resolve(args[0])
			relative := ""
			if len(args) == 2 {
				relative = args[1]
			}

			if err := rt.manager.CreateDirectory(base, relative); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base.Complete(relative))
			return nil
		},
	}
}

func newCwdCmd(rt *state) *cobra.Command {
	var revertTo string

	cmd := &cobra.Command{
		Use:   "cwd",
		Short: "Print the working directory, recovering if it was deleted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := rt.manager.HomePath()
			if revertTo != "" {
				fallback = rt.resolve(revertTo)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.manager.SafeCurrentPath(fallback))
			return nil
		},
	}

	cmd.Flags().StringVar(&revertTo, "revert-to", "", "directory to move to when the working directory is gone (default: home)")
	return cmd
}

func newChdirCmd(rt *state) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "chdir <path>",
		Short: "Change into a directory and print the resulting working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.manager.MakeCurrentPath(rt.resolve(args[0]), create); err != nil {
				return err
			}
			cwd, err := rt.manager.CurrentPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cwd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "create the directory first if it is missing")
	return cmd
}

// statusMark renders an existence flag for listings.
func statusMark(m paths.Existence, p paths.FilePath) string {
	if m.Exists(p) {
		return "ok"
	}
	return "missing"
}
