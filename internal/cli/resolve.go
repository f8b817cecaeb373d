package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Expand ~ and relative paths without touching them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), rt.resolve(arg))
			}
			return nil
		},
	}
}

func newCanonicalCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <path>",
		Short: "Print the absolute, symlink-free form of an existing path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := rt.manager.Canonicalize(rt.resolve(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return nil
		},
	}
}
