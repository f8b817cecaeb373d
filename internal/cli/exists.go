package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExistsCmd(rt *state) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "exists <path>...",
		Short: "Report whether paths exist",
		Long: `Report whether each path exists, one "<path>\t<true|false>" line per argument.

By default a path that cannot be checked is reported as missing and the
failure is logged. With --strict the command fails instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p := rt.resolve(arg)

				var ok bool
				if strict {
					var err error
					if ok, err = rt.manager.Stat(p); err != nil {
						return err
					}
				} else {
					ok = rt.manager.Exists(p)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", p, ok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a path cannot be checked")
	return cmd
}
