package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLayoutCmd(rt *state) *cobra.Command {
	var (
		root   string
		ensure bool
		appID  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show or create the application directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				root = rt.cfg.Paths.Root
			}
			layout := rt.manager.Layout(root)

			dirs := layout.StandardDirectories()
			if appID != "" {
				app := layout.App(appID)
				if ensure {
					if err := app.Ensure(rt.manager); err != nil {
						return err
					}
				}
				dirs = append(dirs, app.DataDir(), app.ConfigDir(), app.CacheDir(), app.TempDir())
			}
			if ensure {
				if err := layout.Ensure(rt.manager); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, dir := range dirs {
				fmt.Fprintf(w, "%s\t%s\n", dir, statusMark(rt.manager, dir))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "layout root, may start with ~ (default: AGENTOS_ROOT)")
	cmd.Flags().BoolVar(&ensure, "ensure", false, "create missing directories")
	cmd.Flags().StringVar(&appID, "app", "", "also include the directories of this app")
	return cmd
}
