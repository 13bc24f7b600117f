package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyaoi/mdedit/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "List configuration keys and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, o := range config.GetConfigOptions() {
				if _, err := fmt.Fprintf(out, "%-24s %-14v %s\n", o.Key, o.Default, o.Comment); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
