package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kyaoi/mdedit/internal/app"
	"github.com/kyaoi/mdedit/internal/config"
)

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the mdedit command.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:           "mdedit [file]",
		Short:         "Markdown editor with a live preview",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			if err := config.CheckConfigValidity(v); err != nil {
				return err
			}
			cfg := config.FromViper(v)

			closer, err := config.SetupLogging(cfg, debug)
			if err != nil {
				return err
			}
			defer closer.Close()

			target := ""
			if len(args) == 1 {
				target = filepath.Clean(args[0])
			}
			return app.Run(cmd.Context(), cfg, target)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level (needs log.file)")
	cmd.AddCommand(newConfigCmd())

	return cmd
}
