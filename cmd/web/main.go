package main

import (
	"fmt"
	"os"
	"strings"

	"portfolio_backend/internal/app"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio dashboard and public portfolio pages",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newSlugCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		configPath string
		env        string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("env") {
				cfg.Server.Env = env
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			config.AppConfig = cfg
			return app.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML config (default $CONFIG_PATH or "+config.DefaultConfigPath+")")
	cmd.Flags().StringVar(&env, "env", "", "environment: development or production")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port")
	return cmd
}

func newSlugCmd() *cobra.Command {
	var transliterate bool

	cmd := &cobra.Command{
		Use:   "slug <title...>",
		Short: "Print the slug derived from a portfolio link title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slugger := utils.Slugger{Transliterate: transliterate}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), slugger.Slug(strings.Join(args, " ")))
			return err
		},
	}

	cmd.Flags().BoolVar(&transliterate, "transliterate", false, "strip accents before slugifying")
	return cmd
}
