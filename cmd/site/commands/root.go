package commands

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	site "github.com/goliatone/go-content-site"
)

var (
	envFiles []string
	logLevel string
	module   *site.Module
	settings site.Config
)

// offline marks commands that run without the store configuration.
const offline = "offline"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "site",
		Short:        "Content site pipeline: posts, categories, exercises",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[offline] == "true" {
				return nil
			}
			cfg, err := site.LoadConfig(envFiles...)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			m, err := site.New(cfg)
			if err != nil {
				return err
			}
			settings, module = cfg, m
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override SITE_LOG_LEVEL")

	root.AddCommand(
		serveCmd(),
		postsCmd(),
		categoriesCmd(),
		categoryCmd(),
		exercisesCmd(),
		exerciseCmd(),
		subscribeCmd(),
		contactCmd(),
		renderCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
