package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-content-site/internal/markup"
)

func renderCmd() *cobra.Command {
	var (
		plain bool
		out   string
	)
	cmd := &cobra.Command{
		Use:         "render [file]",
		Short:       "Render markdown from a file or stdin to sanitised HTML",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src []byte
				err error
			)
			if len(args) == 1 {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			var result string
			if plain {
				result = markup.StripDocument(string(src))
			} else {
				result = markup.NewRenderer(markup.DefaultParseOptions()).Render(string(src)).String()
			}
			if out != "" {
				return atomic.WriteFile(out, strings.NewReader(result+"\n"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print plain text instead of HTML")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file atomically instead of stdout")
	return cmd
}
