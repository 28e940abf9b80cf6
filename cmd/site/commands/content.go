package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-content-site"
)

func postsCmd() *cobra.Command {
	var (
		limit    int
		term     string
		category string
	)
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the newest posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := module.Content().ListPosts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			posts = site.FilterPosts(posts, term, category)
			for _, post := range posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", post.ID, post.Title,
					site.Summary(post.Content, settings.Content.ExcerptLength))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum posts (default from config)")
	cmd.Flags().StringVar(&term, "term", "", "filter by text in title, body or category")
	cmd.Flags().StringVar(&category, "category", "", "filter by category slug")
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := module.Categories().ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			for _, cat := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cat.Slug, cat.Name)
			}
			return nil
		},
	}
}

func categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <slug>",
		Short: "Show a category page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := module.Categories().LoadPage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", page.Error)
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
}

func subscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Add an address to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := module.Content().Subscribe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result.AlreadySubscribed {
				fmt.Fprintln(cmd.OutOrStdout(), "already subscribed")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "subscribed")
			return nil
		},
	}
}

func contactCmd() *cobra.Command {
	var msg site.ContactMessage
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact form message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := module.Content().SendContactMessage(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&msg.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "sender email")
	cmd.Flags().StringVar(&msg.Message, "message", "", "message body")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
