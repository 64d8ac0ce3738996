package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/pkg/client"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read, post and moderate comments",
}

var (
	listAllComments bool
	commentAuthor   string
	toggleIDs       []string
)

var commentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published comments (--all for every comment, admin only)",
	RunE:  runCommentsList,
}

var commentsPostCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Leave a comment; it shows up once an admin publishes it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCommentsPost,
}

var commentsModerateCmd = &cobra.Command{
	Use:   "moderate",
	Short: "Flip the visibility of the given comments",
	Long: `Starts from the comments that are published now, flips every id passed
with --toggle and saves the resulting visibility of all comments at once.`,
	RunE: runCommentsModerate,
}

var commentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete comments",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var deleted int64
		err := withSession(cmd, func(c *client.Client, s *client.Session) error {
			var err error
			deleted, err = c.DeleteComments(cmd.Context(), s, args)
			return err
		}, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d comment(s) deleted.\n", deleted)
		return nil
	},
}

func init() {
	commentsListCmd.Flags().BoolVar(&listAllComments, "all", false, "Include hidden comments")
	commentsPostCmd.Flags().StringVar(&commentAuthor, "name", "", "Your name (optional)")
	commentsModerateCmd.Flags().StringSliceVar(&toggleIDs, "toggle", nil, "Comment ids whose visibility is flipped")
	_ = commentsModerateCmd.MarkFlagRequired("toggle")

	commentsCmd.AddCommand(commentsListCmd, commentsPostCmd, commentsModerateCmd, commentsDeleteCmd)
}

func runCommentsList(cmd *cobra.Command, args []string) error {
	var comments []dto.CommentResponse
	if listAllComments {
		err := withSession(cmd, func(c *client.Client, s *client.Session) error {
			var err error
			comments, err = c.ListAllComments(cmd.Context(), s)
			return err
		}, "")
		if err != nil {
			return err
		}
	} else {
		var err error
		if comments, err = newClient().ListComments(cmd.Context()); err != nil {
			return err
		}
	}
	printComments(cmd, comments)
	return nil
}

func printComments(cmd *cobra.Command, comments []dto.CommentResponse) {
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		visible := "hidden"
		if c.IsVisible {
			visible = "visible"
		}
		rows = append(rows, []string{c.ID, c.Name, c.Comment, visible})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "COMMENT", "STATUS"}, rows)
}

func runCommentsPost(cmd *cobra.Command, args []string) error {
	created, err := newClient().PostComment(cmd.Context(), commentAuthor, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Thanks %s, your comment is waiting for moderation.\n", created.Name)
	return nil
}

func runCommentsModerate(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(c *client.Client, s *client.Session) error {
		comments, err := c.ListAllComments(cmd.Context(), s)
		if err != nil {
			return err
		}
		draft := client.NewVisibilityDraft(comments)
		for _, id := range toggleIDs {
			draft.Toggle(id)
		}
		if err := c.UpdateCommentVisibility(cmd.Context(), s, draft.Updates(comments)); err != nil {
			return err
		}
		for i := range comments {
			comments[i].IsVisible = draft.Visible(comments[i].ID)
		}
		printComments(cmd, comments)
		return nil
	}, "Visibility saved.")
}
