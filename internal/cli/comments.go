package cli

import (
	"context"
	"fmt"
)

func (a *App) Comments(ctx context.Context) error {
	problemID, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}

	list := a.comments.Load(ctx, problemID)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No comments yet")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(a.out, "%s  %s (%s): %s\n", c.ID, c.Author, c.CreatedAt.Format("2006-01-02 15:04"), c.Text)
	}
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	problemID, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.problems.ByID(problemID); !ok {
		fmt.Fprintln(a.out, "Problem not found")
		return nil
	}

	text, err := GetSimpleText(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	// commenting is open to everyone; logged-in users sign with their name
	author := ""
	if u, ok := a.auth.CurrentUser(); ok {
		author = u.Name
	}

	a.comments.Load(ctx, problemID)
	comment, res := a.comments.Add(ctx, problemID, text, author)
	if !res.Success {
		fmt.Fprintf(a.out, "Comment failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Comment %s added\n", comment.ID)
	return nil
}

func (a *App) Uncomment(ctx context.Context) error {
	if !a.auth.IsAdmin() {
		fmt.Fprintln(a.out, "Only administrators can delete comments")
		return nil
	}

	problemID, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}
	commentID, err := GetSimpleText(a.reader, "Enter comment id", a.out)
	if err != nil {
		return err
	}

	a.comments.Load(ctx, problemID)
	res := a.comments.Delete(ctx, problemID, commentID)
	if !res.Success {
		fmt.Fprintf(a.out, "Delete failed: %s\n", res.Message)
		return nil
	}
	fmt.Fprintln(a.out, "Comment deleted")
	return nil
}
