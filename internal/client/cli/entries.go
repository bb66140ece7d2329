package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/diary/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

var errUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

func parseID(args []string, format string) (int64, error) {
	if len(args) != 1 {
		return 0, usage(format)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usage(format)
	}
	return id, nil
}

// parsePaging reads optional page and page size. Zero values are left for
// the server to default.
func parsePaging(args []string) (page, pageSize int, err error) {
	const format = "list [page] [pageSize]"
	if len(args) > 2 {
		return 0, 0, usage(format)
	}
	vals := make([]int, 2)
	for i, arg := range args {
		v, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return 0, 0, usage(format)
		}
		vals[i] = v
	}
	return vals[0], vals[1], nil
}

func (a *App) List(ctx context.Context, args []string) error {
	page, pageSize, err := parsePaging(args)
	if err != nil {
		return err
	}

	p, err := a.entryService.List(ctx, page, pageSize)
	if err != nil {
		return err
	}

	if len(p.Items) == 0 {
		fmt.Fprintln(a.out, "No entries")
	} else {
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tMOOD\tTITLE")
		for _, e := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.CreatedAt.Local().Format(timeLayout), e.Mood, e.Title)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d entries)\n", p.Page, p.TotalPages, p.TotalCount)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	e, err := a.entryService.Get(ctx, id)
	if err != nil {
		return err
	}

	printEntry(a, e)
	return nil
}

func printEntry(a *App, e *models.Entry) {
	fmt.Fprintf(a.out, "#%d %s\n", e.ID, e.Title)
	if e.Mood != "" {
		fmt.Fprintf(a.out, "Mood:    %s\n", e.Mood)
	}
	fmt.Fprintf(a.out, "Created: %s\n", e.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(a.out, "Updated: %s\n", e.UpdatedAt.Local().Format(timeLayout))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, e.Content)
}

func (a *App) Add(ctx context.Context) error {
	var in models.EntryInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Mood, err = getSimpleText(a.reader, "Mood (optional)", a.out); err != nil {
		return err
	}
	if in.Content, err = getMultiline(a.reader, "Content", a.out); err != nil {
		return err
	}

	e, err := a.entryService.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created entry #%d\n", e.ID)
	return nil
}

// Edit loads the entry and prompts for each field; an empty answer keeps
// the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args, "edit <id>")
	if err != nil {
		return err
	}

	cur, err := a.entryService.Get(ctx, id)
	if err != nil {
		return err
	}

	in := models.EntryInput{Title: cur.Title, Mood: cur.Mood, Content: cur.Content}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", cur.Title), a.out)
	if err != nil {
		return err
	}
	mood, err := getSimpleText(a.reader, fmt.Sprintf("Mood [%s]", cur.Mood), a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	if title != "" {
		in.Title = title
	}
	if mood != "" {
		in.Mood = mood
	}
	if content != "" {
		in.Content = content
	}

	e, err := a.entryService.Update(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated entry #%d\n", e.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete entry #%d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.entryService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted entry #%d\n", id)
	return nil
}

func (a *App) Export(ctx context.Context) error {
	path, err := a.entryService.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Export saved to %s\n", path)
	return nil
}
