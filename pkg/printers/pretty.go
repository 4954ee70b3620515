// Package printers renders ritual views for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/glyph"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/ledger"
	"tableflip.dev/ritual/pkg/progress"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1700000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Category prints a category view with today's counters.
func (pp *PrettyPrint) Category(view *app.CategoryView) {
	pp.TitleWithCount(view.Title, len(view.Rows))
	if view.RolledOver {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("all done, starting over")
	}
	if len(view.Rows) == 0 {
		pp.none()
		return
	}
	for _, r := range view.Rows {
		pp.Row(r)
	}
	fmt.Println("")
}

// Row prints a single item line.
func (pp *PrettyPrint) Row(r app.Row) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	if pp.ShowID {
		id := r.Item.ID.String()
		_, _ = y.Print(id)
		if pad := len(spacing) - len(id); pad > 0 {
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
	}

	star := " "
	if r.Favorite {
		star = glyph.Favorite.Symbol
	}
	mark, c := stateMark(r.State)
	_, _ = c.Printf("%s %s %-9s %s", star, mark, counter(r), r.Item.Text)
	switch r.Item.Kind {
	case item.KindOverridden:
		_, _ = color.New(color.Faint).Printf(" %s", glyph.Overridden.Symbol)
	case item.KindCustom:
		_, _ = color.New(color.Faint).Printf(" %s", glyph.Custom.Symbol)
	}
	fmt.Println("")
}

func stateMark(s progress.State) (string, *color.Color) {
	mark := glyph.ForState(s).Symbol
	switch s {
	case progress.StateCompleted:
		return mark, color.New(color.FgGreen)
	case progress.StateSkipped:
		return mark, color.New(color.Faint, color.CrossedOut)
	default:
		return mark, color.New()
	}
}

func counter(r app.Row) string {
	if r.State == progress.StateSkipped {
		return "skipped"
	}
	return fmt.Sprintf("%d/%d", r.Count, r.Target)
}

// Categories prints the browsable categories.
func (pp *PrettyPrint) Categories(cats []app.CategoryInfo) {
	pp.Title("Categories")
	if len(cats) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range cats {
		kind := ""
		if c.Custom {
			kind = "custom"
		}
		tbl.AddRow(c.Key, c.Title, c.Items, kind)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Entries prints pinned or recent entries.
func (pp *PrettyPrint) Entries(title string, entries []ledger.Entry) {
	pp.Title(title)
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		tbl.AddRow(e.ID, e.Type, e.Title, e.Path)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Report prints the statistics summary, newest day first.
func (pp *PrettyPrint) Report(r app.Report) {
	pp.Title("Progress")
	c := color.New(color.Faint)
	_, _ = c.Printf("window %s, streak %d day(s), %d completed, %d skipped, %d taps\n\n", r.Window, r.Streak, r.Completed, r.Skipped, r.Taps)
	if len(r.Days) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "COMPLETED", "SKIPPED", "IN PROGRESS", "UNRESOLVED", "TAPS")
	for i := len(r.Days) - 1; i >= 0; i-- {
		d := r.Days[i]
		tbl.AddRow(d.Day, d.Completed, d.Skipped, d.InProgress, d.Unresolved, d.Taps)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// JSON prints v as indented JSON.
func JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(color.Output, string(b))
	return err
}
