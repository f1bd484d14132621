// Package report renders coverage results as text tables.
package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/notjagan/moveset/pkg/coverage"
	"github.com/notjagan/moveset/pkg/learnset"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var learnsetHeaders = []string{"Name", "Level Learned", "Method"}

type Printer struct {
	w     io.Writer
	re    *lipgloss.Renderer
	width int
	title cases.Caser

	err error
}

// New returns a Printer writing to w. Tables are capped at width columns when width is
// positive.
func New(w io.Writer, width int) *Printer {
	return &Printer{
		w:     w,
		re:    lipgloss.NewRenderer(w),
		width: width,
		title: cases.Title(language.English),
	}
}

// Err reports the first write error, after which the Printer writes nothing.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func (p *Printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) table(border lipgloss.Border) *table.Table {
	cell := p.re.NewStyle().Padding(0, 1)
	t := table.New().
		Border(border).
		BorderStyle(p.re.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		})
	if p.width > 0 {
		t.Width(p.width)
	}

	return t
}

func (p *Printer) Title(name string) string {
	return p.title.String(name)
}

func (p *Printer) Identity(pokemon, version string) {
	t := p.table(lipgloss.RoundedBorder()).
		Rows(
			[]string{"Pokemon", p.Title(pokemon)},
			[]string{"Game", strings.ToUpper(version)},
		)

	p.println(t.Render())
	p.println()
}

func (p *Printer) NoDamagingMoves(pokemon string) {
	p.printf("%s cannot learn any damaging moves.\n", p.Title(pokemon))
}

func (p *Printer) MoveTypes(pokemon string, types []string) {
	p.printf("ALL DAMAGING MOVE TYPES FOR %s:\n", strings.ToUpper(pokemon))
	p.println(strings.Join(types, ", "))
	p.println()
}

func (p *Printer) Learnset(pokemon string, ls learnset.Learnset) {
	p.printf("DAMAGING MOVES LEARNED BY %s:\n", strings.ToUpper(pokemon))
	p.println()

	for _, typ := range ls.Types() {
		entries := slices.Clone(ls[typ])
		slices.SortStableFunc(entries, func(a, b learnset.Entry) int {
			return strings.Compare(a.Method.String(), b.Method.String())
		})

		rows := lo.Map(entries, func(e learnset.Entry, _ int) []string {
			level := "N/A"
			if e.Level != nil {
				level = strconv.Itoa(*e.Level)
			}
			return []string{p.Title(e.Name), level, p.Title(e.Method.String())}
		})

		t := p.table(lipgloss.NormalBorder()).
			Headers(learnsetHeaders...).
			Rows(rows...)

		p.println(strings.ToUpper(typ))
		p.println(t.Render())
		p.println()
	}
}

func (p *Printer) Sketch() {
	p.println("Smeargle can learn all move types by using its special move Sketch.")
	p.println("Use Sketch to copy any of these type combos:")
	p.println()
}

func (p *Printer) Options(result coverage.Result) {
	for i, option := range result.Options {
		t := p.table(lipgloss.DoubleBorder()).
			Rows(
				[]string{"Types", "", strings.Join(option.Types, ", ")},
				[]string{"Covered", strconv.Itoa(option.Covered.Len()), strings.Join(option.Covered.Sorted(), ", ")},
				[]string{"Not covered", strconv.Itoa(option.NotCovered.Len()), strings.Join(option.NotCovered.Sorted(), ", ")},
			)

		p.printf("Option %d\n", i+1)
		p.println(t.Render())
	}
}
