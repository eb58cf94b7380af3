package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katariya/portfolio/internal/catalog"
)

// UI writes CLI messages and project listings.
type UI struct {
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// New creates a UI writing to stdout and stderr.
func New() *UI {
	return &UI{Out: os.Stdout, ErrOut: os.Stderr}
}

type level int

const (
	levelInfo level = iota
	levelSuccess
	levelWarning
	levelError
)

// marks holds the prefix of each level. Warnings and errors go to ErrOut.
var marks = map[level]struct {
	symbol string
	color  *color.Color
	stderr bool
}{
	levelInfo:    {"i", color.New(color.FgHiBlue), false},
	levelSuccess: {"✓", color.New(color.FgHiGreen), false},
	levelWarning: {"⚠", color.New(color.FgHiYellow), true},
	levelError:   {"✗", color.New(color.FgHiRed), true},
}

func (u *UI) emit(l level, format string, a []any) {
	m := marks[l]
	w := u.Out
	if m.stderr {
		w = u.ErrOut
	}
	fmt.Fprintln(w, m.color.Sprint(m.symbol), fmt.Sprintf(format, a...))
}

func (u *UI) Info(format string, a ...any)    { u.emit(levelInfo, format, a) }
func (u *UI) Success(format string, a ...any) { u.emit(levelSuccess, format, a) }
func (u *UI) Warning(format string, a ...any) { u.emit(levelWarning, format, a) }
func (u *UI) Error(format string, a ...any)   { u.emit(levelError, format, a) }

// Verbosef prints only when Verbose is set.
func (u *UI) Verbosef(format string, a ...any) {
	if u.Verbose {
		u.emit(levelInfo, format, a)
	}
}

var statusColors = map[string]*color.Color{
	"done":        color.New(color.FgHiGreen),
	"shipped":     color.New(color.FgHiGreen),
	"live":        color.New(color.FgHiGreen),
	"in progress": color.New(color.FgHiYellow),
	"prototype":   color.New(color.FgHiYellow),
	"planned":     color.New(color.FgHiCyan),
}

// StatusColor colors a project status label. Unknown labels are returned as is.
func StatusColor(status string) string {
	if c, ok := statusColors[strings.ToLower(status)]; ok {
		return c.Sprint(status)
	}
	return status
}

// Projects prints one row per project under an underlined header. The ID
// column is right-aligned and tags are joined the way the cards show them.
func (u *UI) Projects(projects []catalog.Project) error {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignmentConfig(tw.CellAlignment{
			PerColumn: []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.On,
					ShowFooterLine: tw.Off,
				},
				Separators: tw.Separators{
					ShowHeader:     tw.Off,
					ShowFooter:     tw.Off,
					BetweenRows:    tw.Off,
					BetweenColumns: tw.Off,
				},
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)
	table.Header([]string{"ID", "Title", "Tags", "Status"})

	for _, p := range projects {
		if err := table.Append([]string{
			strconv.Itoa(p.ID),
			p.Title,
			strings.Join(p.Tags, " • "),
			StatusColor(p.Status),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
