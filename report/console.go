package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	passLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Underline(true)
	failLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Underline(true)
	timeoutLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Underline(true)
	errDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	totalTallyStyle  = lipgloss.NewStyle().Bold(true)
	passTallyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failTallyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// ColorMode controls whether console output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Console renders one line per finished case and a closing tally,
// ANSI-styled when the destination is a terminal.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a console reporter writing to w. With ColorAuto,
// styling is enabled only when w is a terminal; unknown modes behave
// like ColorAuto.
func NewConsole(w io.Writer, mode ColorMode) *Console {
	c := &Console{w: w}
	switch mode {
	case ColorAlways:
		c.color = true
	case ColorNever:
		c.color = false
	default:
		if f, ok := w.(*os.File); ok {
			c.color = term.IsTerminal(int(f.Fd()))
		}
	}
	return c
}

func (c *Console) CaseFinished(o Outcome) {
	fmt.Fprintln(c.w)

	line := "it " + o.Should
	switch {
	case !o.Passed:
		fmt.Fprintln(c.w, c.render(failLineStyle, line+" ✗"))
		if o.Err != nil {
			fmt.Fprintln(c.w, c.render(errDetailStyle, "  "+o.Err.Error()))
		}
	case o.TimedOut:
		fmt.Fprintln(c.w, c.render(timeoutLineStyle, line+" ✓ (timeout)"))
	default:
		fmt.Fprintln(c.w, c.render(passLineStyle, line+" ✓"))
	}
}

func (c *Console) RunFinished(s Summary) {
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "total:%s pass:%s fail:%s\n",
		c.render(totalTallyStyle, strconv.Itoa(s.Total)),
		c.render(passTallyStyle, strconv.Itoa(s.Succeeded)),
		c.render(failTallyStyle, strconv.Itoa(s.Failed())))
}

func (c *Console) render(st lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return st.Render(s)
}
