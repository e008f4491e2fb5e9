package getarg

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

type sprintfFunc func(format string, a ...interface{}) string

// dumpPalette holds the colours for one dump. Each dump builds its own, so
// concurrent dumps never write shared colour state.
type dumpPalette struct {
	greenBoldS sprintfFunc
	cyanS      sprintfFunc
	boldS      sprintfFunc
}

func newDumpPalette() dumpPalette {
	greenBold := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)
	bold := color.New(color.Bold)

	switch strings.ToLower(strings.TrimSpace(os.Getenv("GETARG_COLOR"))) {
	case "never":
		greenBold.DisableColor()
		cyan.DisableColor()
		bold.DisableColor()
	case "always":
		greenBold.EnableColor()
		cyan.EnableColor()
		bold.EnableColor()
	default:
		// "", "auto" and unknown values: amterp/color decides based on tty
	}

	return dumpPalette{
		greenBoldS: greenBold.SprintfFunc(),
		cyanS:      cyan.SprintfFunc(),
		boldS:      bold.SprintfFunc(),
	}
}

// GenerateDump renders the parsed state for debugging: the tokens that were
// considered, and for each flag both recorded polarities and how it resolves.
func (a *Args) GenerateDump() string {
	p := newDumpPalette()

	var sb strings.Builder
	sb.WriteString(p.greenBoldS("Getarg Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(a.generateArgumentsSection(p))
	sb.WriteString(a.generateFlagsSection(p))
	sb.WriteString(generateEnvironmentSection(p))

	return sb.String()
}

// PrintDump writes GenerateDump to stdout.
func (a *Args) PrintDump() {
	fmt.Fprint(stdoutWriter, a.GenerateDump())
}

func (a *Args) generateArgumentsSection(p dumpPalette) string {
	var sb strings.Builder
	sb.WriteString(p.greenBoldS("Arguments to Parse:") + "\n")

	if a == nil || len(a.raw) == 0 {
		sb.WriteString("  " + p.cyanS("<no arguments>") + "\n")
	} else {
		for i, arg := range a.raw {
			sb.WriteString(fmt.Sprintf("  [%d]: %s\n", i, p.boldS("%q", arg)))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (a *Args) generateFlagsSection(p dumpPalette) string {
	var sb strings.Builder
	sb.WriteString(p.greenBoldS("Parsed Flags:") + "\n")

	if a.Len() == 0 {
		sb.WriteString("  " + p.cyanS("<no flags>") + "\n")
	} else {
		for _, name := range a.order {
			sb.WriteString("  " + a.formatFlagForDump(p, name) + "\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (a *Args) formatFlagForDump(p dumpPalette, name string) string {
	parts := []string{p.boldS("%s", name)}

	if v, ok := a.positive[name]; ok {
		parts = append(parts, fmt.Sprintf("positive:%q", v))
		if n := len(a.multi[name]); n > 1 {
			parts = append(parts, fmt.Sprintf("occurrences:%d", n))
		}
	} else {
		parts = append(parts, fmt.Sprintf("positive:%s", p.cyanS("<none>")))
	}

	if v, ok := a.negated[name]; ok {
		parts = append(parts, fmt.Sprintf("negated:%q", v))
	} else {
		parts = append(parts, fmt.Sprintf("negated:%s", p.cyanS("<none>")))
	}

	parts = append(parts, fmt.Sprintf("bool:%t", a.Bool(name)))
	parts = append(parts, fmt.Sprintf("string:%q", a.GetString(name, "")))

	return strings.Join(parts, " ")
}

func generateEnvironmentSection(p dumpPalette) string {
	var sb strings.Builder
	sb.WriteString(p.greenBoldS("Environment:") + "\n")

	colorEnv := os.Getenv("GETARG_COLOR")
	if colorEnv != "" {
		sb.WriteString(fmt.Sprintf("  GETARG_COLOR: %s\n", p.boldS("%s", colorEnv)))
	} else {
		sb.WriteString(fmt.Sprintf("  GETARG_COLOR: %s\n", p.cyanS("not set")))
	}

	return sb.String()
}
