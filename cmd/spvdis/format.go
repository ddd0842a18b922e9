package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// mnemonicColumn is where mnemonics start when result ids are right-aligned.
const mnemonicColumn = 15

// align right-aligns the result id so every mnemonic starts in the same column.
func align(line string) string {
	if strings.HasPrefix(line, ";") {
		return line
	}
	if res, rest, ok := strings.Cut(line, " = "); ok && strings.HasPrefix(res, "%") && !strings.Contains(res, " ") {
		pad := mnemonicColumn - len(res) - len(" = ")
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + res + " = " + rest
	}
	return strings.Repeat(" ", mnemonicColumn) + line
}

// tokens splits a line on spaces, keeping quoted strings whole and leading
// indentation as its own token.
func tokens(line string) []string {
	var out []string
	trimmed := strings.TrimLeft(line, " ")
	if indent := len(line) - len(trimmed); indent > 0 {
		out = append(out, line[:indent])
	}

	for i := 0; i < len(trimmed); {
		if trimmed[i] == ' ' {
			i++
			continue
		}
		start := i
		if trimmed[i] == '"' {
			i++
			for i < len(trimmed) && trimmed[i] != '"' {
				if trimmed[i] == '\\' {
					i++
				}
				i++
			}
			i++
		} else {
			for i < len(trimmed) && trimmed[i] != ' ' {
				i++
			}
		}
		out = append(out, trimmed[start:min(i, len(trimmed))])
	}
	return out
}

type palette struct {
	color    bool
	comment  lipgloss.Style
	mnemonic lipgloss.Style
	id       lipgloss.Style
	str      lipgloss.Style
	number   lipgloss.Style
	enum     lipgloss.Style
}

func newPalette(color bool) *palette {
	return &palette{
		color:    color,
		comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		mnemonic: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")),
		id:       lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		str:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		number:   lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9")),
		enum:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
	}
}

// line colors one line of disassembly. Without color it returns the line
// unchanged.
func (p *palette) line(line string) string {
	if !p.color {
		return line
	}
	if strings.HasPrefix(line, ";") {
		return p.comment.Render(line)
	}

	var b strings.Builder
	sep := false
	for _, tok := range tokens(line) {
		if strings.TrimSpace(tok) == "" {
			b.WriteString(tok)
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		b.WriteString(p.token(tok))
		sep = true
	}
	return b.String()
}

func (p *palette) token(tok string) string {
	switch {
	case tok == "=":
		return tok
	case strings.HasPrefix(tok, "%"):
		return p.id.Render(tok)
	case strings.HasPrefix(tok, "Op"):
		return p.mnemonic.Render(tok)
	case strings.HasPrefix(tok, `"`):
		return p.str.Render(tok)
	case tok[0] == '-' || (tok[0] >= '0' && tok[0] <= '9'):
		return p.number.Render(tok)
	default:
		return p.enum.Render(tok)
	}
}
