package render

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/TimelordUK/logcli/internal/source"
)

// syntaxStyle is the chroma style used for highlighting
const syntaxStyle = "monokai"

// SyntaxRenderer highlights each line with the chroma lexer matching the
// file name. Lines are tokenised one at a time, so constructs spanning
// lines (block comments, multi-line strings) are not tracked.
type SyntaxRenderer struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewSyntaxRenderer creates a renderer for filename, falling back to
// plain text when no lexer matches
func NewSyntaxRenderer(filename string) *SyntaxRenderer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &SyntaxRenderer{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(syntaxStyle),
		formatter: formatters.TTY256,
	}
}

// Lexer returns the name of the chroma lexer in use
func (r *SyntaxRenderer) Lexer() string {
	return r.lexer.Config().Name
}

// Render implements Renderer
func (r *SyntaxRenderer) Render(line source.Line) string {
	if line.Text == "" {
		return ""
	}

	it, err := r.lexer.Tokenise(nil, line.Text)
	if err != nil {
		return line.Text
	}

	var sb strings.Builder
	if err := r.formatter.Format(&sb, r.style, it); err != nil {
		return line.Text
	}
	return strings.NewReplacer("\n", "", "\r", "").Replace(sb.String())
}

// Extensions and base names treated as source code by --syntax
var (
	syntaxExts = map[string]bool{
		".go": true, ".rs": true, ".py": true, ".js": true, ".ts": true,
		".jsx": true, ".tsx": true, ".c": true, ".cpp": true, ".h": true,
		".hpp": true, ".java": true, ".rb": true, ".php": true, ".swift": true,
		".kt": true, ".scala": true, ".cs": true, ".lua": true,
		".sh": true, ".bash": true, ".zsh": true,
		".yaml": true, ".yml": true, ".json": true, ".toml": true, ".xml": true,
		".html": true, ".css": true, ".sql": true, ".md": true, ".ini": true,
	}
	syntaxNames = map[string]bool{
		"makefile": true, "dockerfile": true, "cmakelists.txt": true,
		"gemfile": true, "rakefile": true, "vagrantfile": true,
	}
)

// IsSyntaxHighlightable reports whether filename looks like source code
func IsSyntaxHighlightable(filename string) bool {
	return syntaxExts[strings.ToLower(filepath.Ext(filename))] ||
		syntaxNames[strings.ToLower(filepath.Base(filename))]
}
