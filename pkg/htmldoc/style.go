package htmldoc

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// displayState is the outcome of the display declarations in an inline style.
type displayState struct {
	none      bool
	important bool
}

// inlineDisplay tokenizes an inline style attribute and resolves its display
// declarations: the last !important one wins, otherwise the last one.
// Malformed declarations are skipped the way a browser skips them.
func inlineDisplay(style string) displayState {
	var normal, important *displayState

	p := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			// io.EOF ends the attribute; any other error is unrecoverable.
			if p.Err() != nil {
				break
			}
			continue
		}
		if gt != css.DeclarationGrammar || !strings.EqualFold(string(data), "display") {
			continue
		}

		st := declarationValue(p.Values())
		if st.important {
			important = &st
		} else {
			normal = &st
		}
	}

	switch {
	case important != nil:
		return *important
	case normal != nil:
		return *normal
	default:
		return displayState{}
	}
}

func declarationValue(values []css.Token) displayState {
	var st displayState
	idents := make([]string, 0, len(values))
	for _, v := range values {
		switch v.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.IdentToken:
			idents = append(idents, strings.ToLower(string(v.Data)))
		default:
			idents = append(idents, string(v.Data))
		}
	}
	if n := len(idents); n >= 2 && idents[n-2] == "!" && idents[n-1] == "important" {
		st.important = true
		idents = idents[:n-2]
	}
	st.none = len(idents) == 1 && idents[0] == "none"
	return st
}

// withDisplayNone appends a display: none declaration and leaves the existing
// text untouched. The appended declaration is !important only when an
// existing !important display declaration would otherwise win.
func withDisplayNone(style string) string {
	decl := "display: none"
	if inlineDisplay(style).important {
		decl += " !important"
	}

	base := strings.TrimRight(style, " \t\n\f\r")
	switch {
	case base == "":
		return decl
	case strings.HasSuffix(base, ";"):
		return base + " " + decl
	default:
		return base + "; " + decl
	}
}

func isDisplayNone(style string) bool {
	return inlineDisplay(style).none
}
