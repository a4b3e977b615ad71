package theme

import "github.com/arran4/qapdf/highlight"

// Palette maps token kinds to code colours.
type Palette struct {
	Keyword   RGB
	Decorator RGB
	Function  RGB
	String    RGB
	Number    RGB
	Comment   RGB
	Type      RGB
	Variable  RGB
	Default   RGB
}

// LightCode is used on light backgrounds.
var LightCode = Palette{
	Keyword:   RGB{0, 0, 1},
	Decorator: RGB{0.7, 0, 0.7},
	Function:  RGB{1, 0.4, 0},
	String:    RGB{0, 0.7, 0},
	Number:    RGB{1, 0, 0},
	Comment:   RGB{0.5, 0.5, 0.5},
	Type:      RGB{0, 0.6, 0.6},
	Variable:  RGB{1, 0.4, 0},
	Default:   RGB{0, 0, 0},
}

// DarkCode is used on dark backgrounds.
var DarkCode = Palette{
	Keyword:   RGB{0.4, 0.4, 1},
	Decorator: RGB{0.9, 0.4, 0.9},
	Function:  RGB{1, 0.6, 0.2},
	String:    RGB{0.4, 0.9, 0.4},
	Number:    RGB{1, 0.4, 0.4},
	Comment:   RGB{0.7, 0.7, 0.7},
	Type:      RGB{0.4, 0.8, 0.8},
	Variable:  RGB{1, 0.6, 0.2},
	Default:   RGB{0.9, 0.9, 0.9},
}

// Color returns the colour for k.
func (p Palette) Color(k highlight.Kind) RGB {
	switch k {
	case highlight.Keyword:
		return p.Keyword
	case highlight.Decorator:
		return p.Decorator
	case highlight.Function:
		return p.Function
	case highlight.String:
		return p.String
	case highlight.Number:
		return p.Number
	case highlight.Comment:
		return p.Comment
	case highlight.Type:
		return p.Type
	case highlight.Variable:
		return p.Variable
	default:
		return p.Default
	}
}
