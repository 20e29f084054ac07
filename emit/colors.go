package emit

import "github.com/fatih/color"

// ColorAttr names a colorable element of the listing.
type ColorAttr int

const (
	NameColor ColorAttr = iota
	InvertColor
	OpColor
	ConstColor
	CommentColor
	KeywordColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:    color.CyanString,
			InvertColor:  color.RGB(196, 96, 16).SprintfFunc(),
			OpColor:      color.RGB(255, 0, 196).SprintfFunc(),
			ConstColor:   color.RGB(128, 216, 236).SprintfFunc(),
			CommentColor: color.BlueString,
			KeywordColor: color.RGB(128, 168, 196).SprintfFunc(),
		},
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
