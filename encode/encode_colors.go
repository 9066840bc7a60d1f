package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	AttrKeyColor
	AttrValueColor
	TextColor
	TailColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[AttrKeyColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AttrValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[TextColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[TailColor] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func noColors() *Colors {
	return &Colors{Default: colorDefault}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	if f := c.Map[a]; f != nil {
		return f
	}
	return c.Default
}
