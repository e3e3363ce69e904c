/*
Package parameters holds the registers which configure text transformation.

Registers follow the grouping semantics of TeX: values pushed inside a group
are dropped again when the group ends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
)

type TransformParameter int

const (
	none TransformParameter = iota
	P_LANGUAGE
	P_CASING
	P_SOFTHYPHEN
	P_BREAKCHAR
	P_MINHYPHENLENGTH
	P_HYPHENMINLEFT
	P_HYPHENMINRIGHT
	P_PATTERNDIRS
	P_STOPPER
)

// Configuration keys read by FromConfiguration.
const (
	KeyLanguage  = "language"
	KeyCasing    = "casing"
	KeyPatterns  = "hyphenation.patterns"
	KeyMinLength = "hyphenation.minlength"
	KeyMinLeft   = "hyphenation.minleft"
	KeyMinRight  = "hyphenation.minright"
)

type ParameterGroup struct {
	params map[TransformParameter]interface{}
	level  int
	next   *ParameterGroup
}

type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates a set of registers initialized to default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en-US"          // a BCP 47 string
	p[P_CASING] = "auto"             // name of a casing backend
	p[P_SOFTHYPHEN] = '\u00ad'       // a rune
	p[P_BREAKCHAR] = '\u200b'        // a rune
	p[P_MINHYPHENLENGTH] = 5         // # of runes
	p[P_HYPHENMINLEFT] = 2           // # of runes
	p[P_HYPHENMINRIGHT] = 3          // # of runes
	p[P_PATTERNDIRS] = []string(nil) // search path for pattern files
}

// FromConfiguration creates registers and overrides the defaults with values
// set in conf. A nil conf yields the defaults.
func FromConfiguration(conf schuko.Configuration) *Registers {
	regs := NewRegisters()
	if conf == nil {
		return regs
	}
	if conf.IsSet(KeyLanguage) {
		regs.Push(P_LANGUAGE, conf.GetString(KeyLanguage))
	}
	if conf.IsSet(KeyCasing) {
		regs.Push(P_CASING, conf.GetString(KeyCasing))
	}
	if conf.IsSet(KeyPatterns) {
		regs.Push(P_PATTERNDIRS, filepath.SplitList(conf.GetString(KeyPatterns)))
	}
	for key, p := range map[string]TransformParameter{
		KeyMinLength: P_MINHYPHENLENGTH,
		KeyMinLeft:   P_HYPHENMINLEFT,
		KeyMinRight:  P_HYPHENMINRIGHT,
	} {
		if conf.IsSet(key) && conf.GetInt(key) > 0 {
			regs.Push(p, conf.GetInt(key))
		}
	}
	return regs
}

func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *Registers) Push(key TransformParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of transform parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TransformParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *Registers) Get(key TransformParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of transform parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			if v, ok := g.params[key]; ok {
				value = v
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// S returns a string parameter.
func (regs *Registers) S(key TransformParameter) string {
	return strings.TrimSpace(regs.Get(key).(string))
}

// N returns a numeric parameter.
func (regs *Registers) N(key TransformParameter) int {
	return regs.Get(key).(int)
}

// R returns a rune parameter.
func (regs *Registers) R(key TransformParameter) rune {
	return regs.Get(key).(rune)
}

// L returns a list parameter.
func (regs *Registers) L(key TransformParameter) []string {
	l, _ := regs.Get(key).([]string)
	return l
}
