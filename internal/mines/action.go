package mines

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	Flag Action = iota + 1
	Open
	Force
	lastAction
)

func (a Action) String() string {
	switch a {
	case Flag:
		return "flag"
	case Open:
		return "open"
	case Force:
		return "force"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

var ErrBadAction error

func init() {
	var allowed []string
	for a := Flag; a < lastAction; a++ {
		allowed = append(allowed, "'"+a.String()+"'")
	}
	ErrBadAction = fmt.Errorf(
		"action must be one of %s", strings.Join(allowed, ", "),
	)
}

func ParseAction(s string) (action Action, err error) {
	switch strings.ToLower(s) {
	case "flag", "toggle", "f":
		action = Flag
	case "open", "o":
		action = Open
	case "force", "chord", "c":
		action = Force
	default:
		err = ErrBadAction
	}
	return
}
