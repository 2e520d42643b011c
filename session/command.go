package session

import (
	"fmt"
	"strings"

	"github.com/CodMac/go-treesitter-uml-generator/processor"
)

// Command 是菜单中可选的命令
type Command int

const (
	CmdClass Command = iota + 1
	CmdSequence
	CmdBoth
	CmdExit
)

var commandNames = map[Command]string{
	CmdClass:    "class",
	CmdSequence: "sequence",
	CmdBoth:     "both",
	CmdExit:     "exit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Diagrams 返回命令对应的图；CmdExit 返回 0
func (c Command) Diagrams() processor.Diagram {
	switch c {
	case CmdClass:
		return processor.ClassDiagram
	case CmdSequence:
		return processor.SequenceDiagram
	case CmdBoth:
		return processor.BothDiagrams
	}
	return 0
}

// ParseCommand 接受菜单编号（1-4）或命令名，忽略首尾空白与大小写
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "class":
		return CmdClass, nil
	case "2", "sequence":
		return CmdSequence, nil
	case "3", "both":
		return CmdBoth, nil
	case "4", "exit":
		return CmdExit, nil
	}
	return 0, fmt.Errorf("invalid choice %q", s)
}

// State 是会话状态机的状态
type State int

const (
	AwaitingChoice State = iota
	GeneratingClass
	GeneratingSequence
	GeneratingBoth
	Exiting
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting-choice"
	case GeneratingClass:
		return "generating-class"
	case GeneratingSequence:
		return "generating-sequence"
	case GeneratingBoth:
		return "generating-both"
	case Exiting:
		return "exiting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// next 返回从 AwaitingChoice 收到命令后进入的状态
func next(c Command) State {
	switch c {
	case CmdClass:
		return GeneratingClass
	case CmdSequence:
		return GeneratingSequence
	case CmdBoth:
		return GeneratingBoth
	}
	return Exiting
}
