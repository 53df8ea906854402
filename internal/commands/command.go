package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sandeepkv93/dayplan/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeRemove   Type = "remove"
	TypeList     Type = "list"
	TypePriority Type = "priority"
	TypeEdit     Type = "edit"
	TypeDone     Type = "done"
	TypeClear    Type = "clear"
)

var aliases = map[string]Type{
	"rm":       TypeRemove,
	"delete":   TypeRemove,
	"ls":       TypeList,
	"show":     TypePriority,
	"complete": TypeDone,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries raw field text; Priority is empty when omitted.
type AddArgs struct {
	Start       string
	End         string
	Priority    string
	Description string
}

type TargetArgs struct {
	Description string
}

type PriorityArgs struct {
	Level string
}

type EditArgs struct {
	Description string
	Start       string
	End         string
	Priority    string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Target   *TargetArgs
	Priority *PriorityArgs
	Edit     *EditArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(raw, args)
	case TypeRemove, TypeDone:
		return parseTarget(raw, typ, args)
	case TypeList, TypeClear:
		return Command{Type: typ, Raw: raw}, nil
	case TypePriority:
		return parsePriority(raw, args)
	case TypeEdit:
		return parseEdit(raw, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts "add <start> <end> [priority] <description...>".
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires start, end and a description"}
	}
	out := AddArgs{Start: args[0], End: args[1]}
	rest := args[2:]
	if _, err := model.ParsePriority(rest[0]); err == nil && len(rest) > 1 {
		out.Priority = rest[0]
		rest = rest[1:]
	}
	out.Description = remainder(raw, len(args)-len(rest)+1)
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	desc := remainder(raw, 1)
	if desc == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task description", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Description: desc}}, nil
}

func parsePriority(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "priority requires one level: high, medium or low"}
	}
	return Command{Type: TypePriority, Raw: raw, Priority: &PriorityArgs{Level: args[0]}}, nil
}

// parseEdit accepts "edit <start> <end> <priority> <description...>".
func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 4 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires start, end, priority and a description"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{
		Start:       args[0],
		End:         args[1],
		Priority:    args[2],
		Description: remainder(raw, 4),
	}}, nil
}

// remainder returns line after its first n fields, with inner spacing kept.
func remainder(line string, n int) string {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for ; n > 0 && rest != ""; n-- {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	return strings.TrimRightFunc(rest, unicode.IsSpace)
}
