// Package command splits raw input lines into a keyword and its arguments.
package command

import "strings"

// Keyword is the closed set of commands the interpreter understands.
type Keyword int

const (
	Todo Keyword = iota
	Deadline
	Event
	List
	Done
	Delete
	Find
	Search
	Help
	Bye
)

var names = [...]string{
	Todo:     "todo",
	Deadline: "deadline",
	Event:    "event",
	List:     "list",
	Done:     "done",
	Delete:   "delete",
	Find:     "find",
	Search:   "search",
	Help:     "help",
	Bye:      "bye",
}

func (k Keyword) String() string {
	if k < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Keywords returns every keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, len(names))
	for i := range names {
		out[i] = Keyword(i)
	}
	return out
}

// Lookup resolves a command name. Matching ignores case.
func Lookup(name string) (Keyword, bool) {
	name = strings.ToLower(name)
	for i, n := range names {
		if n == name {
			return Keyword(i), true
		}
	}
	return 0, false
}

// Line is a parsed input line.
type Line struct {
	Name string
	Args []string
}

// Parse splits line on whitespace. The first token is the command name;
// an empty line yields an empty name. There is no quoting.
func Parse(line string) Line {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Line{}
	}
	return Line{Name: fields[0], Args: fields[1:]}
}

// SplitAt splits args around the first occurrence of sep.
// found is false when sep is absent.
func SplitAt(args []string, sep string) (before, after []string, found bool) {
	for i, a := range args {
		if a == sep {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
