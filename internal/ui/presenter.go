// Package ui formats everything the assistant says. Presenter methods are
// pure: they only build text.
package ui

import (
	"fmt"
	"iter"

	"github.com/idilsaglam/happy/internal/model"
)

type Presenter struct {
	theme Theme
}

func NewPresenter(theme Theme) Presenter {
	return Presenter{theme: theme}
}

func (p Presenter) Theme() Theme { return p.theme }

// Task renders t as "{checkbox}{kind} {description}" plus its date suffix.
func (p Presenter) Task(t model.Task) string {
	box := p.theme.BoxPending
	if t.Done {
		box = p.theme.BoxDone
	}
	s := box + kindMarker(t.Kind) + " " + t.Description
	switch t.Kind {
	case model.Deadline:
		s += " (by: " + t.When + ")"
	case model.Event:
		s += " (at: " + t.When + ")"
	}
	return s
}

func kindMarker(k model.Kind) string {
	switch k {
	case model.Deadline:
		return "[D]"
	case model.Event:
		return "[E]"
	default:
		return "[T]"
	}
}

func (p Presenter) Welcome(name string) Message {
	return info(fmt.Sprintf("Hello! I am %s :)", name), "What can I do for you?")
}

func (p Presenter) Goodbye() Message {
	return info("Bye. Hope to see you again soon!")
}

func (p Presenter) Echo(line string) Message {
	return info("Command entered: " + line)
}

func (p Presenter) Added(t model.Task, total int) Message {
	return success("Got it. I've added this task:", "\t"+p.Task(t), countLine(total))
}

func (p Presenter) Removed(t model.Task, total int) Message {
	return success("Noted. I've removed this task:", "\t"+p.Task(t), countLine(total))
}

func (p Presenter) Completed(t model.Task) Message {
	return success("Nice! I've marked this task as done:", "\t"+p.Task(t))
}

func countLine(n int) string {
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

// List renders the full list; indexes in tasks are 0-based.
func (p Presenter) List(tasks iter.Seq2[int, model.Task]) Message {
	return info(p.numbered("Here is your task List:", tasks)...)
}

func (p Presenter) Matches(tasks iter.Seq2[int, model.Task]) Message {
	lines := p.numbered("Here are the matching tasks in your list:", tasks)
	if len(lines) == 1 {
		return info("No matching task found.")
	}
	return info(lines...)
}

func (p Presenter) OnDate(date string, tasks iter.Seq2[int, model.Task]) Message {
	lines := p.numbered(fmt.Sprintf("Here are the tasks on %s:", date), tasks)
	if len(lines) == 1 {
		return info(fmt.Sprintf("No task found on %s.", date))
	}
	return info(lines...)
}

func (p Presenter) numbered(header string, tasks iter.Seq2[int, model.Task]) []string {
	lines := []string{header}
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Task(t)))
	}
	return lines
}

func (p Presenter) Help(usages []string) Message {
	lines := []string{"Here is what I can do:"}
	for _, u := range usages {
		lines = append(lines, "\t"+u)
	}
	return info(lines...)
}

// Error messages

func (p Presenter) EmptyDescription() Message {
	return failure("The description of a task cannot be empty.")
}

func (p Presenter) KeywordSplit() Message {
	return failure(
		"Invalid argument! It may be resulted from:",
		"1. No date/time provided",
		"2. keywords not matching",
	)
}

func (p Presenter) OutOfBounds() Message {
	return failure("Invalid input! (Index cannot be out of bounds)")
}

func (p Presenter) NoArgument(cmd string) Message {
	return failure(fmt.Sprintf("Command \"%s\" requires no argument. Please try again!", cmd))
}

func (p Presenter) IntegerRequired(cmd string) Message {
	return failure(fmt.Sprintf("Command \"%s\" requires an integer argument. Please try again!", cmd))
}

func (p Presenter) IntegerOnly(cmd string) Message {
	return failure(fmt.Sprintf("Command \"%s\" only requires an integer argument. Please try again!", cmd))
}

func (p Presenter) KeywordRequired(cmd string) Message {
	return failure(fmt.Sprintf("Command \"%s\" requires 1 argument as keyword. Please try again!", cmd))
}

func (p Presenter) DateRequired(cmd string) Message {
	return failure(fmt.Sprintf("Command \"%s\" requires a date argument. Please try again!", cmd))
}

func (p Presenter) Unrecognized() Message {
	return failure("I don't understand your input! Please try again!")
}

func info(lines ...string) Message    { return Message{Tone: ToneInfo, Lines: lines} }
func success(lines ...string) Message { return Message{Tone: ToneSuccess, Lines: lines} }
func failure(lines ...string) Message { return Message{Tone: ToneError, Lines: lines} }
