// Package input interprets what is typed into the command prompt.
package input

import "strings"

// Command is a slash command accepted by the prompt.
type Command struct {
	Name        string // lowercase, with the slash: "/add"
	Description string
}

// Commands is the prompt's command set in suggestion order.
type Commands []Command

// Matching returns the commands whose name starts with value while the name
// is still being typed. It returns nil for input that is not a command or
// once arguments have started.
func (cs Commands) Matching(value string) Commands {
	value = strings.ToLower(strings.TrimLeft(value, " "))
	if !strings.HasPrefix(value, "/") || strings.Contains(value, " ") {
		return nil
	}
	var out Commands
	for _, c := range cs {
		if strings.HasPrefix(c.Name, value) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a command by its full name, ignoring case.
func (cs Commands) Lookup(name string) (Command, bool) {
	name = strings.ToLower(name)
	for _, c := range cs {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Complete expands value to the first matching command name and a space,
// ready for arguments.
func (cs Commands) Complete(value string) (string, bool) {
	m := cs.Matching(value)
	if len(m) == 0 {
		return "", false
	}
	return m[0].Name + " ", true
}

// Split separates prompt input into a lowercased command name and its
// arguments.
func Split(value string) (string, []string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
