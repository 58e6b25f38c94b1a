package tapecmd

import (
	"fmt"
	"maps"
	"slices"
)

// PrintUsage writes each registered command and its description, sorted by
// name; each command's subcommands follow it, indented one more level per
// level of nesting.
func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	names := slices.Sorted(maps.Keys(commands))
	prefix := ""
	for range indent {
		prefix += "  "
	}
	for _, name := range names {
		cmd := commands[name]
		if cmd == nil {
			continue
		}
		fmt.Printf("%s%s\t%s\n", prefix, name, cmd.Description)
		if len(cmd.Subs) > 0 {
			printCommands(cmd.Subs, indent+1)
		}
	}
}
