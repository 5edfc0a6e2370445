// Package cmd implements the strata CLI commands.
//
// A root command dispatches to subcommands (render, hittest, theme, bench)
// that drive the demo scene headlessly.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// Version information set at build time.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long, Usage string
}{
	Long: `strata lays out and paints retained widget trees headlessly.

Use "strata <command> --help" for more information about a command.`,
	Usage: "strata <command> [flags]",
}

// commands registered with the CLI, in registration order.
var (
	commands     = make(map[string]*Command)
	commandOrder []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandOrder = append(commandOrder, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		printVersion()
		return nil
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printVersion() {
	v := Version
	if !semver.IsValid(v) {
		v += " (not a semantic version)"
	}
	fmt.Printf("strata version %s (built %s)\n", v, BuildTime)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range commandOrder {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Printf("  %-14s %s\n", "version", "Show version information")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  strata render --sizes 640x480,1280x720 --out shots")
	fmt.Println("  strata hittest --size 640x480 320 200")
	fmt.Println("  strata theme themes/dark.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// flagValue returns the value of a "--name value" or "--name=value" flag
// at args[i] and the number of extra arguments consumed.
func flagValue(args []string, i int, name string) (string, int, bool, error) {
	arg := args[i]
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, 0, true, nil
	}
	if arg != name {
		return "", 0, false, nil
	}
	if i+1 >= len(args) {
		return "", 0, true, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], 1, true, nil
}
