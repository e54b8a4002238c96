package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/composer/internal/commands"
	"github.com/gerunddev/composer/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "format", "fmt":
		commands.Format(os.Args[2:])
	case "parse":
		commands.Parse(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "replay":
		commands.Replay(os.Args[2:])
	case "draft", "drafts":
		commands.Draft(os.Args[2:])
	case "edit":
		commands.Edit(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("composer v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`composer - Markup toolbar and preview for post drafts

Usage:
  composer <command> [options]

Commands:
  format      Apply a toolbar command (bold, italic, underline, strikethrough,
              heading1, heading2, quote, code, bullet, numbered, link,
              mention, hashtag) to text from --file or stdin
  parse       Print the classified block tree (--json for JSON)
  preview     Render text for the terminal (--width N)
  replay      Run a YAML session of toolbar presses
  draft       Manage drafts: new, list, show, rm, format
  edit        Open the interactive composer
  version     Show version information
  help        Show this help message

Examples:
  echo "hello world" | composer format bold --start 0 --end 5
  composer format heading1 --file post.md --start 0 --diff
  composer parse --file post.md --json
  composer preview --file post.md --width 60
  composer replay session.yaml --diff
  composer draft new --file post.md
  composer draft format 3f2a bold --start 0 --end 5
  composer edit 3f2a

Global options:
  --verbose   Log at debug level and copy log entries to stderr

Configuration:
  Config file: %s
  Drafts file: %s
`, config.ConfigPath(), config.DraftsFilePath())
	fmt.Print(usage)
}
