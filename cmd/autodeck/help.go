package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autodeck [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Research a topic and write a slide deck (default)")
	fmt.Fprintln(w, "  doctor     Check credentials and system setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'autodeck help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autodeck generate [flags] [topic words...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Search the web for a topic, ask a language model for slide content,")
	fmt.Fprintln(w, "and write a styled .pptx deck. Without a topic, one is read from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --topic <s>           Presentation topic")
	fmt.Fprintln(w, "      --provider <s>        Model provider: openai, gemini (default: openai)")
	fmt.Fprintln(w, "      --model <s>           Model name (default: provider default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Search:")
	fmt.Fprintln(w, "      --max-results <n>     Web results used as context (default: 8)")
	fmt.Fprintln(w, "      --no-web              Skip web search")
	fmt.Fprintln(w, "      --web-optional        Continue without context when search fails")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --outfile <path>      Output .pptx file (default: from topic)")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Directory for derived filenames")
	fmt.Fprintln(w, "      --html                Also write an HTML preview")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF handout (needs Chrome)")
	fmt.Fprintln(w, "      --dry-run             Print slide content, write nothing")
	fmt.Fprintln(w, "      --format <s>          Dry-run format: json, yaml (default: json)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --seed <n>            Seed for reproducible backgrounds")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF handout timeout (default: 30s)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom deck parts and styles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Dotenv file with API keys (default: .env)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show every pipeline stage")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OPENAI_API_KEY, GEMINI_API_KEY   Provider credentials")
	fmt.Fprintln(w, "  OAI_MODEL                        OpenAI model override")
	fmt.Fprintln(w, "  AUTODECK_CONFIG, AUTODECK_PROVIDER, AUTODECK_OUTPUT_DIR,")
	fmt.Fprintln(w, "  AUTODECK_MAX_RESULTS, AUTODECK_TIMEOUT, AUTODECK_SEED")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  autodeck --topic \"Go generics\"")
	fmt.Fprintln(w, "  autodeck generate --no-web --seed 7 --outfile talks/generics.pptx Go generics")
	fmt.Fprintln(w, "  autodeck --topic \"Rust vs Go\" --dry-run --format yaml")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autodeck doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check API keys, Chrome (for --pdf) and the temp directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output results as JSON")
	fmt.Fprintln(w, "      --env-file <path>     Dotenv file with API keys (default: .env)")
}

// printVersionUsage prints usage for the version command.
func printVersionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autodeck version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show version information.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdDoctor:
		printDoctorUsage(env.Stdout)
	case cmdVersion:
		printVersionUsage(env.Stdout)
	case cmdHelp:
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
