// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --filename/-f, --debug/-d, --output/-o, --preview, --no-color, --verbose, --version

package main

import "flag"

type cliArgs struct {
	filename string
	output   string
	debug    bool
	preview  bool
	noColor  bool
	verbose  bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.filename, "filename", "", "Path to the .env template file (default: .env.template)")
	flag.StringVar(&args.filename, "f", "", "Shorthand for --filename")
	flag.StringVar(&args.output, "output", "", "Destination file; skips the output filename prompt")
	flag.StringVar(&args.output, "o", "", "Shorthand for --output")
	flag.BoolVar(&args.debug, "debug", false, "Dump parsed template metadata before prompting")
	flag.BoolVar(&args.debug, "d", false, "Shorthand for --debug")
	flag.BoolVar(&args.preview, "preview", false, "Render the template as Markdown and exit")
	flag.BoolVar(&args.noColor, "no-color", false, "Disable styled terminal output")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
