// ABOUTME: CLI entry point for scaffold: parse template, prompt, write env file
// ABOUTME: Refuses elevated accounts; signals abort with a goodbye and exit 0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gregvogt/scaffold/internal/config"
	"github.com/gregvogt/scaffold/internal/fsx"
	"github.com/gregvogt/scaffold/internal/log"
	"github.com/gregvogt/scaffold/internal/prompt"
	"github.com/gregvogt/scaffold/internal/render"
	"github.com/gregvogt/scaffold/internal/session"
	"github.com/gregvogt/scaffold/internal/template"
)

const defaultTemplate = ".env.template"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("scaffold %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Generated env files routinely hold secrets; a root-owned .env with
	// root-typed values is a footgun, so refuse outright.
	if isElevated() {
		fmt.Fprintln(os.Stderr, "Error: scaffold should not be run with elevated privileges for safety reasons. Exiting.")
		os.Exit(1)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	settings, err := config.Load(config.SettingsFile())
	if err != nil {
		log.Warn("%v", err)
		settings = &config.Settings{}
	}

	templatePath := args.filename
	if templatePath == "" {
		templatePath = settings.Template
	}
	if templatePath == "" {
		templatePath = defaultTemplate
	}

	// Cancellation is cooperative: ctx is checked at every request for a
	// line of input. The watcher below covers reads already blocked in
	// the kernel when the signal lands.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		cancel()
		fmt.Printf("\n%s: %s\n", strings.ToUpper(sig.String()), goodbye())
		os.Exit(0)
	}()

	renderer := render.New(os.Stdout)
	renderer.NoColor = args.noColor || settings.NoColor

	if args.preview {
		return preview(renderer, templatePath)
	}

	fmt.Printf("Parsing file: %s\n", templatePath)
	doc := template.ParseFile(templatePath)
	if doc.Len() == 0 {
		fmt.Println("No valid environment variables found or file could not be parsed.")
		if suggestions := fsx.Suggest(templatePath); len(suggestions) > 0 {
			log.Info("similar template files nearby: %s", strings.Join(suggestions, ", "))
		}
		return nil
	}
	log.Debug("parsed %d variables from %s", doc.Len(), templatePath)

	if args.debug {
		for _, e := range doc.Entries() {
			renderer.Describe(e)
		}
	}

	reader := prompt.NewLineReader(os.Stdin)
	runner := &session.Runner{
		Resolver:      prompt.NewResolver(reader, renderer),
		Renderer:      renderer,
		Reader:        reader,
		Output:        args.output,
		DefaultOutput: settings.Output,
	}

	if err := runner.Run(ctx, doc); err != nil {
		// Closed stdin and cancellation end the session the same way a
		// signal does: no partial output, friendly exit.
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Printf("\n%s\n", goodbye())
			return nil
		}
		return err
	}
	return nil
}

// preview renders the raw template as terminal Markdown and exits.
func preview(renderer *render.Renderer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	md := render.NewMarkdownRenderer()
	fmt.Fprintln(renderer.Out, md.Render(string(data), renderer.Width))
	return nil
}
