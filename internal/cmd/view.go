package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/log"
	"github.com/gravitrone/vlist/internal/source"
	"github.com/gravitrone/vlist/internal/ui"
)

type viewFlags struct {
	generate   int
	itemExtent int
	margin     int
	filter     string
	logFile    string
	logLevel   string
}

// ViewCmd returns the `vlist view` command.
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse records in the terminal",
		Long:  "Browse a YAML, JSON or plain text file one record per row. Use - to read stdin.",
		Args:  cobra.MaximumNArgs(1),
	}
	BindView(cmd)
	return cmd
}

// BindView adds the viewer flags to cmd and makes it run the viewer, so the
// root command can browse files without the view subcommand.
func BindView(cmd *cobra.Command) {
	var f viewFlags
	cmd.Flags().IntVar(&f.generate, "generate", 0, "browse N generated records instead of a file")
	cmd.Flags().IntVar(&f.itemExtent, "item-extent", 1, "lines per record (overrides config)")
	cmd.Flags().IntVar(&f.margin, "margin", 0, "off-screen records kept around the viewport (overrides config)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "initial filter")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return runView(c, args, f)
	}
}

func runView(c *cobra.Command, args []string, f viewFlags) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	flags := c.Flags()
	if flags.Changed("item-extent") {
		cfg.ItemExtent = f.itemExtent
	}
	if flags.Changed("margin") {
		margin := f.margin
		cfg.Margin = &margin
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	defer log.Disable()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	in, err := openRecords(path, f.generate)
	if err != nil {
		return err
	}
	records, err := in.load()
	if err != nil {
		return err
	}
	log.Info("records loaded", "source", in.title, "count", len(records))

	if !isInteractiveTerminal(os.Stdout) {
		return errors.New("view needs an interactive terminal, use 'vlist simulate' for headless runs")
	}

	opts := ui.Options{
		Title:      in.title,
		ItemExtent: cfg.ItemExtent,
		Margin:     cfg.Margin,
		Filter:     f.filter,
		Theme:      cfg.Theme,
		VimKeys:    cfg.VimKeys,
	}
	if in.reloadable {
		opts.Reload = in.load
	}
	viewer, err := ui.NewViewer(records, opts)
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if in.path == "-" {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(viewer, progOpts...).Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

type recordInput struct {
	path       string
	generate   int
	title      string
	reloadable bool
}

// openRecords decides where records come from. Without a file or
// --generate, piped stdin is read.
func openRecords(path string, generate int) (recordInput, error) {
	switch {
	case generate < 0:
		return recordInput{}, fmt.Errorf("--generate must not be negative, got %d", generate)
	case generate > 0 && path != "":
		return recordInput{}, errors.New("use either a file or --generate, not both")
	case generate > 0:
		return recordInput{generate: generate, title: fmt.Sprintf("generated (%d)", generate)}, nil
	case path == "" && !isInteractiveTerminal(os.Stdin):
		path = "-"
	case path == "":
		return recordInput{}, errors.New("no records: pass a file, - for stdin, or --generate N")
	}
	if path == "-" {
		return recordInput{path: path, title: "stdin"}, nil
	}
	return recordInput{path: path, title: path, reloadable: true}, nil
}

func (in recordInput) load() ([]source.Record, error) {
	if in.generate > 0 {
		return source.Generate(in.generate), nil
	}
	return source.Load(in.path)
}

func setupLogging(cfg *config.Config) error {
	if cfg.LogFile == "" {
		return nil
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if err := log.EnableFile(cfg.LogFile); err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetLevel(level)
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
