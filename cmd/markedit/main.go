package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit"
	"github.com/iw2rmb/markedit/editor"
	"github.com/iw2rmb/markedit/markdown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "markedit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fset := flag.NewFlagSet("markedit", flag.ContinueOnError)
	logPath := fset.String("log", "", "write debug log to `file`")
	showVersion := fset.Bool("version", false, "print version and exit")
	lineNums := fset.Bool("lines", true, "show line numbers")
	readOnly := fset.Bool("readonly", false, "open without editing")
	action := fset.String("action", "", "apply `name` to stdin and print the result instead of opening the editor")
	sel := fset.String("sel", "", "selection `start:end` in runes for -action")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, markedit.Banner())
		return nil
	}
	if *action != "" {
		return applyOnce(*action, *sel, stdin, stdout)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "markedit")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	path := fset.Arg(0)
	text, err := loadFile(path)
	if err != nil {
		return err
	}

	m := newModel(path, text, editor.Config{ShowLineNums: *lineNums, ReadOnly: *readOnly})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func loadFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

// applyOnce runs one action over stdin without a terminal UI.
func applyOnce(name, sel string, stdin io.Reader, stdout io.Writer) error {
	a, ok := markdown.ParseAction(name)
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	in, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	txt := markdown.NewText(string(in))
	if sel != "" {
		start, end, err := parseSelection(sel)
		if err != nil {
			return err
		}
		txt.SetSelectionOffsets(start, end)
	}
	if err := a.Apply(txt); err != nil {
		return err
	}
	_, err = io.WriteString(stdout, txt.String())
	return err
}

func parseSelection(s string) (start, end int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		b = a
	}
	if start, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("selection %q: %w", s, err)
	}
	if end, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("selection %q: %w", s, err)
	}
	return start, end, nil
}
