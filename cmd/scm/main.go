// scm is the read-eval-print driver around the scheme core.
//
// With a file argument it runs the file; with none it starts an interactive
// loop. Input is accumulated until it reads as one or more complete forms,
// so multi-line definitions work naturally. Errors surface with their full
// kind and message and the loop resumes; (exit) stops it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	scheme "github.com/schemelab/scheme"
)

const (
	appName     = "scm"
	historyFile = ".scm_history"
	promptMain  = "scm> "
	promptCont  = "...> "
)

var banner = fmt.Sprintf("scheme %s\nCtrl+C cancels input, Ctrl+D or (exit) exits.", scheme.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(repl())
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [file.scm]\n", appName)
		os.Exit(2)
	}
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	ip := scheme.NewInterpreter()
	if _, err := ip.EvalSource(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

func repl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := scheme.NewInterpreter()

	for {
		code, ok := readByReadProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		forms, err := scheme.ReadAll(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		for _, form := range forms {
			v, err := ip.EvalForm(form)
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				break
			}
			if v.Tag == scheme.VTTerminate {
				return 0
			}
			if v.Tag != scheme.VTVoid {
				fmt.Println(blue(scheme.FormatValue(v)))
			}
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByReadProbe keeps prompting for continuation lines while the input so
// far fails to read only because it is incomplete.
func readByReadProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, rerr := scheme.ReadAll(src)
		if rerr == nil {
			return src, true
		}
		if scheme.IsIncomplete(rerr) {
			continue
		}
		return src, true
	}
}
