// Package shell implements the EVLite command loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"evlite/pkg/common"
	"evlite/pkg/core"
	"evlite/pkg/sql"
	"evlite/pkg/table"
)

const Banner = "Welcome to EVLite Beta\nType '.help' for usage hints"

type Options struct {
	Prompt      string
	Interactive bool // print the banner
	Color       bool
}

type metaResult int

const (
	metaSuccess metaResult = iota
	metaUnrecognized
	metaExit
)

// Shell reads statements and meta-commands line by line and executes them
// against a single table.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	table *table.Table
	opts  Options
	red   *color.Color
	green *color.Color
}

func New(in io.Reader, out io.Writer, tbl *table.Table, opts Options) *Shell {
	s := &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		table: tbl,
		opts:  opts,
		red:   color.New(color.FgRed),
		green: color.New(color.FgGreen),
	}
	if opts.Color {
		s.red.EnableColor()
		s.green.EnableColor()
	} else {
		s.red.DisableColor()
		s.green.DisableColor()
	}
	return s
}

// Run executes lines until end of input, an exit meta-command or an
// unrecognized statement. Only read errors are returned.
func (s *Shell) Run() error {
	if s.opts.Interactive {
		fmt.Fprintln(s.out, Banner)
	}
	statements := 0
	for {
		fmt.Fprint(s.out, s.opts.Prompt)
		if !s.in.Scan() {
			break
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch s.meta(line) {
			case metaUnrecognized:
				s.red.Fprintf(s.out, "Error: %s is unrecognizable command\n", line)
			case metaExit:
				common.T().Infof("[Shell] session closed after %d statements", statements)
				return nil
			}
			continue
		}

		statements++
		if !s.execute(line) {
			common.T().Infof("[Shell] stopped at unrecognized statement %q", line)
			return nil
		}
	}
	if s.opts.Interactive {
		fmt.Fprintln(s.out)
	}
	if err := s.in.Err(); err != nil {
		common.T().Errorf("[Shell] read input: %v", err)
		return err
	}
	return nil
}

// execute runs one statement. It returns false if the session must end.
func (s *Shell) execute(line string) bool {
	stmt, err := sql.Prepare(line)
	if err != nil {
		s.red.Fprintf(s.out, "Error: %v\n", err)
		return true
	}

	switch stmt.Type {
	case sql.Insert:
		if err := s.table.Insert(stmt.Row); err != nil {
			s.red.Fprintf(s.out, "Error: %v\n", err)
			return true
		}
	case sql.Select:
		rows, err := s.table.Select(stmt.Query)
		if err != nil {
			s.red.Fprintf(s.out, "Error: %v\n", err)
			return true
		}
		for _, row := range rows {
			fmt.Fprintln(s.out, row)
		}
	default:
		s.red.Fprintf(s.out, "Error: %s is unrecognized statement\n", stmt.Text)
		return false
	}
	s.green.Fprintln(s.out, "Executed.")
	return true
}

func (s *Shell) meta(cmd string) metaResult {
	switch cmd {
	case ".exit", ".quit":
		fmt.Fprintln(s.out, "Goodbye")
		return metaExit
	case ".btree":
		s.printTree()
	case ".stats":
		s.printStats()
	case ".constants":
		s.printConstants()
	case ".help":
		printHelp(s.out)
	default:
		return metaUnrecognized
	}
	return metaSuccess
}

func (s *Shell) printTree() {
	idx := s.table.Index()
	tree, ok := idx.(core.Tree)
	if !ok {
		fmt.Fprintf(s.out, "Index engine %s has no tree layout\n", idx.Type())
		return
	}
	if _, err := tree.WriteTo(s.out); err != nil {
		s.red.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) printStats() {
	idx := s.table.Index()
	fmt.Fprintf(s.out, "table:   %s\n", s.table.Name())
	fmt.Fprintf(s.out, "rows:    %d\n", s.table.Count())
	fmt.Fprintf(s.out, "engine:  %s\n", idx.Type())
	if tree, ok := idx.(core.Tree); ok {
		fmt.Fprintf(s.out, "height:  %d\n", tree.Height())
	}
	stats := s.table.Stats()
	fmt.Fprintf(s.out, "workload: %s\n", stats.Snapshot())
	fmt.Fprintf(s.out, "hit rate: %.2f\n", stats.HitRate())
}

func (s *Shell) printConstants() {
	fmt.Fprintf(s.out, "ROW_SIZE: %d\n", table.RowSize)
	fmt.Fprintf(s.out, "NAME_SIZE: %d\n", common.NameSize)
	fmt.Fprintf(s.out, "BREED_SIZE: %d\n", common.BreedSize)
	idx := s.table.Index()
	fmt.Fprintf(s.out, "ENGINE: %s\n", idx.Type())
	if tree, ok := idx.(core.Tree); ok {
		fmt.Fprintf(s.out, "DEGREE: %d\n", tree.Degree())
		fmt.Fprintf(s.out, "MAX_KEYS_PER_NODE: %d\n", 2*tree.Degree()-1)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Statements:")
	fmt.Fprintln(w, "  insert <id> <name> <breed>")
	fmt.Fprintln(w, "  select [* [from dogs]] [where id <op> <int>] [limit <n>]")
	fmt.Fprintln(w, "Meta-commands:")
	fmt.Fprintln(w, "  .btree      print the index layout")
	fmt.Fprintln(w, "  .stats      print table and workload statistics")
	fmt.Fprintln(w, "  .constants  print row and index constants")
	fmt.Fprintln(w, "  .help       show this help")
	fmt.Fprintln(w, "  .exit       leave the shell (also .quit)")
}
