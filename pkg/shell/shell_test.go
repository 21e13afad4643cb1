package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"evlite/pkg/config"
	"evlite/pkg/core"
	"evlite/pkg/table"
)

func redirectTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func run(t *testing.T, engine string, script string) string {
	t.Helper()
	defer redirectTracing(t)()

	idx, err := core.Open(config.IndexConfig{Engine: engine, Degree: 2})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	tbl := table.New(table.DefaultName, idx)
	defer tbl.Close()

	var out bytes.Buffer
	sh := New(strings.NewReader(script), &out, tbl, Options{Prompt: "> "})
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestInsertSelectTranscript(t *testing.T) {
	out := run(t, core.EngineBTree, "insert 2 rex collie\ninsert 1 evie jindo\nselect\n.exit\n")
	want := "> Executed.\n" +
		"> Executed.\n" +
		"> (1, evie, jindo)\n(2, rex, collie)\nExecuted.\n" +
		"> Goodbye\n"
	if out != want {
		t.Errorf("transcript:\n%q\nwant:\n%q", out, want)
	}
}

func TestQuitEndsSession(t *testing.T) {
	out := run(t, core.EngineBTree, ".quit\ninsert 1 a b\n")
	if out != "> Goodbye\n" {
		t.Errorf("got %q", out)
	}
}

func TestUnknownMetaCommandContinues(t *testing.T) {
	out := run(t, core.EngineBTree, ".fake\nselect\n")
	if !strings.Contains(out, "Error: .fake is unrecognizable command\n") {
		t.Errorf("missing error in %q", out)
	}
	if !strings.Contains(out, "Executed.") {
		t.Errorf("session should continue after unknown meta-command: %q", out)
	}
}

func TestUnrecognizedStatementTerminates(t *testing.T) {
	out := run(t, core.EngineBTree, "update dogs\nselect\n")
	want := "> Error: update dogs is unrecognized statement\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestPrepareErrorContinues(t *testing.T) {
	out := run(t, core.EngineBTree, "insert 1 evie\ninsert -1 a b\nselect\n")
	if !strings.Contains(out, "Error: syntax error") {
		t.Errorf("missing syntax error in %q", out)
	}
	if !strings.Contains(out, "Error: ID must be positive") {
		t.Errorf("missing id error in %q", out)
	}
	if !strings.HasSuffix(out, "> Executed.\n> ") {
		t.Errorf("session should continue: %q", out)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	out := run(t, core.EngineBTree, "\n   \n.exit\n")
	if out != "> > > Goodbye\n" {
		t.Errorf("got %q", out)
	}
}

func TestTreeMetaCommand(t *testing.T) {
	script := "insert 10 a a\ninsert 20 b b\ninsert 5 c c\ninsert 6 d d\n.btree\n.exit\n"
	out := run(t, core.EngineBTree, script)
	want := "- internal (size 1) [10]\n" +
		"  - leaf (size 2) [5 6]\n" +
		"  - leaf (size 1) [20]\n"
	if !strings.Contains(out, want) {
		t.Errorf("missing tree dump in %q", out)
	}

	out = run(t, core.EngineSQLite, ".btree\n.exit\n")
	if !strings.Contains(out, "Index engine sqlite has no tree layout") {
		t.Errorf("got %q", out)
	}
}

func TestStatsAndConstants(t *testing.T) {
	out := run(t, core.EngineBTree, "insert 1 a b\nselect where id = 1\nselect where id = 2\n.stats\n.constants\n.help\n.exit\n")
	for _, s := range []string{
		"rows:    1\n",
		"engine:  btree\n",
		"height:  0\n",
		"workload: reads=2 writes=1 hits=1 misses=1\n",
		"ROW_SIZE: 72\n",
		"DEGREE: 2\n",
		"MAX_KEYS_PER_NODE: 3\n",
		"insert <id> <name> <breed>",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in output:\n%s", s, out)
		}
	}
}

func TestColorOutput(t *testing.T) {
	defer redirectTracing(t)()
	idx, err := core.Open(config.IndexConfig{Engine: core.EngineBTree, Degree: 2})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	sh := New(strings.NewReader(".fake\n.exit\n"), &out, table.New(table.DefaultName, idx), Options{Color: true})
	sh.Run()
	if !strings.Contains(out.String(), "\x1b[31m") {
		t.Errorf("expected red escape sequence in %q", out.String())
	}
}

func TestInteractiveBanner(t *testing.T) {
	defer redirectTracing(t)()
	idx, _ := core.Open(config.IndexConfig{Engine: core.EngineBTree, Degree: 2})
	var out bytes.Buffer
	sh := New(strings.NewReader(""), &out, table.New(table.DefaultName, idx), Options{Prompt: "> ", Interactive: true})
	sh.Run()
	if out.String() != Banner+"\n> \n" {
		t.Errorf("got %q", out.String())
	}
}
