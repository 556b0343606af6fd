/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bytes"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/driver"
)

// main starts an interactive CLI ("trepl") over the toy grammar: users
// enter a line like "(A (A B))" or "{A A}" and trepl runs it through
// collapseStage and promoteStage, printing the resulting tree and any
// errors gathered along the way.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to trepl — enter lines like \"(A (A B))\" or \"{A A}\"")

	d := &driver.Driver{
		Parse: parseLine,
		Stages: []driver.Stage{
			{Name: "collapse", Pass: collapseStage(), Schema: noEmptyGroups{}},
			{Name: "promote", Pass: promoteStage()},
		},
		Config: driver.ConfigFromGlobal(),
	}

	repl, err := readline.New("trepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		runLine(d, input)
	}

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF, ctrl-D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		runLine(d, line)
	}
	pterm.Info.Println("Good bye!")
}

func runLine(d *driver.Driver, line string) {
	root, errs, metrics, err := d.Run(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	for _, m := range metrics {
		tracer().Infof("stage %q: %d iterations, %d changes", m.Stage, m.Iterations, m.Changes)
	}
	var buf bytes.Buffer
	ast.Print(&buf, root)
	pterm.Info.Println(buf.String())
	for _, e := range errs {
		var eb bytes.Buffer
		ast.Print(&eb, e)
		pterm.Error.Println(eb.String())
	}
}

// initDisplay tunes pterm's prefixes the way the demo CLI wants them.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
