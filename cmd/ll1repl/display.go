package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/predictive"
)

func showHelp() {
	pterm.Info.Println(`Enter grammar rules in line notation, e.g. "E -> E + T | T", or a command:
  :analyze          remove left recursion, compute FIRST/FOLLOW and the parsing table
  :parse <input>    run the predictive parser on white space separated input
  :show             print the grammar
  :first, :follow   print FIRST and FOLLOW sets
  :table            print the parsing table
  :load <file>      load a grammar (line notation, JSON or YAML)
  :lexer [off]      scan input by grammar terminals
  :trace <level>    set trace level (Debug, Info, Error)
  :clear            forget all rules
  :quit             leave`)
}

func showGrammar(title string, g *ll.Grammar) {
	pterm.Info.Println(title)
	for _, line := range strings.Split(strings.TrimRight(g.String(), "\n"), "\n") {
		pterm.Println("    " + line)
	}
}

func showSets(ga *ll.LLAnalysis) {
	data := [][]string{{"Non-terminal", "FIRST", "FOLLOW", "nullable"}}
	for _, A := range ga.Grammar().NonTerminals() {
		data = append(data, []string{
			A.Name,
			ga.First(A).String(),
			ga.Follow(A).String(),
			fmt.Sprintf("%v", ga.Nullable(A)),
		})
	}
	renderTable(data)
}

func showTable(table *ll.ParsingTable) {
	header := []string{"M"}
	for _, a := range table.Columns() {
		header = append(header, a.Name)
	}
	data := [][]string{header}
	for _, A := range table.Rows() {
		row := []string{A.Name}
		for _, a := range table.Columns() {
			row = append(row, table.Cell(A, a).String())
		}
		data = append(data, row)
	}
	renderTable(data)
}

func showTrace(res *predictive.Result) {
	data := [][]string{{"#", "Stack", "Input", "Action"}}
	for _, step := range res.Steps() {
		data = append(data, []string{
			fmt.Sprintf("%d", step.No),
			step.StackString(),
			step.InputString(),
			step.Action.String(),
		})
	}
	renderTable(data)
}

func renderTable(data [][]string) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot render table: %v", err)
	}
}

// showDerivation displays a leftmost derivation as a parse tree.
func showDerivation(start ll.Symbol, rules []*ll.Rule) {
	list, _ := leveledDerivation(start, rules, pterm.LeveledList{}, 0)
	tracer().Debugf("|list| = %d, list = %v", len(list), list)
	root := pterm.NewTreeFromLeveledList(list)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		tracer().Errorf("cannot render parse tree: %v", err)
	}
}

// leveledDerivation expands A with the next rule of a leftmost derivation and
// returns the remaining rules.
func leveledDerivation(A ll.Symbol, rules []*ll.Rule, list pterm.LeveledList, level int) (pterm.LeveledList, []*ll.Rule) {
	list = append(list, pterm.LeveledListItem{Level: level, Text: A.Name})
	if !A.IsNonTerminal() || len(rules) == 0 {
		return list, rules
	}
	r := rules[0]
	rules = rules[1:]
	for _, B := range r.RHS() {
		list, rules = leveledDerivation(B, rules, list, level+1)
	}
	return list, rules
}
