// File: walk_test.go
// Title: TUPL AST Traversal Tests
// Description: Tests for child order, pre/post callback order, printing and
//              structured dumps.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Visitor tests
// - 2026-10-14 v0.2.0: Walk, Printer and Dump tests

package ast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// sampleProgram is
//
//	define Add[x,y] begin = x + y. end.
//	<t> <- [1 .. N].
//	= Add[1, -2].
func sampleProgram() *Program {
	return &Program{
		Definitions: []Definition{
			&FunctionDefinition{
				Name: "Add",
				Formals: &Formals{Params: []*Parameter{
					{Name: "x"}, {Name: "y"},
				}},
				Return: &ReturnValue{
					Form: ReturnScalar,
					Expr: &SimpleExpression{Op: "+", Left: &VarIdent{Name: "x"}, Right: &VarIdent{Name: "y"}},
				},
			},
			&TupleDefinition{
				Name: "<t>",
				Expr: &TupleRange{Op: "..", From: &NumberLiteral{Value: 1}, To: &ConstIdent{Name: "N"}},
			},
		},
		Return: &ReturnValue{
			Form: ReturnScalar,
			Expr: &FunctionCall{Name: "Add", Args: &Arguments{Exprs: []Expr{
				&NumberLiteral{Value: 1},
				&UnaryMinus{Operand: &NumberLiteral{Value: 2}},
			}}},
		},
	}
}

type trace struct {
	events []string
}

func TestWalk_Order(t *testing.T) {
	tr := &trace{}
	Walk(sampleProgram(),
		func(n Node, tr *trace) { tr.events = append(tr.events, "+"+Label(n)) },
		func(n Node, tr *trace) { tr.events = append(tr.events, "-"+n.Kind().String()) },
		tr)

	want := []string{
		"+program",
		"+function_definition: Add",
		"+formals",
		"+parameter: x", "-parameter",
		"+parameter: y", "-parameter",
		"-formals",
		"+simple_return_value: =",
		"+simple_expression: +",
		"+varIDENT: x", "-varIDENT",
		"+varIDENT: y", "-varIDENT",
		"-simple_expression",
		"-simple_return_value",
		"-function_definition",
		"+tuple_definition: <t>",
		"+tuple_range: ..",
		"+NUMBER_LITERAL: 1", "-NUMBER_LITERAL",
		"+constIDENT: N", "-constIDENT",
		"-tuple_range",
		"-tuple_definition",
		"+simple_return_value: =",
		"+function_call: Add",
		"+arguments",
		"+NUMBER_LITERAL: 1", "-NUMBER_LITERAL",
		"+unary_minus",
		"+NUMBER_LITERAL: 2", "-NUMBER_LITERAL",
		"-unary_minus",
		"-arguments",
		"-function_call",
		"-simple_return_value",
		"-program",
	}

	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("events mismatch\n got: %v\nwant: %v", tr.events, want)
	}
}

func TestWalk_NilCallbacks(t *testing.T) {
	count := 0
	Walk(sampleProgram(), nil, func(Node, *int) { count++ }, &count)
	if count != 19 {
		t.Errorf("post visited %d nodes, want 19", count)
	}

	Walk[*int](nil, nil, nil, &count)
}

func TestChildren_OptionalFields(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int
	}{
		{"function without formals or locals", &FunctionDefinition{Name: "F", Return: &ReturnValue{Expr: &NumberLiteral{}}}, 1},
		{"call without arguments", &FunctionCall{Name: "F"}, 0},
		{"pipe expression", &PipeExpression{Expr: &TupleIdent{Name: "<t>"}, Op: &ReduceOperation{Op: "+"}}, 2},
		{"empty program", &Program{}, 0},
		{"leaf", &EachStatement{Func: "F"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Children(tt.node)); got != tt.want {
				t.Errorf("len(Children()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReduceOperationKind(t *testing.T) {
	if k := (&ReduceOperation{Op: "*"}).Kind(); k != KindReduceMult || k.String() != "MULT" {
		t.Errorf("'*' kind = %v", k)
	}
	if k := (&ReduceOperation{Op: "+"}).Kind(); k != KindReducePlus || k.String() != "PLUS" {
		t.Errorf("'+' kind = %v", k)
	}
}

func TestNodeKindString(t *testing.T) {
	for k := KindProgram; k <= KindStringLiteral; k++ {
		if s := k.String(); s == "" || strings.HasPrefix(s, "NodeKind(") {
			t.Errorf("kind %d has no tag", k)
		}
	}
	if s := NodeKind(99).String(); s != "NodeKind(99)" {
		t.Errorf("unknown kind = %q", s)
	}
}

func TestSprint(t *testing.T) {
	got := Sprint(sampleProgram())
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	if len(lines) != 19 {
		t.Fatalf("printed %d lines, want 19:\n%s", len(lines), got)
	}
	checks := map[int]string{
		0:  "program",
		1:  "  function_definition: Add",
		3:  "      parameter: x",
		7:  "        varIDENT: x",
		10: "    tuple_range: ..",
		15: "      arguments",
		16: "        NUMBER_LITERAL: 1",
		18: "          NUMBER_LITERAL: 2",
	}
	for i, want := range checks {
		if i < len(lines) && lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestLabel_StringLiteralQuoted(t *testing.T) {
	if got := Label(&StringLiteral{Value: "a b"}); got != `STRING_LITERAL: "a b"` {
		t.Errorf("Label() = %s", got)
	}
}

func TestDump(t *testing.T) {
	d := Dump(sampleProgram())

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{`"type":"program"`, `"value":"Add"`, `"type":"unary_minus"`, `"value":2`} {
		if !strings.Contains(s, want) {
			t.Errorf("dump missing %s:\n%s", want, s)
		}
	}

	children := d["children"].([]interface{})
	if len(children) != 3 {
		t.Errorf("program children = %d, want 3", len(children))
	}
	if Dump(nil) != nil {
		t.Error("Dump(nil) should be nil")
	}
}
