package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunNumeric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	var out bytes.Buffer
	err := run(options{numeric: true, check: true}, []string{"10", "5", "15", "3", "7"}, &out, &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "size: 5\nheight: 3\nmin: 3\nmax: 15\ncheck: ok\n"
	if out.String() != want {
		t.Errorf("expected\n%s\nhave\n%s", want, out.String())
	}
}

func TestRunRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	var out bytes.Buffer
	opts := options{numeric: true, remove: "8,42", check: true}
	if err := run(opts, strings.Fields("5 3 8 1 4 7 9"), &out, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "size: 6\n") {
		t.Errorf("expected size 6 after removal, have\n%s", out.String())
	}
}

func TestRunStringsFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(name, []byte("Zebra\nÄpfel\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, diag bytes.Buffer
	if err := run(options{file: name, lang: "de", dot: true}, []string{"Birne"}, &out, &diag); err != nil {
		t.Fatal(err)
	}
	s := diag.String()
	if !strings.Contains(s, "size: 3\n") || !strings.Contains(s, "min: Äpfel\n") || !strings.Contains(s, "max: Zebra\n") {
		t.Errorf("unexpected report:\n%s", s)
	}
	if !strings.HasPrefix(out.String(), "strict digraph") {
		t.Errorf("expected DOT output")
	}
}

func TestRunDotOutputIsPureGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	var out, diag bytes.Buffer
	opts := options{numeric: true, dot: true, check: true, print: true}
	if err := run(opts, []string{"10", "5"}, &out, &diag); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected nothing but a digraph on the DOT writer, have\n%s", dot)
	}
	if strings.Contains(dot, "size:") || strings.Contains(dot, "check:") {
		t.Errorf("expected statistics to stay off the DOT writer")
	}
	if !strings.HasPrefix(diag.String(), "size: 2\nheight: 2\nmin: 5\nmax: 10\ncheck: ok\n") {
		t.Errorf("expected statistics on the diagnostics writer, have\n%s", diag.String())
	}
}

func TestRunEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	var out bytes.Buffer
	if err := run(options{}, nil, &out, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "size: 0\nheight: 0\n" {
		t.Errorf("unexpected report for empty tree:\n%s", out.String())
	}
}

func TestRunIllegalArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()
	//
	var out bytes.Buffer
	if err := run(options{numeric: true}, []string{"1", "two"}, &out, &out); !errors.Is(err, bstree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for non-integer, got %v", err)
	}
	if err := run(options{numeric: true, file: "x.txt"}, nil, &out, &out); !errors.Is(err, bstree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for -n with -f, got %v", err)
	}
	if err := run(options{latin1: true}, []string{"a"}, &out, &out); !errors.Is(err, bstree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for -latin1 without -f, got %v", err)
	}
}
