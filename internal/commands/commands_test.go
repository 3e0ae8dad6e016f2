package commands

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"/set camera.distance 7", []string{"set", "camera.distance", "7"}, true},
		{"  /fps   --hide ", []string{"fps", "--hide"}, true},
		{"/", nil, true},
		{"hello there", nil, false},
		{"cmd grid", nil, false},
	}
	for _, c := range cases {
		args, ok := Parse(c.line)
		if ok != c.ok || !reflect.DeepEqual(args, c.args) {
			t.Fatalf("%q: got %q %v", c.line, args, ok)
		}
	}
}

func TestExecuteFlagsAndPositionals(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("grid")
	show := fs.Bool("show", false, "")
	var ran bool
	r.Register("grid", "/grid --show|--hide", fs, func() error {
		ran = *show
		return nil
	})
	setFS := NewFlagSet("set")
	var got []string
	r.Register("set", "/set <param> <value>", setFS, func() error {
		got = setFS.Args()
		return nil
	})

	if err := r.Execute([]string{"grid", "--show"}); err != nil || !ran {
		t.Fatalf("grid: err=%v ran=%v", err, ran)
	}
	if err := r.Execute([]string{"set", "jump_force", "12"}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"jump_force", "12"}) {
		t.Fatalf("positional args %q", got)
	}
	if !reflect.DeepEqual(r.Names(), []string{"grid", "set"}) {
		t.Fatalf("names %q", r.Names())
	}
	if u, ok := r.Usage("grid"); !ok || u != "/grid --show|--hide" {
		t.Fatalf("usage %q", u)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "", NewFlagSet("fail"), func() error { return boom })
	r.Register("strict", "/strict", NewFlagSet("strict"), func() error { return nil })

	if err := r.Execute(nil); err == nil {
		t.Fatalf("expected missing command error")
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Fatalf("expected unknown command error")
	}
	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
	if err := r.Execute([]string{"strict", "--bogus"}); err == nil {
		t.Fatalf("expected flag parse error")
	}
}

func TestExecuteResetsFlagsAfterParseError(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("fps")
	show := fs.Bool("show", false, "")
	hide := fs.Bool("hide", false, "")
	var got [2]bool
	r.Register("fps", "/fps --show|--hide", fs, func() error {
		got = [2]bool{*show, *hide}
		return nil
	})
	if err := r.Execute([]string{"fps", "--show", "--bogus"}); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := r.Execute([]string{"fps", "--hide"}); err != nil {
		t.Fatal(err)
	}
	if got != [2]bool{false, true} {
		t.Fatalf("stale flag from the failed call: show=%v hide=%v", got[0], got[1])
	}
}
