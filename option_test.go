// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/foldl"
)

func TestOptionSome(t *testing.T) {
	o := foldl.Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("Some(42) should be present")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("Get got (%d, %v), want (42, true)", v, ok)
	}
	if got := o.GetOrElse(7); got != 42 {
		t.Fatalf("GetOrElse got %d, want 42", got)
	}
	if got := o.String(); got != "Some(42)" {
		t.Fatalf("String got %q, want %q", got, "Some(42)")
	}
}

func TestOptionNone(t *testing.T) {
	o := foldl.None[string]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("None should be absent")
	}
	v, ok := o.Get()
	if ok || v != "" {
		t.Fatalf("Get got (%q, %v), want (\"\", false)", v, ok)
	}
	if got := o.GetOrElse("def"); got != "def" {
		t.Fatalf("GetOrElse got %q, want %q", got, "def")
	}
	if got := o.String(); got != "None" {
		t.Fatalf("String got %q, want %q", got, "None")
	}
}

func TestMatchOption(t *testing.T) {
	onNone := func() string { return "none" }
	onSome := strconv.Itoa
	if got := foldl.MatchOption(foldl.Some(3), onNone, onSome); got != "3" {
		t.Fatalf("got %q, want %q", got, "3")
	}
	if got := foldl.MatchOption(foldl.None[int](), onNone, onSome); got != "none" {
		t.Fatalf("got %q, want %q", got, "none")
	}
}

func TestMapOption(t *testing.T) {
	if got := foldl.MapOption(foldl.Some(4), strconv.Itoa); got != foldl.Some("4") {
		t.Fatalf("got %v, want Some(4)", got)
	}
	if got := foldl.MapOption(foldl.None[int](), strconv.Itoa); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestMakePair(t *testing.T) {
	p := foldl.MakePair("a", 1)
	if p.Fst != "a" || p.Snd != 1 {
		t.Fatalf("got %+v, want {a 1}", p)
	}
}
