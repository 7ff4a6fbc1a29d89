package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/arrayvec"
)

func TestFprintCells(t *testing.T) {
	v := arrayvec.New[int](4)
	v.Push(1)
	v.Push(2)
	var buf bytes.Buffer
	err := Fprint(&buf, v, &Config{LineWidth: 40})
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if buf.String() != "[1][2][·][·] 2/4\n" {
		t.Fatalf("unexpected rendering: %q", buf.String())
	}
}

func TestFprintWrapsLongRuns(t *testing.T) {
	v := arrayvec.From([]int{1, 2, 3, 4})
	var buf bytes.Buffer
	if err := Fprint(&buf, v, &Config{LineWidth: 7}); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if buf.String() != "[1][2]\n[3][4] 4/4\n" {
		t.Fatalf("unexpected rendering: %q", buf.String())
	}
}

func TestFprintNeverReadsFreeSlots(t *testing.T) {
	v := arrayvec.Wrap([]int{7, 8, 9}) // dirty storage, length 0
	var buf bytes.Buffer
	if err := Fprint(&buf, v, &Config{LineWidth: 40}); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if strings.ContainsAny(buf.String(), "789") {
		t.Fatalf("free slot contents leaked into the rendering: %q", buf.String())
	}
	if buf.String() != "[·][·][·] 0/3\n" {
		t.Fatalf("unexpected rendering: %q", buf.String())
	}
}

func TestSlots(t *testing.T) {
	v := arrayvec.New[string](5)
	v.Push("a")
	v.Push("b")
	v.Push("c")
	if got := Slots(v); got != "[###..] 3/5" {
		t.Fatalf("unexpected occupancy map: %q", got)
	}
	if got := Slots(arrayvec.New[int](0)); got != "[] 0/0" {
		t.Fatalf("unexpected occupancy map: %q", got)
	}
}
