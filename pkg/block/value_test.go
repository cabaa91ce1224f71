package block_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-columns/pkg/block"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw      string
		kind     block.Kind
		scalar   string
		list     []string
		rendered string
	}{
		{raw: "  1fr 2fr ", kind: block.KindScalar, scalar: "1fr 2fr", rendered: "1fr 2fr"},
		{raw: "[1rem, 2rem ,3rem]", kind: block.KindList, list: []string{"1rem", "2rem", "3rem"}, rendered: "[1rem, 2rem, 3rem]"},
		{raw: "[]", kind: block.KindList, list: []string{""}, rendered: "[]"},
		{raw: "[start", kind: block.KindScalar, scalar: "[start", rendered: "[start"},
		{raw: "end]", kind: block.KindScalar, scalar: "end]", rendered: "end]"},
		{raw: "", kind: block.KindScalar, scalar: "", rendered: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value := block.ParseValue(tt.raw)
			if value.Kind() != tt.kind {
				t.Fatalf("kind: want %s, got %s", tt.kind, value.Kind())
			}
			if tt.kind == block.KindScalar {
				got, _ := value.Scalar()
				if got != tt.scalar {
					t.Fatalf("scalar: want %q, got %q", tt.scalar, got)
				}
			} else {
				got, _ := value.List()
				if diff := cmp.Diff(tt.list, got); diff != "" {
					t.Fatalf("list mismatch (-want +got):\n%s", diff)
				}
			}
			if value.String() != tt.rendered {
				t.Fatalf("string: want %q, got %q", tt.rendered, value.String())
			}
		})
	}
}

func TestValue_At(t *testing.T) {
	value := block.List("start", "", "end")

	if got, ok := value.At(0); !ok || got != "start" {
		t.Fatalf("At(0) = %q, %v", got, ok)
	}
	if _, ok := value.At(1); ok {
		t.Fatalf("empty entries should not count as present")
	}
	if _, ok := value.At(3); ok {
		t.Fatalf("out of range index should not be present")
	}
	if _, ok := value.At(-1); ok {
		t.Fatalf("negative index should not be present")
	}
	if _, ok := block.Scalar("start").At(0); ok {
		t.Fatalf("scalars have no indexed entries")
	}
}

func TestValue_Truthy(t *testing.T) {
	if (block.Value{}).Truthy() {
		t.Fatalf("absent value should not be truthy")
	}
	if block.Scalar("").Truthy() {
		t.Fatalf("empty scalar should not be truthy")
	}
	if !block.Scalar("1px").Truthy() {
		t.Fatalf("non-empty scalar should be truthy")
	}
	if !block.List().Truthy() {
		t.Fatalf("lists are always truthy")
	}
}

func TestValue_ListIsCopied(t *testing.T) {
	items := []string{"a", "b"}
	value := block.List(items...)
	items[0] = "changed"

	got, _ := value.List()
	got[1] = "changed"

	again, _ := value.List()
	if diff := cmp.Diff([]string{"a", "b"}, again); diff != "" {
		t.Fatalf("list was mutated (-want +got):\n%s", diff)
	}
}
