package processor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-columns/pkg/processor"
)

func TestComponent_UnloadRunsCleanupsOnceInReverse(t *testing.T) {
	component := processor.NewComponent()
	var order []int
	component.Register(func() { order = append(order, 1) })
	component.Register(func() { order = append(order, 2) })
	component.Register(nil)

	if component.Pending() != 2 {
		t.Fatalf("expected 2 pending cleanups, got %d", component.Pending())
	}

	component.Unload()
	component.Unload()

	if diff := cmp.Diff([]int{2, 1}, order); diff != "" {
		t.Fatalf("cleanup order mismatch (-want +got):\n%s", diff)
	}
	if !component.Unloaded() {
		t.Fatalf("expected component to report unloaded")
	}
}

func TestComponent_RegisterAfterUnloadRunsImmediately(t *testing.T) {
	component := processor.NewComponent()
	component.Unload()

	ran := false
	component.Register(func() { ran = true })

	if !ran {
		t.Fatalf("cleanup registered after unload should run immediately")
	}
	if component.Pending() != 0 {
		t.Fatalf("expected nothing pending, got %d", component.Pending())
	}
}
