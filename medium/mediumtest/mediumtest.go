/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mediumtest holds the behavior every medium.Medium backend must share.
package mediumtest

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/suparena/recordkv/medium"
)

// Run checks the get/set/remove/keys contract against an empty medium.
func Run(t *testing.T, m medium.Medium) {
	t.Helper()
	ctx := context.Background()

	if !medium.Available(m) {
		t.Fatal("medium should be available")
	}

	if _, ok, err := m.GetItem(ctx, "orbit/planet/pluto"); err != nil || ok {
		t.Fatalf("missing key should read as absent: ok=%v err=%v", ok, err)
	}

	if err := m.SetItem(ctx, "orbit/planet/jupiter", `{"name":"Jupiter"}`); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := m.SetItem(ctx, "orbit/planet/jupiter", `{"name":"Jove"}`); err != nil {
		t.Fatalf("SetItem overwrite failed: %v", err)
	}
	v, ok, err := m.GetItem(ctx, "orbit/planet/jupiter")
	if err != nil || !ok {
		t.Fatalf("GetItem failed: ok=%v err=%v", ok, err)
	}
	if v != `{"name":"Jove"}` {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := m.SetItem(ctx, "orbit-bucket/session", `"abc"`); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	keys, err := m.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if !reflect.DeepEqual(keys, []string{"orbit-bucket/session", "orbit/planet/jupiter"}) {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := m.RemoveItem(ctx, "orbit/planet/jupiter"); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if err := m.RemoveItem(ctx, "orbit/planet/jupiter"); err != nil {
		t.Fatalf("RemoveItem of missing key failed: %v", err)
	}
	if _, ok, _ := m.GetItem(ctx, "orbit/planet/jupiter"); ok {
		t.Fatal("removed key should read as absent")
	}
}
