/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"testing"

	"github.com/suparena/recordkv/errors"
)

type shape interface{ Sides() int }

type triangle struct{}

func (triangle) Sides() int { return 3 }

type square struct{}

func (square) Sides() int { return 4 }

func TestRegistry(t *testing.T) {
	t.Run("RegisterAndNew", func(t *testing.T) {
		r := New[shape]("shape")
		r.Register("triangle", func() shape { return triangle{} })
		r.Register("square", func() shape { return square{} })

		s, err := r.New("square")
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if s.Sides() != 4 {
			t.Fatalf("Expected 4 sides, got %d", s.Sides())
		}

		if !r.Has("triangle") {
			t.Fatal("triangle should be registered")
		}
		if !reflect.DeepEqual(r.Names(), []string{"square", "triangle"}) {
			t.Fatalf("Unexpected names: %v", r.Names())
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		r := New[shape]("shape")
		_, err := r.New("hexagon")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("DuplicateRegistrationPanics", func(t *testing.T) {
		r := New[shape]("shape")
		r.Register("square", func() shape { return square{} })

		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic on duplicate registration")
			}
		}()
		r.Register("square", func() shape { return square{} })
	})
}
