// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"io"
	"testing"

	"github.com/gogpu/arm2d/render"
)

// stubSurface is a minimal Surface for registry tests.
type stubSurface struct {
	name          string
	width, height int
}

func (s *stubSurface) FillCircle(render.Circle, render.Matrix) {}
func (s *stubSurface) FillRect(render.Rect, render.Matrix)     {}
func (s *stubSurface) Clear(render.Color)                      {}
func (s *stubSurface) Size() (int, int)                        { return s.width, s.height }
func (s *stubSurface) WriteTo(io.Writer) (int64, error)        { return 0, nil }

func stubFactory(name string) Factory {
	return func(w, h int) Surface {
		return &stubSurface{name: name, width: w, height: h}
	}
}

// withCleanRegistry runs the test against an empty registry and restores
// the previous registrations afterwards.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]Factory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestRegisterAndNew(t *testing.T) {
	withCleanRegistry(t)
	Register("stub", stubFactory("stub"))

	if !IsRegistered("stub") {
		t.Error("IsRegistered(stub) = false")
	}
	s, err := New("stub", 3, 4)
	if err != nil {
		t.Fatalf("New(stub) = %v", err)
	}
	if w, h := s.Size(); w != 3 || h != 4 {
		t.Errorf("Size() = %dx%d, want 3x4", w, h)
	}

	Unregister("stub")
	if IsRegistered("stub") {
		t.Error("IsRegistered(stub) = true after Unregister")
	}
}

func TestNewUnknown(t *testing.T) {
	withCleanRegistry(t)
	_, err := New("pdf", 1, 1)
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("New(pdf) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	withCleanRegistry(t)
	Register("dup", stubFactory("dup"))

	tests := []struct {
		name    string
		factory Factory
	}{
		{"dup", stubFactory("dup")},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.name)
				}
			}()
			Register(tt.name, tt.factory)
		})
	}
}

func TestDefaultPriority(t *testing.T) {
	withCleanRegistry(t)
	if _, err := Default(1, 1); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() on empty registry error = %v", err)
	}

	Register("zzz", stubFactory("zzz"))
	Register("aaa", stubFactory("aaa"))
	if s, _ := Default(1, 1); s.(*stubSurface).name != "aaa" {
		t.Errorf("Default() = %q, want first by name", s.(*stubSurface).name)
	}

	Register(BackendRecord, stubFactory(BackendRecord))
	if s, _ := Default(1, 1); s.(*stubSurface).name != BackendRecord {
		t.Errorf("Default() = %q, want %q", s.(*stubSurface).name, BackendRecord)
	}

	Register(BackendPNG, stubFactory(BackendPNG))
	if s, _ := Default(1, 1); s.(*stubSurface).name != BackendPNG {
		t.Errorf("Default() = %q, want %q", s.(*stubSurface).name, BackendPNG)
	}

	want := []string{"aaa", BackendPNG, BackendRecord, "zzz"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names() = %v, want %v", got, want)
			break
		}
	}
}
