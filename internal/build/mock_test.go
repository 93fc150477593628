package build

import (
	"context"
	"fmt"
)

// mockSystem implements buildsys.BuildSystem for testing.
type mockSystem struct {
	exitCode int
	err      error

	calls []mockCall
}

type mockCall struct {
	dir  string
	args []string
}

type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

func (m *mockSystem) Name() string { return "cmake" }

func (m *mockSystem) Configure(ctx context.Context, dir string, args []string) error {
	m.calls = append(m.calls, mockCall{dir: dir, args: append([]string(nil), args...)})
	if m.err != nil {
		return m.err
	}
	if m.exitCode != 0 {
		return exitStatus(m.exitCode)
	}
	return nil
}

func (m *mockSystem) Version(ctx context.Context) (string, error) {
	return "v3.21.1", nil
}

func (m *mockSystem) Generators(ctx context.Context) ([]string, error) {
	return []string{"Unix Makefiles", "Ninja", "Xcode"}, nil
}
