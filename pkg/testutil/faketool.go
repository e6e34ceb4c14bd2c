package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Environment variables read by the fake tool script
const (
	EnvFakeToolLog    = "FAKE_TOOL_LOG"
	EnvFakeToolFailOn = "FAKE_TOOL_FAIL_ON"
)

// fakeToolScript mimics the svn and svnadmin command lines used here. Each
// invocation appends its arguments to $FAKE_TOOL_LOG. An argument equal to
// $FAKE_TOOL_FAIL_ON makes it exit 1. A checkout creates its destination.
const fakeToolScript = `#!/bin/sh
log="${FAKE_TOOL_LOG:-/dev/null}"
if [ "$1" = "--version" ]; then
  echo "1.14.3"
  exit 0
fi
echo "$*" >> "$log"
if [ -n "$FAKE_TOOL_FAIL_ON" ]; then
  for arg in "$@"; do
    if [ "$arg" = "$FAKE_TOOL_FAIL_ON" ]; then
      echo "svn: E170000: fake failure for $arg" >&2
      exit 1
    fi
  done
fi
case "$1" in
  checkout)
    for last in "$@"; do :; done
    case "$last" in
      *://*) ;;
      *)
        mkdir -p "$last"
        echo "A    $last/README"
        ;;
    esac
    echo "Checked out revision 1."
    ;;
  create)
    mkdir -p "$2"
    ;;
esac
exit 0
`

// SkipWithoutShell skips tests that rely on /bin/sh scripts
func SkipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
}

// WriteFakeTool installs an executable named name in dir and returns its path.
func WriteFakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	SkipWithoutShell(t)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(fakeToolScript), 0755); err != nil {
		t.Fatalf("Failed to write fake tool %s: %v", path, err)
	}
	return path
}

// ReadInvocations returns the argument lines recorded in a fake tool log.
func ReadInvocations(t *testing.T, logPath string) []string {
	t.Helper()

	content, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to read fake tool log %s: %v", logPath, err)
	}

	trimmed := strings.TrimRight(string(content), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
