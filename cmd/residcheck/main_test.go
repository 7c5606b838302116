package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwilleke80/residcheck/internal/testutil"
)

func runToFile(t *testing.T, args ...string) (int, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.txt")
	code := run(append([]string{"-o", out}, args...))
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	return code, string(content)
}

func TestRunCollisionReportDefault(t *testing.T) {
	code, out := runToFile(t, "../../testdata/dialog.h")

	testutil.Equal(t, exitCollisions, code, "collisions set the exit code")
	testutil.Contains(t, out, "10003", "colliding value listed")
	testutil.Contains(t, out, "IDC_CHECK_ENABLE", "first colliding name")
	testutil.Contains(t, out, "IDC_COMBO_MODE", "second colliding name")
	testutil.False(t, strings.Contains(out, "Suggested"), "suggestions not requested")
}

func TestRunCleanHeader(t *testing.T) {
	code, out := runToFile(t, "-u", "../../testdata/c4d_symbols.h")

	testutil.Equal(t, exitOK, code, "no collisions")
	testutil.Contains(t, out, "All IDs are unique", "unique message")
}

func TestRunSuggestions(t *testing.T) {
	code, out := runToFile(t, "-s", "../../testdata/c4d_symbols.h")

	testutil.Equal(t, exitOK, code, "suggest only")
	testutil.Contains(t, out, "10003 (based on gap in ID range)", "gap suggestion")
	testutil.Contains(t, out, "20002 (after largest ID)", "after-largest suggestion")
}

func TestRunBlocks(t *testing.T) {
	code, out := runToFile(t, "-b", "../../testdata/c4d_symbols.h")

	testutil.Equal(t, exitOK, code, "blocks only")
	testutil.Contains(t, out, "10000 - 10002 (3 IDs)", "first block")
	testutil.Contains(t, out, "10010 (1 ID)", "single-value block")
}

func TestRunEmptyHeaderWithFloor(t *testing.T) {
	code, out := runToFile(t, "-s", "--floor", "1000", "../../testdata/empty.h")

	testutil.Equal(t, exitOK, code, "empty header is a normal outcome")
	testutil.Contains(t, out, "1000 (no IDs defined in header)", "floor suggestion")
}

func TestRunDirectoryContinuesPastBrokenFile(t *testing.T) {
	code, out := runToFile(t, "-u", "../../testdata")

	testutil.Equal(t, exitError, code, "broken file sets the error exit code")
	testutil.Contains(t, out, "broken.h", "broken file reported")
	testutil.Contains(t, out, "dialog.h", "remaining files still analyzed")
	testutil.Contains(t, out, "c4d_symbols.h", "remaining files still analyzed")
	testutil.False(t, strings.Contains(out, "notes.txt"), "non-.h entries skipped")
}

func TestRunJSONOutput(t *testing.T) {
	code, out := runToFile(t, "-u", "-s", "--json", "../../testdata/dialog.h")

	testutil.Equal(t, exitCollisions, code, "collisions found")
	testutil.Contains(t, out, `"path"`, "JSON fields present")
	testutil.Contains(t, out, `"value": 10003`, "collision value encoded")
	testutil.Contains(t, out, `"reason": "after largest ID"`, "suggestion reason encoded")
}

func TestRunMissingPath(t *testing.T) {
	code, _ := runToFile(t, "/this/path/does/not/exist.h")
	testutil.Equal(t, exitError, code, "missing path")
}

func TestRunNonHeaderFile(t *testing.T) {
	code, out := runToFile(t, "../../testdata/notes.txt")
	testutil.Equal(t, exitError, code, "single-file path must be a .h file")
	testutil.Contains(t, out, "not a resource header file", "reason reported")
}

func TestRunNoPathArgument(t *testing.T) {
	code := run([]string{"-u"})
	testutil.Equal(t, exitError, code, "PATH is required")
}

func TestRunMinvalHidesLowIDs(t *testing.T) {
	code, out := runToFile(t, "-u", "-b", "--minval", "20000", "../../testdata/c4d_symbols.h")

	testutil.Equal(t, exitOK, code, "no collisions above threshold")
	testutil.Contains(t, out, "2 IDs defined", "only string table IDs counted")
	testutil.False(t, strings.Contains(out, "10000"), "IDs below minval never reported")
}
