package process_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/testall/pkg/adapters/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixture compiles a program from testdata into a temp directory and
// returns that directory. The binary is named after the fixture.
func buildFixture(t *testing.T, name string) string {
	t.Helper()

	exeName := name
	if runtime.GOOS == "windows" {
		exeName += ".exe"
	}

	destDir := t.TempDir()
	cmd := exec.Command("go", "build", "-o", filepath.Join(destDir, exeName), "./"+filepath.Join("testdata", name))
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Failed to build fixture %s: %s", name, string(out))

	return destDir
}

func TestResilience_GracefulSuite(t *testing.T) {
	dir := buildFixture(t, "graceful")
	l := process.NewLauncher(process.WithAllowList("graceful"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	res := l.Launch(ctx, process.Invocation{Command: "graceful", Dir: dir})
	duration := time.Since(start)

	t.Logf("Duration: %v, Code: %d, Err: %v", duration, res.Code, res.Err)

	assert.True(t, res.Started)
	assert.Error(t, res.Err)
	if runtime.GOOS == "windows" {
		assert.Less(t, duration, process.DefaultGracePeriod+5*time.Second, "On Windows, it should fall back to kill")
	} else {
		assert.Less(t, duration, process.DefaultGracePeriod, "On Unix, it should exit gracefully after the interrupt")
	}
}

func TestResilience_StubbornSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow test in short mode")
	}
	dir := buildFixture(t, "stubborn")
	grace := 500 * time.Millisecond
	l := process.NewLauncher(process.WithAllowList("stubborn"), process.WithGracePeriod(grace))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := l.Launch(ctx, process.Invocation{Command: "stubborn", Dir: dir})
	duration := time.Since(start)

	t.Logf("Duration: %v, Code: %d, Err: %v", duration, res.Code, res.Err)

	assert.True(t, res.Started)
	assert.Error(t, res.Err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, -1, res.Code, "killed children have no exit code")
		assert.GreaterOrEqual(t, duration, 2*grace, "Should wait for the grace period before killing")
	}
	assert.Less(t, duration, 10*time.Second)
}
