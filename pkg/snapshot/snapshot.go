package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Dir is where snapshots are stored, relative to the package under test
const Dir = "testdata"

var (
	calls     = make(map[string]int)
	callsLock sync.Mutex
)

// Validate compares obj as indented JSON to the test's next snapshot file
// The first run writes the snapshot; delete the file to record a new one.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	filename := nextFilename(t)
	expected, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		write(t, filename, actual)
		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expected)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(t *testing.T) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	callsLock.Lock()
	call := calls[name]
	calls[name] = call + 1
	callsLock.Unlock()

	// numbering starts over when the test is run again in the same process
	if call == 0 {
		t.Cleanup(func() {
			callsLock.Lock()
			delete(calls, name)
			callsLock.Unlock()
		})
	}

	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		t.Fatalf("could not create snapshot dir: %v", err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0o644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
