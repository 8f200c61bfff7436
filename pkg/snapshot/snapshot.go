package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var funcCount = make(map[string]int)

// ValidateSnapshot compares obj, as indented JSON, to testdata/<func>-<call>.json
// A missing snapshot is written instead of compared. Set UPDATE_SNAPSHOTS to rewrite every snapshot
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
	if os.Getenv("UPDATE_SNAPSHOTS") != "" {
		create(filename, obj)
		return
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, obj)
			return
		}

		panic(err)
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(filename string, obj interface{}) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		panic(err)
	}
}
