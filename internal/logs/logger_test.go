package logs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava12/minilexer/internal/test"
)

func TestFanout(t *testing.T) {
	defer Level.Set(Level.Level())
	test.ExpectNoError(t, SetLevel("info"))

	var terminal, file bytes.Buffer
	log := New(&terminal, &file)
	log.Debug("hidden")
	log.Info("loaded", "productions", 3)

	test.Assert(t, !strings.Contains(terminal.String(), "hidden"), "debug record written: %s", terminal.String())
	test.Assert(t, strings.Contains(terminal.String(), "msg=loaded productions=3"), "unexpected text record: %s", terminal.String())

	var record map[string]any
	test.ExpectNoError(t, json.Unmarshal(file.Bytes(), &record))
	test.ExpectString(t, "loaded", record["msg"].(string))
	test.Expect(t, record["productions"] == 3.0, 3, record["productions"])
}

func TestSetLevel(t *testing.T) {
	defer Level.Set(Level.Level())
	test.ExpectNoError(t, SetLevel("debug"))
	var terminal bytes.Buffer
	New(&terminal, nil).Debug("shown")
	test.Assert(t, strings.Contains(terminal.String(), "msg=shown"), "debug record missing: %s", terminal.String())

	test.Assert(t, SetLevel("verbose") != nil, "expecting error for unknown level")
}
