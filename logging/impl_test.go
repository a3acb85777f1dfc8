package logging

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type sample struct {
	X       float64
	Y       float64
	private string
}

// assertLogMatches fuzzy matches a log line. The time must parse but may be anything, and the
// caller must name the file but may be on any line.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))

	_, err = time.Parse(DefaultTimeFormatStr, actualParts[0])
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])

	actualFilename, actualLineNumber, found := strings.Cut(actualParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, found := strings.Cut(expectedParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, actualParts[3], test.ShouldEqual, expectedParts[3])
	if len(actualParts) == 4 {
		return
	}

	expectedMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(expectedParts[4]), &expectedMap), test.ShouldBeNil)
	actualMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(actualParts[4]), &actualMap), test.ShouldBeNil)
	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

func TestConsoleOutputFormat(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := &impl{"", NewAtomicLevelAt(DEBUG), true, []Appender{NewWriterAppender(notStdout)}}

	logger.Info("impl Info log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	INFO	logging/impl_test.go:67	impl Info log`)

	logger.Debugf("impl %s log", "debugf")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	DEBUG	logging/impl_test.go:71	impl debugf log`)

	logger.Warnw("impl logw", "key", "value")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	WARN	logging/impl_test.go:75	impl logw	{"key":"value"}`)

	// Private fields are not serialized.
	logger.Errorw("impl logw", "point", sample{1.5, -2, "hidden"}, "n", 3)
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	ERROR	logging/impl_test.go:80	impl logw	{"point":{"X":1.5,"Y":-2},"n":3}`)

	logger.Infow("unpaired", "key")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	INFO	logging/impl_test.go:84	unpaired	{"key":"unpaired log key"}`)
}

func TestLevels(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("")
	logger.AddAppender(NewWriterAppender(notStdout))
	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)

	logger.Debug("dropped")
	logger.Info("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Warn("kept")
	assertLogMatches(t, notStdout, `2023-10-30T09:12:09.459Z	WARN	logging/impl_test.go:100	kept`)
	logger.Error("kept")
	assertLogMatches(t, notStdout, `2023-10-30T09:12:09.459Z	ERROR	logging/impl_test.go:102	kept`)
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("config")
	test.That(t, sub.GetLevel(), test.ShouldEqual, DEBUG)
	sub.Infow("loaded", "path", "robot.json")

	entries := logs.All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "config")
	test.That(t, entries[0].Message, test.ShouldEqual, "loaded")
	test.That(t, entries[0].ContextMap(), test.ShouldResemble, map[string]any{"path": "robot.json"})

	named := NewBlankLogger("coordconv").Sublogger("table")
	notStdout := &bytes.Buffer{}
	named.AddAppender(NewWriterAppender(notStdout))
	named.Info("sampled")
	test.That(t, notStdout.String(), test.ShouldContainSubstring, "\tcoordconv.table\t")

	// Changing the sublogger's level leaves its parent alone.
	sub.SetLevel(ERROR)
	test.That(t, logger.GetLevel(), test.ShouldEqual, DEBUG)
}

func TestAsZap(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("zap")
	logger.AddAppender(NewWriterAppender(notStdout))
	logger.SetLevel(INFO)

	zl := logger.AsZap()
	zl.Debugw("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)
	zl.With("camera", 1).Infow("through zap", "x", 2)
	test.That(t, notStdout.String(), test.ShouldContainSubstring, "through zap")
	test.That(t, notStdout.String(), test.ShouldContainSubstring, `"camera":1`)
	test.That(t, notStdout.String(), test.ShouldContainSubstring, `"x":2`)
	test.That(t, logger.Sync(), test.ShouldBeNil)

	observed, logs := NewObservedTestLogger(t)
	observed.AsZap().Warn("seen")
	test.That(t, logs.FilterLevelExact(zapcore.WarnLevel).Len(), test.ShouldEqual, 1)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{" Warning ", WARN},
		{"warn", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldWrap, ErrInvalidLevel)

	var level Level
	test.That(t, json.Unmarshal([]byte(`"warn"`), &level), test.ShouldBeNil)
	test.That(t, level, test.ShouldEqual, WARN)
	test.That(t, json.Unmarshal([]byte(`"loud"`), &level), test.ShouldNotBeNil)
	out, err := json.Marshal(ERROR)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldEqual, `"error"`)
	test.That(t, DEBUG.AsZap(), test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, Level(7).String(), test.ShouldEqual, "Unknown")
}
