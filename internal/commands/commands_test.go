package commands

import (
	"strings"
	"sync"
	"testing"
	"time"

	"devtoolsx/internal/testutils"
	"devtoolsx/internal/tools/timestamp"
)

func newTestCommands(rec *testutils.RecordingLogger) *Commands {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return New(rec, WithClock(func() time.Time { return fixed }), WithLocation(time.UTC))
}

func TestGreet(t *testing.T) {
	c := New(&testutils.RecordingLogger{})

	tests := []struct {
		name string
		want string
	}{
		{"World", "Hello, World! You've been greeted from Rust!"},
		{"", "Hello, ! You've been greeted from Rust!"},
		{"世界 🌍", "Hello, 世界 🌍! You've been greeted from Rust!"},
		{"a!b", "Hello, a!b! You've been greeted from Rust!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Greet(tt.name); got != tt.want {
				t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestGreet_PureAndConcurrent(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	c := New(rec)

	first := c.Greet("World")
	if second := c.Greet("World"); first != second {
		t.Errorf("Greet is not idempotent: %q vs %q", first, second)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Greet("World"); got != first {
				t.Errorf("concurrent Greet = %q", got)
			}
		}()
	}
	wg.Wait()

	if calls := rec.Calls(""); len(calls) != 0 {
		t.Errorf("Greet should not log, got %d entries", len(calls))
	}
}

func TestEncodingCommands(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	c := newTestCommands(rec)

	tests := []struct {
		name string
		call func(string) Result
		in   string
		want Result
	}{
		{"base64 encode", c.EncodeBase64, "hi", Result{Output: "aGk="}},
		{"base64 decode", c.DecodeBase64, "aGk=", Result{Output: "hi"}},
		{"base64 decode invalid", c.DecodeBase64, "@@", Result{Error: "Error: Invalid Base64 string"}},
		{"base64 encode invalid utf8", c.EncodeBase64, "\xff", Result{Error: "Error: Invalid input for encoding"}},
		{"uri component", c.EncodeURIComponent, "a b&c", Result{Output: "a%20b%26c"}},
		{"uri", c.EncodeURI, "http://x/a b?c=d", Result{Output: "http://x/a%20b?c=d"}},
		{"uri decode", c.DecodeURIComponent, "a%20b", Result{Output: "a b"}},
		{"uri decode invalid", c.DecodeURIComponent, "%E0%A4%A", Result{Error: "Error: Invalid URL-encoded string"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.call(tt.in); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	warns := rec.Calls("WARN")
	if len(warns) != 3 {
		t.Fatalf("expected 3 rejected inputs to be logged, got %d", len(warns))
	}
	fields := testutils.FieldsToMap(t, warns[0].Fields)
	if fields["operation"] != "decode_base64" || fields["error_code"] != "DECODE" {
		t.Errorf("unexpected warn fields: %v", fields)
	}
}

func TestJSONCommands(t *testing.T) {
	c := newTestCommands(&testutils.RecordingLogger{})

	if got := c.PrettyJSON(`{"a":1}`); got.Output != "{\n  \"a\": 1\n}" || got.Error != "" {
		t.Errorf("PrettyJSON() = %+v", got)
	}
	if got := c.MinifyJSON("{ \"a\" : [1, 2] }"); got.Output != `{"a":[1,2]}` {
		t.Errorf("MinifyJSON() = %+v", got)
	}

	bad := c.PrettyJSON(`{"a":}`)
	if bad.Output != "" || !strings.HasPrefix(bad.Error, "Invalid JSON: ") {
		t.Errorf("expected Invalid JSON error, got %+v", bad)
	}
}

func TestDiffCommands(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	c := newTestCommands(rec)

	res := c.ComputeDiff("a\nb", "a\nc")
	if res.Stats.Added != 1 || res.Stats.Removed != 1 || res.Stats.Unchanged != 1 {
		t.Errorf("unexpected stats: %+v", res.Stats)
	}
	c.ComputeDiff("same\n", "same\n")

	var identical []interface{}
	for _, call := range rec.Calls("DEBUG") {
		if call.Msg == "Diff computed" {
			identical = append(identical, testutils.FieldsToMap(t, call.Fields)["identical"])
		}
	}
	if len(identical) != 2 || identical[0] != false || identical[1] != true {
		t.Errorf("unexpected identical flags %v", identical)
	}

	if got := c.UnifiedDiff("a\n", "b\n"); got.Error != "" || got.Output == "" {
		t.Errorf("UnifiedDiff() = %+v", got)
	}

	if langs := c.DiffLanguages(); len(langs) == 0 {
		t.Error("expected languages")
	}
}

func TestTimestampCommands(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	c := newTestCommands(rec)

	got := c.TimestampToDate("1704067200")
	if got.Error != "" || got.Time == nil {
		t.Fatalf("TimestampToDate() = %+v", got)
	}
	if got.Time.ISO != "2024-01-01T00:00:00.000Z" || got.Time.Relative != "in 0 seconds" {
		t.Errorf("unexpected conversion: %+v", got.Time)
	}

	if bad := c.TimestampToDate("soon"); bad.Error != "Error: Invalid timestamp" || bad.Time != nil {
		t.Errorf("expected invalid timestamp, got %+v", bad)
	}

	date := c.DateToTimestamp(timestamp.DateFields{Year: "2023", Month: "12", Day: "31", Hour: "00", Minute: "00", Second: "00"})
	if date.Error != "" || date.Time.Timestamp != 1703980800 || date.Time.Relative != "1 day ago" {
		t.Errorf("DateToTimestamp() = %+v / %+v", date, date.Time)
	}

	invalid := c.DateToTimestamp(timestamp.DateFields{Year: "2023", Month: "4", Day: "31", Hour: "0", Minute: "0", Second: "0"})
	if invalid.Error != "Error: Day must be between 1 and 30 for this month" {
		t.Errorf("unexpected error %q", invalid.Error)
	}

	warns := rec.Calls("WARN")
	if len(warns) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warns))
	}
	if f := testutils.FieldsToMap(t, warns[1].Fields); f["error_code"] != "VALIDATION" {
		t.Errorf("unexpected fields %v", f)
	}

	if cur := c.CurrentTime(); cur.Timestamp != 1704067200 {
		t.Errorf("CurrentTime() = %+v", cur)
	}
	if fields := c.DefaultDateFields(); fields.Year != "2024" || fields.Month != "01" {
		t.Errorf("DefaultDateFields() = %+v", fields)
	}
}

func TestTimestampToDate_OutOfRange(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	c := newTestCommands(rec)

	for _, input := range []string{"8640000000000001", "-9000000000000000000"} {
		if got := c.TimestampToDate(input); got.Error != "Error: Invalid timestamp" || got.Time != nil {
			t.Errorf("TimestampToDate(%q) = %+v", input, got)
		}
	}
	if limit := c.TimestampToDate("8640000000000000"); limit.Error != "" || limit.Time.ISO != "+275760-09-13T00:00:00.000Z" {
		t.Errorf("TimestampToDate(limit) = %+v", limit)
	}
	if warns := rec.Calls("WARN"); len(warns) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(warns))
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(nil, WithClock(nil))
	if c.logger == nil || c.now == nil || c.converter == nil {
		t.Fatal("expected defaults to be filled in")
	}
}
