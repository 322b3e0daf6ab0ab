package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("id %s keys %s\n", "$/a", []string{"x", "y"})
	got := buf.String()
	if !strings.HasPrefix(got, "id $/a keys [") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, `"x"`) {
		t.Errorf("expected json rendering, got %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("JSONDOC_TEST_FLAG", "true")
	if !boolEnv("JSONDOC_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("JSONDOC_TEST_FLAG", "nope")
	if boolEnv("JSONDOC_TEST_FLAG") {
		t.Error("expected false for unparseable value")
	}
	if boolEnv("JSONDOC_TEST_UNSET") {
		t.Error("expected false for unset")
	}
}
