package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

// isolate keeps the developer's own configuration out of a test run
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "MDWKIT_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCapitalize(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args joined", "", []string{"capitalize", "élan", "vital"}, "Élan vital\n"},
		{"decomposed", "", []string{"capitalize", "e\u0301lan"}, "E\u0301lan\n"},
		{"stdin lines", "abc\nxyz\n", []string{"capitalize"}, "Abc\nXyz\n"},
		{"turkish", "", []string{"capitalize", "--locale", "tr", "istanbul"}, "İstanbul\n"},
		{"empty", "", []string{"capitalize", ""}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.stdin, tt.args...)
			if code != 0 {
				t.Fatalf("exit %d, stderr: %s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestCapitalizeBadLocale(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "capitalize", "--locale", "???", "x")
	if code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
	if stdout != "" || !strings.Contains(stderr, "Error:") {
		t.Errorf("stdout = %q, stderr = %q", stdout, stderr)
	}
}

func TestTruncate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"cut", []string{"truncate", "--max", "3", "Grüße"}, "Grü…\n"},
		{"fits", []string{"truncate", "--max", "5", "Grüße"}, "Grüße\n"},
		{"family emoji", []string{"truncate", "--max", "1", "--marker", "...", "👨‍👩‍👧 family"}, "👨‍👩‍👧...\n"},
		{"zero", []string{"truncate", "--max", "0", "abc"}, "…\n"},
		{"empty marker", []string{"truncate", "--max", "2", "--marker", "", "abc"}, "ab\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, "", tt.args...)
			if code != 0 {
				t.Fatalf("exit %d, stderr: %s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestTruncateErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"negative", []string{"truncate", "--max", "-1", "abc"}},
		{"missing max", []string{"truncate", "abc"}},
		{"not a number", []string{"truncate", "--max", "ten", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := execute(t, "", tt.args...)
			if code != 2 {
				t.Errorf("exit = %d, want 2", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
		})
	}
}

func TestTruncateMarkerFromConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mdwkit.toml")
	if err := os.WriteFile(path, []byte("[text]\nmarker = \" [more]\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execute(t, "", "truncate", "--max", "2", "abcdef")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if stdout != "ab [more]\n" {
		t.Errorf("stdout = %q", stdout)
	}

	t.Setenv("MDWKIT_TEXT_MARKER", "~")
	_, stdout, _ = execute(t, "", "truncate", "--max", "2", "abcdef")
	if stdout != "ab~\n" {
		t.Errorf("environment override ignored: %q", stdout)
	}
}

func TestReplace(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ignore case", []string{"replace", "--find", "WORLD", "--with", "there", "Hello world, World!"}, "Hello there, there!\n"},
		{"empty find", []string{"replace", "--find", "", "--with", "x", "abc"}, "abc\n"},
		{"no partial character", []string{"replace", "--find", "e", "--with", "X", "e\u0301e"}, "e\u0301X\n"},
		{"delete", []string{"replace", "--find", "-", "a-b-c"}, "abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, "", tt.args...)
			if code != 0 {
				t.Fatalf("exit %d, stderr: %s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestInspectPlain(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "inspect", "--plain", "e\u0301a")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	want := "0\te\u0301\tU+0065 U+0301\t1\t0\n" +
		"1\ta\tU+0061\t1\t3\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestInspectTable(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "a\tb", "inspect")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	for _, want := range []string{"CODE POINTS", "U+0009", `"\t"`, "3 characters, 3 code points, 3 bytes"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}
}

func TestClone(t *testing.T) {
	dir := isolate(t)
	src := filepath.Join(dir, "doc.yaml")
	doc := "name: edge\nports:\n  - 80\n  - 443\n"
	if err := os.WriteFile(src, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execute(t, "", "clone", src, "--set", "ports[0]=8080", "--set", "tls=true")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}

	got, err := valuex.Decode([]byte(stdout), valuex.FormatJSON)
	if err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	want := valuex.NewObject().
		Set("name", "edge").
		Set("ports", valuex.List{int64(8080), int64(443)}).
		Set("tls", true)
	if !valuex.Equal(got, want) {
		t.Errorf("clone = %s", stdout)
	}

	after, _ := os.ReadFile(src)
	if string(after) != doc {
		t.Errorf("source file changed: %q", after)
	}
}

func TestCloneFormats(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, `{"b": 1, "a": [true, null]}`, "clone", "--to", "yaml")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "b: 1\n") {
		t.Errorf("key order lost: %q", stdout)
	}

	code, stdout, _ = execute(t, "title = \"x\"\n", "clone", "--from", "toml", "--to", "msgpack")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	back, err := valuex.Decode([]byte(stdout), valuex.FormatMsgpack)
	if err != nil || !valuex.Equal(back, valuex.NewObject().Set("title", "x")) {
		t.Errorf("msgpack round trip = %v, %v", back, err)
	}

	code, stdout, _ = execute(t, `{"n": 1, "list": ["a"]}`, "clone", "--to", "bson", "--set", "n=2")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	back, err = valuex.Decode([]byte(stdout), valuex.FormatBSON)
	want := valuex.NewObject().Set("n", int64(2)).Set("list", valuex.List{"a"})
	if err != nil || !valuex.Equal(back, want) {
		t.Errorf("bson round trip = %v, %v", back, err)
	}
}

func TestCloneNullValues(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, `{"a": null, "b": 1, "c": [null]}`, "clone", "--to", "json", "--set", "b=null")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}

	got, err := valuex.Decode([]byte(stdout), valuex.FormatJSON)
	if err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	want := valuex.NewObject().
		Set("a", nil).
		Set("b", nil).
		Set("c", valuex.List{nil})
	if !valuex.Equal(got, want) {
		t.Errorf("clone = %s", stdout)
	}
}

func TestCloneOutputFile(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "out.toml")

	code, stdout, stderr := execute(t, `{"k": "v"}`, "clone", "--to", "toml", "-o", target)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	data, err := os.ReadFile(target)
	if err != nil || !strings.Contains(string(data), `k = "v"`) {
		t.Errorf("output file = %q, %v", data, err)
	}
}

func TestCloneErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"malformed", "{", []string{"clone"}, 2},
		{"unknown format", "{}", []string{"clone", "--to", "xml"}, 2},
		{"missing file", "", []string{"clone", "nope.json"}, 4},
		{"bad set", "{}", []string{"clone", "--set", "novalue"}, 2},
		{"set below scalar", `{"a": 1}`, []string{"clone", "--set", "a.b=2"}, 2},
		{"toml needs table", "[1, 2]", []string{"clone", "--to", "toml"}, 2},
		{"bson needs document", "[1, 2]", []string{"clone", "--to", "bson"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.stdin, tt.args...)
			if code != tt.code {
				t.Errorf("exit = %d, want %d (stderr: %s)", code, tt.code, stderr)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
		})
	}
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		raw  string
		want valuex.Value
	}{
		{"8080", int64(8080)},
		{"1.5", 1.5},
		{"true", true},
		{"null", nil},
		{"hello world", "hello world"},
		{"", ""},
		{"# note", "# note"},
		{"a: b", "a: b"},
		{"[a, 1]", valuex.List{"a", int64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := setValue(tt.raw); !valuex.Equal(got, tt.want) {
				t.Errorf("setValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestConfigErrors(t *testing.T) {
	dir := isolate(t)

	code, _, _ := execute(t, "", "--config", filepath.Join(dir, "missing.toml"), "version")
	if code != 4 {
		t.Errorf("missing config exit = %d, want 4", code)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[log]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := execute(t, "", "--config", bad, "version")
	if code != 2 {
		t.Errorf("invalid config exit = %d, want 2 (stderr: %s)", code, stderr)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "-v", "--log-format", "logfmt", "replace", "--find", "a", "--with", "b", "aAa")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if stdout != "bbb\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "matches=3") || !strings.Contains(stderr, "correlation_id=") {
		t.Errorf("stderr lacks debug entry: %s", stderr)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute(t, "", "version", "--short")
	if code != 0 || stdout != "0.2.0\n" {
		t.Errorf("version --short = %d, %q", code, stdout)
	}
	_, stdout, _ = execute(t, "", "version")
	if !strings.HasPrefix(stdout, "mdwkit 0.2.0 (") {
		t.Errorf("version = %q", stdout)
	}
}
