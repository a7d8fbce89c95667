package benchmarks

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
	"znkr.io/editscript"
)

type testdata struct {
	name string
	x, y []byte
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		name := strings.TrimPrefix(filename, "testdata/")
		test := testdata{
			name: name,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

// The edit scripts computed by this module are minimal, no other library can do better.
func TestMinimal(t *testing.T) {
	for _, td := range loadTestdata(t) {
		t.Run(td.name, func(t *testing.T) {
			want := editscript.Distance(editscript.Script(lines(td.x), lines(td.y)))
			for _, impl := range Impls {
				got, err := impl.Edits(td.x, td.y)
				if err != nil {
					t.Errorf("%s failed: %v", impl.Name, err)
					continue
				}
				if got < want {
					t.Errorf("%s found %d edits, fewer than the minimum %d", impl.Name, got, want)
				}
			}
		})
	}
}

func TestCountUnified(t *testing.T) {
	out := []byte(`--- x
+++ y
@@ -1,4 +1,4 @@
 a
-b
+c
 d
-e
+f
`)
	got, err := countUnified(out)
	if err != nil {
		t.Fatalf("countUnified(...) returned unexpected error: %v", err)
	}
	if want := 4; got != want {
		t.Errorf("countUnified(...) = %d, want %d", got, want)
	}

	if got, err := countUnified(nil); got != 0 || err != nil {
		t.Errorf("countUnified(nil) = %d, %v, want 0, nil", got, err)
	}
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_, _ = impl.Edits(td.x, td.y)
					}
					b.StopTimer()

					edits, err := impl.Edits(td.x, td.y)
					if err != nil {
						b.Fatalf("%s failed: %v", impl.Name, err)
					}
					b.ReportMetric(float64(edits), "edits")
				})
			}
		})
	}
}

func BenchmarkReuse(b *testing.B) {
	for _, td := range loadTestdata(b) {
		x, y := lines(td.x), lines(td.y)
		b.Run("name="+td.name, func(b *testing.B) {
			b.ReportAllocs()
			var buf editscript.Buffer
			for b.Loop() {
				_ = editscript.Script(x, y, editscript.Reuse(&buf))
			}
		})
	}
}
