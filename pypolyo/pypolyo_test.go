package pypolyo

import (
	"path/filepath"
	"testing"

	"github.com/go-python/gpython/py"
	_ "github.com/go-python/gpython/stdlib"
)

// runScript runs the given script from testdata and returns its globals.
func runScript(t *testing.T, scriptName string) py.StringDict {
	ctx := py.NewContext(py.DefaultContextOpts())
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	module, err := py.RunFile(ctx, filepath.Join("testdata", scriptName), py.CompileOpts{}, nil)
	if err != nil {
		py.TracebackDump(err)
		t.Fatal(err)
	}
	return module.Globals
}

func TestModule(t *testing.T) {
	globals := runScript(t, "module.py")

	expect := []int64{1, 2, 6, 19, 63}
	for _, key := range []string{"counts", "ref"} {
		tuple, ok := globals[key].(py.Tuple)
		if !ok || len(tuple) != len(expect) {
			t.Fatalf("%s: got %v", key, globals[key])
		}
		for i, want := range expect {
			if tuple[i].(py.Int) != py.Int(want) {
				t.Fatalf("%s[%d]: got %v, expected %d", key, i, tuple[i], want)
			}
		}
	}

	if globals["distinct"].(py.Int) != 1+2+6+19 {
		t.Fatalf("distinct: got %v", globals["distinct"])
	}
	if globals["shape"].(py.String) != "(0,0) (0,1)" {
		t.Fatalf("shape: got %v", globals["shape"])
	}
	if globals["max_size"].(py.Int) != 32 {
		t.Fatalf("max_size: got %v", globals["max_size"])
	}
}

func TestModuleErrors(t *testing.T) {
	globals := runScript(t, "errors.py")
	if globals["failures"].(py.Int) != 4 {
		t.Fatalf("got %v failures", globals["failures"])
	}
}
