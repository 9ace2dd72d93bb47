package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.Path() != thisFile {
		t.Fatalf("expected path to be %s; got %s", thisFile, res.Path())
	}
	if res.Ext() != ".go" {
		t.Fatalf("expected extension to be .go; got %s", res.Ext())
	}
}

func TestMissingLocalResource(t *testing.T) {
	_, err := NewResource(filepath.Join(t.TempDir(), "missing.obj"))
	if err == nil || !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error; got %v", err)
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.Path() != fetchUrl {
		t.Fatalf("expected path to be %s; got %s", fetchUrl, res.Path())
	}
	if res.Ext() != ".go" {
		t.Fatalf("expected extension to be .go; got %s", res.Ext())
	}

	fetchUrl = server.URL + "/file-not-found.obj"
	expError := fmt.Sprintf("asset: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "asset: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.obj")
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceFromStream(t *testing.T) {
	res := NewResourceFromStream("embedded.obj", strings.NewReader("v 0 0 0"))
	defer res.Close()

	if res.Path() != "embedded.obj" {
		t.Fatalf("expected path to be embedded.obj; got %s", res.Path())
	}
	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v 0 0 0" {
		t.Fatalf("expected stream contents to be preserved; got %q", data)
	}
}
