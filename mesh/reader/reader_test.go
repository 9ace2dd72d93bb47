package reader

import (
	"archive/zip"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/objview/asset"
	"github.com/achilleasa/objview/mesh/writer"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := LoadMesh(filepath.Join(t.TempDir(), "missing.obj"), DefaultOptions())
	if err == nil {
		t.Fatal("expected to get an error")
	}
	if m == nil || !m.IsEmpty() || len(m.Indices) != 0 {
		t.Fatalf("expected an empty mesh; got %+v", m)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "mesh.stl", "solid empty")

	m, err := LoadMesh(path, DefaultOptions())
	expError := `reader: unsupported file format ".stl"`
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get error: %s; got %v", expError, err)
	}
	if m == nil || !m.IsEmpty() {
		t.Fatalf("expected an empty mesh; got %+v", m)
	}
}

func TestParseDispatchesOnExtension(t *testing.T) {
	m, err := Parse(asset.NewResourceFromStream("CUBE.OBJ", strings.NewReader(cubePayload)), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.TriangleCount() != 12 {
		t.Fatalf("expected 12 triangles; got %d", m.TriangleCount())
	}

	expError := `reader: unsupported file format ".ply"`
	_, err = Parse(asset.NewResourceFromStream("mesh.ply", strings.NewReader("ply")), Options{})
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get error: %s; got %v", expError, err)
	}
}

func TestLoadMeshFromFile(t *testing.T) {
	path := writeFile(t, "cube.obj", cubePayload)

	m, err := LoadMesh(path, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Positions) != 8 || len(m.Indices) != 36 {
		t.Fatalf("expected 8 positions and 36 indices; got %d and %d", len(m.Positions), len(m.Indices))
	}
	if len(m.Colors) != 8 {
		t.Fatalf("expected default options to generate 8 colors; got %d", len(m.Colors))
	}
	if !m.SyntheticUV || len(m.TexCoords) != 36 {
		t.Fatalf("expected default options to synthesize 36 uv coords; got %d", len(m.TexCoords))
	}
}

func TestLoadMeshOverHttp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cubePayload))
	}))
	defer server.Close()

	m, err := LoadMesh(server.URL+"/models/cube.obj", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.TriangleCount() != 12 {
		t.Fatalf("expected 12 triangles; got %d", m.TriangleCount())
	}
}

func TestRepeatedLoadsAreIndependent(t *testing.T) {
	path := writeFile(t, "cube.obj", cubePayload)

	m1, err := LoadMesh(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	m2, err := LoadMesh(path, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(m2.Positions) != 8 || len(m2.Indices) != 36 {
		t.Fatalf("expected second load to start from scratch; got %d positions and %d indices", len(m2.Positions), len(m2.Indices))
	}
	m1.Positions[0][0] = 100
	if m2.Positions[0][0] == 100 {
		t.Fatal("expected loads not to share position storage")
	}
}

func TestLoadMeshAsync(t *testing.T) {
	path := writeFile(t, "cube.obj", cubePayload)

	results := make([]<-chan Result, 4)
	for i := range results {
		results[i] = LoadMeshAsync(path, Options{GenerateColors: true, Rand: rand.New(rand.NewSource(int64(i)))})
	}

	for i, ch := range results {
		res := <-ch
		if res.Err != nil {
			t.Fatalf("[load %d] %v", i, res.Err)
		}
		if res.Mesh.TriangleCount() != 12 || len(res.Mesh.Colors) != 8 {
			t.Fatalf("[load %d] expected a fully parsed mesh; got %d triangles and %d colors", i, res.Mesh.TriangleCount(), len(res.Mesh.Colors))
		}
		if _, open := <-ch; open {
			t.Fatalf("[load %d] expected result channel to be closed after delivery", i)
		}
	}

	res := <-LoadMeshAsync(filepath.Join(t.TempDir(), "missing.obj"), Options{})
	if res.Err == nil || res.Mesh == nil || !res.Mesh.IsEmpty() {
		t.Fatalf("expected an empty mesh and an error; got %+v", res)
	}
}

func TestCompiledMeshRoundTrip(t *testing.T) {
	objPath := writeFile(t, "cube.obj", cubePayload)
	opts := Options{SynthesizeUV: true, ComputeNormals: true, GenerateColors: true, Rand: rand.New(rand.NewSource(1))}

	m, err := LoadMesh(objPath, opts)
	if err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(t.TempDir(), "cube.zip")
	if err = writer.WriteMesh(m, zipPath); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadMesh(zipPath, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(m, loaded) {
		t.Fatalf("expected compiled mesh to match the source mesh;\nexp %+v\ngot %+v", m, loaded)
	}
}

func TestCompiledMeshWithoutData(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "empty.zip")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	entry, _ := zw.Create("readme.txt")
	entry.Write([]byte("nothing to see"))
	zw.Close()
	f.Close()

	m, err := LoadMesh(zipPath, Options{})
	if err == nil {
		t.Fatal("expected to get an error for a zip without mesh data")
	}
	if !m.IsEmpty() {
		t.Fatalf("expected an empty mesh; got %+v", m)
	}
}

func writeFile(t *testing.T, name, payload string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
