package reader

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/achilleasa/objview/asset"
	"github.com/achilleasa/objview/log"
	"github.com/achilleasa/objview/mesh"
)

var logger = log.New("mesh loader")

// Options select which attributes the loader reads or generates.
type Options struct {
	// Read "vn" records and per-corner normal references.
	ReadNormals bool

	// Read "vt" records and per-corner tex coord references.
	ReadTexCoords bool

	// Generate a per-triangle uv frame when the file provides no tex coords.
	SynthesizeUV bool

	// Replace normals with smooth per-vertex normals computed from the faces.
	ComputeNormals bool

	// Attach a random decorative color to each position.
	GenerateColors bool

	// Random source for GenerateColors. If nil, a time-seeded source is used.
	// A rand.Rand is not safe for concurrent use so it must not be shared
	// between concurrent loads.
	Rand *rand.Rand
}

// The default options: positions with synthetic uv coords and decorative
// colors.
func DefaultOptions() Options {
	return Options{
		SynthesizeUV:   true,
		GenerateColors: true,
	}
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh definition from a resource.
	Read(*asset.Resource) (*mesh.Mesh, error)
}

// The outcome of an asynchronous load.
type Result struct {
	Mesh *mesh.Mesh
	Err  error
}

// Load mesh from a local file or http/https URL. The reader is selected by
// the file extension (.obj or .zip).
//
// If the mesh cannot be loaded the error is logged and returned together with
// an empty mesh; partially parsed data is never returned.
func LoadMesh(path string, opts Options) (*mesh.Mesh, error) {
	res, err := asset.NewResource(path)
	if err != nil {
		logger.Errorf("could not open mesh %q: %s", path, err.Error())
		return &mesh.Mesh{}, err
	}
	defer res.Close()

	m, err := Parse(res, opts)
	if err != nil {
		logger.Errorf("could not load mesh %q: %s", path, err.Error())
		return &mesh.Mesh{}, err
	}
	return m, nil
}

// Load a mesh on a separate goroutine. The returned channel receives exactly
// one Result once loading has completed and is then closed.
func LoadMeshAsync(path string, opts Options) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		m, err := LoadMesh(path, opts)
		out <- Result{Mesh: m, Err: err}
	}()
	return out
}

// Parse a mesh from an open resource. The format is selected by the resource
// extension.
func Parse(res *asset.Resource, opts Options) (*mesh.Mesh, error) {
	var reader Reader
	switch res.Ext() {
	case ".obj":
		reader = newWavefrontReader(opts)
	case ".zip":
		reader = newZipMeshReader()
	default:
		return nil, fmt.Errorf("reader: unsupported file format %q", res.Ext())
	}
	return reader.Read(res)
}
