package writer

import "github.com/achilleasa/objview/mesh"

// Name of the zip entry that holds the encoded mesh.
const DataFile = "mesh.bin"

// The Writer interface is implemented by all mesh writers.
type Writer interface {
	// Write mesh definition
	Write(*mesh.Mesh) error
}

// Write mesh to the compiled zip format.
func WriteMesh(m *mesh.Mesh, filename string) error {
	writer := newZipMeshWriter(filename)
	return writer.Write(m)
}
