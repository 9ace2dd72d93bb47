package writer

import (
	"archive/zip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/achilleasa/objview/log"
	"github.com/achilleasa/objview/mesh"
)

type zipMeshWriter struct {
	logger   log.Logger
	filename string

	// Opens the output file for writing.
	create func(string) (io.WriteCloser, error)
}

// Create a new zip mesh writer.
func newZipMeshWriter(filename string) *zipMeshWriter {
	return &zipMeshWriter{
		logger:   log.New("zip writer"),
		filename: filename,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

// Encode the mesh and write it to a zip archive. If writing fails, the
// partially written archive is removed.
func (w *zipMeshWriter) Write(m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	w.logger.Noticef(`writing compiled mesh to "%s"`, w.filename)
	start := time.Now()

	f, err := w.create(w.filename)
	if err != nil {
		return err
	}

	err = writeZip(f, m)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(w.filename); rmErr != nil && !os.IsNotExist(rmErr) {
			w.logger.Warningf(`could not remove incomplete file "%s": %s`, w.filename, rmErr.Error())
		}
		return err
	}

	w.logger.Noticef("wrote compiled mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

func writeZip(dst io.Writer, m *mesh.Mesh) error {
	zw := zip.NewWriter(dst)
	entry, err := zw.Create(DataFile)
	if err != nil {
		return err
	}

	if err = gob.NewEncoder(entry).Encode(m); err != nil {
		return fmt.Errorf("zipMeshWriter: could not encode mesh: %w", err)
	}

	return zw.Close()
}
