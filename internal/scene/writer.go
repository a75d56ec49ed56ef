package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
)

// WriteGLB encodes the document into its binary container form.
func WriteGLB(w io.Writer, doc *gltf.Document) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode GLB: %w", err)
	}
	return nil
}

// SaveGLB writes the document to path as a .glb file.
func SaveGLB(path string, doc *gltf.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteGLB(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
