package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// readGrid reads a 2-D NumPy array. Float and integer element types are
// widened to float64; Fortran-ordered arrays are returned in row-major form.
func readGrid(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read npy header: %w", err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: want 2 dimensions, got %v", domain.ErrShapeMismatch, shape)
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 || cols == 0 {
		return nil, domain.ErrEmptyFile
	}

	data, err := readElements(r)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: header %dx%d, %d elements", domain.ErrShapeMismatch, rows, cols, len(data))
	}

	if r.Header.Descr.Fortran {
		m := mat.NewDense(cols, rows, data)
		return mat.DenseCopyOf(m.T()), nil
	}
	return mat.NewDense(rows, cols, data), nil
}

func readElements(r *npyio.Reader) ([]float64, error) {
	dtype := strings.TrimLeft(r.Header.Descr.Type, "<|=")
	switch dtype {
	case "f8":
		var v []float64
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		return v, nil
	case "f4":
		var v []float32
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		return widen(v), nil
	case "i8":
		var v []int64
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		return widen(v), nil
	case "i4":
		var v []int32
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		return widen(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported dtype %q", domain.ErrInvalidValue, r.Header.Descr.Type)
	}
}

func widen[T float32 | int64 | int32](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// writeGrid writes m as a little-endian float64 C-ordered array.
func writeGrid(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := npyio.Write(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("write npy %s: %w", path, err)
	}
	return f.Close()
}
