package presenter

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"frogjump-go/pkg/uniform"
	"frogjump-go/pkg/walk"

	"gonum.org/v1/gonum/mat"
)

func SaveDenseToCSV(m *mat.Dense, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

// SaveTrajectoryCSV writes one row per visited position: the step number
// followed by one column per axis.
func SaveTrajectoryCSV(res *walk.Result, filename string) error {
	traj := res.Matrix()
	if traj == nil {
		return errors.New("empty trajectory")
	}
	rows, cols := traj.Dims()

	m := mat.NewDense(rows, cols+1, nil)
	m.Slice(0, rows, 1, cols+1).(*mat.Dense).Copy(traj)

	// 2D/3D trajectories start with the origin before any step.
	first := 1
	if res.Dim > 1 {
		first = 0
	}
	for i := 0; i < rows; i++ {
		m.Set(i, 0, float64(first+i))
	}
	return SaveDenseToCSV(m, filename)
}

// SaveSamples writes the raw and the scaled samples, one value per line, to
// two files. Either both files are replaced or neither is: the values go to
// temporary files next to the targets first and are renamed into place only
// once both are complete.
func SaveSamples(rawPath, scaledPath string, s *uniform.Samples) error {
	rawTmp, err := writeTemp(rawPath, s.Raw)
	if err != nil {
		return err
	}
	defer os.Remove(rawTmp)

	scaledTmp, err := writeTemp(scaledPath, s.Scaled)
	if err != nil {
		return err
	}
	defer os.Remove(scaledTmp)

	// Keep the previous raw file until the scaled one is in place.
	backup := ""
	if _, err := os.Stat(rawPath); err == nil {
		backup = rawTmp + ".bak"
		if err := os.Rename(rawPath, backup); err != nil {
			return err
		}
	}
	restore := func() {
		if backup != "" {
			os.Rename(backup, rawPath)
		} else {
			os.Remove(rawPath)
		}
	}

	if err := os.Rename(rawTmp, rawPath); err != nil {
		restore()
		return err
	}
	if err := os.Rename(scaledTmp, scaledPath); err != nil {
		restore()
		return err
	}
	if backup != "" {
		os.Remove(backup)
	}
	return nil
}

func writeTemp(target string, values []float64) (name string, err error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err = w.Write(buf); err != nil {
			return "", fmt.Errorf("writing %s: %w", target, err)
		}
	}
	if err = w.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
