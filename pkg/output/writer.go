package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/arthur-debert/combogen/pkg/logging"
	"github.com/spf13/afero"
)

// Separator goes between consecutive blocks: one blank line.
const Separator = "\n\n"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Writer writes blocks to destinations on a filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer over fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// NewOSWriter returns a Writer over the real filesystem.
func NewOSWriter() *Writer {
	return NewWriter(afero.NewOsFs())
}

// RenderTo writes blocks to w joined by Separator.
func RenderTo(w io.Writer, blocks []string) error {
	for i, block := range blocks {
		if i > 0 {
			if _, err := io.WriteString(w, Separator); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes the blocks to filename inside every destination, in order.
func (w *Writer) WriteAll(blocks []string, destinations []string, filename string) *Report {
	logger := logging.GetLogger("output.writer")
	report := &Report{Blocks: len(blocks), Filename: filename}

	for _, dest := range destinations {
		path := filepath.Join(dest, filename)
		err := w.writeOne(blocks, dest, path)
		report.Results = append(report.Results, DestinationResult{
			Destination: dest,
			Path:        path,
			Err:         err,
		})

		if err != nil {
			logger.Error().
				Err(err).
				Str("destination", dest).
				Str("path", path).
				Msg("failed to write destination")
			continue
		}
		logger.Info().
			Str("destination", dest).
			Str("path", path).
			Int("blocks", len(blocks)).
			Msg("wrote destination")
	}

	return report
}

func (w *Writer) writeOne(blocks []string, dest, path string) (err error) {
	if err := w.fs.MkdirAll(dest, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dest).
			WithDetail("destination", dest)
	}

	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot open %s", path).
			WithDetail("destination", dest)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "cannot close %s", path).
				WithDetail("destination", dest)
		}
	}()

	if err := RenderTo(f, blocks); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("destination", dest)
	}
	return nil
}
