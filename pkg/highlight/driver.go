package highlight

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/index"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/paths"
	"github.com/arthur-debert/hilite/pkg/render"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// GzipExt is appended to the precompressed copy of an output file
const GzipExt = ".gz"

// Confirmer asks whether an existing file may be overwritten
type Confirmer interface {
	ConfirmOverwrite(path string) (bool, error)
}

// Request describes one highlighting job
type Request struct {
	// Input is the source file; a name without extension that does not
	// exist is retried with DefaultExt
	Input      string
	DefaultExt string

	// Output is an explicit output file name; empty derives it from Input
	Output string
	// Dir is the output directory; empty means next to the input
	Dir string

	// Clobber overwrites existing output without asking
	Clobber bool

	// Title is the heading of the index page written by Files
	Title string
}

// Result reports one highlighted file
type Result struct {
	Input   string
	Output  string
	Skipped bool
	Stats   *Stats
}

// Failure records an input that could not be highlighted
type Failure struct {
	Input string
	Err   error
}

// BatchResult reports a Files run
type BatchResult struct {
	Results  []*Result
	Failures []Failure
	// Index is the path of the index page, empty when none was written
	Index string
}

// Driver highlights files on a filesystem
type Driver struct {
	fs      afero.Fs
	opts    Options
	confirm Confirmer
	logger  zerolog.Logger
}

// New creates a driver. confirm may be nil, in which case existing output
// files are only overwritten when a request sets Clobber.
func New(fs afero.Fs, opts Options, confirm Confirmer) *Driver {
	return &Driver{
		fs:      fs,
		opts:    opts,
		confirm: confirm,
		logger:  logging.GetLogger("highlight"),
	}
}

// File highlights a single input file
func (d *Driver) File(req Request) (*Result, error) {
	input, err := paths.ResolveInput(d.fs, req.Input, req.DefaultExt)
	if err != nil {
		return nil, err
	}
	output := paths.OutputPath(input, req.Dir, req.Output)
	if samePath(input, output) {
		return nil, errors.New(errors.ErrInvalidInput, "output would overwrite the input").
			WithDetail("path", input)
	}

	logger := d.logger.With().Str("input", input).Str("output", output).Logger()
	done := logging.LogOperationStart(logger, "highlight file")
	defer done()

	result := &Result{Input: input, Output: output}

	ok, err := d.mayWrite(output, req.Clobber)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info().Msg("Output exists, skipping")
		result.Skipped = true
		return result, nil
	}

	stats, err := d.write(input, output)
	if err != nil {
		logger.Error().Err(err).Msg("Highlighting failed")
		return nil, err
	}

	result.Stats = stats
	logger.Info().
		Int("tokens", stats.Tokens).
		Int("docComments", stats.DocComments).
		Msg("Wrote highlighted file")
	return result, nil
}

// Files highlights every input and continues past failures. When more
// than one input is given an index page linking the outputs is written.
func (d *Driver) Files(inputs []string, req Request) (*BatchResult, error) {
	if len(inputs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no input files")
	}
	if len(inputs) > 1 && req.Output != "" {
		return nil, errors.New(errors.ErrInvalidInput, "an output name needs a single input file")
	}

	batch := &BatchResult{}
	for _, input := range inputs {
		r := req
		r.Input = input

		result, err := d.File(r)
		if err != nil {
			batch.Failures = append(batch.Failures, Failure{Input: input, Err: err})
			continue
		}
		batch.Results = append(batch.Results, result)
	}

	if len(inputs) > 1 && len(batch.Results) > 0 {
		path, err := d.writeIndex(batch.Results, req)
		if err != nil {
			return batch, err
		}
		batch.Index = path
	}

	d.logger.Info().
		Int("written", len(batch.Results)).
		Int("failed", len(batch.Failures)).
		Msg("Batch complete")
	return batch, nil
}

// outputs lists the files written for output: the page and, with Gzip,
// its compressed copy
func (d *Driver) outputs(output string) []string {
	if d.opts.Gzip {
		return []string{output, output + GzipExt}
	}
	return []string{output}
}

// mayWrite asks once, naming the first existing file, when any of the
// files written for output already exists
func (d *Driver) mayWrite(output string, clobber bool) (bool, error) {
	if clobber {
		return true, nil
	}

	existing := ""
	for _, path := range d.outputs(output) {
		exists, err := afero.Exists(d.fs, path)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrFileAccess, "cannot check output file").
				WithDetail("path", path)
		}
		if exists {
			existing = path
			break
		}
	}
	if existing == "" {
		return true, nil
	}
	if d.confirm == nil {
		return false, errors.New(errors.ErrFileExists, "output file exists").
			WithDetail("path", existing)
	}

	ok, err := d.confirm.ConfirmOverwrite(existing)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrAborted, "confirmation failed")
	}
	return ok, nil
}

// write highlights input into output. The output file is removed again if
// highlighting fails.
func (d *Driver) write(input, output string) (stats *Stats, err error) {
	src, err := d.fs.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot open input file").
			WithDetail("path", input)
	}
	defer func() { _ = src.Close() }()

	if err := d.fs.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileCreate, "cannot create output directory").
			WithDetail("path", filepath.Dir(output))
	}

	// paths are listed once their Create succeeds
	var created []string
	defer func() {
		if err == nil {
			return
		}
		for _, path := range created {
			if rmErr := d.fs.Remove(path); rmErr != nil {
				d.logger.Warn().Err(rmErr).Str("path", path).Msg("Failed to remove partial output")
			}
		}
	}()

	dst, err := d.fs.Create(output)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileCreate, "cannot create output file").
			WithDetail("path", output)
	}
	created = append(created, output)

	var sink io.Writer = dst
	var zw *gzip.Writer
	var zdst afero.File
	if d.opts.Gzip {
		zdst, err = d.fs.Create(output + GzipExt)
		if err != nil {
			_ = dst.Close()
			return nil, errors.Wrap(err, errors.ErrFileCreate, "cannot create compressed output file").
				WithDetail("path", output+GzipExt)
		}
		created = append(created, output+GzipExt)
		zw, _ = gzip.NewWriterLevel(zdst, gzip.BestCompression)
		zw.Name = filepath.Base(output)
		sink = io.MultiWriter(dst, zw)
	}

	doc := render.Document{
		OutputName: filepath.Base(output),
		InputName:  filepath.Base(input),
	}
	stats, err = Highlight(src, sink, doc, d.opts)

	if zw != nil {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, errors.ErrFileWrite, "failed to compress output")
		}
		if cerr := zdst.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, errors.ErrFileWrite, "failed to close compressed output")
		}
	}
	if cerr := dst.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, errors.ErrFileWrite, "failed to close output file")
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (d *Driver) writeIndex(results []*Result, req Request) (string, error) {
	dir := req.Dir
	if dir == "" {
		dir = filepath.Dir(results[0].Output)
	}
	dir = paths.ExpandHome(dir)
	path := filepath.Join(dir, paths.IndexFileName)

	page := index.Page{Title: req.Title}
	for _, r := range results {
		href, err := filepath.Rel(dir, r.Output)
		if err != nil {
			href = r.Output
		}
		page.Entries = append(page.Entries, index.Entry{
			Name: filepath.Base(r.Input),
			Href: filepath.ToSlash(href),
		})
	}

	if err := d.fs.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrFileCreate, "cannot create output directory").
			WithDetail("path", dir)
	}
	f, err := d.fs.Create(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileCreate, "cannot create index page").
			WithDetail("path", path)
	}
	if err := index.Write(f, page); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "failed to close index page")
	}

	d.logger.Info().Str("path", path).Int("entries", len(page.Entries)).Msg("Wrote index page")
	return path, nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
