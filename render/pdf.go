package render

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/decibelcooper/histcmp"
)

var errNotBegun = errors.New("render: document not begun")

var _ histcmp.Renderer = (*PDF)(nil)

// PDF renders a multi-page document: a title page, one page per job and a
// closing page. Nothing is written to the file system before End.
type PDF struct {
	fs    afero.Fs
	path  string
	style Style

	canvas *vgpdf.Canvas
	pages  int
}

// NewPDF returns a document written to path on fs.
func NewPDF(fs afero.Fs, path string, style Style) *PDF {
	return &PDF{fs: fs, path: path, style: style}
}

// Pages returns the number of pages drawn so far.
func (d *PDF) Pages() int { return d.pages }

func (d *PDF) Begin(title histcmp.Title) error {
	d.canvas = vgpdf.New(d.style.Width, d.style.Height)
	drawTitlePage(draw.New(d.canvas), title, d.style)
	d.pages = 1
	return nil
}

func (d *PDF) Render(job histcmp.Job) error {
	if d.canvas == nil {
		return errNotBegun
	}
	d.canvas.NextPage()
	d.pages++
	return drawJob(draw.New(d.canvas), job, d.style)
}

func (d *PDF) End() (err error) {
	if d.canvas == nil {
		return errNotBegun
	}
	d.canvas.NextPage()
	d.pages++
	drawEndPage(draw.New(d.canvas), d.style)

	f, err := d.fs.Create(d.path)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", d.path)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if _, err = d.canvas.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write %q", d.path)
	}
	d.canvas = nil
	return nil
}
