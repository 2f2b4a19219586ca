package intersect

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"v.io/x/lib/envvar"
	"v.io/x/lib/lookpath"
	"v.io/x/lib/vlog"
)

// Opts controls how bedtools is invoked.
type Opts struct {
	// Stranded restricts overlaps to regions on the read's strand (-s).
	Stranded bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Stranded: true,
}

// Result is the output of both intersect passes for one annotation file.
type Result struct {
	Alignments []AlignmentRow
	Overlaps   []OverlapRow
}

// Bedtools runs "bedtools intersect".  It is safe for concurrent use.
type Bedtools struct {
	// Path is the bedtools executable.
	Path string
	Opts Opts
}

// LookBedtools finds bedtools on $PATH.
func LookBedtools(opts Opts) (*Bedtools, error) {
	path, err := lookpath.Look(envvar.SliceToMap(os.Environ()), "bedtools")
	if err != nil {
		return nil, errors.Wrap(err, "bedtools is not installed")
	}
	return &Bedtools{Path: path, Opts: opts}, nil
}

func (b *Bedtools) args(alignPath, regionPath string, output ...string) []string {
	args := []string{"intersect"}
	if b.Opts.Stranded {
		args = append(args, "-s")
	}
	args = append(args, "-a", alignPath, "-b", regionPath)
	return append(args, output...)
}

func (b *Bedtools) command(ctx context.Context, args []string) (*exec.Cmd, *bytes.Buffer) {
	vlog.VI(1).Infof("running %s %s", b.Path, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, b.Path, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	return cmd, stderr
}

func commandError(err error, args []string, stderr *bytes.Buffer) error {
	return errors.Wrapf(err, "bedtools %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
}

// Alignments returns the records of alignPath that overlap a region of
// regionPath.  A record is repeated once per region it overlaps.
func (b *Bedtools) Alignments(ctx context.Context, alignPath, regionPath string) ([]AlignmentRow, error) {
	args := b.args(alignPath, regionPath, "-wa", "-split", "-ubam")
	cmd, stderr := b.command(ctx, args)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err = cmd.Start(); err != nil {
		return nil, commandError(err, args, stderr)
	}
	rows, err := ReadAlignments(stdout)
	if err != nil {
		// Unblock bedtools so that Wait returns.
		io.Copy(ioutil.Discard, stdout) // nolint: errcheck
	}
	if werr := cmd.Wait(); werr != nil {
		return nil, commandError(werr, args, stderr)
	}
	if err != nil {
		return nil, commandError(err, args, stderr)
	}
	return rows, nil
}

// Overlaps returns one row per (read, region) overlap between alignPath and
// regionPath.
func (b *Bedtools) Overlaps(ctx context.Context, alignPath, regionPath string) ([]OverlapRow, error) {
	args := b.args(alignPath, regionPath, "-wo", "-split", "-bed")
	cmd, stderr := b.command(ctx, args)
	out, err := cmd.Output()
	if err != nil {
		return nil, commandError(err, args, stderr)
	}
	rows, err := ParseOverlaps(bytes.NewReader(out))
	if err != nil {
		return nil, commandError(err, args, stderr)
	}
	return rows, nil
}

// Intersect runs both passes for one annotation file.
func (b *Bedtools) Intersect(ctx context.Context, alignPath, regionPath string) (Result, error) {
	var (
		res Result
		err error
	)
	if res.Alignments, err = b.Alignments(ctx, alignPath, regionPath); err != nil {
		return Result{}, err
	}
	if res.Overlaps, err = b.Overlaps(ctx, alignPath, regionPath); err != nil {
		return Result{}, err
	}
	return res, nil
}
