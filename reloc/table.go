package reloc

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/readloc/interval"
	"github.com/klauspost/compress/gzip"
)

// candidateRow is one line of a candidate or result table.  Columns are
// positional; the tables have no header.
type candidateRow struct {
	Chrom       string
	AlignStart  int64
	AlignEnd    int64
	ReadID      string
	RegionStart int64
	RegionEnd   int64
	RegionID    string
	Cigar       string
}

func toPos(v int64) (interval.PosType, bool) {
	if v < 0 || v > interval.PosTypeMax {
		return 0, false
	}
	return interval.PosType(v), true
}

func (r *candidateRow) match() (m CandidateMatch, ok bool) {
	var ok0, ok1, ok2, ok3 bool
	m.ReadID = r.ReadID
	m.Alignment.Chrom = r.Chrom
	m.Alignment.Cigar = r.Cigar
	m.Region.Chrom = r.Chrom
	m.Region.ID = r.RegionID
	m.Alignment.Start, ok0 = toPos(r.AlignStart)
	m.Alignment.End, ok1 = toPos(r.AlignEnd)
	m.Region.Start, ok2 = toPos(r.RegionStart)
	m.Region.End, ok3 = toPos(r.RegionEnd)
	ok = ok0 && ok1 && ok2 && ok3 &&
		m.Alignment.Start < m.Alignment.End && m.Region.Start < m.Region.End
	return
}

// ParseCandidates reads a header-less, tab-separated candidate table.  Each
// line holds chromosome, alignment start, alignment end, read ID, region
// start, region end, region ID and CIGAR, with 0-based half-open
// coordinates.  Malformed lines produce an errors.Invalid error.
func ParseCandidates(r io.Reader) ([]CandidateMatch, error) {
	tr := tsv.NewReader(r)
	tr.RequireParseAllColumns = true
	var (
		rows []CandidateMatch
		row  candidateRow
	)
	for line := 1; ; line++ {
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, fmt.Sprintf("candidate table line %d", line), err)
		}
		m, ok := row.match()
		if !ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("candidate table line %d: invalid coordinates [%d,%d) [%d,%d)",
					line, row.AlignStart, row.AlignEnd, row.RegionStart, row.RegionEnd))
		}
		rows = append(rows, m)
	}
	return rows, nil
}

// ReadCandidates reads a candidate table (see ParseCandidates) from path.
// Files whose name marks them as gzip-compressed are decompressed.
func ReadCandidates(ctx context.Context, path string) (rows []CandidateMatch, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(errors.NotExist, "open", path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, errors.E(errors.Invalid, "read", path, err)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if rows, err = ParseCandidates(reader); err != nil {
		return nil, errors.E(path, err)
	}
	return rows, nil
}

// WriteResults writes rows as a header-less, tab-separated table with
// columns chromosome, alignment start, alignment end, read ID, region start,
// region end, region ID and CIGAR.
func WriteResults(w io.Writer, rows []CandidateMatch) error {
	tw := tsv.NewWriter(w)
	for _, m := range rows {
		tw.WriteString(m.Alignment.Chrom)
		tw.WriteUint32(uint32(m.Alignment.Start))
		tw.WriteUint32(uint32(m.Alignment.End))
		tw.WriteString(m.ReadID)
		tw.WriteUint32(uint32(m.Region.Start))
		tw.WriteUint32(uint32(m.Region.End))
		tw.WriteString(m.Region.ID)
		tw.WriteString(m.Alignment.Cigar)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteResultsFile writes rows to path (see WriteResults).  The file only
// appears at path if every row was written; on error it is discarded.
func WriteResultsFile(ctx context.Context, path string, rows []CandidateMatch) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E("create", path, err)
	}
	if err := WriteResults(out.Writer(ctx), rows); err != nil {
		out.Discard(ctx)
		return errors.E("write", path, err)
	}
	return out.Close(ctx)
}
