package intersect

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/readloc/interval"
	"github.com/pkg/errors"
)

// AlignmentRow is one BAM record reported by the -ubam pass.
type AlignmentRow struct {
	ReadID string
	Chrom  string
	// Start is the 0-based leftmost reference position of the alignment.
	Start int
	Cigar string
}

// OverlapRow is one line of the -wo -bed pass.  Coordinates are 0-based,
// half-open, and at most interval.PosTypeMax.
type OverlapRow struct {
	Chrom       string
	AlignStart  int
	AlignEnd    int
	ReadID      string
	RegionStart int
	RegionEnd   int
	// RegionID is the name column of the annotation BED.  It is empty if the
	// annotation has only three columns.
	RegionID string
	// Overlap is the number of bases shared by the read's blocks and the region,
	// as computed by bedtools.
	Overlap int
}

// ReadAlignments decodes a BAM stream, returning its mapped records in file
// order.
func ReadAlignments(r io.Reader) ([]AlignmentRow, error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, errors.Wrap(err, "open bam stream")
	}
	var rows []AlignmentRow
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			br.Close() // nolint: errcheck
			return nil, errors.Wrapf(err, "read bam record #%d", len(rows))
		}
		if rec.Ref == nil || rec.Flags&sam.Unmapped != 0 {
			continue
		}
		rows = append(rows, AlignmentRow{
			ReadID: rec.Name,
			Chrom:  rec.Ref.Name(),
			Start:  rec.Pos,
			Cigar:  rec.Cigar.String(),
		})
	}
	return rows, errors.Wrap(br.Close(), "close bam stream")
}

// readBEDColumns is the number of columns bedtools emits for each read with
// -bed -split: the reads are written as BED12.
const readBEDColumns = 12

// ParseOverlaps parses the output of the -wo -bed pass.  Each line holds the
// twelve BED12 columns of the read, the columns of the annotation BED line
// (at least chromosome, start and end), and the overlap length.
func ParseOverlaps(r io.Reader) ([]OverlapRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 16<<20)
	var (
		rows  []OverlapRow
		nLine int
	)
	atoi := func(b []byte, what string) (int, error) {
		v, err := strconv.Atoi(string(b))
		if err != nil || v < 0 || v > interval.PosTypeMax {
			return 0, errors.Errorf("line %d: bad %s %q", nLine, what, b)
		}
		return v, nil
	}
	for scanner.Scan() {
		nLine++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cols := bytes.Split(line, []byte{'\t'})
		if len(cols) < readBEDColumns+3+1 {
			return nil, errors.Errorf("line %d: expect at least %d columns, found %d", nLine, readBEDColumns+4, len(cols))
		}
		region := cols[readBEDColumns : len(cols)-1]
		row := OverlapRow{
			Chrom:  string(cols[0]),
			ReadID: string(cols[3]),
		}
		var err error
		if row.AlignStart, err = atoi(cols[1], "read start"); err != nil {
			return nil, err
		}
		if row.AlignEnd, err = atoi(cols[2], "read end"); err != nil {
			return nil, err
		}
		if row.RegionStart, err = atoi(region[1], "region start"); err != nil {
			return nil, err
		}
		if row.RegionEnd, err = atoi(region[2], "region end"); err != nil {
			return nil, err
		}
		if row.Overlap, err = atoi(cols[len(cols)-1], "overlap"); err != nil {
			return nil, err
		}
		if len(region) > 3 {
			row.RegionID = string(region[3])
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read bed stream")
	}
	return rows, nil
}
