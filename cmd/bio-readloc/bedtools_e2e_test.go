package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/gosh"
	"v.io/x/lib/lookpath"
)

func hasBedtools(t *testing.T, sh *gosh.Shell) bool {
	if _, err := lookpath.Look(sh.Vars, "bedtools"); err != nil {
		t.Skipf("bedtools not found on the machine. Skipping the test")
		return false
	}
	return true
}

func writeTestBAM(t *testing.T, path string) {
	chr1, err := sam.NewReference("chr1", "", "", 1000000, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{chr1})
	require.NoError(t, err)
	header.SortOrder = sam.Coordinate

	var buf bytes.Buffer
	w, err := bam.NewWriter(&buf, header, 1)
	require.NoError(t, err)
	for _, r := range []struct {
		name  string
		pos   int
		cigar string
	}{
		{"spliced", 1000, "50M500N50M"},
		{"single", 5000, "100M"},
	} {
		co, err := sam.ParseCigar([]byte(r.cigar))
		require.NoError(t, err)
		rec, err := sam.NewRecord(r.name, chr1, nil, r.pos, -1, 0, 60, co, bytes.Repeat([]byte{'A'}, 100), bytes.Repeat([]byte{30}, 100), nil)
		require.NoError(t, err)
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())
	require.NoError(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
}

func TestRunBedtools(t *testing.T) {
	sh := gosh.NewShell(t)
	defer sh.Cleanup()
	if !hasBedtools(t, sh) {
		return
	}
	dir := sh.MakeTempDir()
	alignPath := filepath.Join(dir, "sample.bam")
	writeTestBAM(t, alignPath)
	regionDir := filepath.Join(dir, "regions")
	require.NoError(t, os.Mkdir(regionDir, 0755))
	// "spliced" covers [1000,1050) and [1550,1600).
	require.NoError(t, ioutil.WriteFile(filepath.Join(regionDir, "genes.bed"), []byte(
		"chr1\t990\t1030\tgeneA\t0\t+\n"+
			"chr1\t1540\t1700\tgeneB\t0\t+\n"+
			"chr1\t4900\t5200\tgeneC\t0\t+\n"), 0644))

	opts := runOpts{
		alignPath:   alignPath,
		regionDir:   regionDir,
		outDir:      dir,
		suffix:      ".bed",
		stranded:    false,
		parallelism: 2,
	}
	require.NoError(t, run(context.Background(), opts, lookBedtools))
	data, err := ioutil.ReadFile(filepath.Join(dir, "sample.reloc.bed"))
	require.NoError(t, err)
	assert.Equal(t,
		"chr1\t1000\t1600\tspliced\t1540\t1700\tgeneB\t50M500N50M\n"+
			"chr1\t5000\t5100\tsingle\t4900\t5200\tgeneC\t100M\n",
		string(data))
}
