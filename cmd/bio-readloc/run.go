package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/readloc/intersect"
	"github.com/grailbio/readloc/reloc"
)

// intersector finds the (read, region) overlaps between an aligned-reads
// file and one annotation file.  *intersect.Bedtools implements it.
type intersector interface {
	Intersect(ctx context.Context, alignPath, regionPath string) (intersect.Result, error)
}

func lookBedtools(opts intersect.Opts) (intersector, error) {
	b, err := intersect.LookBedtools(opts)
	if err != nil {
		return nil, err
	}
	return b, nil
}

type runOpts struct {
	alignPath   string
	regionDir   string
	outDir      string
	suffix      string
	stranded    bool
	parallelism int
}

type refineOpts struct {
	candidatesPath string
	outDir         string
	parallelism    int
}

// outputPath returns <outDir>/<basename of inputPath minus extension>.reloc.bed.
// A trailing .gz is removed before the extension.
func outputPath(outDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+".reloc.bed")
}

// checkOutputDir verifies that dir exists and is a directory.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.E(errors.NotExist, fmt.Sprintf("output directory %s does not exist", dir))
	}
	return nil
}

// listAnnotations returns the files of dir whose names end in suffix, sorted
// by name.
func listAnnotations(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("failed to read annotation directory %s", dir), err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// collectCandidates intersects alignPath with every annotation file and
// returns the joined candidate rows, concatenated in the order of
// regionPaths.
func collectCandidates(ctx context.Context, isect intersector, alignPath string, regionPaths []string, parallelism int) ([]reloc.CandidateMatch, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	perFile := make([][]reloc.CandidateMatch, len(regionPaths))
	err := traverse.Limit(parallelism).Each(len(regionPaths), func(i int) error {
		log.Printf("start screening overlap to %s", filepath.Base(regionPaths[i]))
		res, err := isect.Intersect(ctx, alignPath, regionPaths[i])
		if err != nil {
			return errors.E(fmt.Sprintf("intersect %s with %s", alignPath, regionPaths[i]), err)
		}
		perFile[i] = reloc.Join(res.Alignments, res.Overlaps)
		log.Printf("finished overlapping %s: %d candidate rows", filepath.Base(regionPaths[i]), len(perFile[i]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	var rows []reloc.CandidateMatch
	for _, r := range perFile {
		rows = append(rows, r...)
	}
	return rows, nil
}

// run implements the "run" command.  All checks and computation happen
// before the output file is created.
func run(ctx context.Context, opts runOpts, newIntersector func(intersect.Opts) (intersector, error)) error {
	isect, err := newIntersector(intersect.Opts{Stranded: opts.stranded})
	if err != nil {
		return errors.E(errors.Unavailable, err)
	}
	alignPath, err := filepath.Abs(opts.alignPath)
	if err != nil {
		return err
	}
	if _, err = os.Stat(alignPath); err != nil {
		return errors.E(errors.NotExist, fmt.Sprintf("aligned reads %s", opts.alignPath), err)
	}
	regionDir, err := filepath.Abs(opts.regionDir)
	if err != nil {
		return err
	}
	regionPaths, err := listAnnotations(regionDir, opts.suffix)
	if err != nil {
		return err
	}
	if len(regionPaths) == 0 {
		log.Printf("no %s files found in %s", opts.suffix, regionDir)
	}
	if err = checkOutputDir(opts.outDir); err != nil {
		return err
	}
	rows, err := collectCandidates(ctx, isect, alignPath, regionPaths, opts.parallelism)
	if err != nil {
		return err
	}
	log.Printf("%d candidate rows (unrefined)", len(rows))
	return resolveAndWrite(ctx, rows, opts.parallelism, outputPath(opts.outDir, alignPath))
}

// refine implements the "refine" command.
func refine(ctx context.Context, opts refineOpts) error {
	if err := checkOutputDir(opts.outDir); err != nil {
		return err
	}
	rows, err := reloc.ReadCandidates(ctx, opts.candidatesPath)
	if err != nil {
		return err
	}
	log.Printf("%d candidate rows (unrefined)", len(rows))
	return resolveAndWrite(ctx, rows, opts.parallelism, outputPath(opts.outDir, opts.candidatesPath))
}

func resolveAndWrite(ctx context.Context, rows []reloc.CandidateMatch, parallelism int, outPath string) error {
	resolveOpts := reloc.DefaultOpts
	resolveOpts.Parallelism = parallelism
	result, err := reloc.Resolve(rows, resolveOpts)
	if err != nil {
		return err
	}
	if err = reloc.WriteResultsFile(ctx, outPath, result); err != nil {
		return err
	}
	log.Printf("%d reads, results in %s", len(result), outPath)
	return nil
}
