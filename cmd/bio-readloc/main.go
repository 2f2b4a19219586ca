package main

import (
	"runtime"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/readloc/intersect"
	"v.io/x/lib/cmdline"
)

func newCmdRun() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "run",
		Short: "Intersect aligned reads with annotation BEDs and resolve ambiguous reads",
	}
	opts := runOpts{}
	cmd.Flags.StringVar(&opts.alignPath, "a", "", "Aligned BAM file")
	cmd.Flags.StringVar(&opts.regionDir, "r", "", "Directory of BED files generated from GTF annotations")
	cmd.Flags.StringVar(&opts.outDir, "o", ".", "Output directory")
	cmd.Flags.StringVar(&opts.suffix, "suffix", ".bed", "Only files in the -r directory with this suffix are used")
	cmd.Flags.BoolVar(&opts.stranded, "stranded", intersect.DefaultOpts.Stranded, "Only report overlaps with regions on the read's strand (bedtools -s)")
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", runtime.NumCPU(), "Max number of concurrent bedtools processes and scoring workers")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("run takes no positional arguments, but got %v", argv)
		}
		if opts.alignPath == "" || opts.regionDir == "" {
			return env.UsageErrorf("run requires -a and -r")
		}
		return run(vcontext.Background(), opts, lookBedtools)
	})
	return cmd
}

func newCmdRefine() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "refine",
		Short:    "Resolve ambiguous reads in a pre-joined candidate table",
		ArgsName: "candidates",
		ArgsLong: `
<candidates> is a header-less TSV (optionally gzipped) with columns chromosome,
alignment start, alignment end, read name, region start, region end, region
name and CIGAR.  Coordinates are 0-based, half-open.`,
	}
	opts := refineOpts{}
	cmd.Flags.StringVar(&opts.outDir, "o", ".", "Output directory")
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", runtime.NumCPU(), "Max number of scoring workers")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return env.UsageErrorf("refine takes one pathname argument, but got %v", argv)
		}
		opts.candidatesPath = argv[0]
		return refine(vcontext.Background(), opts)
	})
	return cmd
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-readloc",
			Short:    "Remove region ambiguity for reads",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdRun(),
				newCmdRefine(),
			},
		})
}
