/*Command bio-readloc removes region ambiguity from aligned reads.

  Given an aligned-reads BAM and a directory of annotation BED files (for
  example one BED per gene model type, generated from a GTF), bio-readloc
  finds every region each read overlaps using "bedtools intersect", and keeps
  exactly one region per read: the region that receives the most reference
  bases of the read's aligned blocks.  Ties are broken in favor of the
  region reported first.

  The result is written to <OUTPUT_DIR>/<bam basename>.reloc.bed, a
  header-less TSV with columns

    chromosome, alignment start, alignment end, read name,
    region start, region end, region name, CIGAR

  sorted by chromosome (chr1..chr22, chrX, chrY, chrM) and coordinates.

  Sample usage:

    bio-readloc run -a sample.bam -r regions/ -o out/

  "bio-readloc refine" resolves a candidate table that was already joined
  elsewhere; its columns are the same as the output's.

    bio-readloc refine -o out/ sample.candidates.tsv.gz
*/
package main
