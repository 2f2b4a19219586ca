/*Package intersect runs "bedtools intersect" to find the annotated regions
  each aligned read overlaps, and decodes its output.

  For an aligned-reads BAM and one annotation BED, two passes are made:

    bedtools intersect [-s] -a reads.bam -b regions.bed -wa -split -ubam
    bedtools intersect [-s] -a reads.bam -b regions.bed -wo -split -bed

  The first pass yields the overlapping BAM records (read name, chromosome,
  position and CIGAR); the second yields one BED line per (read, region)
  overlap, with the read's span, the region's span and name, and the overlap
  length.  Joining the two is left to the caller.
*/
package intersect
