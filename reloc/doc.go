/*Package reloc resolves reads that overlap more than one annotated region.

  Each candidate row pairs one placement of a read (chromosome, alignment
  start/end, CIGAR) with one region the read overlaps.  A read with a single
  candidate row is unambiguous and is kept as is.  For a read with several
  candidate rows, every row is scored by the number of reference bases of
  the read's aligned footprint that fall inside the row's region, and the
  highest-scoring row wins; ties go to the row seen first.

  The footprint is derived from the CIGAR string: M, D, = and X operations
  consume reference positions that belong to the read, N (splice gap)
  consumes reference positions that do not, and all other operations consume
  no reference positions.  The decoded footprint must end exactly at the
  reported alignment end, or the run fails with an integrity error.

  The resolved table holds one row per read, sorted by chromosome rank
  (chr1..chr22, then chrX, chrY, chrM), alignment start, alignment end,
  region start and region end.
*/
package reloc
