/*Package interval implements the half-open interval arithmetic used to
  measure how much of a read's aligned footprint falls inside an annotated
  region.  Intervals are 0-based [Start, End), the same convention as BED
  files and BAM positions.
  It assumes every position fits in a PosType, which is currently defined as
  int32 since that's what BAM files are limited to.
*/
package interval
