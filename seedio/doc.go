// Package seedio reads seed vertex files and writes reconstructed regions.
//
// Format, one record per line:
//
//	v 12
//	v 15   trailing words are ignored
//	# lines with any other leading word are skipped
//
// WriteRegion emits the same format with "e" and "f" lines for edges and
// faces, so a written region can be fed back as a seed file.
package seedio
