// Package section defines the fixed-size records of the FFA container.
//
// File layout, all offsets absolute from the start of the file:
//
//	+----------------------+  0
//	| file header (16)     |  END record offset at bytes 12-15
//	+----------------------+  16
//	| chunk 0              |  header (32) | mode table | payload | 77 x16
//	| chunk 1              |
//	| ...                  |  last chunk padded with 0x77 to a 4-byte boundary
//	+----------------------+  BUMP base
//	| BUMP x N (16 each)   |  chunk offset, chunk offset + 8
//	+----------------------+  POP base
//	| POP x N (12 each)    |  chunk index
//	+----------------------+  SNAP base
//	| SNAP x N (16 each)   |  BUMP record offset, POP record offset (+2)
//	+----------------------+  END offset
//	| END (20)             |  chunk count, SNAP base, BUMP base
//	+----------------------+
//
// Records are written in place with WriteToSlice into a buffer whose size
// is known up front, the way the assembler lays the file out in one pass.
package section
