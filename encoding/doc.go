// Package encoding implements the per-channel codecs of the FFA animation format.
//
// # Delta Codes
//
// A delta between two consecutive samples is written as one or two bytes:
//
//	0vvvvvvv            delta in [-64, 63], 7-bit two's complement
//	11llllll hhhhhhhh   delta in [-8192, 8191], 14-bit two's complement,
//	                    low 6 bits in the first byte, high 8 bits in the second
//
// Deltas outside the 14-bit range are clamped before encoding. The loss is
// silent; it is a fidelity limit of the format, not an error.
//
// # Channel Blocks
//
// A variable channel is stored as a block:
//
//	size uint16 LE | delta codes and repeat bytes | optional 0x00 pad
//
// size counts the whole block including itself and is always even. A run of
// L equal deltas is written as one delta code followed by repeat bytes
// 10rrrrrr, each covering r+1 (at most 64) additional repeats. The delta
// accumulator starts at zero for every block, so the first code carries the
// first sample itself.
//
// # Channel Modes
//
// Every channel of every bone is classified per chunk:
//
//	00  all samples zero (or no samples)   nothing in the payload
//	10  all samples equal and non-zero     one int16 LE in the payload
//	11  anything else                      a channel block in the payload
//
// The six 2-bit codes of a bone plus the 010101 trailer form an 18-bit
// record. ModeTable packs the records of all bones of a chunk into the
// byte layout the engine expects.
package encoding
