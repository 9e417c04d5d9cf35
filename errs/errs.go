// Package errs defines the sentinel errors shared by the ffaconv packages.
//
// Callers compare against these values with errors.Is; pipeline layers wrap
// them with file and chunk context.
package errs

import "errors"

var (
	// ErrNoBoneData is returned when the input contains no usable bone samples.
	ErrNoBoneData = errors.New("no valid animation data found")
	// ErrNoChunks is returned when every requested chunk was skipped and there is nothing to write.
	ErrNoChunks = errors.New("no animation chunks generated, nothing to write")
	// ErrNoChunkSizes is returned when no chunk lengths were supplied.
	ErrNoChunkSizes = errors.New("no chunk lengths given")
	// ErrInvalidChunkSize is returned for a chunk length that is not a positive integer.
	ErrInvalidChunkSize = errors.New("chunk lengths must be positive integers")
	// ErrFrameCountMismatch is returned when the channels of a bone have different lengths.
	ErrFrameCountMismatch = errors.New("channel frame counts differ")

	// ErrInvalidHeaderSize is returned when a header buffer has the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidRecordSize is returned when an index record buffer has the wrong length.
	ErrInvalidRecordSize = errors.New("invalid record size")
	// ErrTruncatedBlock is returned when a channel block ends before its declared size.
	ErrTruncatedBlock = errors.New("truncated channel block")

	// ErrUnchangedOutput is returned when the existing output already holds identical bytes.
	ErrUnchangedOutput = errors.New("output unchanged")
	// ErrInvalidCompression is returned for an unknown sidecar compression name.
	ErrInvalidCompression = errors.New("invalid compression type")
)
