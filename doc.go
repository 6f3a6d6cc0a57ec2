// Package rawwav decodes and encodes the canonical RIFF/WAVE container over
// in-memory buffers.
//
// Decode walks the chunk list of a fully resident file and returns an Info
// whose Payload is a view into the caller's buffer; nothing is copied.
// Encode produces the fixed 44-byte RIFF/fmt/data header for an Info, and the
// caller appends the sample payload after it.
//
// Only two sample formats are recognized: 16-bit integer PCM (format tag 1)
// and 32-bit IEEE float PCM (format tag 3). Chunks other than "fmt " and
// "data" are skipped, never interpreted.
//
// All functions are stateless and safe for concurrent use.
package rawwav
