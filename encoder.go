package rawwav

import (
	"fmt"
	"io"
)

// Encode returns the canonical 44-byte header describing info. The sample
// payload is not written; callers append ByteSize bytes after the header.
func Encode(info Info) ([HeaderSize]byte, error) {
	var hdr [HeaderSize]byte

	err := EncodeTo(hdr[:], info)

	return hdr, err
}

// EncodeTo writes the canonical header for info into the first HeaderSize
// bytes of dst. On error dst is left untouched.
func EncodeTo(dst []byte, info Info) error {
	width, err := info.SampleFormat.BytesPerSample()
	if err != nil {
		return err
	}

	if len(dst) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrShortBuffer, len(dst))
	}

	putChunkHeader(dst[0:8], chunkHeader{ID: idRIFF, Size: uint32(riffSizeOverhead + info.ByteSize)})
	putBE32(dst[8:12], idWAVE)

	putChunkHeader(dst[12:20], chunkHeader{ID: idFmt, Size: fmtChunkSize})

	blockAlign := uint32(width) * info.ChannelCount
	putFmtChunk(dst[20:36], fmtChunk{
		FormatTag:      uint16(info.SampleFormat),
		NumChannels:    uint16(info.ChannelCount),
		SampleRate:     uint32(info.SampleRate),
		AvgBytesPerSec: uint32(info.SampleRate) * blockAlign,
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(width * 8),
	})

	putChunkHeader(dst[36:44], chunkHeader{ID: idData, Size: uint32(info.ByteSize)})

	return nil
}

// WriteHeader encodes the header for info and writes it to w.
func WriteHeader(w io.Writer, info Info) error {
	hdr, err := Encode(info)
	if err != nil {
		return err
	}

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}

	return nil
}
