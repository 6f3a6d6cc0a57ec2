package rawwav

import (
	"fmt"

	"github.com/go-audio/riff"
)

var (
	idRIFF = fourCC(riff.RiffID)
	idWAVE = fourCC(riff.WavFormatID)
	idFmt  = fourCC(riff.FmtID)
	idData = fourCC(riff.DataFormatID)
)

const chunkHeaderSize = 8

// chunkHeader is the id/size preamble of every RIFF chunk.
type chunkHeader struct {
	ID   uint32
	Size uint32
}

func readChunkHeader(b []byte) chunkHeader {
	return chunkHeader{
		ID:   be32(b[0:4]),
		Size: le32(b[4:8]),
	}
}

func putChunkHeader(b []byte, h chunkHeader) {
	putBE32(b[0:4], h.ID)
	putLE32(b[4:8], h.Size)
}

// fmtChunk is the 16-byte body of a plain (non-extensible) fmt chunk.
type fmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

func readFmtChunk(b []byte) fmtChunk {
	return fmtChunk{
		FormatTag:      le16(b[0:2]),
		NumChannels:    le16(b[2:4]),
		SampleRate:     le32(b[4:8]),
		AvgBytesPerSec: le32(b[8:12]),
		BlockAlign:     le16(b[12:14]),
		BitsPerSample:  le16(b[14:16]),
	}
}

func putFmtChunk(b []byte, f fmtChunk) {
	putLE16(b[0:2], f.FormatTag)
	putLE16(b[2:4], f.NumChannels)
	putLE32(b[4:8], f.SampleRate)
	putLE32(b[8:12], f.AvgBytesPerSec)
	putLE16(b[12:14], f.BlockAlign)
	putLE16(b[14:16], f.BitsPerSample)
}

// validate checks the fields the decoder consumes.
func (f fmtChunk) validate() error {
	switch SampleFormat(f.FormatTag) {
	case FormatInt16, FormatFloat32:
	default:
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedSampleFormat, f.FormatTag)
	}

	if f.NumChannels < 1 {
		return fmt.Errorf("%w: %d channels", ErrInvalidFormatParameters, f.NumChannels)
	}

	if f.BitsPerSample < 8 {
		return fmt.Errorf("%w: %d bits per sample", ErrInvalidFormatParameters, f.BitsPerSample)
	}

	return nil
}

// idString renders a packed chunk id for error messages.
func idString(id uint32) string {
	var b [4]byte
	putBE32(b[:], id)

	return fmt.Sprintf("%q", b[:])
}
