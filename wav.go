package rawwav

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-audio/audio"
)

// HeaderSize is the size in bytes of the canonical RIFF/fmt/data header
// written by Encode. In that layout the sample payload starts at this offset.
const HeaderSize = 44

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3

	// fmtChunkSize is the size of the format sub-chunk body without extensions.
	fmtChunkSize = 16
	// riffSizeOverhead counts the header bytes after the RIFF size field up to
	// and including the data chunk size field.
	riffSizeOverhead = HeaderSize - 8
)

var (
	// ErrInvalidContainer is returned when the RIFF or WAVE marker is missing.
	ErrInvalidContainer = errors.New("not a RIFF/WAVE container")
	// ErrTruncatedContainer is returned when the chunk walk would read past
	// the end of the buffer.
	ErrTruncatedContainer = errors.New("truncated RIFF/WAVE container")
	// ErrMissingFormatChunk is returned when the data chunk is reached before
	// any fmt chunk.
	ErrMissingFormatChunk = errors.New("fmt chunk not found before data chunk")
	// ErrUnsupportedSampleFormat is returned for format tags other than
	// 16-bit integer PCM and 32-bit float PCM.
	ErrUnsupportedSampleFormat = errors.New("unsupported sample format")
	// ErrInvalidFormatParameters is returned when the fmt chunk describes an
	// impossible sample layout (no channels, no bits per sample).
	ErrInvalidFormatParameters = errors.New("invalid fmt chunk parameters")
	// ErrShortBuffer is returned when the destination can't hold HeaderSize bytes.
	ErrShortBuffer = errors.New("destination buffer shorter than header size")
)

// SampleFormat is the fmt chunk format tag.
type SampleFormat uint16

const (
	// FormatInt16 is 16-bit signed little-endian integer PCM.
	FormatInt16 SampleFormat = wavFormatPCM
	// FormatFloat32 is 32-bit little-endian IEEE float PCM.
	FormatFloat32 SampleFormat = wavFormatIEEEFloat
)

// BytesPerSample returns the storage width of one sample.
func (f SampleFormat) BytesPerSample() (int, error) {
	switch f {
	case FormatInt16:
		return 2, nil
	case FormatFloat32:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: format tag %d", ErrUnsupportedSampleFormat, uint16(f))
	}
}

func (f SampleFormat) String() string {
	switch f {
	case FormatInt16:
		return "int16"
	case FormatFloat32:
		return "float32"
	default:
		return fmt.Sprintf("format tag %d", uint16(f))
	}
}

// Info describes a decoded WAVE file, or the header to encode.
//
// Payload aliases the buffer passed to Decode and is only valid as long as
// that buffer is.
type Info struct {
	Payload []byte
	// ByteSize is the data chunk's declared size.
	ByteSize     uint64
	SampleRate   float64
	FrameCount   uint64
	SampleFormat SampleFormat
	ChannelCount uint32
	// BitsPerSample is copied from the fmt chunk on decode. Encode ignores it
	// and derives the value from SampleFormat.
	BitsPerSample uint16
}

// Format returns the go-audio format of the content.
func (i *Info) Format() *audio.Format {
	if i == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(i.ChannelCount),
		SampleRate:  int(i.SampleRate),
	}
}

// BlockAlign returns the size in bytes of one frame.
func (i *Info) BlockAlign() int {
	return i.bytesPerSample() * int(i.ChannelCount)
}

// bytesPerSample prefers the decoded bit depth over the format's nominal width.
func (i *Info) bytesPerSample() int {
	if i.BitsPerSample >= 8 {
		return int(i.BitsPerSample / 8)
	}

	width, err := i.SampleFormat.BytesPerSample()
	if err != nil {
		return 0
	}

	return width
}

// ByteRate returns the number of payload bytes per second of audio.
func (i *Info) ByteRate() uint32 {
	return uint32(i.SampleRate) * uint32(i.BlockAlign())
}

// Duration returns the play time of FrameCount frames at SampleRate.
func (i *Info) Duration() time.Duration {
	if i == nil || i.SampleRate <= 0 {
		return 0
	}

	return time.Duration(math.Round(float64(i.FrameCount) / i.SampleRate * float64(time.Second)))
}

// Frames returns the payload bytes of count frames starting at frame offset.
// The window is clamped to the frames available.
func (i *Info) Frames(offset, count uint64) []byte {
	if i == nil || offset >= i.FrameCount {
		return nil
	}

	count = min(count, i.FrameCount-offset)
	align := uint64(i.BlockAlign())
	start := offset * align
	end := min(start+count*align, uint64(len(i.Payload)))

	if start >= end {
		return nil
	}

	return i.Payload[start:end]
}

func frameCount(byteSize uint64, channels uint32, bitsPerSample uint16) uint64 {
	return byteSize / uint64(channels) / uint64(bitsPerSample/8)
}
