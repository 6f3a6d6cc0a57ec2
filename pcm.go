package rawwav

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	scalePCMInt16 = 32768.0
	maxPCMInt16   = 32767
)

var (
	errNilBuffer           = errors.New("can't encode a nil buffer")
	errUnsupportedBitDepth = errors.New("unsupported bit depth for sample format")
)

// Float32Buffer decodes the payload into normalized samples. Int16 samples
// are divided by 32768; float32 samples are clamped to [-1, 1]. A trailing
// partial sample is ignored.
func (i *Info) Float32Buffer() (*audio.Float32Buffer, error) {
	width, err := i.sampleWidth()
	if err != nil {
		return nil, err
	}

	n := len(i.Payload) / width
	buf := &audio.Float32Buffer{
		Data:           make([]float32, n),
		Format:         i.Format(),
		SourceBitDepth: width * 8,
	}

	for j := range n {
		buf.Data[j] = i.sampleAt(j * width)
	}

	return buf, nil
}

// IntBuffer decodes the payload into 16-bit integer samples. Float32 samples
// are scaled to the int16 range.
func (i *Info) IntBuffer() (*audio.IntBuffer, error) {
	width, err := i.sampleWidth()
	if err != nil {
		return nil, err
	}

	n := len(i.Payload) / width
	buf := &audio.IntBuffer{
		Data:           make([]int, n),
		Format:         i.Format(),
		SourceBitDepth: 16,
	}

	for j := range n {
		off := j * width
		if i.SampleFormat == FormatInt16 {
			buf.Data[j] = int(int16(le16(i.Payload[off:])))

			continue
		}

		buf.Data[j] = int(float32ToPCMInt16(i.sampleAt(off)))
	}

	return buf, nil
}

// sampleWidth checks that the payload is a layout this package can convert.
func (i *Info) sampleWidth() (int, error) {
	if i == nil {
		return 0, ErrInvalidFormatParameters
	}

	width, err := i.SampleFormat.BytesPerSample()
	if err != nil {
		return 0, err
	}

	if i.BitsPerSample != 0 && int(i.BitsPerSample) != width*8 {
		return 0, fmt.Errorf("%w: %s with %d bits", errUnsupportedBitDepth, i.SampleFormat, i.BitsPerSample)
	}

	return width, nil
}

func (i *Info) sampleAt(off int) float32 {
	if i.SampleFormat == FormatFloat32 {
		return clampFloat32(math.Float32frombits(le32(i.Payload[off:])), -1, 1)
	}

	return float32(float64(int16(le16(i.Payload[off:]))) / scalePCMInt16)
}

// AppendPCM encodes buf's samples in the given format and appends them to dst.
func AppendPCM(dst []byte, buf *audio.Float32Buffer, format SampleFormat) ([]byte, error) {
	if buf == nil {
		return dst, errNilBuffer
	}

	width, err := format.BytesPerSample()
	if err != nil {
		return dst, err
	}

	dst = growBytes(dst, len(buf.Data)*width)

	var tmp [4]byte
	for _, v := range buf.Data {
		if format == FormatFloat32 {
			putLE32(tmp[:], math.Float32bits(clampFloat32(v, -1, 1)))
		} else {
			putLE16(tmp[:], uint16(float32ToPCMInt16(v)))
		}

		dst = append(dst, tmp[:width]...)
	}

	return dst, nil
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}

	out := make([]byte, len(b), len(b)+n)
	copy(out, b)

	return out
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func float32ToPCMInt16(value float32) int16 {
	value = clampFloat32(value, -1, 1)

	sample := min(int64(math.Round(float64(value)*scalePCMInt16)), maxPCMInt16)
	if sample < -scalePCMInt16 {
		sample = -scalePCMInt16
	}

	return int16(sample)
}
