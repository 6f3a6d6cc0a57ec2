package rawwav

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/go-audio/riff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCanonicalHeader(t *testing.T) {
	hdr, err := Encode(Info{
		SampleFormat: FormatInt16,
		ChannelCount: 1,
		SampleRate:   8000,
		ByteSize:     100,
	})
	require.NoError(t, err)

	want := "52494646" + "88000000" + "57415645" +
		"666d7420" + "10000000" +
		"0100" + "0100" + "401f0000" + "803e0000" + "0200" + "1000" +
		"64617461" + "64000000"

	assert.Equal(t, want, hex.EncodeToString(hdr[:]))
}

func TestEncodeFields(t *testing.T) {
	tests := []struct {
		name       string
		info       Info
		byteRate   uint32
		blockAlign uint16
		bits       uint16
	}{
		{"int16 stereo", Info{SampleFormat: FormatInt16, ChannelCount: 2, SampleRate: 44100, ByteSize: 4}, 176400, 4, 16},
		{"float32 stereo", Info{SampleFormat: FormatFloat32, ChannelCount: 2, SampleRate: 48000, ByteSize: 8}, 384000, 8, 32},
		{"float32 mono", Info{SampleFormat: FormatFloat32, ChannelCount: 1, SampleRate: 22050}, 88200, 4, 32},
		{"fractional rate truncates", Info{SampleFormat: FormatInt16, ChannelCount: 1, SampleRate: 11025.7}, 22050, 2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr, err := Encode(tt.info)
			require.NoError(t, err)

			assert.Equal(t, "RIFF", string(hdr[0:4]))
			assert.Equal(t, uint32(36+tt.info.ByteSize), le32(hdr[4:8]))
			assert.Equal(t, "WAVEfmt ", string(hdr[8:16]))
			assert.Equal(t, uint32(16), le32(hdr[16:20]))

			f := readFmtChunk(hdr[20:36])
			assert.Equal(t, uint16(tt.info.SampleFormat), f.FormatTag)
			assert.Equal(t, uint16(tt.info.ChannelCount), f.NumChannels)
			assert.Equal(t, uint32(tt.info.SampleRate), f.SampleRate)
			assert.Equal(t, tt.byteRate, f.AvgBytesPerSec)
			assert.Equal(t, tt.blockAlign, f.BlockAlign)
			assert.Equal(t, tt.bits, f.BitsPerSample)

			assert.Equal(t, "data", string(hdr[36:40]))
			assert.Equal(t, uint32(tt.info.ByteSize), le32(hdr[40:44]))
		})
	}
}

func TestEncodeIgnoresDecodedBitDepth(t *testing.T) {
	hdr, err := Encode(Info{SampleFormat: FormatInt16, ChannelCount: 1, SampleRate: 8000, BitsPerSample: 24})
	require.NoError(t, err)

	assert.Equal(t, uint16(16), le16(hdr[34:36]))
}

func TestEncodeTruncatesByteSize(t *testing.T) {
	hdr, err := Encode(Info{SampleFormat: FormatInt16, ChannelCount: 1, SampleRate: 8000, ByteSize: 1<<32 + 5})
	require.NoError(t, err)

	assert.Equal(t, uint32(41), le32(hdr[4:8]))
	assert.Equal(t, uint32(5), le32(hdr[40:44]))
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	for _, format := range []SampleFormat{0, 2, 6, 7, 17, 0xFFFE} {
		hdr, err := Encode(Info{SampleFormat: format, ChannelCount: 1, SampleRate: 8000})
		require.ErrorIs(t, err, ErrUnsupportedSampleFormat)
		assert.Equal(t, [HeaderSize]byte{}, hdr)
	}
}

func TestEncodeToLeavesDstOnError(t *testing.T) {
	dst := bytes.Repeat([]byte{0xAA}, HeaderSize)

	err := EncodeTo(dst, Info{SampleFormat: 17, ChannelCount: 1})
	require.ErrorIs(t, err, ErrUnsupportedSampleFormat)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, HeaderSize), dst)

	short := bytes.Repeat([]byte{0xAA}, HeaderSize-1)
	err = EncodeTo(short, Info{SampleFormat: FormatInt16, ChannelCount: 1})
	require.ErrorIs(t, err, ErrShortBuffer)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, HeaderSize-1), short)
}

func TestEncodeToLongerBuffer(t *testing.T) {
	dst := bytes.Repeat([]byte{0xAA}, HeaderSize+4)
	info := Info{SampleFormat: FormatInt16, ChannelCount: 2, SampleRate: 44100, ByteSize: 4}

	require.NoError(t, EncodeTo(dst, info))

	hdr, err := Encode(info)
	require.NoError(t, err)
	assert.Equal(t, hdr[:], dst[:HeaderSize])
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, dst[HeaderSize:])
}

func TestEncodeDeterministic(t *testing.T) {
	info := Info{SampleFormat: FormatFloat32, ChannelCount: 6, SampleRate: 96000, ByteSize: 12345}

	a, err := Encode(info)
	require.NoError(t, err)

	b, err := Encode(info)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []Info{
		{SampleFormat: FormatInt16, ChannelCount: 2, SampleRate: 44100, ByteSize: 1000},
		{SampleFormat: FormatInt16, ChannelCount: 1, SampleRate: 8000, ByteSize: 0},
		{SampleFormat: FormatInt16, ChannelCount: 2, SampleRate: 44100, ByteSize: 7},
		{SampleFormat: FormatFloat32, ChannelCount: 2, SampleRate: 48000, ByteSize: 4096},
	}

	for _, in := range tests {
		payload := sequentialBytes(int(in.ByteSize))

		hdr, err := Encode(in)
		require.NoError(t, err)

		buf := append(hdr[:], payload...)

		out, err := Decode(buf)
		require.NoError(t, err)

		assert.Equal(t, in.SampleFormat, out.SampleFormat)
		assert.Equal(t, in.ChannelCount, out.ChannelCount)
		assert.Equal(t, in.SampleRate, out.SampleRate)
		assert.Equal(t, in.ByteSize, out.ByteSize)
		assert.Len(t, out.Payload, int(in.ByteSize))
		assert.Equal(t, payload, out.Payload)
	}
}

func TestEncodeReadableByRiffParser(t *testing.T) {
	info := Info{SampleFormat: FormatInt16, ChannelCount: 2, SampleRate: 22050, ByteSize: 16}

	hdr, err := Encode(info)
	require.NoError(t, err)

	parser := riff.New(bytes.NewReader(append(hdr[:], sequentialBytes(16)...)))
	require.NoError(t, parser.ParseHeaders())

	assert.Equal(t, riff.RiffID, parser.ID)
	assert.Equal(t, riff.WavFormatID, parser.Format)
	assert.Equal(t, uint32(36+16), parser.Size)

	chunk, err := parser.NextChunk()
	require.NoError(t, err)
	require.Equal(t, riff.FmtID, chunk.ID)
	require.NoError(t, chunk.DecodeWavHeader(parser))

	assert.Equal(t, uint16(2), parser.NumChannels)
	assert.Equal(t, uint32(22050), parser.SampleRate)
	assert.Equal(t, uint32(88200), parser.AvgBytesPerSec)
	assert.Equal(t, uint16(4), parser.BlockAlign)
	assert.Equal(t, uint16(16), parser.BitsPerSample)
	assert.Equal(t, uint16(wavFormatPCM), parser.WavAudioFormat)

	chunk, err = parser.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, riff.DataFormatID, chunk.ID)
	assert.Equal(t, 16, chunk.Size)
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestWriteHeader(t *testing.T) {
	info := Info{SampleFormat: FormatFloat32, ChannelCount: 1, SampleRate: 16000, ByteSize: 64}

	var out bytes.Buffer
	require.NoError(t, WriteHeader(&out, info))

	hdr, err := Encode(info)
	require.NoError(t, err)
	assert.Equal(t, hdr[:], out.Bytes())

	assert.ErrorIs(t, WriteHeader(failingWriter{}, info), errWriteFailed)

	out.Reset()
	assert.ErrorIs(t, WriteHeader(&out, Info{SampleFormat: 17}), ErrUnsupportedSampleFormat)
	assert.Zero(t, out.Len())
}
