package rawwav

import "fmt"

// DecodeOptions controls compatibility behavior of the chunk walk.
type DecodeOptions struct {
	// PadOddChunks skips the pad byte RIFF places after odd-sized chunks.
	// Off by default: the walk advances by exactly header plus declared size.
	PadOddChunks bool
}

// Decode parses a fully resident WAVE file. The returned Info's Payload is a
// sub-slice of buf; buf is never modified or copied.
func Decode(buf []byte) (*Info, error) {
	return DecodeWithOptions(buf, DecodeOptions{})
}

// DecodeWithOptions is Decode with explicit compatibility options.
func DecodeWithOptions(buf []byte, opts DecodeOptions) (*Info, error) {
	c := cursor{buf: buf}

	id, err := c.fourCC(0)
	if err != nil {
		return nil, err
	}

	if id != idRIFF {
		return nil, fmt.Errorf("%w: %s chunk, want \"RIFF\"", ErrInvalidContainer, idString(id))
	}

	id, err = c.fourCC(chunkHeaderSize)
	if err != nil {
		return nil, err
	}

	if id != idWAVE {
		return nil, fmt.Errorf("%w: %s form, want \"WAVE\"", ErrInvalidContainer, idString(id))
	}

	var (
		format    fmtChunk
		seenFmt   bool
		data      chunkHeader
		bodyStart uint64
	)

	for pos := uint64(chunkHeaderSize + 4); ; {
		hdr, err := c.chunkHeader(pos)
		if err != nil {
			return nil, err
		}

		bodyStart = pos + chunkHeaderSize

		if hdr.ID == idData {
			data = hdr

			break
		}

		if hdr.ID == idFmt {
			if hdr.Size < fmtChunkSize {
				return nil, fmt.Errorf("%w: fmt chunk of %d bytes", ErrInvalidFormatParameters, hdr.Size)
			}

			body, err := c.slice(bodyStart, fmtChunkSize)
			if err != nil {
				return nil, err
			}

			format = readFmtChunk(body)
			seenFmt = true
		}

		pos = bodyStart + uint64(hdr.Size)
		if opts.PadOddChunks && hdr.Size%2 == 1 {
			pos++
		}
	}

	if !seenFmt {
		return nil, ErrMissingFormatChunk
	}

	if err := format.validate(); err != nil {
		return nil, err
	}

	payload, err := c.slice(bodyStart, uint64(data.Size))
	if err != nil {
		return nil, err
	}

	byteSize := uint64(data.Size)

	return &Info{
		Payload:       payload,
		ByteSize:      byteSize,
		SampleRate:    float64(format.SampleRate),
		FrameCount:    frameCount(byteSize, uint32(format.NumChannels), format.BitsPerSample),
		SampleFormat:  SampleFormat(format.FormatTag),
		ChannelCount:  uint32(format.NumChannels),
		BitsPerSample: format.BitsPerSample,
	}, nil
}

// cursor performs bounds-checked fixed-width reads over a byte buffer.
// Offsets are uint64 so that pos+size never wraps for 32-bit chunk sizes.
type cursor struct {
	buf []byte
}

func (c cursor) slice(pos, n uint64) ([]byte, error) {
	end := pos + n
	if end < pos || end > uint64(len(c.buf)) {
		return nil, fmt.Errorf("%w: need bytes [%d, %d) of %d", ErrTruncatedContainer, pos, end, len(c.buf))
	}

	return c.buf[pos:end:end], nil
}

func (c cursor) fourCC(pos uint64) (uint32, error) {
	b, err := c.slice(pos, 4)
	if err != nil {
		return 0, err
	}

	return be32(b), nil
}

func (c cursor) chunkHeader(pos uint64) (chunkHeader, error) {
	b, err := c.slice(pos, chunkHeaderSize)
	if err != nil {
		return chunkHeader{}, err
	}

	return readChunkHeader(b), nil
}
