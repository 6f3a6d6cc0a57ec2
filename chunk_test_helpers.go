package rawwav

import "encoding/binary"

type testChunk struct {
	id   string
	size uint32
	data []byte
}

// rawChunk builds a chunk whose declared size matches its body.
func rawChunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func fmtBody(tag, channels uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	body := make([]byte, fmtChunkSize)
	blockAlign := channels * (bitsPerSample / 8)

	binary.LittleEndian.PutUint16(body[0:2], tag)
	binary.LittleEndian.PutUint16(body[2:4], channels)
	binary.LittleEndian.PutUint32(body[4:8], sampleRate)
	binary.LittleEndian.PutUint32(body[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(body[12:14], blockAlign)
	binary.LittleEndian.PutUint16(body[14:16], bitsPerSample)

	return body
}

// buildWav lays out RIFF/WAVE followed by the chunks verbatim, without
// inserting pad bytes.
func buildWav(chunks ...testChunk) []byte {
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, "WAVE"...)

	for _, ch := range chunks {
		out = append(out, ch.id...)
		out = binary.LittleEndian.AppendUint32(out, ch.size)
		out = append(out, ch.data...)
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}
