package rawwav

import (
	"bytes"
	"fmt"
	"log"
)

func ExampleEncode() {
	hdr, err := Encode(Info{
		SampleFormat: FormatInt16,
		ChannelCount: 1,
		SampleRate:   8000,
		ByteSize:     100,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", hdr[:12])
	fmt.Println(len(hdr))
	// Output:
	// 52 49 46 46 88 00 00 00 57 41 56 45
	// 44
}

func ExampleDecode() {
	var file bytes.Buffer

	err := WriteHeader(&file, Info{
		SampleFormat: FormatInt16,
		ChannelCount: 2,
		SampleRate:   44100,
		ByteSize:     8,
	})
	if err != nil {
		log.Fatal(err)
	}

	file.Write([]byte{1, 0, 2, 0, 3, 0, 4, 0})

	info, err := Decode(file.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s, %d ch, %.0f Hz, %d frames, %d payload bytes\n",
		info.SampleFormat, info.ChannelCount, info.SampleRate, info.FrameCount, len(info.Payload))
	// Output: int16, 2 ch, 44100 Hz, 2 frames, 8 payload bytes
}
