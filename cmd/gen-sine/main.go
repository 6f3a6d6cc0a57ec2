package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/rawwav"
	"github.com/go-audio/audio"
)

var errUnknownFormat = errors.New("unknown sample format")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")
	channels := flagSet.Int("channels", 1, "number of channels, each carrying the same tone")
	formatName := flagSet.String("format", "int16", "sample format: int16 or float32")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	format, err := parseFormat(*formatName)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec %s sine wav at %f hz", *length, format, *frequency)

	numFrames := int(math.Round(float64(*sampleRate) * *length))
	buf := &audio.Float32Buffer{
		Data:   make([]float32, numFrames**channels),
		Format: &audio.Format{NumChannels: *channels, SampleRate: *sampleRate},
	}

	for i := range numFrames {
		v := float32(math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi))
		for ch := range *channels {
			buf.Data[i**channels+ch] = v
		}
	}

	payload, err := rawwav.AppendPCM(nil, buf, format)
	if err != nil {
		return err
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	err = rawwav.WriteHeader(w, rawwav.Info{
		SampleFormat: format,
		ChannelCount: uint32(*channels),
		SampleRate:   float64(*sampleRate),
		ByteSize:     uint64(len(payload)),
	})
	if err != nil {
		return err
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("error writing samples: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing %s: %w", *output, err)
	}

	return file.Close()
}

func parseFormat(name string) (rawwav.SampleFormat, error) {
	switch name {
	case "int16":
		return rawwav.FormatInt16, nil
	case "float32":
		return rawwav.FormatFloat32, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownFormat, name)
	}
}
