// This tool prints the format and payload layout of the passed wav files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/rawwav"
	"github.com/cwbudde/rawwav/internal/mapped"
)

const missingPathMessage = "You must pass the path of at least one file to inspect"

var (
	errMissingPath = errors.New("missing path argument")
	errSomeFailed  = errors.New("some files could not be decoded")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	pad := flagSet.Bool("pad", false, "skip the RIFF pad byte after odd-sized chunks")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	opts := rawwav.DecodeOptions{PadOddChunks: *pad}

	failed := 0
	for _, path := range flagSet.Args() {
		if err := describe(out, path, opts); err != nil {
			// a bad file doesn't stop the others from being inspected
			log.Printf("%s: %v", path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeFailed, failed, flagSet.NArg())
	}

	return nil
}

func describe(out io.Writer, path string, opts rawwav.DecodeOptions) error {
	data, err := mapped.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := rawwav.DecodeWithOptions(data, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Sample format: %s\n", info.SampleFormat)
	fmt.Fprintf(out, "Channels: %d\n", info.ChannelCount)
	fmt.Fprintf(out, "Sample rate: %g Hz\n", info.SampleRate)
	fmt.Fprintf(out, "Bits per sample: %d\n", info.BitsPerSample)
	fmt.Fprintf(out, "Frames: %d\n", info.FrameCount)
	fmt.Fprintf(out, "Payload: %d bytes\n", info.ByteSize)
	fmt.Fprintf(out, "Duration: %s\n", info.Duration())

	return nil
}
