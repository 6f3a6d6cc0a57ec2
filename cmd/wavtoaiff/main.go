// This tool converts an int16 or float32 wav file into a 16-bit aiff file
// stored in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/rawwav"
	"github.com/cwbudde/rawwav/internal/mapped"
	"github.com/go-audio/aiff"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	outPath, err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func run(args []string) (string, error) {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	sourcePath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	outPath := flagSet.String("out", "", "The aiff file to write, defaults to the source path with an .aif extension")

	err := flagSet.Parse(args)
	if err != nil {
		return "", err
	}

	if *sourcePath == "" {
		return "", errMissingPath
	}

	if *outPath == "" {
		*outPath = aiffPath(*sourcePath)
	}

	data, err := mapped.ReadFile(*sourcePath)
	if err != nil {
		return "", err
	}

	info, err := rawwav.Decode(data)
	if err != nil {
		return "", fmt.Errorf("invalid WAV file %s: %w", *sourcePath, err)
	}

	buf, err := info.IntBuffer()
	if err != nil {
		return "", err
	}

	outFile, err := os.Create(*outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", *outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(info.SampleRate), buf.SourceBitDepth, int(info.ChannelCount))

	if err := encoder.Write(buf); err != nil {
		return "", fmt.Errorf("failed to write aiff samples: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", *outPath, err)
	}

	return *outPath, outFile.Close()
}

func aiffPath(sourcePath string) string {
	return sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
}
