package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vram-io/dtk/pkg/bluenoise"
	"github.com/vram-io/dtk/pkg/cmd"
	"github.com/vram-io/dtk/pkg/s3"
)

func main() {
	var bucket string
	var prefix string
	var size int
	var spacing int
	var seed int64
	var keyStr string

	flag.StringVar(&bucket, "bucket", "", "s3 bucket")
	flag.StringVar(&prefix, "prefix", "", "s3 bucket prefix")
	flag.IntVar(&size, "size", 256, "tile edge length in cells")
	flag.IntVar(&spacing, "spacing", 16, "minimum distance between points")
	flag.Int64Var(&seed, "seed", 0, "random seed")
	flag.StringVar(&keyStr, "key", "", "existing key to parse the tile parameters from")

	flag.Parse()

	cmd.CheckStringArg(prefix, "Missing -prefix")

	params := s3.Params{Size: size, MinSpacing: spacing, Seed: seed}
	if keyStr != "" {
		p, err := s3.ParseParamsFromKey(keyStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid key %s: %s\n", keyStr, err)
			cmd.DieWithUsage()
		}
		params = *p
	}
	cmd.CheckErrArg(bluenoise.Validate(params.Size, params.MinSpacing))

	path := s3.KeyForParams(prefix, params)
	if bucket != "" {
		fmt.Printf("s3://%s/%s\n", bucket, path)
	} else {
		fmt.Printf("%s\n", path)
	}
}
