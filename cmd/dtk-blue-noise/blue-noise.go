package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/vram-io/dtk/pkg/bluenoise"
	"github.com/vram-io/dtk/pkg/cmd"
	"github.com/vram-io/dtk/pkg/config"
	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/cmp"
	"github.com/vram-io/dtk/pkg/coord/gen"
	"github.com/vram-io/dtk/pkg/preview"
	tzs3 "github.com/vram-io/dtk/pkg/s3"
	"github.com/vram-io/dtk/pkg/util"
)

func generate(size, spacing int, seed int64, timeout time.Duration) (*bluenoise.Noise, error) {
	var n *bluenoise.Noise
	var genErr error
	err := util.RunWithTimeout(timeout, func() {
		n, genErr = bluenoise.New(size, spacing, seed)
	})
	if err != nil {
		return nil, fmt.Errorf("generating %d/%d/%d: %w", size, spacing, seed, err)
	}
	return n, genErr
}

func encode(n *bluenoise.Noise) ([]byte, error) {
	var buf bytes.Buffer
	if err := bluenoise.Encode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(path string, n *bluenoise.Noise, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := preview.DefaultOptions()
	opts.Scale = scale
	if err := preview.WritePNG(f, preview.Render(n, opts)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStats(n *bluenoise.Noise) {
	s := bluenoise.Analyze(n)
	fmt.Printf("points: %d\n", s.Count)
	fmt.Printf("density: %.6f points/cell\n", s.Density)
	fmt.Printf("nearest neighbour: min %.3f median %.3f mean %.3f stddev %.3f max %.3f\n",
		s.MinNN, s.MedianNN, s.MeanNN, s.StdDevNN, s.MaxNN)
}

func printDiff(a, b *bluenoise.Noise, seedA, seedB int64) {
	onlyA := cmp.FindMissing(gen.NewSlice(a.Points()), gen.NewSlice(b.Points()))
	onlyB := cmp.FindMissing(gen.NewSlice(b.Points()), gen.NewSlice(a.Points()))
	fmt.Printf("seed %d: %d points, %d not in seed %d\n", seedA, a.Len(), len(onlyA), seedB)
	fmt.Printf("seed %d: %d points, %d not in seed %d\n", seedB, b.Len(), len(onlyB), seedA)
	for _, p := range onlyA {
		fmt.Printf("-%s\n", p)
	}
	for _, p := range onlyB {
		fmt.Printf("+%s\n", p)
	}
}

// printAt reports whether each comma separated x/y cell holds a point.
// Cells outside the tile wrap.
func printAt(n *bluenoise.Noise, cells string) {
	for _, spec := range strings.Split(cells, ",") {
		p, err := coord.Decode(strings.TrimSpace(spec))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid cell %s: %s\n", spec, err)
			cmd.DieWithUsage()
		}
		fmt.Printf("%s %v\n", p, n.IsSet(p.X, p.Y))
	}
}

type job struct {
	tile config.Tile
	seed int64
}

type result struct {
	job    job
	key    string
	points int
	err    error
}

func runJob(j job, batch *config.Batch, svc s3iface.S3API, outDir string, timeout time.Duration) result {
	r := result{job: j}
	n, err := generate(j.tile.Size, j.tile.MinSpacing, j.seed, timeout)
	if err != nil {
		r.err = err
		return r
	}
	r.points = n.Len()

	body, err := encode(n)
	if err != nil {
		r.err = err
		return r
	}

	params := tzs3.Params{Size: j.tile.Size, MinSpacing: j.tile.MinSpacing, Seed: j.seed}
	if outDir != "" {
		path := filepath.Join(outDir, fmt.Sprintf("%s-%d%s", j.tile.Name, j.seed, tzs3.Ext))
		if err := ioutil.WriteFile(path, body, 0644); err != nil {
			r.err = err
			return r
		}
		r.key = path
	}
	if svc != nil {
		key := tzs3.KeyForParams(batch.Prefix, params)
		if err := tzs3.Upload(svc, batch.Bucket, key, body); err != nil {
			r.err = err
			return r
		}
		r.key = fmt.Sprintf("s3://%s/%s", batch.Bucket, key)
	}
	return r
}

func runBatch(batch *config.Batch, outDir string, timeout time.Duration) {
	var jobs []job
	for _, t := range batch.Tiles {
		for _, seed := range t.Seeds() {
			jobs = append(jobs, job{t, seed})
		}
	}

	jobChan := make(chan job, len(jobs))
	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)

	var svc s3iface.S3API
	if batch.Bucket != "" {
		svc = tzs3.NewClient(batch.Region)
	}

	resultChan := make(chan result, len(jobs))
	util.Concurrently(batch.Concurrency, func() {
		for j := range jobChan {
			resultChan <- runJob(j, batch, svc, outDir, timeout)
		}
	})
	close(resultChan)

	failed := 0
	for r := range resultChan {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s seed %d: %s\n", r.job.tile.Name, r.job.seed, r.err)
			continue
		}
		fmt.Printf("%s seed %d: %d points %s\n", r.job.tile.Name, r.job.seed, r.points, r.key)
	}
	if failed > 0 {
		log.Fatalf("error: %d of %d tiles failed\n", failed, len(jobs))
	}
}

func main() {
	var (
		size        int
		spacing     int
		seed        int64
		outPath     string
		pngPath     string
		scale       int
		showStats   bool
		diffSeedStr string
		timeout     time.Duration
		yamlPath    string
		outDir      string
		verbose     bool
		atCells     string
	)

	flag.IntVar(&size, "size", 256, "tile edge length in cells")
	flag.IntVar(&spacing, "spacing", 16, "minimum distance between points")
	flag.Int64Var(&seed, "seed", 0, "random seed")
	flag.StringVar(&outPath, "out", "", "path to write the encoded tile")
	flag.StringVar(&pngPath, "png", "", "path to write a png preview")
	flag.IntVar(&scale, "scale", 1, "pixels per cell in the png preview")
	flag.BoolVar(&showStats, "stats", false, "print nearest neighbour statistics")
	flag.StringVar(&diffSeedStr, "diff-seed", "", "also generate this seed and print the points that differ")
	flag.DurationVar(&timeout, "timeout", 0, "give up on a tile after this long (0 waits forever)")
	flag.StringVar(&yamlPath, "yaml", "", "path to a batch yaml file; other tile flags are ignored")
	flag.StringVar(&outDir, "dir", "", "directory for batch output files")
	flag.BoolVar(&verbose, "v", false, "log generation details to stderr")
	flag.StringVar(&atCells, "at", "", "comma separated x/y cells to look up in the tile")

	flag.Parse()

	if verbose {
		bluenoise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if yamlPath != "" {
		batch, err := config.LoadFile(yamlPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid yaml %s: %s\n", yamlPath, err)
			cmd.DieWithUsage()
		}
		if outDir == "" && batch.Bucket == "" {
			fmt.Fprintf(os.Stderr, "batch needs -dir or a bucket\n")
			cmd.DieWithUsage()
		}
		runBatch(batch, outDir, timeout)
		return
	}

	cmd.CheckErrArg(bluenoise.Validate(size, spacing))
	if scale <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid scale: %d\n", scale)
		cmd.DieWithUsage()
	}

	n, err := generate(size, spacing, seed, timeout)
	if err != nil {
		log.Fatalf("error: %s\n", err)
	}

	if outPath != "" {
		body, err := encode(n)
		if err != nil {
			log.Fatalf("error encoding tile: %s\n", err)
		}
		if err := ioutil.WriteFile(outPath, body, 0644); err != nil {
			log.Fatalf("error writing %s: %s\n", outPath, err)
		}
	}
	if pngPath != "" {
		if err := writePNG(pngPath, n, scale); err != nil {
			log.Fatalf("error writing %s: %s\n", pngPath, err)
		}
	}
	if showStats {
		printStats(n)
	}
	if diffSeedStr != "" {
		diffSeed, err := strconv.ParseInt(diffSeedStr, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid diff seed %s: %s\n", diffSeedStr, err)
			cmd.DieWithUsage()
		}
		other, err := generate(size, spacing, diffSeed, timeout)
		if err != nil {
			log.Fatalf("error: %s\n", err)
		}
		printDiff(n, other, seed, diffSeed)
	}
	if atCells != "" {
		printAt(n, atCells)
	}
	if outPath == "" && pngPath == "" && !showStats && diffSeedStr == "" && atCells == "" {
		for _, p := range n.Points() {
			fmt.Printf("%s\n", p)
		}
	}
}
