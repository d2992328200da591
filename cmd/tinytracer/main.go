package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"

	"github.com/lukaszgryglicki/tinytracer/internal/tinytracer"
)

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	scenePath := flag.String("scene", "", "JSON scene config; empty renders the built-in scene")
	out := flag.String("out", tinytracer.DefaultOut, "output image path (.ppm or .png)")
	thumb := flag.String("thumb", "", "optional PNG thumbnail path")
	thumbWidth := flag.Int("thumb-width", tinytracer.ThumbWidth, "thumbnail width in pixels")
	upload := flag.Bool("upload", false, "upload outputs to S3 after writing (needs S3_* env)")
	flag.Parse()
	if flag.NArg() > 0 {
		*scenePath = flag.Arg(0)
	}

	tinytracer.Debug = os.Getenv("DEBUG") != ""
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	opt := tinytracer.RunOptions{
		Out:        *out,
		Thumb:      *thumb,
		ThumbWidth: *thumbWidth,
		Upload:     *upload,
	}
	if *upload {
		opt.S3 = tinytracer.S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		}
	}

	if err := tinytracer.Run(*scenePath, opt); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
