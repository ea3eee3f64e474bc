// Package main prints an image file as base64 text, or as the data URI
// stored in newsImage. Useful for seeding a store by hand.
// Usage: news-encode-image [--data-uri] [--type image/png] <file>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"news-portal/internal/domain/entity"
	"news-portal/internal/infra/imageenc"
	"news-portal/internal/observability/logging"
	"news-portal/pkg/config"
)

func main() {
	var (
		dataURI  bool
		mimeType string
	)
	flag.BoolVar(&dataURI, "data-uri", false, "Wrap the output as data:<type>;base64,<text>")
	flag.StringVar(&mimeType, "type", "", "MIME type for --data-uri (default: from the file extension)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: news-encode-image [--data-uri] [--type image/png] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	enc := imageenc.New(config.GetEnvInt64("MAX_UPLOAD_BYTES", 5<<20))

	encoded, err := enc.EncodeFile(path)
	if err != nil {
		logger.Error("failed to encode image", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}

	if !dataURI {
		fmt.Println(encoded)
		return
	}
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
	}
	if mimeType == "" {
		logger.Error("cannot infer MIME type; pass --type", slog.String("path", path))
		os.Exit(1)
	}
	fmt.Println(entity.DataURI(mimeType, encoded))
}
