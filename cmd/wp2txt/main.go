// Command wp2txt converts a Wikipedia XML dump into plain text or
// line-delimited JSON, applying the wikitext-to-text transformation
// pipeline to every <page> it encounters.
package main

import (
	"bytes"
	"compress/bzip2"
	"context"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
	"github.com/yohasebe/wp2txt-sub000/internal/logging"
	"github.com/yohasebe/wp2txt-sub000/internal/output"
	"github.com/yohasebe/wp2txt-sub000/internal/wikitext"
	"github.com/yohasebe/wp2txt-sub000/internal/worker"
)

const appVersion = "0.1.0"

func main() {
	version := flag.Bool("v", false, "print version and exit")
	configPath := flag.String("config", "", "path to a transform config YAML file")
	outDir := flag.String("out", ".", "output directory")
	outName := flag.String("name", "wp2txt-out", "output file base name")
	format := flag.String("format", "text", "output format: text or jsonl")
	numWorkers := flag.Int("w", runtime.NumCPU(), "number of worker goroutines")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wp2txt-sub000 %s\n\nUsage: %s [flags] dump.xml[.bz2]\n\n", appVersion, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(appVersion)
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.New("INFO", "text")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadTransformConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	outFormat := output.FormatText
	if strings.EqualFold(*format, "jsonl") {
		outFormat = output.FormatJSONL
	}

	writer := output.New(*outDir, *outName, outFormat, cfg.RotateSizeMB)
	defer writer.Close()

	pages, err := openPages(flag.Arg(0))
	if err != nil {
		logger.Error("failed to open dump", "error", err)
		os.Exit(1)
	}

	pool := &worker.Pool[rawPage]{Concurrency: *numWorkers, Logger: logger}
	err = pool.Run(context.Background(), pages, func(ctx context.Context, job worker.Job[rawPage]) error {
		return processPage(job.Item, cfg, writer)
	})
	if err != nil {
		logger.Error("processing failed", "error", err)
		os.Exit(1)
	}
}

type rawPage struct {
	Title string `xml:"title"`
	Text  string `xml:"revision>text"`
}

func processPage(p rawPage, cfg *config.Transform, w *output.Writer) error {
	art := wikitext.Parse(p.Title, p.Text, wikitext.ParseOptions{StripMarkers: !cfg.KeepListMarkers})

	var b strings.Builder
	for _, el := range art.Elements {
		b.WriteString(el.Payload)
	}

	text := wikitext.Format(b.String(), wikitext.FormatOptions{
		Title:         p.Title,
		ReferenceDate: time.Now(),
		Transform:     cfg,
	})

	rec := output.Record{Title: p.Title, Text: &text}
	if cfg.KeepCategories {
		rec.Categories = art.Categories
	}
	return w.Write(rec)
}

// openPages decodes dump (plain XML, or bzip2-compressed if the
// extension is .bz2) into the full in-memory slice of pages by running
// an xml.Decoder token loop over the whole file; fan-out across pages
// happens afterward in the worker pool driven by main.
func openPages(path string) ([]rawPage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".bz2") {
		r = bzip2.NewReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	var pages []rawPage
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return pages, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}
		var p rawPage
		if err := decoder.DecodeElement(&p, &start); err != nil {
			continue
		}
		pages = append(pages, p)
	}
	return pages, nil
}
