// Package output implements the output writer: a
// thread-safe sink that serialises per-article records to text or JSONL
// files, rotating at a configurable size threshold without ever
// splitting an article across files.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yohasebe/wp2txt-sub000/internal/errs"
)

// Record is one article's serialised form.
type Record struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories,omitempty"`
	Text       *string  `json:"text"`
	Redirect   *string  `json:"redirect,omitempty"`
}

// Format selects the on-disk record shape.
type Format int

const (
	FormatText Format = iota
	FormatJSONL
)

// Writer owns the current file handle, current-file-size counter, and
// output-file list, all behind a single mutex so workers communicating
// only through Write never race.
type Writer struct {
	mu sync.Mutex

	baseDir      string
	baseName     string
	format       Format
	rotateSizeMB int

	fileIndex   int
	current     *os.File
	bufw        *bufio.Writer
	currentSize int64
	files       []string
}

// New creates a Writer whose output file is baseDir/baseName, or
// baseDir/baseName-000, baseName-001, … when rotateSizeMB > 0.
func New(baseDir, baseName string, format Format, rotateSizeMB int) *Writer {
	return &Writer{
		baseDir:      baseDir,
		baseName:     baseName,
		format:       format,
		rotateSizeMB: rotateSizeMB,
	}
}

// Write serialises one article record atomically: rotation never occurs
// mid-record.
func (w *Writer) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	content, err := w.render(rec)
	if err != nil {
		return err
	}
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if err := w.writeString(content); err != nil {
		return err
	}
	return w.maybeRotate()
}

// WriteRaw writes content verbatim with no record formatting.
func (w *Writer) WriteRaw(content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureOpen(); err != nil {
		return err
	}
	if err := w.writeString(content); err != nil {
		return err
	}
	return w.maybeRotate()
}

// WriteFromFile streams path's content, rotating only at blank-line
// boundaries so that an article split across several lines is never
// divided across output files.
func (w *Writer) WriteFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.IO(path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var pending strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		pending.WriteString(line)
		pending.WriteByte('\n')
		if strings.TrimSpace(line) != "" {
			continue
		}
		if err := w.ensureOpen(); err != nil {
			return err
		}
		if err := w.writeString(pending.String()); err != nil {
			return err
		}
		pending.Reset()
		if err := w.maybeRotate(); err != nil {
			return err
		}
	}
	if pending.Len() > 0 {
		if err := w.ensureOpen(); err != nil {
			return err
		}
		if err := w.writeString(pending.String()); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) render(rec Record) (string, error) {
	if w.format == FormatJSONL {
		b, err := json.Marshal(rec)
		if err != nil {
			return "", errs.IO(w.baseName, err)
		}
		return string(b) + "\n", nil
	}

	var b strings.Builder
	if rec.Title != "" {
		fmt.Fprintf(&b, "[[%s]]\n\n", rec.Title)
	}
	if rec.Text != nil {
		b.WriteString(*rec.Text)
	}
	if len(rec.Categories) > 0 {
		fmt.Fprintf(&b, "CATEGORIES: %s\n\n", strings.Join(rec.Categories, ", "))
	}
	return b.String(), nil
}

func (w *Writer) ensureOpen() error {
	if w.current != nil {
		return nil
	}
	return w.openNext()
}

func (w *Writer) openNext() error {
	name := w.currentFileName()
	f, err := os.Create(name)
	if err != nil {
		return errs.IO(name, err)
	}
	w.current = f
	w.bufw = bufio.NewWriter(f)
	w.currentSize = 0
	w.files = append(w.files, name)
	return nil
}

func (w *Writer) currentFileName() string {
	if w.rotateSizeMB <= 0 {
		return filepath.Join(w.baseDir, w.baseName)
	}
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%03d", w.baseName, w.fileIndex))
}

func (w *Writer) writeString(s string) error {
	n, err := w.bufw.WriteString(s)
	w.currentSize += int64(n)
	if err != nil {
		w.closeCurrentOnError()
		return errs.IO(w.currentFileName(), err)
	}
	return nil
}

func (w *Writer) closeCurrentOnError() {
	if w.current == nil {
		return
	}
	w.bufw.Flush()
	w.current.Close()
	w.current = nil
	w.bufw = nil
}

// maybeRotate closes the current file and advances to the next numbered
// file when rotateSizeMB > 0 and the threshold has been exceeded.
func (w *Writer) maybeRotate() error {
	if w.rotateSizeMB <= 0 {
		return nil
	}
	threshold := int64(w.rotateSizeMB) * 1024 * 1024
	if w.currentSize < threshold {
		return nil
	}
	if err := w.closeFile(); err != nil {
		return err
	}
	w.fileIndex++
	return nil
}

func (w *Writer) closeFile() error {
	if w.current == nil {
		return nil
	}
	if err := w.bufw.Flush(); err != nil {
		w.current.Close()
		w.current = nil
		return errs.IO(w.currentFileName(), err)
	}
	name := w.current.Name()
	if err := w.current.Close(); err != nil {
		w.current = nil
		return errs.IO(name, err)
	}
	w.current = nil
	return nil
}

// Close flushes and closes the current file, removing it if it ended up
// zero-length.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return nil
	}
	name := w.current.Name()
	if err := w.closeFile(); err != nil {
		return err
	}
	removeIfEmpty(name)
	return nil
}

func removeIfEmpty(name string) {
	info, err := os.Stat(name)
	if err != nil {
		return
	}
	if info.Size() == 0 {
		os.Remove(name)
	}
}
