// Package stream implements the stream reader: given an
// index entry, it seeks into a multistream bzip2 dump, decodes exactly
// the bytes belonging to that entry's constituent stream, and extracts
// the requested `<page>` elements by shallow streaming XML parsing, the
// same xml.Decoder token-loop idiom Wikipedia dump converters commonly
// use.
package stream

import (
	"bytes"
	"compress/bzip2"
	"context"
	"encoding/xml"
	"errors"
	"io"

	"github.com/yohasebe/wp2txt-sub000/internal/errs"
	"github.com/yohasebe/wp2txt-sub000/internal/index"
)

var (
	errNotIndexed   = errors.New("title not found in index")
	errPageNotFound = errors.New("page not found in decoded stream")
)

// Page is one extracted article.
type Page struct {
	Title    string `xml:"title"`
	ID       uint64 `xml:"id"`
	Redirect struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect"`
	Text string `xml:"revision>text"`
}

// Reader performs random-access extraction against an io.ReaderAt
// backing the multistream bzip2 file.
type Reader struct {
	src io.ReaderAt
	idx *index.Index
}

// New builds a Reader over src using idx for offset lookups.
func New(src io.ReaderAt, idx *index.Index) *Reader {
	return &Reader{src: src, idx: idx}
}

// Extract returns the single page matching title.
func (r *Reader) Extract(title string) (Page, error) {
	entry, ok := r.idx.ByTitle[title]
	if !ok {
		return Page{}, errs.Parse(title, errNotIndexed)
	}
	pages, err := r.decodeStream(entry.Offset)
	if err != nil {
		return Page{}, err
	}
	for _, p := range pages {
		if p.Title == title {
			return p, nil
		}
	}
	return Page{}, errs.XML(title, errPageNotFound)
}

// ExtractMany groups titles by their stream offset and decodes each
// referenced stream exactly once.
func (r *Reader) ExtractMany(titles []string) (map[string]Page, error) {
	byOffset, err := r.groupByOffset(titles)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(titles))
	for _, t := range titles {
		wanted[t] = true
	}

	result := make(map[string]Page, len(titles))
	for offset := range byOffset {
		pages, err := r.decodeStream(offset)
		if err != nil {
			return nil, err
		}
		for _, p := range pages {
			if wanted[p.Title] {
				result[p.Title] = p
			}
		}
	}
	return result, nil
}

// groupByOffset builds the offset→titles grouping ExtractMany consumes,
// using the external-sort path once the title count crosses
// bulkGroupThreshold.
func (r *Reader) groupByOffset(titles []string) (map[uint64][]string, error) {
	if len(titles) < bulkGroupThreshold {
		byOffset := make(map[uint64][]string)
		for _, t := range titles {
			entry, ok := r.idx.ByTitle[t]
			if !ok {
				continue
			}
			byOffset[entry.Offset] = append(byOffset[entry.Offset], t)
		}
		return byOffset, nil
	}
	return groupByOffsetExternal(context.Background(), r.idx, titles)
}

// decodeStream reads the byte range [offset, nextOffset) (or to EOF),
// bzip2-decodes it, wraps the result in a synthetic <root> element, and
// extracts every <page> by streaming XML decode.
func (r *Reader) decodeStream(offset uint64) ([]Page, error) {
	entry := index.Entry{Offset: offset}
	length := int64(-1)
	if next, ok := r.idx.NextOffset(entry); ok {
		length = int64(next - offset)
	}

	var raw []byte
	var err error
	if length >= 0 {
		raw = make([]byte, length)
		_, err = r.src.ReadAt(raw, int64(offset))
	} else {
		raw, err = readAllFrom(r.src, int64(offset))
	}
	if err != nil && err != io.EOF {
		return nil, errs.IO("stream", err)
	}

	bz := bzip2.NewReader(bytes.NewReader(raw))
	decoded, err := io.ReadAll(bz)
	if err != nil {
		return nil, errs.Bz2Validation("stream", err)
	}

	wrapped := append([]byte("<root>"), decoded...)
	wrapped = append(wrapped, []byte("</root>")...)

	return decodeXML(wrapped)
}

func decodeXML(data []byte) ([]Page, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var pages []Page
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return pages, errs.XML("page", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}
		var p Page
		if err := decoder.DecodeElement(&p, &start); err != nil {
			continue
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// readAllFrom reads every remaining byte from src starting at offset,
// used when there is no next stream offset (the entry is the last
// stream in the file).
func readAllFrom(src io.ReaderAt, offset int64) ([]byte, error) {
	const chunk = 1 << 20
	var buf bytes.Buffer
	pos := offset
	tmp := make([]byte, chunk)
	for {
		n, err := src.ReadAt(tmp, pos)
		if n > 0 {
			buf.Write(tmp[:n])
			pos += int64(n)
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return buf.Bytes(), err
		}
	}
}
