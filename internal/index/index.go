// Package index loads a Wikipedia multistream index file — a
// bzip2-compressed text file of `offset:page_id:title` lines — into
// three read-only views: title→entry, page_id→entry, and the sorted
// distinct stream-offset list.
package index

import (
	"bufio"
	"compress/bzip2"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/errs"
)

// Entry is a single multistream index record.
type Entry struct {
	Offset uint64
	PageID uint64
	Title  string
}

// Index is the built, immutable result of loading an index file.
type Index struct {
	ByTitle       map[string]Entry
	ByID          map[uint64]Entry
	StreamOffsets []uint64
}

// Load streams r (the raw bytes of a bzip2-compressed index file) line
// by line, building the three views. Malformed lines — fewer than two
// colons — are skipped silently.
func Load(r io.Reader) (*Index, error) {
	idx := &Index{
		ByTitle: make(map[string]Entry),
		ByID:    make(map[uint64]Entry),
	}

	scanner := bufio.NewScanner(bzip2.NewReader(r))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		idx.ByTitle[entry.Title] = entry
		idx.ByID[entry.PageID] = entry
		idx.appendOffset(entry.Offset)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.IO("index", err)
	}

	return idx, nil
}

func parseLine(line string) (Entry, bool) {
	first := strings.IndexByte(line, ':')
	if first < 0 {
		return Entry{}, false
	}
	second := strings.IndexByte(line[first+1:], ':')
	if second < 0 {
		return Entry{}, false
	}
	second += first + 1

	offsetStr := line[:first]
	idStr := line[first+1 : second]
	title := line[second+1:]

	offset, err := strconv.ParseUint(offsetStr, 10, 64)
	if err != nil {
		return Entry{}, false
	}
	pageID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Offset: offset, PageID: pageID, Title: title}, true
}

// appendOffset maintains StreamOffsets as a de-duplicated,
// strictly-increasing sequence: a new offset is appended only when it
// differs from the last one seen.
func (idx *Index) appendOffset(offset uint64) {
	n := len(idx.StreamOffsets)
	if n > 0 && idx.StreamOffsets[n-1] == offset {
		return
	}
	idx.StreamOffsets = append(idx.StreamOffsets, offset)
}

// NextOffset returns the first stream offset strictly greater than
// entry.Offset, and ok=false if entry.Offset is the last stream (the
// caller should then read to EOF).
func (idx *Index) NextOffset(entry Entry) (next uint64, ok bool) {
	i := sort.Search(len(idx.StreamOffsets), func(i int) bool {
		return idx.StreamOffsets[i] > entry.Offset
	})
	if i >= len(idx.StreamOffsets) {
		return 0, false
	}
	return idx.StreamOffsets[i], true
}
