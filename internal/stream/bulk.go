package stream

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lanrat/extsort"
	"github.com/yohasebe/wp2txt-sub000/internal/index"
)

// bulkGroupThreshold is the title-count above which ExtractMany sorts
// its offset-keyed grouping externally instead of building an in-memory
// map directly, bounding peak memory for whole-dump bulk extraction
// runs.
const bulkGroupThreshold = 50_000

// groupByOffsetExternal produces offset→titles groups the same way the
// in-memory path in ExtractMany does, but routes the offset:title keys
// through extsort so a bulk run over the full title list never holds
// more than a bounded working set in memory at once.
func groupByOffsetExternal(ctx context.Context, idx *index.Index, titles []string) (map[uint64][]string, error) {
	in := make(chan string)
	go func() {
		defer close(in)
		for _, t := range titles {
			entry, ok := idx.ByTitle[t]
			if !ok {
				continue
			}
			in <- fmt.Sprintf("%020d\x1f%s", entry.Offset, t)
		}
	}()

	sorter, outCh, errCh := extsort.Strings(in, extsort.DefaultConfig())
	sorter.Sort(ctx)

	groups := make(map[uint64][]string)
	for key := range outCh {
		parts := strings.SplitN(key, "\x1f", 2)
		if len(parts) != 2 {
			continue
		}
		offset, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		groups[offset] = append(groups[offset], parts[1])
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return groups, nil
}
