package gff

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Document is the result of parsing a batch of lines.
type Document struct {
	// Items in input line order. Lines dropped by options are absent.
	Items []Item

	// Lines skipped because they failed to parse (WithSkipInvalid only)
	Warnings []Warning
}

// Records returns the feature records of the document in line order.
func (d *Document) Records() []Record {
	var out []Record
	for _, it := range d.Items {
		if r, ok := it.(Record); ok {
			out = append(out, r)
		}
	}
	return out
}

// Comments returns the comments of the document in line order.
func (d *Document) Comments() []Comment {
	var out []Comment
	for _, it := range d.Items {
		if c, ok := it.(Comment); ok {
			out = append(out, c)
		}
	}
	return out
}

// ParseLines parses many lines concurrently.
//
// Lines are split into chunks handled by up to runtime.NumCPU() goroutines
// (see WithConcurrency). Results are returned in the same order as the
// input lines.
//
// By default the first invalid line, by position, aborts the batch with a
// *LineError carrying its 1-based line number. The error does not depend on
// scheduling: every line before it has been parsed successfully.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	doc, err := gff.ParseLines(ctx, lines, gff.WithSkipBlank())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, rec := range doc.Records() {
//		fmt.Println(rec.Seqname, rec.Start, rec.Stop)
//	}
func ParseLines(ctx context.Context, lines []string, opts ...Option) (*Document, error) {
	options := applyOptions(opts)
	if len(lines) == 0 {
		return &Document{}, nil
	}

	items := make([]Item, len(lines))
	errs := make([]error, len(lines))

	// Lowest index of a failing line in strict mode. Workers stop once they
	// pass it, so everything below it is always parsed.
	var firstBad atomic.Int64
	firstBad.Store(math.MaxInt64)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	for lo := 0; lo < len(lines); lo += options.chunkSize {
		hi := min(lo+options.chunkSize, len(lines))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if int64(i) > firstBad.Load() {
					return nil
				}

				line := lines[i]
				if line == "" && options.skipBlank {
					continue
				}

				item, err := Parse(line)
				if err != nil {
					errs[i] = err
					if !options.skipInvalid {
						lowerFirstBad(&firstBad, int64(i))
						return nil
					}
					continue
				}
				if _, ok := item.(Comment); ok && options.dropComments {
					continue
				}
				items[i] = item
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if bad := firstBad.Load(); bad != math.MaxInt64 {
		return nil, &LineError{Line: int(bad) + 1, Text: lines[bad], Err: errs[bad]}
	}

	doc := &Document{Items: make([]Item, 0, len(lines))}
	for i, item := range items {
		if errs[i] != nil {
			doc.Warnings = append(doc.Warnings, Warning{Line: i + 1, Text: lines[i], Err: errs[i]})
			continue
		}
		if item != nil {
			doc.Items = append(doc.Items, item)
		}
	}
	return doc, nil
}

// lowerFirstBad stores i into v if it is lower than the current value.
func lowerFirstBad(v *atomic.Int64, i int64) {
	for {
		cur := v.Load()
		if i >= cur || v.CompareAndSwap(cur, i) {
			return
		}
	}
}

// SerializeItems renders many items concurrently in the given dialect.
//
// Output lines are in input order and carry no terminator. The only
// possible error is cancellation of ctx. WithConcurrency, WithChunkSize and
// WithDropComments apply; the other options only affect parsing.
func SerializeItems(ctx context.Context, items []Item, v Version, opts ...Option) ([]string, error) {
	options := applyOptions(opts)
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]string, len(items))
	keep := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	for lo := 0; lo < len(items); lo += options.chunkSize {
		hi := min(lo+options.chunkSize, len(items))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if _, ok := items[i].(Comment); ok && options.dropComments {
					continue
				}
				out[i] = Serialize(items[i], v)
				keep[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lines := out[:0]
	for i, line := range out {
		if keep[i] {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
