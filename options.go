package gff

import "runtime"

// Option configures batch parsing and serialization.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	doc, err := gff.ParseLines(ctx, lines,
//	    gff.WithSkipInvalid(),
//	    gff.WithConcurrency(4),
//	)
type Option func(*batchOptions)

// batchOptions holds configuration for ParseLines and SerializeItems.
type batchOptions struct {
	skipInvalid  bool // Turn per-line errors into warnings
	skipBlank    bool // Drop empty lines without a warning
	dropComments bool // Leave comments out of the result
	concurrency  int  // Worker limit (<= 0 means runtime.NumCPU())
	chunkSize    int  // Lines handled per worker task
}

// defaultChunkSize keeps per-task overhead small next to the parse cost.
const defaultChunkSize = 4096

// defaultOptions returns the default configuration.
func defaultOptions() *batchOptions {
	return &batchOptions{
		skipInvalid:  false,
		skipBlank:    false,
		dropComments: false,
		concurrency:  runtime.NumCPU(),
		chunkSize:    defaultChunkSize,
	}
}

func applyOptions(opts []Option) *batchOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.concurrency <= 0 {
		options.concurrency = runtime.NumCPU()
	}
	if options.chunkSize <= 0 {
		options.chunkSize = defaultChunkSize
	}
	return options
}

// WithSkipInvalid records invalid lines as warnings instead of failing.
//
// By default ParseLines stops at the first invalid line and returns a
// *LineError for it. With this option every invalid line is left out of
// Document.Items and reported in Document.Warnings, in line order.
//
// Example:
//
//	doc, err := gff.ParseLines(ctx, lines, gff.WithSkipInvalid())
//	for _, w := range doc.Warnings {
//		log.Printf("skipped %s", w)
//	}
func WithSkipInvalid() Option {
	return func(o *batchOptions) {
		o.skipInvalid = true
	}
}

// WithSkipBlank silently drops empty lines.
//
// Files commonly end with a blank line; without this option such a line
// fails with ErrEmptyLine like any other invalid line.
func WithSkipBlank() Option {
	return func(o *batchOptions) {
		o.skipBlank = true
	}
}

// WithDropComments leaves comments out of the result.
//
// For ParseLines, comment lines are still classified but not returned.
// For SerializeItems, Comment items produce no output line.
func WithDropComments() Option {
	return func(o *batchOptions) {
		o.dropComments = true
	}
}

// WithConcurrency sets the maximum number of worker goroutines.
//
// Default is runtime.NumCPU(). Values <= 0 restore the default.
func WithConcurrency(n int) Option {
	return func(o *batchOptions) {
		o.concurrency = n
	}
}

// WithChunkSize sets how many lines one worker task handles.
//
// Default is 4096. Smaller chunks spread short inputs across more workers.
func WithChunkSize(n int) Option {
	return func(o *batchOptions) {
		o.chunkSize = n
	}
}
