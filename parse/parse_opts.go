package parse

import "github.com/signadot/jsondoc/encode"

type parseOpts struct {
	nest         bool
	version      int64
	previewWidth int

	// formatting, consumed by encode
	format         bool
	sort           bool
	tabWidth       int
	prettyMaxWidth int
}

func defaultOpts() *parseOpts {
	return &parseOpts{
		version:      1,
		previewWidth: 20,
		tabWidth:     2,
	}
}

// EncodeOpts returns the encoding options implied by the formatting
// parse options.
func (o *parseOpts) EncodeOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeSort(o.sort),
		encode.EncodeTabWidth(o.tabWidth),
		encode.EncodeMaxWidth(o.prettyMaxWidth),
	}
	if o.format {
		res = append(res, encode.EncodePretty(true))
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseNest parses string leaves holding JSON into the NestNodeMap.
func ParseNest(v bool) ParseOption {
	return func(o *parseOpts) { o.nest = v }
}

// ParseVersion sets the version of the resulting tree.
func ParseVersion(v int64) ParseOption {
	return func(o *parseOpts) { o.version = v }
}

// ParsePreviewWidth bounds each part of an error context window.
func ParsePreviewWidth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.previewWidth = n
		}
	}
}

func ParseFormat(v bool) ParseOption {
	return func(o *parseOpts) { o.format = v }
}

func ParseSort(v bool) ParseOption {
	return func(o *parseOpts) { o.sort = v }
}

func ParseTabWidth(n int) ParseOption {
	return func(o *parseOpts) { o.tabWidth = n }
}

func ParsePrettyMaxWidth(n int) ParseOption {
	return func(o *parseOpts) { o.prettyMaxWidth = n }
}

// EncodeOptions extracts the formatting options from opts.
func EncodeOptions(opts ...ParseOption) []encode.EncodeOption {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	return o.EncodeOpts()
}

// Formatting reports whether opts request re-stringification.
func Formatting(opts ...ParseOption) bool {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	return o.format
}
