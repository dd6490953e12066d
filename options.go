package pixconv

// Option configures a Converter during creation.
//
// Example:
//
//	// GOMAXPROCS workers, no diagnostics
//	c := pixconv.NewConverter()
//
//	// Four workers, one line per pixel on stdout
//	c := pixconv.NewConverter(pixconv.WithWorkers(4), pixconv.WithSink(pixconv.NewWriterSink(os.Stdout)))
type Option func(*options)

// options holds optional configuration for Converter creation.
type options struct {
	workers int
	sink    Sink
}

// defaultOptions returns the default converter options.
func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		sink:    nil,
	}
}

// WithWorkers sets the worker pool size. Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSink attaches a per-pixel diagnostic sink. A nil sink, including a nil
// *WriterSink or nil SinkFunc, disables diagnostics, which is the default.
//
// Every pixel calls the sink, so a locking sink serializes part of the hot
// loop. Use it for debugging only.
func WithSink(s Sink) Option {
	switch v := s.(type) {
	case *WriterSink:
		if v == nil {
			s = nil
		}
	case SinkFunc:
		if v == nil {
			s = nil
		}
	}
	return func(o *options) {
		o.sink = s
	}
}
