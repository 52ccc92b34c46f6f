package s3

type options struct {
	prefix   string
	region   string
	endpoint string
	partSize int64
}

// Option configures New.
type Option func(*options)

// WithPrefix prepends prefix to every key (e.g. "tables/").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the shared AWS configuration.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint points the client at an S3-compatible endpoint and enables
// path-style addressing.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithPartSize sets the multipart upload part size in bytes.
// The S3 minimum of 5 MiB applies.
func WithPartSize(size int64) Option {
	return func(o *options) {
		o.partSize = size
	}
}
