package daystore

import "time"

type options struct {
	location *time.Location
}

// Option configures a Store.
type Option func(*options)

func defaultOptions() *options {
	return &options{location: time.Local}
}

// WithLocation sets the time zone calendar days are computed in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}
