package regexdfa

import u "github.com/araddon/gou"

const (
	DEFAULT_MAX_REGEX_LENGTH  = 1024
	DEFAULT_MAX_NFA_STATES    = 4096
	DEFAULT_MAX_DFA_STATES    = 10000
	DEFAULT_MAX_ALPHABET_SIZE = 256
)

type options struct {
	maxRegexLength  int
	maxNFAStates    int
	maxDFAStates    int
	maxAlphabetSize int
	epsilonMarker   rune
	logLevel        int
}

// Option configures parsing, construction limits and logging.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		maxRegexLength:  DEFAULT_MAX_REGEX_LENGTH,
		maxNFAStates:    DEFAULT_MAX_NFA_STATES,
		maxDFAStates:    DEFAULT_MAX_DFA_STATES,
		maxAlphabetSize: DEFAULT_MAX_ALPHABET_SIZE,
		epsilonMarker:   Epsilon,
		logLevel:        u.WARN,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithMaxRegexLength Maximum number of runes in a regex. Zero or negative disables the check.
func WithMaxRegexLength(n int) Option {
	return func(o *options) {
		o.maxRegexLength = n
	}
}

// WithMaxNFAStates Maximum number of states Thompson construction may create.
func WithMaxNFAStates(n int) Option {
	return func(o *options) {
		o.maxNFAStates = n
	}
}

// WithMaxDFAStates Maximum number of states subset construction may create before giving up.
func WithMaxDFAStates(n int) Option {
	return func(o *options) {
		o.maxDFAStates = n
	}
}

// WithMaxAlphabetSize Maximum number of distinct input symbols.
func WithMaxAlphabetSize(n int) Option {
	return func(o *options) {
		o.maxAlphabetSize = n
	}
}

// WithEpsilonMarker Rune that denotes the empty string in a regex. Defaults to Epsilon.
func WithEpsilonMarker(r rune) Option {
	return func(o *options) {
		o.epsilonMarker = r
	}
}

// WithLogLevel Level, one of the gou constants (u.ERROR .. u.DEBUG), up to which pipeline stages log.
// At u.DEBUG every stage writes one record through the gou logger. Defaults to u.WARN.
func WithLogLevel(level int) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

func (o *options) debugf(format string, args ...interface{}) {
	if o.logLevel >= u.DEBUG {
		u.Debugf(format, args...)
	}
}

// Returns a ResourceLimitError if actual exceeds a positive limit.
func checkLimit(resource string, limit, actual int) error {
	if limit > 0 && actual > limit {
		return &ResourceLimitError{Resource: resource, Limit: limit, Actual: actual}
	}
	return nil
}
