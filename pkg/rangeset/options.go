package rangeset

import (
	"fmt"

	"github.com/go-logr/logr"
)

// MergePolicy selects how Insert decides which existing ranges are folded
// into an incoming range.
type MergePolicy int

const (
	// MergeStrict absorbs exactly the ranges that overlap or are adjacent
	// to the incoming range.
	MergeStrict MergePolicy = iota
	// MergeLegacy keeps the historical scan: once a first range has
	// matched, every later range whose end is at least incoming.end-1 is
	// absorbed as well, whether it touches the incoming range or not. The
	// result can be wider than the union of the inserted data.
	MergeLegacy
)

func (p MergePolicy) String() string {
	switch p {
	case MergeStrict:
		return "strict"
	case MergeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

type options struct {
	policy MergePolicy
	log    logr.Logger
}

// Option configures a Set created with New or ParseSet.
type Option func(*options)

func defaultOptions() options {
	return options{
		policy: MergeStrict,
		log:    logr.Discard(),
	}
}

// WithMergePolicy sets the policy used by Insert. The default is
// MergeStrict.
func WithMergePolicy(p MergePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger enables diagnostics. Silent no-ops (value already covered,
// duplicate range) and merges are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}
