package domain

import (
	"fmt"
	"slices"
)

// Record is an individual item inside a collection-valued section. The type
// parameter ties ContentEquals to the concrete record kind so the merge
// engine stays fully typed.
type Record[R any] interface {
	// RecordID returns the stable identifier, assigned at creation and never
	// reassigned.
	RecordID() string

	// ContentEquals compares every field other than the identifier.
	ContentEquals(other R) bool
}

// MergeStrategy selects how existing and incoming records are reconciled.
type MergeStrategy string

// Available merge strategies.
const (
	// StrategyReplace discards existing records and keeps incoming verbatim.
	StrategyReplace MergeStrategy = "replace"

	// StrategyMerge appends incoming records, dropping those whose content
	// duplicates a record already present. Existing records win ties.
	StrategyMerge MergeStrategy = "merge"
)

// IsValid returns true if the strategy is recognised.
func (s MergeStrategy) IsValid() bool {
	switch s {
	case StrategyReplace, StrategyMerge:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s MergeStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s MergeStrategy) Description() string {
	switch s {
	case StrategyReplace:
		return "Replace (overwrite existing records)"
	case StrategyMerge:
		return "Merge (append new, drop duplicates)"
	default:
		return "Unknown"
	}
}

// ParseMergeStrategy converts a string into a MergeStrategy.
func ParseMergeStrategy(value string) (MergeStrategy, error) {
	strategy := MergeStrategy(value)
	if !strategy.IsValid() {
		return "", fmt.Errorf("merge strategy %q: %w", value, ErrInvalidInput)
	}
	return strategy, nil
}

// MergeResult is the computed output of one reconciliation.
type MergeResult[R Record[R]] struct {
	// Records is the new collection for the section.
	Records []R

	// Kept is how many records came from the prior state.
	Kept int

	// Added is how many incoming records were newly added.
	Added int
}

// Total returns the size of the resulting collection.
func (r MergeResult[R]) Total() int {
	return len(r.Records)
}

// MergeOption configures a single Merge call.
type MergeOption[R Record[R]] func(*mergeConfig[R])

type mergeConfig[R Record[R]] struct {
	equal func(a, b R) bool
}

// WithEquality overrides the duplicate check for one Merge call. The default
// is the record kind's ContentEquals, which deliberately ignores the
// identifier; callers with records that legitimately repeat content can
// supply identity-aware equality here.
func WithEquality[R Record[R]](equal func(a, b R) bool) MergeOption[R] {
	return func(cfg *mergeConfig[R]) {
		cfg.equal = equal
	}
}

// Merge reconciles an existing collection with an incoming one under the
// chosen strategy.
//
// Under StrategyMerge the existing records are never touched: they keep
// their order and identifiers, so an empty incoming collection is an exact
// no-op. Each incoming record is appended only when its content duplicates
// neither an existing record nor an incoming record already accepted;
// first occurrence wins.
func Merge[R Record[R]](existing, incoming []R, strategy MergeStrategy, opts ...MergeOption[R]) (MergeResult[R], error) {
	cfg := mergeConfig[R]{
		equal: func(a, b R) bool { return a.ContentEquals(b) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch strategy {
	case StrategyReplace:
		return MergeResult[R]{
			Records: slices.Clone(incoming),
			Kept:    0,
			Added:   len(incoming),
		}, nil

	case StrategyMerge:
		result := MergeResult[R]{
			Records: slices.Clone(existing),
			Kept:    len(existing),
		}
		for _, record := range incoming {
			if containsContent(result.Records, record, cfg.equal) {
				continue
			}
			result.Records = append(result.Records, record)
			result.Added++
		}
		return result, nil

	default:
		return MergeResult[R]{}, fmt.Errorf("merge strategy %q: %w", strategy, ErrInvalidInput)
	}
}

func containsContent[R Record[R]](records []R, candidate R, equal func(a, b R) bool) bool {
	for _, record := range records {
		if equal(record, candidate) {
			return true
		}
	}
	return false
}
