// Package billing exposes the tax, aggregation and amount-in-words
// engines to the document rendering clients over HTTP.
package billing

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/medilinx/billing-engine/internal/document"
	"github.com/medilinx/billing-engine/internal/obs"
	"github.com/medilinx/billing-engine/internal/tax"
	"github.com/medilinx/billing-engine/internal/words"
)

// Service orchestrates normalize, compute, aggregate and words for a
// document render. It is stateless; every call works on its own input
// snapshot.
type Service struct {
	Engine tax.Engine
	Log    zerolog.Logger
}

// DocumentResult is the fully resolved view of one document.
type DocumentResult struct {
	Lines         []tax.ResolvedLineItem
	Totals        document.Totals
	AmountInWords string
	// Submission holds the indexes into Lines of the entries eligible
	// for an order-submission payload (resolved quantity > 0).
	Submission []int
}

// ComputeLine normalizes and computes a single raw line.
func (s *Service) ComputeLine(raw tax.RawLine) (tax.ResolvedLineItem, error) {
	in, err := tax.Normalize(raw)
	if err != nil {
		return tax.ResolvedLineItem{}, err
	}
	line := s.Engine.ComputeLine(in)
	if obs.LinesComputedTotal != nil {
		obs.LinesComputedTotal.Inc()
	}
	return line, nil
}

// ComputeDocument resolves every raw line, aggregates the totals and
// renders the net total in words. A document whose net amount is
// negative (an un-clamped credit) is returned without a words phrase.
func (s *Service) ComputeDocument(raws []tax.RawLine) (DocumentResult, error) {
	lines := make([]tax.ResolvedLineItem, 0, len(raws))
	for _, raw := range raws {
		line, err := s.ComputeLine(raw)
		if err != nil {
			return DocumentResult{}, err
		}
		lines = append(lines, line)
	}

	totals := document.Aggregate(lines)

	phrase, err := words.ToIndianWords(tax.Round2(totals.NetAmount))
	if err != nil {
		if !errors.Is(err, words.ErrInvalidAmount) {
			return DocumentResult{}, err
		}
		if obs.NegativeNetTotal != nil {
			obs.NegativeNetTotal.Inc()
		}
		s.Log.Warn().
			Str("net_amount", totals.NetAmount.String()).
			Msg("document net amount is negative, skipping amount in words")
		phrase = ""
	}

	if obs.DocumentsComputedTotal != nil {
		obs.DocumentsComputedTotal.Inc()
	}
	return DocumentResult{
		Lines:         lines,
		Totals:        totals,
		AmountInWords: phrase,
		Submission:    document.Submittable(lines),
	}, nil
}

// AggregateResolved folds already-resolved lines into document totals.
func (s *Service) AggregateResolved(lines []tax.ResolvedLineItem) document.Totals {
	if obs.DocumentsComputedTotal != nil {
		obs.DocumentsComputedTotal.Inc()
	}
	return document.Aggregate(lines)
}
