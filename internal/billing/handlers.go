package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medilinx/billing-engine/internal/common"
	"github.com/medilinx/billing-engine/internal/document"
	"github.com/medilinx/billing-engine/internal/obs"
	"github.com/medilinx/billing-engine/internal/tax"
	"github.com/medilinx/billing-engine/internal/words"
)

// Handler exposes the computation endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

// NewValidator builds a validator that understands decimal fields, so
// payload tags like gte=0 and lte=100 apply to money and rate values.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

type lineRequest struct {
	ID                 string           `json:"id,omitempty" validate:"omitempty,uuid"`
	UnitPrice          decimal.Decimal  `json:"unitPrice" validate:"gte=0"`
	RequestedQty       *decimal.Decimal `json:"requestedQty,omitempty" validate:"omitempty,gte=0"`
	PendingQty         *decimal.Decimal `json:"pendingQty,omitempty" validate:"omitempty,gte=0"`
	AvailableQty       *decimal.Decimal `json:"availableQty,omitempty" validate:"omitempty,gte=0"`
	CGSTPct            *decimal.Decimal `json:"cgstPct,omitempty" validate:"omitempty,gte=0,lte=100"`
	SGSTPct            *decimal.Decimal `json:"sgstPct,omitempty" validate:"omitempty,gte=0,lte=100"`
	IGSTPct            *decimal.Decimal `json:"igstPct,omitempty" validate:"omitempty,gte=0,lte=100"`
	CGSTAmount         *decimal.Decimal `json:"cgstAmount,omitempty" validate:"omitempty,gte=0"`
	SGSTAmount         *decimal.Decimal `json:"sgstAmount,omitempty" validate:"omitempty,gte=0"`
	IGSTAmount         *decimal.Decimal `json:"igstAmount,omitempty" validate:"omitempty,gte=0"`
	BillDiscountAmount *decimal.Decimal `json:"billDiscountAmount,omitempty" validate:"omitempty,gte=0"`
	SchemeDiscountPct  *decimal.Decimal `json:"schemeDiscountPct,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (p lineRequest) raw() tax.RawLine {
	return tax.RawLine{
		UnitPrice:          p.UnitPrice,
		RequestedQty:       p.RequestedQty,
		PendingQty:         p.PendingQty,
		AvailableQty:       p.AvailableQty,
		CGSTPct:            p.CGSTPct,
		SGSTPct:            p.SGSTPct,
		IGSTPct:            p.IGSTPct,
		CGSTAmount:         p.CGSTAmount,
		SGSTAmount:         p.SGSTAmount,
		IGSTAmount:         p.IGSTAmount,
		BillDiscountAmount: p.BillDiscountAmount,
		SchemeDiscountPct:  p.SchemeDiscountPct,
	}
}

type lineResponse struct {
	ID           string          `json:"id"`
	FinalQty     decimal.Decimal `json:"finalQty"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	CGSTAmount   decimal.Decimal `json:"cgstAmount"`
	SGSTAmount   decimal.Decimal `json:"sgstAmount"`
	IGSTAmount   decimal.Decimal `json:"igstAmount"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	CGSTRate     decimal.Decimal `json:"cgstRate"`
	SGSTRate     decimal.Decimal `json:"sgstRate"`
	IGSTRate     decimal.Decimal `json:"igstRate"`
}

func toLineResponse(id string, line tax.ResolvedLineItem) lineResponse {
	if id == "" {
		id = uuid.NewString()
	}
	return lineResponse{
		ID:           id,
		FinalQty:     line.FinalQty,
		TaxableValue: tax.Round2(line.TaxableValue),
		CGSTAmount:   tax.Round2(line.CGSTAmount),
		SGSTAmount:   tax.Round2(line.SGSTAmount),
		IGSTAmount:   tax.Round2(line.IGSTAmount),
		NetAmount:    tax.Round2(line.NetAmount),
		CGSTRate:     tax.Round2(line.CGSTRate),
		SGSTRate:     tax.Round2(line.SGSTRate),
		IGSTRate:     tax.Round2(line.IGSTRate),
	}
}

type totalsResponse struct {
	TaxableValue      decimal.Decimal `json:"totalTaxableValue"`
	CGSTAmount        decimal.Decimal `json:"totalCgstAmount"`
	SGSTAmount        decimal.Decimal `json:"totalSgstAmount"`
	IGSTAmount        decimal.Decimal `json:"totalIgstAmount"`
	NetAmount         decimal.Decimal `json:"totalNetAmount"`
	EffectiveCGSTRate decimal.Decimal `json:"effectiveCgstRate"`
	EffectiveSGSTRate decimal.Decimal `json:"effectiveSgstRate"`
	EffectiveIGSTRate decimal.Decimal `json:"effectiveIgstRate"`
}

func toTotalsResponse(t document.Totals) totalsResponse {
	return totalsResponse{
		TaxableValue:      tax.Round2(t.TaxableValue),
		CGSTAmount:        tax.Round2(t.CGSTAmount),
		SGSTAmount:        tax.Round2(t.SGSTAmount),
		IGSTAmount:        tax.Round2(t.IGSTAmount),
		NetAmount:         tax.Round2(t.NetAmount),
		EffectiveCGSTRate: tax.Round2(t.EffectiveCGSTRate),
		EffectiveSGSTRate: tax.Round2(t.EffectiveSGSTRate),
		EffectiveIGSTRate: tax.Round2(t.EffectiveIGSTRate),
	}
}

type documentRequest struct {
	Lines []lineRequest `json:"lines" validate:"dive"`
}

type documentResponse struct {
	Lines         []lineResponse `json:"lines"`
	Totals        totalsResponse `json:"totals"`
	AmountInWords string         `json:"amountInWords,omitempty"`
	Submission    []lineResponse `json:"submission"`
}

type resolvedLineRequest struct {
	FinalQty     decimal.Decimal `json:"finalQty" validate:"gte=0"`
	TaxableValue decimal.Decimal `json:"taxableValue" validate:"gte=0"`
	CGSTAmount   decimal.Decimal `json:"cgstAmount" validate:"gte=0"`
	SGSTAmount   decimal.Decimal `json:"sgstAmount" validate:"gte=0"`
	IGSTAmount   decimal.Decimal `json:"igstAmount" validate:"gte=0"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	CGSTRate     decimal.Decimal `json:"cgstRate" validate:"gte=0"`
	SGSTRate     decimal.Decimal `json:"sgstRate" validate:"gte=0"`
	IGSTRate     decimal.Decimal `json:"igstRate" validate:"gte=0"`
}

type totalsRequest struct {
	Lines []resolvedLineRequest `json:"lines" validate:"dive"`
}

type wordsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type wordsResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Words  string          `json:"words"`
}

// ComputeLine resolves a single raw line.
func (h *Handler) ComputeLine(w http.ResponseWriter, r *http.Request) {
	var payload lineRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid line item", err.Error())
		return
	}
	line, err := h.Svc.ComputeLine(payload.raw())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": toLineResponse(payload.ID, line)})
}

// ComputeDocument resolves raw lines, aggregates totals and renders the
// amount in words in one pass.
func (h *Handler) ComputeDocument(w http.ResponseWriter, r *http.Request) {
	var payload documentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid document", err.Error())
		return
	}

	raws := make([]tax.RawLine, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		raws = append(raws, line.raw())
	}
	result, err := h.Svc.ComputeDocument(raws)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := documentResponse{
		Lines:         make([]lineResponse, 0, len(result.Lines)),
		Totals:        toTotalsResponse(result.Totals),
		AmountInWords: result.AmountInWords,
		Submission:    make([]lineResponse, 0, len(result.Submission)),
	}
	for i, line := range result.Lines {
		resp.Lines = append(resp.Lines, toLineResponse(payload.Lines[i].ID, line))
	}
	for _, i := range result.Submission {
		resp.Submission = append(resp.Submission, resp.Lines[i])
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": resp})
}

// Totals aggregates already-resolved lines.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	var payload totalsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid lines", err.Error())
		return
	}

	lines := make([]tax.ResolvedLineItem, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		lines = append(lines, tax.ResolvedLineItem{
			FinalQty:     l.FinalQty,
			TaxableValue: l.TaxableValue,
			CGSTAmount:   l.CGSTAmount,
			SGSTAmount:   l.SGSTAmount,
			IGSTAmount:   l.IGSTAmount,
			NetAmount:    l.NetAmount,
			CGSTRate:     l.CGSTRate,
			SGSTRate:     l.SGSTRate,
			IGSTRate:     l.IGSTRate,
		})
	}
	totals := h.Svc.AggregateResolved(lines)
	common.JSON(w, http.StatusOK, map[string]any{"data": toTotalsResponse(totals)})
}

// AmountInWords renders a standalone amount as its printed phrase.
func (h *Handler) AmountInWords(w http.ResponseWriter, r *http.Request) {
	var payload wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	phrase, err := words.ToIndianWords(payload.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if obs.WordsRenderedTotal != nil {
		obs.WordsRenderedTotal.Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": wordsResponse{Amount: payload.Amount, Words: phrase}})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tax.ErrInvalidRate):
		common.JSONError(w, http.StatusBadRequest, "INVALID_RATE", err.Error(), nil)
	case errors.Is(err, tax.ErrInvalidQuantity):
		common.JSONError(w, http.StatusBadRequest, "INVALID_QUANTITY", err.Error(), nil)
	case errors.Is(err, tax.ErrInvalidAmount), errors.Is(err, words.ErrInvalidAmount):
		common.JSONError(w, http.StatusBadRequest, "INVALID_AMOUNT", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "computation failed", nil)
	}
}
