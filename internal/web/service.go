package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/render"
	"github.com/mmynk/tipsplit/internal/state"
)

// CalculateProcedure is the full Connect procedure name of Calculate.
const CalculateProcedure = "/tipsplit.v1.CalculatorService/Calculate"

// CalculateRequest carries the raw field values, exactly as a user typed
// them. Malformed values are normalized, never rejected.
type CalculateRequest struct {
	Bill   string `json:"bill"`
	Tip    string `json:"tip"` // "15", "18", "20", "25" or "custom"
	Custom string `json:"custom"`
	People string `json:"people"`
}

// FormattedTotals are the display strings of a CalculateResponse.
type FormattedTotals struct {
	TipAmount      string `json:"tipAmount"`
	TotalWithTip   string `json:"totalWithTip"`
	PerPersonTotal string `json:"perPersonTotal"`
	PerPersonTip   string `json:"perPersonTip"`
}

// CalculateResponse holds the unrounded totals and their display form.
type CalculateResponse struct {
	Bill           float64         `json:"bill"`
	TipPercent     float64         `json:"tipPercent"`
	People         int             `json:"people"`
	TipAmount      float64         `json:"tipAmount"`
	TotalWithTip   float64         `json:"totalWithTip"`
	PerPersonTotal float64         `json:"perPersonTotal"`
	PerPersonTip   float64         `json:"perPersonTip"`
	Formatted      FormattedTotals `json:"formatted"`
}

// CalculatorService implements the Connect CalculatorService.
type CalculatorService struct {
	metrics *metrics
}

// Calculate computes the totals for one set of inputs.
func (s *CalculatorService) Calculate(
	ctx context.Context,
	req *connect.Request[CalculateRequest],
) (*connect.Response[CalculateResponse], error) {
	in := inputFromRequest(req.Msg)
	totals := state.Totals(in)

	slog.Debug("Calculated totals",
		"people", in.People,
		"tip_mode", in.Tip.Mode.String(),
	)
	if s.metrics != nil {
		s.metrics.calculations.WithLabelValues("rpc").Inc()
	}

	return connect.NewResponse(&CalculateResponse{
		Bill:           state.Bill(in),
		TipPercent:     state.ActivePercent(in),
		People:         in.People,
		TipAmount:      totals.TipAmount,
		TotalWithTip:   totals.TotalWithTip,
		PerPersonTotal: totals.PerPersonTotal,
		PerPersonTip:   totals.PerPersonTip,
		Formatted: FormattedTotals{
			TipAmount:      render.Currency(totals.TipAmount),
			TotalWithTip:   render.Currency(totals.TotalWithTip),
			PerPersonTotal: render.Currency(totals.PerPersonTotal),
			PerPersonTip:   render.Currency(totals.PerPersonTip),
		},
	}), nil
}

// inputFromRequest normalizes req the same way the page normalizes its
// query string.
func inputFromRequest(req *CalculateRequest) models.Input {
	return state.FromValues(url.Values{
		state.ParamBill:   {req.Bill},
		state.ParamTip:    {req.Tip},
		state.ParamCustom: {req.Custom},
		state.ParamPeople: {req.People},
	})
}

// NewCalculatorServiceHandler returns the mux path and handler for svc.
func NewCalculatorServiceHandler(svc *CalculatorService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	return CalculateProcedure, connect.NewUnaryHandler(CalculateProcedure, svc.Calculate, opts...)
}

// NewCalculatorClient returns a client for the Calculate procedure served
// at baseURL.
func NewCalculatorClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *connect.Client[CalculateRequest, CalculateResponse] {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+CalculateProcedure, opts...)
}
