package state

import (
	"net/url"
	"strconv"

	"github.com/mmynk/tipsplit/internal/models"
)

// Query parameter names used by the browser host.
const (
	ParamBill   = "bill"
	ParamTip    = "tip"
	ParamCustom = "custom"
	ParamPeople = "people"
)

// TipCustomValue is the ParamTip value that selects the custom field.
const TipCustomValue = "custom"

// FromValues rebuilds an Input from query parameters by replaying the
// matching actions over a fresh session. Missing or malformed values keep
// their defaults; no error is reported.
func FromValues(v url.Values) models.Input {
	in := models.NewInput()
	actions := []Action{
		SetBill{Text: v.Get(ParamBill)},
		SetCustomTip{Text: v.Get(ParamCustom)},
		SetPeople{Count: ParsePeople(v.Get(ParamPeople))},
	}

	switch tip := v.Get(ParamTip); tip {
	case "":
	case TipCustomValue:
		actions = append(actions, SelectCustom{})
	default:
		if pct, err := strconv.ParseFloat(tip, 64); err == nil {
			actions = append(actions, SelectPreset{Percent: pct})
		}
	}

	for _, a := range actions {
		// Unknown presets leave the default in place.
		if next, err := Reduce(in, a); err == nil {
			in = next
		}
	}
	return in
}

// Values encodes in as query parameters understood by FromValues.
// Empty text fields are omitted.
func Values(in models.Input) url.Values {
	v := url.Values{}
	if in.BillText != "" {
		v.Set(ParamBill, in.BillText)
	}
	if in.Tip.CustomText != "" {
		v.Set(ParamCustom, in.Tip.CustomText)
	}
	if in.Tip.Mode == models.TipCustom {
		v.Set(ParamTip, TipCustomValue)
	} else {
		v.Set(ParamTip, strconv.FormatFloat(in.Tip.Preset, 'f', -1, 64))
	}
	v.Set(ParamPeople, strconv.Itoa(in.People))
	return v
}
