package models

import "encoding/json"

// Exchange holds listing metadata. Optional fields stay nil when the API
// omits them, sends null, or sends a value of the wrong type.
type Exchange struct {
	Name            string  `json:"name"`
	Country         *string `json:"country"`
	YearEstablished *int    `json:"year_established"`
	TrustScoreRank  *int    `json:"trust_score_rank"`
}

func (e *Exchange) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name            string          `json:"name"`
		Country         json.RawMessage `json:"country"`
		YearEstablished json.RawMessage `json:"year_established"`
		TrustScoreRank  json.RawMessage `json:"trust_score_rank"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Exchange{
		Name:            raw.Name,
		Country:         optional[string](raw.Country),
		YearEstablished: optional[int](raw.YearEstablished),
		TrustScoreRank:  optional[int](raw.TrustScoreRank),
	}
	return nil
}

func optional[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapPoint struct {
	Name string `json:"name"`
	Coordinates
}
