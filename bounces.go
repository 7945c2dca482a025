package mailgun

// GetBouncesParamList holds parameters for listing bounce records.
type GetBouncesParamList struct {
	values paramList
}

// NewGetBouncesParamList returns an empty parameter list for GetBounces.
func NewGetBouncesParamList() GetBouncesParamList {
	return GetBouncesParamList{}
}

// Limit sets the maximum number of records to return
// (default: 100, max: 10000). The limit is not validated client-side.
func (l GetBouncesParamList) Limit(n int) GetBouncesParamList {
	return GetBouncesParamList{values: l.values.add(intParam{"limit", n})}
}

// GetBouncesResponse is returned by the get bounces endpoint.
type GetBouncesResponse struct {
	Items  []BounceItem `json:"items"`
	Paging Paging       `json:"paging"`
}

// BounceItem is a single record in GetBouncesResponse.
type BounceItem struct {
	Address   string `json:"address"`
	Code      string `json:"code"`
	Error     string `json:"error"`
	CreatedAt string `json:"created_at"`
}
