package mailgun

// GetUnsubscribesParamList holds parameters for listing unsubscribe
// records.
type GetUnsubscribesParamList struct {
	values paramList
}

// NewGetUnsubscribesParamList returns an empty parameter list for
// GetUnsubscribes.
func NewGetUnsubscribesParamList() GetUnsubscribesParamList {
	return GetUnsubscribesParamList{}
}

// Limit sets the maximum number of records to return
// (default: 100, max: 10000). The limit is not validated client-side.
func (l GetUnsubscribesParamList) Limit(n int) GetUnsubscribesParamList {
	return GetUnsubscribesParamList{values: l.values.add(intParam{"limit", n})}
}

// GetUnsubscribesResponse is returned by the get unsubscribes endpoint.
type GetUnsubscribesResponse struct {
	Items  []UnsubscribeItem `json:"items"`
	Paging Paging            `json:"paging"`
}

// UnsubscribeItem is a single record in GetUnsubscribesResponse.
type UnsubscribeItem struct {
	Address   string `json:"address"`
	Tag       string `json:"tag"`
	CreatedAt string `json:"created_at"`
}
