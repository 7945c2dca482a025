package mailgun

// GetComplaintsParamList holds parameters for listing complaint records.
type GetComplaintsParamList struct {
	values paramList
}

// NewGetComplaintsParamList returns an empty parameter list for
// GetComplaints.
func NewGetComplaintsParamList() GetComplaintsParamList {
	return GetComplaintsParamList{}
}

// Limit sets the maximum number of records to return
// (default: 100, max: 10000). The limit is not validated client-side.
func (l GetComplaintsParamList) Limit(n int) GetComplaintsParamList {
	return GetComplaintsParamList{values: l.values.add(intParam{"limit", n})}
}

// GetComplaintsResponse is returned by the get complaints endpoint.
type GetComplaintsResponse struct {
	Items  []ComplaintItem `json:"items"`
	Paging Paging          `json:"paging"`
}

// ComplaintItem is a single record in GetComplaintsResponse.
type ComplaintItem struct {
	Address   string `json:"address"`
	Tag       string `json:"tag"`
	CreatedAt string `json:"created_at"`
}
