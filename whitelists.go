package mailgun

// GetWhitelistsParamList holds parameters for listing whitelist records.
type GetWhitelistsParamList struct {
	values paramList
}

// NewGetWhitelistsParamList returns an empty parameter list for
// GetWhitelists.
func NewGetWhitelistsParamList() GetWhitelistsParamList {
	return GetWhitelistsParamList{}
}

// Limit sets the maximum number of records to return
// (default: 100, max: 10000). The limit is not validated client-side.
func (l GetWhitelistsParamList) Limit(n int) GetWhitelistsParamList {
	return GetWhitelistsParamList{values: l.values.add(intParam{"limit", n})}
}

// GetWhitelistsResponse is returned by the get whitelist records endpoint.
type GetWhitelistsResponse struct {
	Items  []WhitelistItem `json:"items"`
	Paging Paging          `json:"paging"`
}

// WhitelistItem is a single record in GetWhitelistsResponse. Unlike the
// other suppression endpoints, this one returns camel-cased keys.
type WhitelistItem struct {
	Value     string `json:"value"`
	Reason    string `json:"reason"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
}
