package mailgun

// GetStatsParamList holds parameters for fetching aggregate stats.
type GetStatsParamList struct {
	values paramList
}

// NewGetStatsParamList returns a parameter list for GetStats requesting
// the accepted, delivered and failed event categories.
func NewGetStatsParamList() GetStatsParamList {
	return GetStatsParamList{values: paramList{
		stringParam{"event", "accepted"},
		stringParam{"event", "delivered"},
		stringParam{"event", "failed"},
	}}
}

// Duration sets a period of time with resolution encoded. If provided it
// overwrites the start date.
func (l GetStatsParamList) Duration(v string) GetStatsParamList {
	return GetStatsParamList{values: l.values.add(stringParam{"duration", v})}
}

// End sets the ending date, in RFC 2822 or unix epoch format
// (default: current time).
func (l GetStatsParamList) End(v string) GetStatsParamList {
	return GetStatsParamList{values: l.values.add(stringParam{"end", v})}
}

// Event adds an event type to aggregate.
func (l GetStatsParamList) Event(v string) GetStatsParamList {
	return GetStatsParamList{values: l.values.add(stringParam{"event", v})}
}

// Resolution sets the aggregation resolution: hour, day or month
// (default: day).
func (l GetStatsParamList) Resolution(v string) GetStatsParamList {
	return GetStatsParamList{values: l.values.add(stringParam{"resolution", v})}
}

// Start sets the starting time, in RFC 2822 or unix epoch format
// (default: 7 days before the current time).
func (l GetStatsParamList) Start(v string) GetStatsParamList {
	return GetStatsParamList{values: l.values.add(stringParam{"start", v})}
}

// GetStatsResponse is returned by the get stats endpoint.
type GetStatsResponse struct {
	End        string     `json:"end"`
	Resolution string     `json:"resolution"`
	Start      string     `json:"start"`
	Stats      []StatItem `json:"stats"`
}

// StatItem is a single aggregation bucket in GetStatsResponse.
type StatItem struct {
	Time      string        `json:"time"`
	Accepted  StatAccepted  `json:"accepted"`
	Delivered StatDelivered `json:"delivered"`
	Failed    StatFailed    `json:"failed"`
}

// StatAccepted counts accepted messages in a StatItem.
type StatAccepted struct {
	Outgoing int64 `json:"outgoing"`
	Incoming int64 `json:"incoming"`
	Total    int64 `json:"total"`
}

// StatDelivered counts delivered messages in a StatItem by transport.
type StatDelivered struct {
	SMTP  int64 `json:"smtp"`
	HTTP  int64 `json:"http"`
	Total int64 `json:"total"`
}

// StatFailed counts failed messages in a StatItem by severity.
type StatFailed struct {
	Permanent StatFailedPermanent `json:"permanent"`
	Temporary StatFailedTemporary `json:"temporary"`
}

// StatFailedPermanent breaks down permanent failures in a StatFailed.
type StatFailedPermanent struct {
	Bounce              int64 `json:"bounce"`
	DelayedBounce       int64 `json:"delayed-bounce"`
	SuppressBounce      int64 `json:"suppress-bounce"`
	SuppressUnsubscribe int64 `json:"suppress-unsubscribe"`
	SuppressComplaint   int64 `json:"suppress-complaint"`
	Total               int64 `json:"total"`
}

// StatFailedTemporary breaks down temporary failures in a StatFailed.
type StatFailedTemporary struct {
	Espblock int64 `json:"espblock"`
}
