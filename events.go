package mailgun

// GetEventsParamList holds parameters for listing delivery events.
type GetEventsParamList struct {
	values paramList
}

// NewGetEventsParamList returns a parameter list for GetEvents with JSON
// pretty-printing disabled.
func NewGetEventsParamList() GetEventsParamList {
	return GetEventsParamList{values: paramList{boolParam{"pretty", false}}}
}

// Pretty toggles pretty-printing of the result JSON.
func (l GetEventsParamList) Pretty(v bool) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(boolParam{"pretty", v})}
}

// Begin sets the beginning of the search time range.
func (l GetEventsParamList) Begin(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"begin", v})}
}

// End sets the end of the search time range.
func (l GetEventsParamList) End(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"end", v})}
}

// Ascending defines the direction of the search time range and must be
// provided if the range end time is not specified.
func (l GetEventsParamList) Ascending(v bool) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(yesNoParam{"ascending", v})}
}

// Limit sets the number of entries to return (300 max). The limit is not
// validated client-side.
func (l GetEventsParamList) Limit(n int) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(intParam{"limit", n})}
}

// Event filters by event type.
func (l GetEventsParamList) Event(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"event", v})}
}

// List filters by the email address of a mailing list the message was
// originally sent to.
func (l GetEventsParamList) List(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"list", v})}
}

// Attachment filters by the name of an attached file.
func (l GetEventsParamList) Attachment(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"attachment", v})}
}

// From filters by an email address mentioned in the From MIME header.
func (l GetEventsParamList) From(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"from", v})}
}

// MessageID filters by a Mailgun message id returned by the messages API.
func (l GetEventsParamList) MessageID(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"message_id", v})}
}

// Subject filters by subject line.
func (l GetEventsParamList) Subject(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"subject", v})}
}

// To filters by an email address mentioned in the To MIME header.
func (l GetEventsParamList) To(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"to", v})}
}

// Size filters by message size.
func (l GetEventsParamList) Size(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"size", v})}
}

// Recipient filters by the email address of a particular recipient. While
// messages are addressable to one or more recipients, each event (with
// one exception) tracks one recipient.
func (l GetEventsParamList) Recipient(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"recipient", v})}
}

// Recipients filters stored events by the full set of potential message
// recipients.
func (l GetEventsParamList) Recipients(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"recipients", v})}
}

// Tags filters by user defined tags.
func (l GetEventsParamList) Tags(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"tags", v})}
}

// Severity filters failed events by "temporary" or "permanent".
func (l GetEventsParamList) Severity(v string) GetEventsParamList {
	return GetEventsParamList{values: l.values.add(stringParam{"severity", v})}
}

// GetEventsResponse is returned by the get events endpoint.
type GetEventsResponse struct {
	Items  []EventItem `json:"items"`
	Paging Paging      `json:"paging"`
}

// EventItem is a single record in GetEventsResponse. Most blocks are only
// present for certain event types, so they decode into pointers; absent
// stays distinguishable from zero.
type EventItem struct {
	Event           string               `json:"event"`
	ID              string               `json:"id"`
	Timestamp       float64              `json:"timestamp"`
	LogLevel        *string              `json:"log-level"`
	Method          *string              `json:"method"`
	Severity        *string              `json:"severity"`
	Envelope        *EventEnvelope       `json:"envelope"`
	Flags           *EventFlags          `json:"flags"`
	Reject          *EventReject         `json:"reject"`
	DeliveryStatus  *EventDeliveryStatus `json:"delivery-status"`
	Message         EventMessage         `json:"message"`
	Storage         *EventStorage        `json:"storage"`
	Recipient       string               `json:"recipient"`
	RecipientDomain *string              `json:"recipient-domain"`
	Geolocation     *EventGeolocation    `json:"geolocation"`
	Tags            []string             `json:"tags"`
	IP              *string              `json:"ip"`
	ClientInfo      *EventClientInfo     `json:"client-info"`
}

// EventEnvelope describes the SMTP envelope of an event.
type EventEnvelope struct {
	Targets   string `json:"targets"`
	Transport string `json:"transport"`
	Sender    string `json:"sender"`
}

// EventFlags holds the delivery flags of an event.
type EventFlags struct {
	IsAuthenticated *bool `json:"is-authenticated"`
	IsDelayedBounce *bool `json:"is-delayed-bounce"`
	IsRouted        *bool `json:"is-routed"`
	IsSystemTest    *bool `json:"is-system-test"`
	IsTestMode      *bool `json:"is-test-mode"`
}

// EventReject carries the rejection reason of a rejected event.
type EventReject struct {
	Reason      *string `json:"reason"`
	Description *string `json:"description"`
}

// EventDeliveryStatus describes the SMTP delivery outcome of an event.
type EventDeliveryStatus struct {
	TLS                 *bool    `json:"tls"`
	MxHost              *string  `json:"mx-host"`
	Code                *int64   `json:"code"`
	Description         *string  `json:"description"`
	SessionSeconds      *float64 `json:"session-seconds"`
	UTF8                *bool    `json:"utf8"`
	AttemptNo           *int     `json:"attempt-no"`
	Message             *string  `json:"message"`
	CertificateVerified *bool    `json:"certificate-verified"`
}

// EventMessage describes the message an event refers to.
type EventMessage struct {
	Headers     *EventMessageHeader      `json:"headers"`
	Attachments []EventMessageAttachment `json:"attachments"`
	Recipients  []string                 `json:"recipients"`
	Size        *int64                   `json:"size"`
}

// EventMessageHeader holds selected MIME headers of an event's message.
type EventMessageHeader struct {
	To        *string `json:"to"`
	MessageID *string `json:"message-id"`
	From      *string `json:"from"`
	Subject   *string `json:"subject"`
}

// EventMessageAttachment describes one attachment of an event's message.
type EventMessageAttachment struct {
	Size        *int64  `json:"size"`
	ContentType *string `json:"content-type"`
	Filename    *string `json:"filename"`
}

// EventStorage points at the stored copy of an event's message.
type EventStorage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// EventGeolocation holds the geolocation resolved for an event's client IP.
type EventGeolocation struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

// EventClientInfo describes the client that triggered an engagement event.
type EventClientInfo struct {
	ClientType *string `json:"client-type"`
	ClientOS   *string `json:"client-os"`
	DeviceType *string `json:"device-type"`
	ClientName *string `json:"client-name"`
	UserAgent  *string `json:"user-agent"`
}
