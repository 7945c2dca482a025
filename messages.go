package mailgun

// SendMessageParamList holds parameters for sending a message.
//
// The client does not enforce rules on message composition, but you should
// almost always set Subject, To, From and Text and/or HTML.
type SendMessageParamList struct {
	values paramList
}

// NewSendMessageParamList returns an empty parameter list for SendMessage.
func NewSendMessageParamList() SendMessageParamList {
	return SendMessageParamList{}
}

// From sets the email address for the From header.
func (l SendMessageParamList) From(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"from", v})}
}

// To adds recipient email address(es), e.g. "Bob <bob@host.com>". Commas
// separate multiple recipients within one value; To may also be added
// multiple times.
func (l SendMessageParamList) To(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"to", v})}
}

// Cc is the same as To but for the Cc header.
func (l SendMessageParamList) Cc(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"cc", v})}
}

// Bcc is the same as To but for the Bcc header.
func (l SendMessageParamList) Bcc(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"bcc", v})}
}

// Subject sets the message subject.
func (l SendMessageParamList) Subject(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"subject", v})}
}

// Text sets the text version of the message body.
func (l SendMessageParamList) Text(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"text", v})}
}

// HTML sets the HTML version of the message body.
func (l SendMessageParamList) HTML(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"html", v})}
}

// AMPHTML sets the AMP part of the message. Follow Google's guidelines to
// compose and send AMP emails.
func (l SendMessageParamList) AMPHTML(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"amp-html", v})}
}

// Attachment adds a file attachment reference. Multiple attachment values
// may be posted. Multipart encoding of attachment contents is not
// implemented; the value passes through as-is.
func (l SendMessageParamList) Attachment(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"attachment", v})}
}

// Inline adds an attachment with inline disposition, e.g. an inline image.
// Multiple inline values may be posted.
func (l SendMessageParamList) Inline(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"inline", v})}
}

// Template sets the name of a template stored via the template API.
func (l SendMessageParamList) Template(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"template", v})}
}

// TVersion sends the message with a specific version of a template.
func (l SendMessageParamList) TVersion(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"t:version", v})}
}

// TText, when set to "yes", renders the template in the text part of the
// message in case of template sending.
func (l SendMessageParamList) TText(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"t:text", v})}
}

// OTag attaches a tag string to the message.
func (l SendMessageParamList) OTag(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"o:tag", v})}
}

// ODKIM enables or disables DKIM signatures on a per-message basis.
func (l SendMessageParamList) ODKIM(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(yesNoParam{"o:dkim", v})}
}

// ODeliveryTime sets the desired time of delivery. Messages can be
// scheduled at most 3 days in the future.
func (l SendMessageParamList) ODeliveryTime(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"o:delivery-time", v})}
}

// ODeliveryTimeOptimizePeriod toggles Send Time Optimization on a
// per-message basis. The value is a number of hours in "[0-9]+h" format,
// between 24h and 72h.
func (l SendMessageParamList) ODeliveryTimeOptimizePeriod(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"o:delivery-time-optimize-period", v})}
}

// OTimeZoneLocalize toggles Timezone Optimization on a per-message basis.
// The value is a preferred delivery time in "HH:mm" or "hh:mmaa" format.
func (l SendMessageParamList) OTimeZoneLocalize(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"o:time-zone-localize", v})}
}

// OTestMode enables sending in test mode.
func (l SendMessageParamList) OTestMode(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(yesNoParam{"o:testmode", v})}
}

// OTracking toggles tracking on a per-message basis.
func (l SendMessageParamList) OTracking(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(boolParam{"o:tracking", v})}
}

// OTrackingClicks toggles clicks tracking on a per-message basis, taking
// priority over the domain-level setting. Pass "yes", "no", "true",
// "false" or "htmlonly".
func (l SendMessageParamList) OTrackingClicks(v string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"o:tracking-clicks", v})}
}

// OTrackingOpens toggles opens tracking on a per-message basis, taking
// priority over the domain-level setting.
func (l SendMessageParamList) OTrackingOpens(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(yesNoParam{"o:tracking-open", v})}
}

// ORequireTLS, when true, sends the message only over a TLS connection and
// fails the send if one cannot be established. When false, the service
// tries to upgrade the connection but still delivers over plaintext SMTP
// on failure.
func (l SendMessageParamList) ORequireTLS(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(yesNoParam{"o:require-tls", v})}
}

// OSkipVerification, when true, skips certificate and hostname
// verification when establishing a TLS connection.
func (l SendMessageParamList) OSkipVerification(v bool) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(yesNoParam{"o:skip-verification", v})}
}

// CustomHeader adds a custom MIME header ("h:" prefixed) to the message.
func (l SendMessageParamList) CustomHeader(key, value string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"h:" + key, value})}
}

// CustomVariable attaches custom JSON data ("v:" prefixed) to the message.
func (l SendMessageParamList) CustomVariable(key, value string) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(stringParam{"v:" + key, value})}
}

// RecipientVariables attaches JSON data that can be referenced in the
// message body. Each key should be a plain recipient address and each
// value a map of substitutions. The value is JSON-encoded at render time;
// rendering fails with a *ParamError if it cannot be encoded.
func (l SendMessageParamList) RecipientVariables(v any) SendMessageParamList {
	return SendMessageParamList{values: l.values.add(jsonParam{"recipient-variables", v})}
}

// SendMessageResponse is returned by the send message endpoint.
type SendMessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
