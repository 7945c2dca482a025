package mailgun

import (
	"encoding/json"
	"strconv"
)

// Param is a single request parameter that renders to a query key/value
// pair. Only parameters carrying arbitrary JSON values can fail to render;
// every other kind always returns a nil error.
type Param interface {
	Render() (key, value string, err error)
}

// stringParam is a plain string-valued parameter.
type stringParam struct {
	key   string
	value string
}

func (p stringParam) Render() (string, string, error) {
	return p.key, p.value, nil
}

// intParam is an integer-valued parameter.
type intParam struct {
	key   string
	value int
}

func (p intParam) Render() (string, string, error) {
	return p.key, strconv.Itoa(p.value), nil
}

// boolParam renders its value as "true" or "false".
type boolParam struct {
	key   string
	value bool
}

func (p boolParam) Render() (string, string, error) {
	return p.key, strconv.FormatBool(p.value), nil
}

// yesNoParam renders its value as the literal tokens "yes" or "no". The
// service requires these tokens for certain toggles; yesNoParam is not
// interchangeable with boolParam.
type yesNoParam struct {
	key   string
	value bool
}

func (p yesNoParam) Render() (string, string, error) {
	if p.value {
		return p.key, "yes", nil
	}
	return p.key, "no", nil
}

// jsonParam carries an arbitrary structured value transmitted as a single
// JSON-encoded string. This is the only parameter kind whose rendering
// can fail.
type jsonParam struct {
	key   string
	value any
}

func (p jsonParam) Render() (string, string, error) {
	data, err := json.Marshal(p.value)
	if err != nil {
		return "", "", &ParamError{Key: p.key, Err: err}
	}
	return p.key, string(data), nil
}

// paramList is the ordered backing store shared by the per-endpoint
// parameter lists. add copies before appending so an extended list never
// aliases the list it was built from.
type paramList []Param

func (l paramList) add(p Param) paramList {
	out := make(paramList, len(l), len(l)+1)
	copy(out, l)
	return append(out, p)
}
