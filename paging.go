package mailgun

// Paging holds the pagination URLs returned by list endpoints. Each field
// is a full absolute URL meant to be followed verbatim with Call; the
// client never inspects or rewrites them. First and Last are not returned
// by every endpoint and are empty when absent.
type Paging struct {
	First    string `json:"first"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Last     string `json:"last"`
}
