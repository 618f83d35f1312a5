package starkscan

import (
	"fmt"
)

// DataClientError reports a failed or malformed response from the indexer.
type DataClientError struct {
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DataClientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch transactions from %s: HTTP %d: %s", e.URL, e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("fetch transactions from %s: %v", e.URL, e.Err)
}

func (e *DataClientError) Unwrap() error {
	return e.Err
}
