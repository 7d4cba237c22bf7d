package constant

import "time"

const QUERY_TIMEOUT_DURATION = 10 * time.Second

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)
