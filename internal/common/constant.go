package common

// RequestIDHeaderName carries the per-request correlation id on HTTP
// requests and responses.
const RequestIDHeaderName = "X-Request-ID"

// DemoImportLimit is the maximum number of records taken from the demo
// data source.
const DemoImportLimit = 10
