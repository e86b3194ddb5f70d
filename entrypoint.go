package depscan

// SignalKind classifies an individual piece of evidence an Entry Point
// carries. TestFile is the sole negative signal: its presence subtracts
// from the aggregate confidence and can disqualify the file outright.
type SignalKind string

const (
	SignalHTTPHandler    SignalKind = "http_handler"
	SignalMainFunction   SignalKind = "main_function"
	SignalCLICommand     SignalKind = "cli_command"
	SignalEventHandler   SignalKind = "event_handler"
	SignalServerInit     SignalKind = "server_init"
	SignalPackageExport  SignalKind = "package_export"
	SignalNoIncomingCall SignalKind = "no_incoming_calls"
	SignalTestFile       SignalKind = "test_file"
)

// Signal is one piece of evidence contributing to an Entry Point's
// confidence, retained verbatim so the consumer-facing rationale can be
// shown alongside a finding.
type Signal struct {
	Kind         SignalKind `json:"kind"`
	Rationale    string     `json:"rationale"`
	EvidenceSpan string     `json:"evidence_span,omitempty"`
	Confidence   float64    `json:"confidence"`
}

// EntryPoint is a call-graph node judged reachable from outside the
// project: an HTTP handler, a CLI command, a process main, an event
// subscriber.
type EntryPoint struct {
	Node       NodeID   `json:"node"`
	Signals    []Signal `json:"signals"`
	Confidence float64  `json:"confidence"`
}
