package key

type DepsKey string

const (
	Env     DepsKey = "env"
	Sink    DepsKey = "sink"
	Printer DepsKey = "printer"
	Time    DepsKey = "time"
	Term    DepsKey = "term"
	Timeout DepsKey = "timeout"
)
