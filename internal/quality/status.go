package quality

// MetricStatus is the ordinal severity of one analysis channel before
// aggregation. The ordering is strict: StatusSuccess < StatusWarning <
// StatusError. StatusUnset means the metric was not evaluated for this file
// and must not participate in aggregation.
type MetricStatus int

const (
	StatusUnset MetricStatus = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// String surfaces the wire form consumed by reporting layers. StatusUnset is
// the empty string so badge renderers can skip it naturally.
func (s MetricStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

// Worst reduces statuses by worst-status-wins, ignoring StatusUnset entries.
// An empty or all-unset input reduces to StatusUnset.
func Worst(statuses ...MetricStatus) MetricStatus {
	worst := StatusUnset
	for _, status := range statuses {
		if status > worst {
			worst = status
		}
	}
	return worst
}

// Verdict is the single overall outcome for one file.
type Verdict string

const (
	VerdictPass    Verdict = "pass"
	VerdictWarning Verdict = "warning"
	VerdictFail    Verdict = "fail"
	// VerdictError is reserved for files the analyzer could not read or
	// decode; metric-level errors map to VerdictFail instead.
	VerdictError Verdict = "error"
)
