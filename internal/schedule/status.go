package schedule

// Status is the lifecycle state of a task record.
type Status string

const (
	StatusFinished Status = "finished"
	StatusNotDone  Status = "not_done"
	StatusStopped  Status = "stopped"
	StatusFuture   Status = "future"
	StatusUnknown  Status = "unknown"
)

// ParseStatus maps raw input onto the closed status set. Anything unrecognized
// becomes StatusUnknown.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusFinished, StatusNotDone, StatusStopped, StatusFuture:
		return Status(raw)
	default:
		return StatusUnknown
	}
}

// UnmarshalText normalizes decoded statuses.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}

// Tier is the display colour category derived from a status.
type Tier uint8

const (
	TierNeutral Tier = iota
	TierSuccess
	TierDanger
	TierWarning
	TierInfo
)

func (t Tier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierDanger:
		return "danger"
	case TierWarning:
		return "warning"
	case TierInfo:
		return "info"
	default:
		return "neutral"
	}
}

// MarshalText renders the tier name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name. Unknown names decode as TierNeutral.
func (t *Tier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "success":
		*t = TierSuccess
	case "danger":
		*t = TierDanger
	case "warning":
		*t = TierWarning
	case "info":
		*t = TierInfo
	default:
		*t = TierNeutral
	}
	return nil
}

// ColorFor maps any status, known or not, to its tier.
func ColorFor(status Status) Tier {
	switch status {
	case StatusFinished:
		return TierSuccess
	case StatusNotDone:
		return TierDanger
	case StatusStopped:
		return TierWarning
	case StatusFuture:
		return TierInfo
	default:
		return TierNeutral
	}
}
