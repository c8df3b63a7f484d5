package model

// Session is one recorded timing session (practice, qualifying or race)
// of a race weekend. It is populated by the session loader and read-only
// afterwards; the processing code never mutates it.
type Session struct {
	Year      int    `json:"year"`
	EventName string `json:"eventName"`
	Name      string `json:"name"` // session name, e.g. "Q", "Race"
	// Laps holds all laps of the session in timing order.
	Laps []Lap `json:"laps"`
	// Teams maps driver code to team name for the weekend.
	Teams   map[string]string `json:"teams,omitempty"`
	Circuit *CircuitInfo      `json:"circuit,omitempty"`
}

// CircuitInfo is static circuit geometry used by clients to annotate
// speed traces.
type CircuitInfo struct {
	Corners  []Corner `json:"corners"`
	Rotation float64  `json:"rotation"`
}

type Corner struct {
	Number   int     `json:"number"`
	Distance float64 `json:"distance"` // meters from the start line
}

// SessionInfo is the identifying subset of a session passed through
// verbatim into responses.
type SessionInfo struct {
	Year    int    `json:"year"`
	GP      string `json:"gp"`
	Session string `json:"session"`
}

// SessionMetadata describes a loaded session to clients.
type SessionMetadata struct {
	Year        int      `json:"year"`
	GP          string   `json:"gp"`
	Session     string   `json:"session"`
	Drivers     []string `json:"drivers"`
	TotalLaps   int      `json:"total_laps"`
	SessionName string   `json:"session_name"`
	EventName   string   `json:"event_name"`
	Cached      bool     `json:"cached"`
}

func (s *Session) Info() SessionInfo {
	return SessionInfo{Year: s.Year, GP: s.EventName, Session: s.Name}
}
