package entity

type Table struct {
	Name string `json:"tableName"`
}

type TableSession struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"tableNumber"`
	StartTime   string `json:"sessionStartTime,omitempty"`
	EndTime     string `json:"sessionEndTime,omitempty"`
}

type StartedSession struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"tableNumber"`
	StartTime   string `json:"startTime"`
	Active      bool   `json:"active"`
}

type EndedSession struct {
	Message     string `json:"message"`
	TableNumber string `json:"tableNumber"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// SessionRef is the only state carried between the order, menu and receipt views.
type SessionRef struct {
	SessionID   int64  `json:"sessionId"`
	TableNumber string `json:"tableNumber"`
}

func (r SessionRef) Valid() bool {
	return r.SessionID > 0 && r.TableNumber != ""
}
