package models

type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	CampusID  string `json:"campus_id"`
	Role      string `json:"role"`
}
