package dto

// TimeLayout is the wire format for user timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// MessageResp is the body of every error response and of delete
// confirmations.
type MessageResp struct {
	Message string `json:"message"`
}
