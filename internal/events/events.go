package events

import "time"

// Event types
const (
	TransferSubmitted = "transfer.submitted"
	TransferCompleted = "transfer.completed"
)

// Stream names
const (
	TransferEventsStream = "transfer.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// TransferSubmittedEvent is published after a transfer reaches the network,
// before its receipt is known. It never carries key material.
type TransferSubmittedEvent struct {
	TransactionID string  `json:"transactionId"`
	Sender        string  `json:"sender"`
	Recipient     string  `json:"recipient"`
	Amount        float64 `json:"amount"`
	Network       string  `json:"network"`
}

// TransferCompletedEvent is published once the receipt reports a terminal
// status.
type TransferCompletedEvent struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Fee           float64 `json:"transactionFee"`
}
