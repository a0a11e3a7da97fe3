package cqrs

// SendTransferCommand carries the raw user input for a transfer. PrivateKey is
// never logged unmasked and is discarded when the command completes.
type SendTransferCommand struct {
	PrivateKey     string
	Recipient      string
	AmountHbar     float64
	Memo           string
	IdempotencyKey string
}

// EstimateFeeCommand asks for a client-side fee approximation.
type EstimateFeeCommand struct {
	PrivateKey string
	AmountHbar float64
}
