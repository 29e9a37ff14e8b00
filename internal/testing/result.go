package testing

// TxResult represents the result of applying a transaction.
type TxResult struct {
	// Code is the engine result code (e.g. "tesSUCCESS").
	Code string

	// Success indicates the transaction was applied with full effect.
	Success bool

	// Applied indicates the sequence was consumed (tes and tec codes).
	Applied bool

	// Message provides additional details about the result.
	Message string

	// Hash identifies the transaction.
	Hash [32]byte
}
