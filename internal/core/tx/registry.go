package tx

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"
)

// ErrUnknownTransactionType is returned when a transaction type is unknown
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// Factory creates an empty transaction of a concrete type, ready for
// JSON unmarshaling.
type Factory func() Transaction

var (
	registryMu sync.RWMutex
	registry   = make(map[Type]Factory)
)

// Register registers a factory for a transaction type. Transactor packages
// call this from init(); importing internal/core/tx/all pulls them all in.
func Register(txType Type, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[txType] = factory
}

// NewFromType creates a new empty transaction of the given type
func NewFromType(txType Type) (Transaction, error) {
	registryMu.RLock()
	factory, ok := registry[txType]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownTransactionType
	}
	return factory(), nil
}

// FromJSON creates a Transaction from a JSON object
func FromJSON(data []byte) (Transaction, error) {
	// First pass: just the TransactionType
	var raw struct {
		TransactionType string `json:"TransactionType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	txType := TypeFromString(raw.TransactionType)
	if txType == TypeUnknown {
		return nil, ErrUnknownTransactionType
	}

	txn, err := NewFromType(txType)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// ToJSON converts a Transaction to JSON
func ToJSON(txn Transaction) ([]byte, error) {
	return json.Marshal(txn)
}

// SupportedTypes returns all registered transaction types, sorted.
func SupportedTypes() []Type {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
