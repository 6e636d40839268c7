package models

import "strconv"

// TxType represents the kind of a generated transaction
type TxType string

const (
	TypeDeposit TxType = "deposit"
)

// ClientModulus is the number of distinct client ids rows are spread over
const ClientModulus = 128

// DepositAmount is the amount carried by every generated row
const DepositAmount = 1

// Header is the fixed column order of the generated CSV
var Header = []string{"type", "client", "tx", "amount"}

// Row represents a single generated transaction record
type Row struct {
	Type   TxType
	Client int64
	Tx     int64
	Amount int64
}

// RowAt derives the row at the given zero-based index
func RowAt(i int64) Row {
	return Row{
		Type:   TypeDeposit,
		Client: i % ClientModulus,
		Tx:     i,
		Amount: DepositAmount,
	}
}

// Fields returns the row values in Header order
func (r Row) Fields() []string {
	return []string{
		string(r.Type),
		strconv.FormatInt(r.Client, 10),
		strconv.FormatInt(r.Tx, 10),
		strconv.FormatInt(r.Amount, 10),
	}
}
