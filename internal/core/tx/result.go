package tx

import "fmt"

// Result represents a transaction result code
type Result int

// Transaction result codes, organized by category: tes, tec, tef, tem, ter
const (
	// tesSUCCESS (0-99)
	TesSUCCESS Result = 0

	// tec codes (100-199)
	// Transaction was well-formed and the sequence was consumed, but the
	// vault state rejected it. No effects beyond the sequence bump.
	TecWRONG_STATE         Result = 100
	TecNO_PERMISSION       Result = 101
	TecBELOW_RESERVE       Result = 102
	TecQUORUM_NOT_MET      Result = 103
	TecPRICE_DEVIATION     Result = 104
	TecBID_TOO_LOW         Result = 105
	TecTOO_SOON            Result = 106
	TecEXPIRED             Result = 107
	TecINSUFFICIENT_FUNDS  Result = 108
	TecINSUFFICIENT_SHARES Result = 109
	TecNOT_FULL_SUPPLY     Result = 110
	TecOUT_OF_BOUNDS       Result = 111
	TecNO_DST              Result = 112
	TecREDUNDANT           Result = 113

	// tef codes (-199 to -100)
	// Transaction failed inside the engine, not applied
	TefFAILURE  Result = -199
	TefINTERNAL Result = -198
	TefPAST_SEQ Result = -197

	// tem codes (-299 to -200)
	// Malformed transaction
	TemMALFORMED    Result = -299
	TemBAD_AMOUNT   Result = -298
	TemBAD_SEQUENCE Result = -297
	TemBAD_ACCOUNT  Result = -296
	TemDST_NEEDED   Result = -295
	TemDST_IS_SRC   Result = -294
	TemINVALID      Result = -293
	TemREDUNDANT    Result = -292

	// ter codes (-99 to -1)
	// Retry later
	TerRETRY      Result = -99
	TerNO_ACCOUNT Result = -98
	TerPRE_SEQ    Result = -97
)

// String returns the string representation of the result code
func (r Result) String() string {
	switch r {
	case TesSUCCESS:
		return "tesSUCCESS"
	case TecWRONG_STATE:
		return "tecWRONG_STATE"
	case TecNO_PERMISSION:
		return "tecNO_PERMISSION"
	case TecBELOW_RESERVE:
		return "tecBELOW_RESERVE"
	case TecQUORUM_NOT_MET:
		return "tecQUORUM_NOT_MET"
	case TecPRICE_DEVIATION:
		return "tecPRICE_DEVIATION"
	case TecBID_TOO_LOW:
		return "tecBID_TOO_LOW"
	case TecTOO_SOON:
		return "tecTOO_SOON"
	case TecEXPIRED:
		return "tecEXPIRED"
	case TecINSUFFICIENT_FUNDS:
		return "tecINSUFFICIENT_FUNDS"
	case TecINSUFFICIENT_SHARES:
		return "tecINSUFFICIENT_SHARES"
	case TecNOT_FULL_SUPPLY:
		return "tecNOT_FULL_SUPPLY"
	case TecOUT_OF_BOUNDS:
		return "tecOUT_OF_BOUNDS"
	case TecNO_DST:
		return "tecNO_DST"
	case TecREDUNDANT:
		return "tecREDUNDANT"
	case TefFAILURE:
		return "tefFAILURE"
	case TefINTERNAL:
		return "tefINTERNAL"
	case TefPAST_SEQ:
		return "tefPAST_SEQ"
	case TemMALFORMED:
		return "temMALFORMED"
	case TemBAD_AMOUNT:
		return "temBAD_AMOUNT"
	case TemBAD_SEQUENCE:
		return "temBAD_SEQUENCE"
	case TemBAD_ACCOUNT:
		return "temBAD_ACCOUNT"
	case TemDST_NEEDED:
		return "temDST_NEEDED"
	case TemDST_IS_SRC:
		return "temDST_IS_SRC"
	case TemINVALID:
		return "temINVALID"
	case TemREDUNDANT:
		return "temREDUNDANT"
	case TerRETRY:
		return "terRETRY"
	case TerNO_ACCOUNT:
		return "terNO_ACCOUNT"
	case TerPRE_SEQ:
		return "terPRE_SEQ"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

// IsSuccess returns true if the result indicates success
func (r Result) IsSuccess() bool {
	return r == TesSUCCESS
}

// IsTec returns true if this is a tec (state rejection) code
func (r Result) IsTec() bool {
	return r >= 100 && r < 200
}

// IsTef returns true if this is a tef (failure) code
func (r Result) IsTef() bool {
	return r >= -199 && r <= -100
}

// IsTem returns true if this is a tem (malformed) code
func (r Result) IsTem() bool {
	return r >= -299 && r <= -200
}

// IsTer returns true if this is a ter (retry) code
func (r Result) IsTer() bool {
	return r >= -99 && r <= -1
}

// ShouldRetry returns true if the transaction should be retried later
func (r Result) ShouldRetry() bool {
	return r.IsTer()
}

// IsApplied returns true if the transaction consumed the account sequence
// and was recorded. True for tesSUCCESS and all tec codes.
func (r Result) IsApplied() bool {
	return r.IsSuccess() || r.IsTec()
}

// Message returns a human-readable message for the result
func (r Result) Message() string {
	switch r {
	case TesSUCCESS:
		return "The transaction was applied."
	case TecWRONG_STATE:
		return "The auction state does not permit this operation."
	case TecNO_PERMISSION:
		return "The account is not authorized for this operation."
	case TecBELOW_RESERVE:
		return "Opening bid is below the reserve price."
	case TecQUORUM_NOT_MET:
		return "Voting tokens below the minimum vote percentage."
	case TecPRICE_DEVIATION:
		return "Price outside the allowed band around the current average."
	case TecBID_TOO_LOW:
		return "Bid does not meet the minimum increase over the live price."
	case TecTOO_SOON:
		return "The auction has not ended yet."
	case TecEXPIRED:
		return "The auction has already ended."
	case TecINSUFFICIENT_FUNDS:
		return "Insufficient native balance."
	case TecINSUFFICIENT_SHARES:
		return "Insufficient share balance."
	case TecNOT_FULL_SUPPLY:
		return "Redeem requires the full share supply."
	case TecOUT_OF_BOUNDS:
		return "Value outside the configured bounds."
	case TecNO_DST:
		return "Destination account does not exist."
	case TecREDUNDANT:
		return "The operation would not change anything."
	case TemBAD_AMOUNT:
		return "Can only send positive amounts."
	case TemBAD_SEQUENCE:
		return "Sequence number is required."
	case TemDST_NEEDED:
		return "Destination is required."
	case TemDST_IS_SRC:
		return "Destination may not be source."
	case TemINVALID:
		return "The transaction is ill-formed."
	case TerNO_ACCOUNT:
		return "The source account does not exist."
	case TerPRE_SEQ:
		return "Missing prior transaction for this sequence."
	case TefPAST_SEQ:
		return "Sequence number has already passed."
	default:
		return r.String()
	}
}
