package testing

import (
	stdtesting "testing"

	"github.com/stretchr/testify/require"
)

// RequireTxSuccess asserts that a transaction result indicates success.
func RequireTxSuccess(t *stdtesting.T, result TxResult) {
	t.Helper()
	require.True(t, result.Success,
		"expected transaction success, got %s: %s", result.Code, result.Message)
}

// RequireTxFail asserts that a transaction failed with a specific code.
func RequireTxFail(t *stdtesting.T, result TxResult, expectedCode string) {
	t.Helper()
	require.False(t, result.Success,
		"expected failure with code %s, but transaction succeeded", expectedCode)
	require.Equal(t, expectedCode, result.Code,
		"expected failure code %s, got %s: %s", expectedCode, result.Code, result.Message)
}

// RequireShares asserts an account's share balance.
func RequireShares(t *stdtesting.T, env *TestEnv, address string, expected uint64) {
	t.Helper()
	require.Equal(t, expected, env.SharesOf(address),
		"account %s share balance mismatch", address)
}

// RequireNative asserts an account's native balance.
func RequireNative(t *stdtesting.T, env *TestEnv, address string, expected uint64) {
	t.Helper()
	require.Equal(t, expected, env.NativeOf(address),
		"account %s native balance mismatch", address)
}

// RequireReserve asserts the current reserve price.
func RequireReserve(t *stdtesting.T, env *TestEnv, expected uint64) {
	t.Helper()
	require.Equal(t, expected, env.ReservePrice(), "reserve price mismatch")
}
