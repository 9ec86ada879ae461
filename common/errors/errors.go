package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidChainType     = errors.New("invalid chain type")
	ErrCodecNotFound        = errors.New("codec not found for chain type")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrUnsupportedOperation = errors.New("operation not supported for chain type")
	ErrFactoryNotProvided   = errors.New("codec factory not provided")
	ErrNoBaseFee            = errors.New("chain has no base fee")
)

// Stage identifies the lifecycle stage at which a transaction error occurred,
// so callers can distinguish "never left my machine" from "wallet rejected"
// from "on-chain failure" from "network/timeout".
type Stage string

const (
	StageValidation   Stage = "validation"
	StagePreparation  Stage = "preparation"
	StageProving      Stage = "proving"
	StageSigning      Stage = "signing"
	StageBroadcasting Stage = "broadcasting"
	StageConfirmation Stage = "confirmation"
)

// Kind identifies a specific failure condition layered on a stage.
type Kind string

const (
	KindReverted          Kind = "transaction_reverted"
	KindTimeout           Kind = "request_timeout"
	KindSimulationFailed  Kind = "simulation_failed"
	KindGasEstimation     Kind = "gas_estimation_failed"
	KindConnectionFailed  Kind = "connection_failed"
	KindCleanup           Kind = "cleanup"
	KindValidationFailed  Kind = "validation_failed"
	KindUnexpectedPayload Kind = "unexpected_payload"
)

// TxError is a stage-tagged transaction error. It carries the tracking id
// and on-chain hash where available so the failure can be correlated with
// the owning transaction record.
type TxError struct {
	Stage      Stage
	Kind       Kind
	TrackingID string
	Hash       string
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *TxError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Stage, e.Message)
	if e.Kind != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Kind)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *TxError) Unwrap() error {
	return e.Cause
}

// NewTxError creates a stage-tagged transaction error.
//
// Parameters:
// - stage: the lifecycle stage at which the error occurred.
// - kind: the specific failure condition, may be empty.
// - msg: a human-readable description.
//
// Returns:
// - *TxError: the created error.
func NewTxError(stage Stage, kind Kind, msg string) *TxError {
	return &TxError{Stage: stage, Kind: kind, Message: msg}
}

// WrapTxError wraps a cause into a stage-tagged transaction error.
func WrapTxError(cause error, stage Stage, kind Kind, msg string) *TxError {
	return &TxError{Stage: stage, Kind: kind, Message: msg, Cause: cause}
}

// WithTransaction attaches tracking id and hash to the error and returns it.
func (e *TxError) WithTransaction(trackingID, hash string) *TxError {
	e.TrackingID = trackingID
	e.Hash = hash
	return e
}

// AsTxError extracts a TxError from an error chain.
func AsTxError(err error) (*TxError, bool) {
	var txErr *TxError
	if errors.As(err, &txErr) {
		return txErr, true
	}
	return nil, false
}

// RPCError represents a structured JSON-RPC error returned by a provider.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// sessionErrorCode is the JSON-RPC code wallets use to signal a dead session.
const sessionErrorCode = -32001

// sessionErrorPatterns are message fragments that indicate the wallet
// session itself is no longer valid, independent of the transaction.
var sessionErrorPatterns = []string{
	"expired session",
	"session expired",
	"session terminated",
	"session closed",
	"no active session",
}

// IsSessionError reports whether err indicates the wallet session is no
// longer valid. Session errors are never retried: a dead session cannot
// become alive again.
func IsSessionError(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == sessionErrorCode {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range sessionErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
