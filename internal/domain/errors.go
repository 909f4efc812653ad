package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no compiled artifact exists for a contract
	ErrContractNotFound = errors.New("contract not found")

	// ErrNetworkMismatch is returned when the RPC endpoint reports a different chain ID
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnknownNetwork is returned when a network name is not in the catalogue
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrRPCNotConfigured is returned when a network resolves to no RPC URL
	ErrRPCNotConfigured = errors.New("no RPC URL configured")

	// ErrMissingPrivateKey is returned when no deployer key is configured
	ErrMissingPrivateKey = errors.New("deployer private key not configured")

	// ErrAddressUnavailable is returned when a deployment address is read before confirmation
	ErrAddressUnavailable = errors.New("contract address unavailable before deployment is confirmed")

	// ErrDeploymentReverted is returned when the creation transaction was mined but failed
	ErrDeploymentReverted = errors.New("deployment transaction reverted")

	// ErrNoCodeAfterDeploy is returned when a mined deployment left no code at the address
	ErrNoCodeAfterDeploy = errors.New("no contract code after deployment")

	// ErrReadFailure is returned when a read-only contract call fails
	ErrReadFailure = errors.New("contract read failed")

	// ErrNoNetwork is returned when a deployment runs without a resolved network
	ErrNoNetwork = errors.New("no network configured")

	// ErrDeploymentAborted is returned when the operator declines the deployment
	ErrDeploymentAborted = errors.New("deployment aborted")
)

// WorkflowStep names a sequence point of the deployment workflow
type WorkflowStep string

const (
	StepFactory WorkflowStep = "factory"
	StepSubmit  WorkflowStep = "submit"
	StepConfirm WorkflowStep = "confirm"
	StepAddress WorkflowStep = "address"
	StepRead    WorkflowStep = "read"
)

// WorkflowError is the single failure type of the deployment workflow. It
// records the step that failed and wraps whatever the network client raised.
type WorkflowError struct {
	Step WorkflowStep
	Err  error
}

// NewWorkflowError wraps err as a failure of step
func NewWorkflowError(step WorkflowStep, err error) *WorkflowError {
	return &WorkflowError{Step: step, Err: err}
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("deployment failed at %s step: %v", e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// ReadError reports a failed getter call against a deployed contract
type ReadError struct {
	Getter string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %s(): %v", ErrReadFailure, e.Getter, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrReadFailure, e.Err}
}

// UnsetEnvError reports a network whose foundry.toml endpoint is a ${VAR}
// reference to a variable that is not set
type UnsetEnvError struct {
	Network string
	Var     string
}

func (e *UnsetEnvError) Error() string {
	return fmt.Sprintf("%s for network %s: set %s", ErrRPCNotConfigured, e.Network, e.Var)
}

func (e *UnsetEnvError) Unwrap() error {
	return ErrRPCNotConfigured
}
