package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gonana/gonana-deploy/internal/domain"
)

// DeploymentStatus tracks a contract creation through the workflow
type DeploymentStatus string

const (
	DeploymentStatusPending   DeploymentStatus = "PENDING"
	DeploymentStatusConfirmed DeploymentStatus = "CONFIRMED"
)

// Receipt holds the confirmation details of a creation transaction
type Receipt struct {
	ContractAddress common.Address
	BlockNumber     uint64
	GasUsed         uint64
}

// DeploymentHandle references a submitted contract creation. The address is
// only readable once the handle has been confirmed.
type DeploymentHandle struct {
	ContractName string
	Deployer     common.Address
	Transaction  *types.Transaction

	status  DeploymentStatus
	receipt *Receipt
}

// NewDeploymentHandle creates a pending handle for a sent creation transaction
func NewDeploymentHandle(contractName string, deployer common.Address, tx *types.Transaction) *DeploymentHandle {
	return &DeploymentHandle{
		ContractName: contractName,
		Deployer:     deployer,
		Transaction:  tx,
		status:       DeploymentStatusPending,
	}
}

// TxHash returns the creation transaction hash
func (h *DeploymentHandle) TxHash() common.Hash {
	if h.Transaction == nil {
		return common.Hash{}
	}
	return h.Transaction.Hash()
}

// Status returns the current status
func (h *DeploymentHandle) Status() DeploymentStatus {
	return h.status
}

// Confirm marks the handle as confirmed with the mined receipt
func (h *DeploymentHandle) Confirm(receipt Receipt) {
	h.receipt = &receipt
	h.status = DeploymentStatusConfirmed
}

// Address returns the created contract address
func (h *DeploymentHandle) Address() (common.Address, error) {
	if h.status != DeploymentStatusConfirmed || h.receipt == nil {
		return common.Address{}, domain.ErrAddressUnavailable
	}
	return h.receipt.ContractAddress, nil
}

// Receipt returns the confirmation details, or nil while pending
func (h *DeploymentHandle) Receipt() *Receipt {
	return h.receipt
}
