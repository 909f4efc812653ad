package bindings

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// GonanaEscrowMetaData contains the read surface of the GonanaEscrow contract
// used after deployment.
var GonanaEscrowMetaData = bind.MetaData{
	ABI: "[{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"platformFee\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"}]",
	ID:  "GonanaEscrow",
}

// GonanaEscrow is a Go binding around the GonanaEscrow getters.
type GonanaEscrow struct {
	abi abi.ABI
}

// NewGonanaEscrow creates a new instance of GonanaEscrow.
func NewGonanaEscrow() *GonanaEscrow {
	parsed, err := GonanaEscrowMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &GonanaEscrow{abi: *parsed}
}

// PackOwner is the Go binding used to pack the parameters required for calling
// the contract method with ID 0x8da5cb5b.
//
// Solidity: function owner() view returns(address)
func (gonanaEscrow *GonanaEscrow) PackOwner() []byte {
	enc, err := gonanaEscrow.abi.Pack("owner")
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackOwner is the Go binding that unpacks the parameters returned
// from invoking the contract method with ID 0x8da5cb5b.
//
// Solidity: function owner() view returns(address)
func (gonanaEscrow *GonanaEscrow) UnpackOwner(data []byte) (common.Address, error) {
	out, err := gonanaEscrow.abi.Unpack("owner", data)
	if err != nil {
		return *new(common.Address), err
	}
	out0 := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	return out0, nil
}

// PackPlatformFee is the Go binding used to pack the parameters required for calling
// the contract method platformFee.
//
// Solidity: function platformFee() view returns(uint256)
func (gonanaEscrow *GonanaEscrow) PackPlatformFee() []byte {
	enc, err := gonanaEscrow.abi.Pack("platformFee")
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackPlatformFee is the Go binding that unpacks the parameters returned
// from invoking the contract method platformFee.
//
// Solidity: function platformFee() view returns(uint256)
func (gonanaEscrow *GonanaEscrow) UnpackPlatformFee(data []byte) (*big.Int, error) {
	out, err := gonanaEscrow.abi.Unpack("platformFee", data)
	if err != nil {
		return new(big.Int), err
	}
	out0 := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return out0, nil
}
