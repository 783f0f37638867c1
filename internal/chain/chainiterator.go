package chain

import (
	"fmt"

	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/model"
	"github.com/gostonefire/filestructs/storeerr"
)

// Records - Is used to iterate over the nodes of one hash table chain one by one.
type Records struct {
	getNodeFunc func(file.Address) (model.ChainNode, error)
	nextAddress file.Address
}

// NewRecords - Returns a pointer to a new Records struct
//   - getNodeFunc reads the chain node stored at an address
//   - chainAddress is the address of the first node in the chain, file.NoAddress for an empty chain
func NewRecords(getNodeFunc func(file.Address) (model.ChainNode, error), chainAddress file.Address) *Records {
	return &Records{
		getNodeFunc: getNodeFunc,
		nextAddress: chainAddress,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return !R.nextAddress.IsNone()
}

// Next - Returns the next node in the chain.
// It returns:
//   - node is the next chain node.
//   - err is either a standard error or, if there are no more nodes when calling this function, an error of type storeerr.NoRecordFound.
func (R *Records) Next() (node model.ChainNode, err error) {
	if R.nextAddress.IsNone() {
		err = storeerr.NoRecordFound{}
		return
	}

	node, err = R.getNodeFunc(R.nextAddress)
	if err != nil {
		err = fmt.Errorf("error while retrieving chain node at %d: %w", R.nextAddress, err)
		return
	}

	R.nextAddress = node.Next

	return
}
