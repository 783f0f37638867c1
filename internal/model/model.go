package model

import (
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
)

// ListNode - Represents one doubly linked list node record
type ListNode struct {
	Address  file.Address
	Next     file.Address
	Previous file.Address
	Value    float64
}

// ChainNode - Represents one hash table chain node record
type ChainNode struct {
	Address file.Address
	Next    file.Address
	Key     string
	Value   string
}

// ValueAddress - Returns the address of the value's length prefix within the record
func (C ChainNode) ValueAddress() file.Address {
	return C.Address + file.Address(conf.ChainKeyOffset+conf.StringLengthPrefix+int64(len(C.Key)))
}
