package list

import (
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/model"
)

// nodeToBytes - Converts a model.ListNode to its 16 byte record
func nodeToBytes(node model.ListNode) (buf []byte) {
	buf = make([]byte, conf.ListNodeLength)
	file.PutAddress(buf[conf.ListNextOffset:], node.Next)
	file.PutAddress(buf[conf.ListPreviousOffset:], node.Previous)
	file.PutFloat64(buf[conf.ListValueOffset:], node.Value)

	return
}

// bytesToNode - Converts a 16 byte record read from address to a model.ListNode
func bytesToNode(buf []byte, address file.Address) model.ListNode {
	return model.ListNode{
		Address:  address,
		Next:     file.GetAddress(buf[conf.ListNextOffset:]),
		Previous: file.GetAddress(buf[conf.ListPreviousOffset:]),
		Value:    file.GetFloat64(buf[conf.ListValueOffset:]),
	}
}
