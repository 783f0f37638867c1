package hashtable

import (
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/model"
)

// emptySlotTable - Returns the bytes of a slot table with every slot set to file.NoAddress
func emptySlotTable(capacity int) (buf []byte) {
	buf = make([]byte, int64(capacity)*conf.SlotLength)
	for i := int64(0); i < int64(len(buf)); i += conf.SlotLength {
		file.PutAddress(buf[i:], file.NoAddress)
	}

	return
}

// chainNodeToBytes - Converts a ChainNode struct to its variable length record,
// next address followed by the length prefixed key and value
func chainNodeToBytes(node model.ChainNode) (buf []byte) {
	buf = make([]byte, conf.AddressLength, conf.AddressLength+file.StringLength(node.Key)+file.StringLength(node.Value))
	file.PutAddress(buf[conf.ChainNextOffset:], node.Next)
	buf = file.AppendString(buf, node.Key)
	buf = file.AppendString(buf, node.Value)

	return
}

// slotAddress - Returns the file address of the slot with index slot
func slotAddress(slot int) file.Address {
	return file.Address(int64(slot) * conf.SlotLength)
}
