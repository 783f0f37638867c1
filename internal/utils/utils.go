package utils

import "github.com/gostonefire/filestructs/storeerr"

// CheckIndex - Returns an OutOfRange error unless 0 <= index < length
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return storeerr.NewOutOfRange("index %d out of bounds for length %d", index, length)
	}

	return nil
}

// CheckRange - Returns an OutOfRange error unless from and count describe a non empty range within [0, length)
func CheckRange(from, count, length int) error {
	if from < 0 || count <= 0 || from+count > length {
		return storeerr.NewOutOfRange("invalid starting index %d and/or count %d for length %d", from, count, length)
	}

	return nil
}
