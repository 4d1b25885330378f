package regexdfa

func mix(key int) int {
	return mix32(key)
}

// 32-bit finalization step of MurmurHash3
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// Hash of a set of state ids; independent of iteration order.
func hashIDs(ids []int) uint64 {
	h := uint64(len(ids))
	for _, id := range ids {
		h += uint64(mix(id))
	}
	return h
}
