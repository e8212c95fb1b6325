package testutil

import (
	"encoding/binary"

	"github.com/lunfardo314/unitrie/common"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/util"
)

const TestingDeterministicOriginPrivateKey = "80366db5fbb8dad7946f27037422715e4176dda41d582224db87b6c3b783d709"

// GetTestingPrivateKey without index returns the origin key. With index, the key is
// derived deterministically from the origin key and the index
func GetTestingPrivateKey(idx ...int) *keys.PrivateKey {
	if len(idx) == 0 {
		return keys.MustFromHex(TestingDeterministicOriginPrivateKey)
	}
	var u64 [8]byte
	binary.BigEndian.PutUint64(u64[:], uint64(idx[0]))
	ret, err := keys.FromSeed(common.Concat([]byte(TestingDeterministicOriginPrivateKey), u64[:]))
	util.AssertNoError(err)
	return ret
}

func GetTestingPrivateKeys(n int, offsIndex ...int) []*keys.PrivateKey {
	offs := 31415
	if len(offsIndex) > 0 {
		offs = offsIndex[0]
	}
	ret := make([]*keys.PrivateKey, n)
	for i := range ret {
		ret[i] = GetTestingPrivateKey(offs + i + 1)
	}
	return ret
}
