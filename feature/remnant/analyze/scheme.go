package analyze

import (
	"math/big"
	"strings"

	"apo-analyzer/core/utils"
	"apo-analyzer/feature/remnant/models"
)

// TrafficHex formats callID as an och-inst traffic id under scheme.
func TrafficHex(callID *big.Int, scheme models.Scheme) string {
	if scheme == models.SchemeShifted {
		return utils.FormatHex(new(big.Int).Lsh(callID, 24))
	}
	return utils.FormatHex(callID)
}

// InferScheme picks the encoding that explains more call records. On a tie
// it prefers shifted when any inventory traffic id ends in "000000", the
// footprint of a call id shifted by 24 bits, and direct otherwise.
func InferScheme(calls []models.CallRecord, inventory Index) models.Scheme {
	score := func(scheme models.Scheme) int {
		n := 0
		for _, c := range calls {
			if _, ok := inventory[TrafficHex(c.CallID, scheme)]; ok {
				n++
			}
		}
		return n
	}

	shifted := score(models.SchemeShifted)
	direct := score(models.SchemeDirect)
	switch {
	case shifted > direct:
		return models.SchemeShifted
	case direct > shifted:
		return models.SchemeDirect
	}

	for traffic := range inventory {
		if strings.HasSuffix(traffic, "000000") {
			return models.SchemeShifted
		}
	}
	return models.SchemeDirect
}
