package pathrec

import "github.com/ibanalysis/fabricroute/fabric"

// GenPaths enumerates plausible PathRecords from p1 to p2 in the
// "PathSelection=Minimal" convention: pairs (slid_base|i, dlid_base|i) for
// i in [0, 2^L) where L is p1's LMC. Both endpoints' LID offsets walk in
// lockstep off p1's LMC — when p2 carries a different LMC this may not
// enumerate every LID p2 actually owns, matching the upstream fabric
// manager's own best-effort path selection rather than an exhaustive
// cross-product. The DLID is all that matters for route analysis, so this
// is sufficient even when it isn't exhaustive.
//
// Returns an empty, non-error result if either port's base LID is zero
// (e.g. a switch's non-port-0 physical port, which carries no LID).
func GenPaths(p1, p2 *fabric.Port) ([]fabric.PathRecord, error) {
	if p1.BaseLID == 0 || p2.BaseLID == 0 {
		return nil, nil
	}

	mask := uint16(1<<p1.LMC) - 1

	records := make([]fabric.PathRecord, 0, int(mask)+1)
	for offset := uint16(0); offset <= mask; offset++ {
		records = append(records, fabric.PathRecord{
			SGIDPrefix: p1.SubnetPrefix,
			SGIDGUID:   p1.GUID,
			DGIDPrefix: p2.SubnetPrefix,
			DGIDGUID:   p2.GUID,
			SLID:       p1.BaseLID | (offset & mask),
			DLID:       p2.BaseLID | (offset & mask),
		})
	}

	return records, nil
}
