package stats

import "sort"

// OtherName is the synthetic bucket absorbing everything past the
// top-N cutoff. It always renders last, whatever its size.
const OtherName = "Other"

// Share is one language's slice of the total, ordered largest first.
type Share struct {
	Name    string
	Bytes   int64
	Percent float64
}

// Shares converts totals into an ordered percentage list, largest
// first. An all-zero or empty input yields an empty slice, which the
// renderer turns into the no-data card. Output is deterministic: names
// are snapshotted in ascending order before the stable sort by size,
// so equal-sized languages always tie-break the same way.
func Shares(totals Totals) []Share {
	var total int64
	for _, b := range totals {
		total += b
	}
	if total == 0 {
		return nil
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	shares := make([]Share, 0, len(names))
	for _, name := range names {
		shares = append(shares, Share{
			Name:    name,
			Bytes:   totals[name],
			Percent: 100 * float64(totals[name]) / float64(total),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Bytes > shares[j].Bytes
	})
	return shares
}

// TopN keeps the n-1 largest shares and collapses the rest into a
// trailing "Other" entry holding their exact byte sum. Inputs with at
// most n entries pass through unchanged. No bytes are ever dropped, so
// the output percentages still sum to 100.
func TopN(shares []Share, n int) []Share {
	if n < 1 || len(shares) <= n {
		return shares
	}

	var total int64
	for _, s := range shares {
		total += s.Bytes
	}

	out := make([]Share, n-1, n)
	copy(out, shares[:n-1])

	var otherBytes int64
	for _, s := range shares[n-1:] {
		otherBytes += s.Bytes
	}
	out = append(out, Share{
		Name:    OtherName,
		Bytes:   otherBytes,
		Percent: 100 * float64(otherBytes) / float64(total),
	})
	return out
}
