// Package dfs provides slice helpers shared by cycle reconstruction and
// canonicalisation, including Booth's minimal-rotation algorithm.
package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[K any](s []K) []K {
	out := make([]K, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length slices using cmp.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func Compare[K any](a, b []K, cmp func(x, y K) int) int {
	for i := range a {
		if c := cmp(a[i], b[i]); c < 0 {
			return -1
		} else if c > 0 {
			return 1
		}
	}

	return 0
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s under cmp. It returns a new slice of length len(s).
//  1. Double the sequence to length 2n.
//  2. Keep failure links f, initialised to -1.
//  3. Track the candidate start k; for j in 1..2n-1 adjust k on mismatches.
//  4. Copy the rotation starting at k.
//
// Time Complexity: O(n).
func MinimalRotation[K any](s []K, cmp func(x, y K) int) []K {
	n := len(s)
	doubled := make([]K, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && cmp(doubled[j], doubled[k+i+1]) != 0 {
			if cmp(doubled[j], doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if cmp(doubled[j], doubled[k+i+1]) != 0 { // i == -1
			if cmp(doubled[j], doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]K, n)
	if n > 0 {
		copy(res, doubled[k%n:k%n+n])
	}

	return res
}
