// SPDX-License-Identifier: MIT

package pathgen

// FanOutInto runs the partitioned worker fan-out against caller-supplied
// per-range sinks instead of column views of a Dense matrix. Test-only.
func (p Partitioned) FanOutInto(job *Job, viewOf func(r Range) (Writer, error)) error {
	return p.fanOut(job, viewOf)
}
