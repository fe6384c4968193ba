package bench

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// cpuTimeMicros reads the process CPU-time clock: time this process has
// spent on-CPU, excluding other processes and anything the module spends
// blocked on I/O. The wall clock would charge scheduler noise to the
// module under test.
func cpuTimeMicros() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("read process cpu clock: %w", err)
	}
	return uint64(ts.Sec)*1_000_000 + uint64(ts.Nsec)/1_000, nil
}
